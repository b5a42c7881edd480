package usecase

import "strings"

// ValidateSubmission checks that every required field carries a non-blank
// value. The response to the client never enumerates which field is missing.
func ValidateSubmission(sub Submission) bool {
	required := []string{
		sub.ProductURL,
		sub.FullName,
		sub.Email,
		sub.AddressLine1,
		sub.City,
		sub.PostalCode,
	}
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}
