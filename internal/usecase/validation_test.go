package usecase

import "testing"

func validSubmission() Submission {
	return Submission{
		ProductURL:   "https://example.com/p",
		FullName:     "Ana Gomez",
		Email:        "ana@example.com",
		AddressLine1: "Calle 1",
		City:         "Madrid",
		PostalCode:   "28001",
	}
}

func TestValidateSubmission(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Submission)
		want   bool
	}{
		{name: "all required present", mutate: func(*Submission) {}, want: true},
		{name: "optionals empty is fine", mutate: func(s *Submission) {
			s.ExtraInfo, s.DNI, s.Phone, s.AddressLine2, s.Province, s.Notes = "", "", "", "", "", ""
		}, want: true},
		{name: "missing product url", mutate: func(s *Submission) { s.ProductURL = "" }, want: false},
		{name: "missing full name", mutate: func(s *Submission) { s.FullName = "" }, want: false},
		{name: "missing email", mutate: func(s *Submission) { s.Email = "" }, want: false},
		{name: "missing address", mutate: func(s *Submission) { s.AddressLine1 = "" }, want: false},
		{name: "missing city", mutate: func(s *Submission) { s.City = "" }, want: false},
		{name: "missing postal code", mutate: func(s *Submission) { s.PostalCode = "" }, want: false},
		{name: "whitespace only counts as missing", mutate: func(s *Submission) { s.FullName = "   " }, want: false},
		{name: "empty submission", mutate: func(s *Submission) { *s = Submission{} }, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			tt.mutate(&sub)
			if got := ValidateSubmission(sub); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
