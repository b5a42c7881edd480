// Package web holds the static purchase-request form served at the site root.
package web

import "embed"

//go:embed index.html main.js styles.css
var Files embed.FS
