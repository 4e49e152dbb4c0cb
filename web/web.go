// Package web holds the embedded landing page and admin dashboard assets
// served by the API binary.
package web

import "embed"

//go:embed static
var StaticFS embed.FS
