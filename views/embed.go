// Package views embeds the HTML templates rendered by the server.
package views

import "embed"

// FS holds every template, addressed by path without the .html extension,
// e.g. "users/index" or "layouts/main".
//
//go:embed *.html layouts/*.html users/*.html posts/*.html tags/*.html
var FS embed.FS
