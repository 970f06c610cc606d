// Package web provides the embedded static assets for the browser client.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree: the single-page client
// (index.html, app.js, style.css) served at / and /static/.
//
//go:embed all:static
var StaticFS embed.FS
