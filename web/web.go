package web

import "embed"

// Static holds the embedded web/static directory.
// Handlers access it via fs.Sub(Static, "static").
//
//go:embed static
var Static embed.FS

// Templates holds the embedded HTML templates. Every page set is parsed
// together with templates/layout.html at handler construction.
//
//go:embed templates/*.html
var Templates embed.FS
