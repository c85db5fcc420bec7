// Package web embeds the loader userscript and landing page served by the dev
// server. The wasm bundle and wasm_exec.js are produced by
// `go generate ./internal/web` and embedded alongside them.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var embeddedFS embed.FS

// StaticFS returns the embedded static asset filesystem.
func StaticFS() (fs.FS, error) {
	return fs.Sub(embeddedFS, "static")
}
