// Package web provides the embedded fallback web client.
package web

import (
	"embed"
	"io/fs"
)

//go:embed dist
var assets embed.FS

// Dist returns the embedded client bundle rooted at its index.html.
func Dist() fs.FS {
	sub, err := fs.Sub(assets, "dist")
	if err != nil {
		panic("web: embedded dist missing: " + err.Error())
	}
	return sub
}
