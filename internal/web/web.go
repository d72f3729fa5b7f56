// SPDX-License-Identifier: Apache-2.0

// Package web embeds the static assets of the single-page browser client.
// The client is a rendering layer only: its note list cache can always be
// rebuilt from GET /api/notes.
package web

import (
	"embed"
	"io/fs"
)

//go:embed assets
var assets embed.FS

// Assets returns the client asset tree rooted at the directory holding
// index.html, suitable for http.FileServerFS.
func Assets() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		// embed guarantees the directory exists
		panic(err)
	}
	return sub
}
