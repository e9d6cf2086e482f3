// Package gamedata provides embedded game data and utilities for loading it.
package gamedata

import (
	"embed"
	"io/fs"
)

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS

// Embedded returns the built-in data files.
func Embedded() fs.FS {
	return dataFS
}
