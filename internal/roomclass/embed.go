// Package roomclass provides the embedded table of scatter room size classes.
package roomclass

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
