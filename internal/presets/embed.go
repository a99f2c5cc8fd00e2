// Package presets provides embedded generation presets and the tile palette.
package presets

import "embed"

// dataFS embeds all YAML files from this directory at build time.
//
//go:embed *.yaml
var dataFS embed.FS
