// Package levels embeds the bundled Tiled levels.
package levels

import "embed"

// Default is the level loaded when no other is requested.
const Default = "forest.tmx"

//go:embed *.tmx
var FS embed.FS
