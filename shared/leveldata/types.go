// Package leveldata parses Tiled levels into plain data. It has no
// dependencies on ebitengine, donburi, or resolv.
package leveldata

// Level holds everything the simulation needs from a TMX file.
type Level struct {
	Name     string
	Width    int // pixels
	Height   int // pixels
	TileSize int

	Solids      []Rect
	PlayerSpawn Point
	Enemies     []EnemySpawn
}

// Rect is a solid collision rectangle in world pixels.
type Rect struct {
	X, Y, W, H float64
}

// Point is a spawn anchor: horizontal centre and feet of the actor.
type Point struct {
	X, Y float64
}

// EnemySpawn is an enemy placement. Zero stats mean "use the scaled default
// for this spawn index".
type EnemySpawn struct {
	Point
	Index int
	HP    int
	Atk   int
	Def   int
	Exp   int
}
