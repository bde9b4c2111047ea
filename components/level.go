package components

import (
	"github.com/automoto/thornwood/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level *leveldata.Level
}

// Bounds returns the world size in pixels, or zero when no level is loaded.
func (l *LevelData) Bounds() (w, h float64) {
	if l.Level == nil {
		return 0, 0
	}
	return float64(l.Level.Width), float64(l.Level.Height)
}

var Level = donburi.NewComponentType[LevelData]()
