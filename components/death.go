package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DeathData marks an enemy that has started its death sequence. Fade runs
// alpha to zero; the entity is removed when it completes.
type DeathData struct {
	Fade  *gween.Sequence
	Alpha float64
}

var Death = donburi.NewComponentType[DeathData]()
