package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BlinkData drives sprite alpha. Seq is nil when no blink is running.
type BlinkData struct {
	Seq   *gween.Sequence
	Alpha float64
}

var Blink = donburi.NewComponentType[BlinkData]()
