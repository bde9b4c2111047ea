package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an actor's collision body. X/Y is the top-left corner.
type ObjectData struct {
	*resolv.Object
}

func (o *ObjectData) CenterX() float64 {
	return o.X + o.W/2
}

func (o *ObjectData) CenterY() float64 {
	return o.Y + o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()
