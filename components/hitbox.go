package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// HitboxData is the player's melee hitbox. The object sits in the space under
// the hitbox tag so it never blocks movement; only its position tracks the owner.
type HitboxData struct {
	*resolv.Object
}

var Hitbox = donburi.NewComponentType[HitboxData]()
