package components

import "github.com/yohamta/donburi"

// PhysicsData holds velocity in px/s and the contact flags written by the
// collision pass. Behaviour sets velocity; it never moves the body itself.
type PhysicsData struct {
	VelX         float64
	VelY         float64
	Gravity      float64 // px/s²
	MaxFallSpeed float64
	GravityOff   bool

	OnFloor      bool
	BlockedLeft  bool
	BlockedRight bool
}

// BlockedToward reports a wall on the dir side (-1 left, 1 right).
func (p *PhysicsData) BlockedToward(dir float64) bool {
	if dir > 0 {
		return p.BlockedRight
	}
	return p.BlockedLeft
}

// Stop zeroes velocity.
func (p *PhysicsData) Stop() {
	p.VelX = 0
	p.VelY = 0
}

var Physics = donburi.NewComponentType[PhysicsData]()
