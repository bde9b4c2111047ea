package systems

import (
	"github.com/automoto/thornwood/components"
	"github.com/automoto/thornwood/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies gravity to velocity. Positions are integrated by
// UpdateCollisions so every move goes through the collision space.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := DeltaTime(ecs.World).Seconds()
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if physics.GravityOff {
			return
		}
		physics.VelY += physics.Gravity * dt
		if physics.MaxFallSpeed > 0 && physics.VelY > 0 {
			physics.VelY = gamemath.ClampSpeed(physics.VelY, physics.MaxFallSpeed)
		}
	})
}
