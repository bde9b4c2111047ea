package systems

import (
	"testing"

	"github.com/automoto/thornwood/components"
	"github.com/automoto/thornwood/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestFallSpeedIsCapped(t *testing.T) {
	e := newTestECS(t)
	p := factory.CreatePlayer(e, 100, 100)
	physics := components.Physics.Get(p)

	for i := 0; i < 120; i++ {
		UpdateClock(e)
		UpdatePhysics(e)
	}
	assert.Equal(t, physics.MaxFallSpeed, physics.VelY)

	// Rising is never clamped.
	physics.VelY = -2 * physics.MaxFallSpeed
	UpdateClock(e)
	UpdatePhysics(e)
	assert.Less(t, physics.VelY, -physics.MaxFallSpeed)
}

func TestBlockedToward(t *testing.T) {
	physics := components.PhysicsData{BlockedRight: true}
	assert.True(t, physics.BlockedToward(1))
	assert.False(t, physics.BlockedToward(-1))

	physics = components.PhysicsData{BlockedLeft: true}
	assert.True(t, physics.BlockedToward(-1))
	assert.False(t, physics.BlockedToward(1))
}
