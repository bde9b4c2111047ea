package systems

import (
	"testing"

	"github.com/automoto/thornwood/components"
	cfg "github.com/automoto/thornwood/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestGameOverRendererRegisters(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	assert.NotPanics(t, func() {
		e.AddRenderer(cfg.Default, NewDrawGameOver(components.Stats{Level: 3}))
	})
}

func TestGameOverRestartNeedsFreshPress(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	entry := e.World.Entry(e.World.Create(components.Input))
	restarts := 0
	update := NewUpdateGameOver(func() { restarts++ })

	// Held over from gameplay: the first tick primes, the rest see no edge.
	hold(entry, cfg.ActionRestart)
	update(e)
	hold(entry, cfg.ActionRestart)
	update(e)
	assert.Zero(t, restarts)

	hold(entry)
	update(e)
	hold(entry, cfg.ActionRestart)
	update(e)
	assert.Equal(t, 1, restarts)
}
