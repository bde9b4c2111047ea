package scenes

import (
	"testing"

	"github.com/automoto/thornwood/components"
	cfg "github.com/automoto/thornwood/config"
	"github.com/automoto/thornwood/events"
	"github.com/automoto/thornwood/levels"
	"github.com/automoto/thornwood/shared/leveldata"
	"github.com/automoto/thornwood/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func loadForest(t *testing.T) *leveldata.Level {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	lvl, err := leveldata.Load(levels.FS, levels.Default)
	require.NoError(t, err)
	return lvl
}

func TestForestSettles(t *testing.T) {
	lvl := loadForest(t)
	world := newWorld(lvl, 7, false)

	for i := 0; i < 30; i++ {
		world.Update()
	}

	p, ok := components.Player.First(world.World)
	require.True(t, ok)
	obj := components.Object.Get(p)
	assert.True(t, components.Physics.Get(p).OnFloor)
	assert.InDelta(t, lvl.PlayerSpawn.Y, obj.Y+obj.H, 0.01)
	assert.Equal(t, len(lvl.Enemies), systems.CountLiveEnemies(world.World))
	assert.Equal(t, 100, components.Health.Get(p).Current)
}

func TestForestPublishesPlayerDied(t *testing.T) {
	lvl := loadForest(t)
	world := newWorld(lvl, 7, false)

	var died []events.PlayerDied
	events.PlayerDiedEvent.Subscribe(world.World, func(w donburi.World, e events.PlayerDied) {
		died = append(died, e)
	})

	world.Update()
	p, _ := components.Player.First(world.World)
	systems.ForceKill(world.World, p)

	for i := 0; i < 90; i++ {
		world.Update()
	}
	require.Len(t, died, 1)
	assert.Equal(t, 1, died[0].Stats.Level)
}
