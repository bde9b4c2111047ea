package factory

import (
	"math/rand"
	"time"

	"github.com/automoto/thornwood/archetypes"
	"github.com/automoto/thornwood/components"
	cfg "github.com/automoto/thornwood/config"
	"github.com/automoto/thornwood/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGame spawns the session singletons: clock, RNG, respawn timer and
// the loaded level (which may be nil in tests).
func CreateGame(ecs *ecs.ECS, seed int64, lvl *leveldata.Level) *donburi.Entry {
	game := archetypes.Game.Spawn(ecs)
	components.Clock.SetValue(game, components.ClockData{
		DT: tickDuration(),
	})
	components.RNG.SetValue(game, components.RNGData{Rand: rand.New(rand.NewSource(seed))})
	components.Level.SetValue(game, components.LevelData{Level: lvl})
	return game
}

// BuildLevel populates the world from a parsed level and returns the player.
func BuildLevel(ecs *ecs.ECS, lvl *leveldata.Level, seed int64) *donburi.Entry {
	CreateSpace(ecs, lvl.Width, lvl.Height, cfg.C.CellSize, cfg.C.CellSize)
	CreateGame(ecs, seed, lvl)

	for _, r := range lvl.Solids {
		CreateWall(ecs, r.X, r.Y, r.W, r.H)
	}

	player := CreatePlayer(ecs, lvl.PlayerSpawn.X, lvl.PlayerSpawn.Y)
	for _, s := range lvl.Enemies {
		CreateBoar(ecs, s.X, s.Y, PlacedBoarStats(s), player.Entity())
	}
	return player
}

func tickDuration() time.Duration {
	if cfg.C.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(cfg.C.TickRate)
}
