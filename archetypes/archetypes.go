package archetypes

import (
	"github.com/automoto/thornwood/components"
	cfg "github.com/automoto/thornwood/config"
	"github.com/automoto/thornwood/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Hitbox,
		components.Health,
		components.Physics,
		components.State,
		components.Timers,
		components.Schedule,
		components.Input,
		components.Blink,
	)
	Boar = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.Physics,
		components.State,
		components.Timers,
		components.Schedule,
		components.Blink,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	// Game carries the per-session singletons.
	Game = newArchetype(
		components.Clock,
		components.RNG,
		components.Spawner,
		components.Level,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
