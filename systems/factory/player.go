package factory

import (
	"github.com/automoto/thornwood/archetypes"
	"github.com/automoto/thornwood/components"
	cfg "github.com/automoto/thornwood/config"
	"github.com/automoto/thornwood/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewPlayerStats returns level-1 stats from the current tuning.
func NewPlayerStats() components.Stats {
	return components.Stats{
		Level:     1,
		ExpToNext: cfg.Player.BaseExpToNext,
		Atk:       cfg.Player.BaseAtk,
		Def:       cfg.Player.BaseDef,
		Crt:       cfg.Player.BaseCrt,
		Spd:       cfg.Player.BaseSpd,
	}
}

// CreatePlayer spawns the player with its feet centred on (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	obj := resolv.NewObject(x-w/2, y-h, w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs.World, obj)

	hw, hh := cfg.Player.AttackRange, cfg.Player.AttackHeight
	hitbox := resolv.NewObject(x-hw/2, y-h/2-hh/2, hw, hh, tags.ResolvHitbox)
	hitbox.SetShape(resolv.NewRectangle(0, 0, hw, hh))
	hitbox.Data = player
	components.Hitbox.SetValue(player, components.HitboxData{Object: hitbox})
	addToSpace(ecs.World, hitbox)

	stats := NewPlayerStats()
	components.Player.SetValue(player, components.PlayerData{
		Stats:       stats,
		FacingRight: true,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.BaseHP,
		Max:     cfg.Player.BaseHP,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})
	components.Blink.SetValue(player, components.BlinkData{Alpha: 1})

	return player
}
