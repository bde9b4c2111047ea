package factory

import (
	"github.com/automoto/thornwood/archetypes"
	"github.com/automoto/thornwood/components"
	cfg "github.com/automoto/thornwood/config"
	"github.com/automoto/thornwood/shared/leveldata"
	"github.com/automoto/thornwood/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBoar spawns a boar with its feet centred on (x, y). Zero fields in
// spawn fall back to the default boar stats.
func CreateBoar(ecs *ecs.ECS, x, y float64, spawn components.EnemySpawn, target donburi.Entity) *donburi.Entry {
	boar := archetypes.Boar.Spawn(ecs)

	w, h := cfg.Boar.CollisionWidth, cfg.Boar.CollisionHeight
	obj := resolv.NewObject(x-w/2, y-h, w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags("character", tags.ResolvEnemy)
	obj.Data = boar
	components.Object.SetValue(boar, components.ObjectData{Object: obj})
	addToSpace(ecs.World, obj)

	spawn = withBoarDefaults(spawn)
	components.Enemy.SetValue(boar, components.EnemyData{
		Atk:       spawn.Atk,
		Def:       spawn.Def,
		ExpReward: spawn.Exp,
		PatrolDir: 1,
		SpawnX:    x,
		Target:    target,
	})
	components.Health.SetValue(boar, components.HealthData{
		Current: spawn.HP,
		Max:     spawn.HP,
	})
	components.State.SetValue(boar, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(boar, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})
	components.Blink.SetValue(boar, components.BlinkData{Alpha: 1})

	return boar
}

func withBoarDefaults(s components.EnemySpawn) components.EnemySpawn {
	if s.HP <= 0 {
		s.HP = cfg.Boar.HP
	}
	if s.Atk <= 0 {
		s.Atk = cfg.Boar.Atk
	}
	if s.Def <= 0 {
		s.Def = cfg.Boar.Def
	}
	if s.Exp <= 0 {
		s.Exp = cfg.Boar.Exp
	}
	return s
}

// PlacedBoarStats scales a level-placed boar by its spawn index. Explicit
// properties on the placement win.
func PlacedBoarStats(s leveldata.EnemySpawn) components.EnemySpawn {
	i := s.Index
	out := components.EnemySpawn{
		HP:  cfg.Boar.HP + cfg.Spawner.HPPerIndex*i,
		Atk: cfg.Boar.Atk + cfg.Spawner.AtkPerIndex*i,
		Def: cfg.Boar.Def + cfg.Spawner.DefPerIndex*i,
		Exp: cfg.Boar.Exp + cfg.Spawner.ExpPerIndex*i,
	}
	if s.HP > 0 {
		out.HP = s.HP
	}
	if s.Atk > 0 {
		out.Atk = s.Atk
	}
	if s.Def > 0 {
		out.Def = s.Def
	}
	if s.Exp > 0 {
		out.Exp = s.Exp
	}
	return out
}

// RespawnBoarStats scales a respawned boar by the player's level.
func RespawnBoarStats(playerLevel int) components.EnemySpawn {
	return components.EnemySpawn{
		HP:  cfg.Boar.HP + cfg.Spawner.HPPerLevel*playerLevel,
		Atk: cfg.Boar.Atk + cfg.Spawner.AtkPerLevel*playerLevel,
		Def: cfg.Boar.Def + cfg.Spawner.DefPerLevel*playerLevel,
		Exp: cfg.Boar.Exp + cfg.Spawner.ExpPerLevel*playerLevel,
	}
}
