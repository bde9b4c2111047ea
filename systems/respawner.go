package systems

import (
	"log"

	"github.com/automoto/thornwood/components"
	cfg "github.com/automoto/thornwood/config"
	"github.com/automoto/thornwood/systems/factory"
	"github.com/automoto/thornwood/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRespawner tops the level up with boars on a fixed interval while
// fewer than the minimum are alive. New boars spawn ahead of the player and
// scale with the player's level.
func UpdateRespawner(ecs *ecs.ECS) {
	w := ecs.World
	entry, ok := components.Spawner.First(w)
	if !ok {
		return
	}
	spawner := components.Spawner.Get(entry)
	spawner.Elapsed += DeltaTime(w)
	if cfg.Spawner.Interval <= 0 || spawner.Elapsed < cfg.Spawner.Interval {
		return
	}
	spawner.Elapsed -= cfg.Spawner.Interval

	if CountLiveEnemies(w) >= cfg.Spawner.MinAlive {
		return
	}
	playerEntry, ok := components.Player.First(w)
	if !ok || components.Player.Get(playerEntry).IsDead {
		return
	}

	x := components.Object.Get(playerEntry).CenterX() + cfg.Spawner.MinOffset
	if rng := rngOf(w); rng != nil {
		x += rng.Float64() * cfg.Spawner.Jitter
	}
	worldW := levelWidth(w)
	if worldW > 0 && x >= worldW-cfg.Spawner.EdgeMargin {
		return
	}

	y := spawnFloorY(w, playerEntry)
	level := components.Player.Get(playerEntry).Stats.Level
	factory.CreateBoar(ecs, x, y, factory.RespawnBoarStats(level), playerEntry.Entity())
	spawner.Spawned++
	log.Printf("spawner: boar spawned at x=%.0f for level %d", x, level)
}

// CountLiveEnemies counts enemies not yet dead.
func CountLiveEnemies(w donburi.World) int {
	n := 0
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if !components.Enemy.Get(e).IsDead {
			n++
		}
	})
	return n
}

// spawnFloorY is the level's ground line, falling back to the player's feet.
func spawnFloorY(w donburi.World, playerEntry *donburi.Entry) float64 {
	if entry, ok := components.Level.First(w); ok {
		if lvl := components.Level.Get(entry).Level; lvl != nil {
			return lvl.PlayerSpawn.Y
		}
	}
	obj := components.Object.Get(playerEntry)
	return obj.Y + obj.H
}
