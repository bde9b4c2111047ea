package systems

import (
	"github.com/automoto/thornwood/components"
	"github.com/automoto/thornwood/events"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths advances enemy death fades. When a fade completes the killer
// is rewarded, if still alive, and the enemy leaves the world.
func UpdateDeaths(ecs *ecs.ECS) {
	w := ecs.World
	dt := float32(DeltaTime(w).Seconds())

	var finished []*donburi.Entry
	components.Death.Each(w, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		v, _, done := death.Fade.Update(dt)
		death.Alpha = float64(v)
		if done {
			finished = append(finished, e)
		}
	})

	for _, e := range finished {
		finishEnemyDeath(w, e)
	}
}

func finishEnemyDeath(w donburi.World, e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	if target, ok := liveTarget(w, enemy); ok {
		GainExp(w, target, enemy.ExpReward)
		obj := components.Object.Get(e)
		events.EnemyKilledEvent.Publish(w, events.EnemyKilled{
			Enemy:     e.Entity(),
			ExpReward: enemy.ExpReward,
			X:         obj.CenterX(),
			Y:         obj.CenterY(),
		})
	}
	removeEntity(w, e)
}

// removeEntity drops e from the space (if it is still there) and the world.
func removeEntity(w donburi.World, e *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(w); ok {
		space := components.Space.Get(spaceEntry)
		if e.HasComponent(components.Object) {
			space.Remove(components.Object.Get(e).Object)
		}
		if e.HasComponent(components.Hitbox) {
			space.Remove(components.Hitbox.Get(e).Object)
		}
	}
	w.Remove(e.Entity())
}
