package systems

import (
	"github.com/automoto/thornwood/components"
	cfg "github.com/automoto/thornwood/config"
	"github.com/automoto/thornwood/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateKillPlane kills anything that has fallen below the level. The player
// dies outright; enemies are dropped without a reward.
func UpdateKillPlane(ecs *ecs.ECS) {
	w := ecs.World
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	_, height := components.Level.Get(levelEntry).Bounds()
	if height <= 0 {
		return
	}
	plane := height + cfg.C.KillPlaneMargin

	if playerEntry, ok := components.Player.First(w); ok {
		if components.Object.Get(playerEntry).Y > plane {
			ForceKill(w, playerEntry)
		}
	}

	var fallen []*donburi.Entry
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if components.Enemy.Get(e).IsDead {
			return
		}
		if components.Object.Get(e).Y > plane {
			fallen = append(fallen, e)
		}
	})
	for _, e := range fallen {
		removeEntity(w, e)
	}
}
