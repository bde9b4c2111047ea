package systems

import (
	"math/rand"
	"time"

	"github.com/automoto/thornwood/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const defaultDT = time.Second / 60

// UpdateClock advances game time by one tick. It runs first in the pipeline.
func UpdateClock(ecs *ecs.ECS) {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)
	if clock.DT <= 0 {
		clock.DT = defaultDT
	}
	clock.Now += clock.DT
	clock.Tick++
}

// Now returns the game clock, or zero when the world has none.
func Now(w donburi.World) time.Duration {
	if entry, ok := components.Clock.First(w); ok {
		return components.Clock.Get(entry).Now
	}
	return 0
}

// DeltaTime returns the length of one tick.
func DeltaTime(w donburi.World) time.Duration {
	if entry, ok := components.Clock.First(w); ok {
		if dt := components.Clock.Get(entry).DT; dt > 0 {
			return dt
		}
	}
	return defaultDT
}

func rngOf(w donburi.World) *rand.Rand {
	if entry, ok := components.RNG.First(w); ok {
		return components.RNG.Get(entry).Rand
	}
	return nil
}
