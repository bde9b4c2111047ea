package components

import (
	"math/rand"
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is game time. Now only advances while the world ticks.
type ClockData struct {
	Now  time.Duration
	DT   time.Duration
	Tick uint64
}

var Clock = donburi.NewComponentType[ClockData]()

// RNGData is the session's random source for crit rolls and spawns.
type RNGData struct {
	*rand.Rand
}

var RNG = donburi.NewComponentType[RNGData]()
