// Package events declares the notifications the simulation emits for HUD,
// progression and visual-feedback collaborators. Events are queued on
// Publish and delivered when the scene calls ProcessAllEvents at the end of
// the tick.
package events

import (
	"github.com/automoto/thornwood/components"
	"github.com/automoto/thornwood/config"
	"github.com/yohamta/donburi"
	devents "github.com/yohamta/donburi/features/events"
)

type HealthChanged struct {
	Entity  donburi.Entity
	Current int
	Max     int
}

type ExpGained struct {
	Amount int
	Stats  components.Stats
}

// LevelGained fires once per level in a multi-level gain.
type LevelGained struct {
	Stats components.Stats
	HP    int
	MaxHP int
}

type EnemyKilled struct {
	Enemy     donburi.Entity
	ExpReward int
	X, Y      float64
}

type PlayerDied struct {
	Stats components.Stats
}

type StateChanged struct {
	Entity donburi.Entity
	From   config.StateID
	To     config.StateID
}

type CriticalHit struct {
	Target donburi.Entity
	Damage int
	X, Y   float64
}

// DamageDealt carries the post-defence amount actually removed.
type DamageDealt struct {
	Target donburi.Entity
	Amount int
	X, Y   float64
}

var (
	HealthChangedEvent = devents.NewEventType[HealthChanged]()
	ExpGainedEvent     = devents.NewEventType[ExpGained]()
	LevelGainedEvent   = devents.NewEventType[LevelGained]()
	EnemyKilledEvent   = devents.NewEventType[EnemyKilled]()
	PlayerDiedEvent    = devents.NewEventType[PlayerDied]()
	StateChangedEvent  = devents.NewEventType[StateChanged]()
	CriticalHitEvent   = devents.NewEventType[CriticalHit]()
	DamageDealtEvent   = devents.NewEventType[DamageDealt]()
)

// ProcessAll delivers every queued event.
func ProcessAll(w donburi.World) {
	devents.ProcessAllEvents(w)
}
