package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// EffectKind names a deferred effect.
type EffectKind int

const (
	EffectHitboxOn EffectKind = iota
	EffectHitboxOff
	EffectAttackEnd
	EffectInvincibilityEnd
	EffectHitRecover
	EffectDeathComplete
)

// ScheduledEffect fires once the game clock reaches FireAt. Epoch is compared
// against the owner's current epoch for that effect family so stale effects
// from a cancelled action do nothing.
type ScheduledEffect struct {
	FireAt time.Duration
	Kind   EffectKind
	Epoch  int
}

type ScheduleData struct {
	Pending []ScheduledEffect
}

func (s *ScheduleData) Add(at time.Duration, kind EffectKind, epoch int) {
	s.Pending = append(s.Pending, ScheduledEffect{FireAt: at, Kind: kind, Epoch: epoch})
}

var Schedule = donburi.NewComponentType[ScheduleData]()
