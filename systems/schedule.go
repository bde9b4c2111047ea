package systems

import (
	"sort"

	"github.com/automoto/thornwood/components"
	cfg "github.com/automoto/thornwood/config"
	"github.com/automoto/thornwood/events"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSchedules fires every deferred effect whose time has come. Each
// effect re-checks its owner's state before mutating anything, because the
// action that scheduled it may have been cancelled since.
func UpdateSchedules(ecs *ecs.ECS) {
	w := ecs.World
	now := Now(w)

	components.Schedule.Each(w, func(e *donburi.Entry) {
		schedule := components.Schedule.Get(e)
		if len(schedule.Pending) == 0 {
			return
		}

		var due []components.ScheduledEffect
		kept := schedule.Pending[:0]
		for _, fx := range schedule.Pending {
			if fx.FireAt <= now {
				due = append(due, fx)
			} else {
				kept = append(kept, fx)
			}
		}
		schedule.Pending = kept

		sort.SliceStable(due, func(i, j int) bool { return due[i].FireAt < due[j].FireAt })
		for _, fx := range due {
			fireEffect(w, e, fx)
		}
	})
}

func fireEffect(w donburi.World, e *donburi.Entry, fx components.ScheduledEffect) {
	switch fx.Kind {
	case components.EffectHitboxOn:
		p := components.Player.Get(e)
		if !p.IsDead && p.IsAttacking && fx.Epoch == p.AttackEpoch {
			p.HitboxActive = true
		}
	case components.EffectHitboxOff:
		p := components.Player.Get(e)
		if fx.Epoch == p.AttackEpoch {
			p.HitboxActive = false
		}
	case components.EffectAttackEnd:
		p := components.Player.Get(e)
		if !p.IsDead && p.IsAttacking && fx.Epoch == p.AttackEpoch {
			p.IsAttacking = false
			p.HitboxActive = false
		}
	case components.EffectInvincibilityEnd:
		p := components.Player.Get(e)
		if fx.Epoch == p.InvulnEpoch {
			p.IsInvincible = false
		}
	case components.EffectHitRecover:
		enemy := components.Enemy.Get(e)
		state := components.State.Get(e)
		if !enemy.IsDead && state.CurrentState == cfg.Hit && fx.Epoch == enemy.HitEpoch {
			changeBoarState(w, e, cfg.StateChase)
		}
	case components.EffectDeathComplete:
		p := components.Player.Get(e)
		if p.IsDead {
			events.PlayerDiedEvent.Publish(w, events.PlayerDied{Stats: p.Stats})
		}
	}
}
