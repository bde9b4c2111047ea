package systems

import (
	"github.com/automoto/thornwood/components"
	cfg "github.com/automoto/thornwood/config"
	"github.com/automoto/thornwood/events"
	"github.com/automoto/thornwood/shared/gamemath"
	"github.com/yohamta/donburi"
)

// DamageEvent is one resolved player hit. It is built by the mediator and
// applied immediately; nothing holds on to it.
type DamageEvent struct {
	Attacker donburi.Entity
	Defender donburi.Entity
	Raw      int
	Critical bool
}

// OnAttackHitEnemy is called when the player's hitbox overlaps an enemy.
// Hits only land during the active window, and each enemy can be hit at
// most once per debounce interval. Charging boars get no special treatment.
func OnAttackHitEnemy(w donburi.World, playerEntry, enemyEntry *donburi.Entry) (DamageEvent, bool) {
	if !playerEntry.Valid() || !enemyEntry.Valid() {
		return DamageEvent{}, false
	}
	player := components.Player.Get(playerEntry)
	if player.IsDead || !player.IsAttacking || !player.HitboxActive {
		return DamageEvent{}, false
	}
	enemy := components.Enemy.Get(enemyEntry)
	if enemy.IsDead {
		return DamageEvent{}, false
	}

	now := Now(w)
	if enemy.WasHit && now-enemy.LastHitAt < cfg.Combat.HitDebounce {
		return DamageEvent{}, false
	}
	enemy.WasHit = true
	enemy.LastHitAt = now

	ev := DamageEvent{
		Attacker: playerEntry.Entity(),
		Defender: enemyEntry.Entity(),
		Raw:      player.Stats.Atk,
		Critical: gamemath.RollCritical(rngOf(w), player.Stats.Crt),
	}
	if ev.Critical {
		ev.Raw = gamemath.CriticalDamage(ev.Raw)
		obj := components.Object.Get(enemyEntry)
		events.CriticalHitEvent.Publish(w, events.CriticalHit{
			Target: ev.Defender,
			Damage: ev.Raw,
			X:      obj.CenterX(),
			Y:      obj.Y,
		})
	}

	applyDamage(w, ev)
	return ev, true
}

func applyDamage(w donburi.World, ev DamageEvent) {
	if !w.Valid(ev.Attacker) || !w.Valid(ev.Defender) {
		return
	}
	attacker := w.Entry(ev.Attacker)
	defender := w.Entry(ev.Defender)
	TakeEnemyDamage(w, defender, ev.Raw, components.Object.Get(attacker).CenterX())
}

// OnEnemyContactPlayer is called when an enemy body overlaps the player.
func OnEnemyContactPlayer(w donburi.World, playerEntry, enemyEntry *donburi.Entry) {
	if !playerEntry.Valid() || !enemyEntry.Valid() {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.IsDead || player.IsInvincible || components.Enemy.Get(enemyEntry).IsDead {
		return
	}
	DealContactDamage(w, enemyEntry, playerEntry)
}
