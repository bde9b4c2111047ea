package systems

import (
	"time"

	"github.com/automoto/thornwood/components"
	cfg "github.com/automoto/thornwood/config"
	"github.com/automoto/thornwood/events"
	"github.com/automoto/thornwood/shared/gamemath"
	"github.com/automoto/thornwood/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateEnemies(ecs *ecs.ECS) {
	w := ecs.World
	dt := DeltaTime(w)
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		updateBoar(w, e, dt)
	})
}

func updateBoar(w donburi.World, e *donburi.Entry, dt time.Duration) {
	enemy := components.Enemy.Get(e)
	if enemy.IsDead {
		return
	}
	components.Timers.Get(e).Tick(dt)

	target, ok := liveTarget(w, enemy)
	if !ok {
		wander(w, e, dt)
		return
	}

	dist := HorizontalDistance(e, target)
	switch components.State.Get(e).CurrentState {
	case cfg.Idle:
		doIdle(w, e, dt)
		if dist < cfg.Boar.DetectRange {
			changeBoarState(w, e, cfg.StateChase)
		}
	case cfg.Walk:
		doPatrol(w, e, dt)
		if dist < cfg.Boar.DetectRange {
			changeBoarState(w, e, cfg.StateChase)
		}
	case cfg.StateChase:
		doChase(e, target)
		if dist < cfg.Boar.ChargeRange {
			changeBoarState(w, e, cfg.StateCharge)
		} else if dist > cfg.Boar.DetectRange*cfg.Boar.LoseInterest {
			changeBoarState(w, e, cfg.Walk)
		}
	case cfg.StateCharge:
		doCharge(w, e, dt)
	case cfg.Stunned:
		doStunned(w, e)
	case cfg.Hit:
		// HitRecover moves us on.
	}
}

// liveTarget resolves the enemy's target handle. A removed or dead player
// reads as no target.
func liveTarget(w donburi.World, enemy *components.EnemyData) (*donburi.Entry, bool) {
	if !w.Valid(enemy.Target) {
		return nil, false
	}
	target := w.Entry(enemy.Target)
	if !target.HasComponent(components.Player) || components.Player.Get(target).IsDead {
		return nil, false
	}
	return target, true
}

// wander runs the idle/patrol cycle with no target. Pursuit states drop
// straight back to IDLE; HIT still waits for its recovery.
func wander(w donburi.World, e *donburi.Entry, dt time.Duration) {
	switch components.State.Get(e).CurrentState {
	case cfg.Idle:
		doIdle(w, e, dt)
	case cfg.Walk:
		doPatrol(w, e, dt)
	case cfg.Hit:
	default:
		stopBlink(e)
		changeBoarState(w, e, cfg.Idle)
	}
}

// HorizontalDistance is |dx| between the two bodies' centres.
func HorizontalDistance(a, b *donburi.Entry) float64 {
	return gamemath.Abs(components.Object.Get(a).CenterX() - components.Object.Get(b).CenterX())
}

// changeBoarState always resets the dwell timer and applies the entry
// behaviour of the new state.
func changeBoarState(w donburi.World, e *donburi.Entry, next cfg.StateID) {
	physics := components.Physics.Get(e)
	switch next {
	case cfg.Idle:
		physics.VelX = 0
	case cfg.Stunned:
		physics.VelX = 0
		components.Timers.Get(e).Set(components.TimerStun, cfg.Boar.StunDuration)
		startBlink(e, cfg.Boar.StunAlpha, cfg.Boar.StunBlink, int(cfg.Boar.StunDuration/max(cfg.Boar.StunBlink, 1)))
	}
	setState(w, e, next)
}

func doIdle(w donburi.World, e *donburi.Entry, dt time.Duration) {
	components.Physics.Get(e).VelX = 0
	state := components.State.Get(e)
	state.StateTimer += dt
	if state.StateTimer > cfg.Boar.IdleDwell {
		changeBoarState(w, e, cfg.Walk)
	}
}

func doPatrol(w donburi.World, e *donburi.Entry, dt time.Duration) {
	enemy := components.Enemy.Get(e)
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e)
	state := components.State.Get(e)

	physics.VelX = cfg.Boar.WalkSpeed * enemy.PatrolDir
	enemy.FacingRight = enemy.PatrolDir > 0
	state.StateTimer += dt

	// Only turn when heading further out, so a boar past the radius walks back
	// instead of flipping every tick.
	outward := (obj.CenterX()-enemy.SpawnX)*enemy.PatrolDir > cfg.Boar.PatrolRange
	if outward || physics.BlockedToward(enemy.PatrolDir) {
		enemy.PatrolDir = -enemy.PatrolDir
	}

	if state.StateTimer > cfg.Boar.WalkDwell {
		changeBoarState(w, e, cfg.Idle)
	}
}

func doChase(e, target *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	dir := 1.0
	if components.Object.Get(target).CenterX() <= components.Object.Get(e).CenterX() {
		dir = -1
	}
	enemy.FacingRight = dir > 0
	components.Physics.Get(e).VelX = cfg.Boar.WalkSpeed * cfg.Boar.ChaseMultiplier * dir
}

// doCharge dashes along the facing locked in when the charge began.
func doCharge(w donburi.World, e *donburi.Entry, dt time.Duration) {
	enemy := components.Enemy.Get(e)
	physics := components.Physics.Get(e)
	state := components.State.Get(e)

	dir := gamemath.Direction(enemy.FacingRight)
	physics.VelX = cfg.Boar.RunSpeed * dir
	state.StateTimer += dt

	if state.StateTimer > cfg.Boar.ChargeDuration || physics.BlockedToward(dir) {
		changeBoarState(w, e, cfg.Stunned)
	}
}

func doStunned(w donburi.World, e *donburi.Entry) {
	if components.Timers.Get(e).Elapsed(components.TimerStun) {
		stopBlink(e)
		changeBoarState(w, e, cfg.Idle)
	}
}

// TakeEnemyDamage applies a hit to a boar. Surviving boars enter HIT and
// return to CHASE once the reaction finishes.
func TakeEnemyDamage(w donburi.World, e *donburi.Entry, amount int, sourceX float64) {
	if !e.Valid() {
		return
	}
	enemy := components.Enemy.Get(e)
	if enemy.IsDead {
		return
	}

	health := components.Health.Get(e)
	dmg := gamemath.ResolveDamage(amount, enemy.Def)
	health.Current -= dmg
	dead := health.Current <= 0
	if dead {
		health.Current = 0
	}

	obj := components.Object.Get(e)
	physics := components.Physics.Get(e)
	physics.VelX = gamemath.AwayFrom(obj.CenterX(), sourceX) * cfg.Boar.KnockbackForce
	physics.VelY = cfg.Boar.KnockbackLift

	events.DamageDealtEvent.Publish(w, events.DamageDealt{
		Target: e.Entity(),
		Amount: dmg,
		X:      obj.CenterX(),
		Y:      obj.Y,
	})
	publishHealth(w, e)

	if dead {
		killBoar(w, e)
		return
	}

	stopBlink(e)
	enemy.HitEpoch++
	setState(w, e, cfg.Hit)
	components.Schedule.Get(e).Add(Now(w)+cfg.Boar.HitDuration, components.EffectHitRecover, enemy.HitEpoch)
}

// killBoar takes the boar out of the simulation and starts its fade. The
// reward is paid when the fade completes (see UpdateDeaths).
func killBoar(w donburi.World, e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	enemy.IsDead = true

	physics := components.Physics.Get(e)
	physics.Stop()
	physics.GravityOff = true

	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Remove(components.Object.Get(e).Object)
	}

	stopBlink(e)
	setState(w, e, cfg.Die)

	// Hold, then fade out.
	fade := gween.NewSequence()
	fade.Add(
		gween.New(1, 1, float32(cfg.Boar.DeathDelay.Seconds()), ease.Linear),
		gween.New(1, 0, float32(cfg.Boar.DeathFade.Seconds()), ease.Linear),
	)
	e.AddComponent(components.Death)
	components.Death.SetValue(e, components.DeathData{Fade: fade, Alpha: 1})
}

// DealContactDamage hurts the player on body contact. Stunned boars are harmless.
func DealContactDamage(w donburi.World, enemyEntry, playerEntry *donburi.Entry) {
	if !enemyEntry.Valid() || !playerEntry.Valid() {
		return
	}
	enemy := components.Enemy.Get(enemyEntry)
	if enemy.IsDead || components.State.Get(enemyEntry).CurrentState == cfg.Stunned {
		return
	}
	TakeDamage(w, playerEntry, enemy.Atk, components.Object.Get(enemyEntry).CenterX())
}
