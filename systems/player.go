package systems

import (
	"log"
	"time"

	"github.com/automoto/thornwood/components"
	cfg "github.com/automoto/thornwood/config"
	"github.com/automoto/thornwood/events"
	"github.com/automoto/thornwood/shared/gamemath"
	"github.com/automoto/thornwood/shared/timer"
	"github.com/automoto/thornwood/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	w := ecs.World
	dt := DeltaTime(w)
	now := Now(w)
	tags.Player.Each(w, func(e *donburi.Entry) {
		updatePlayer(w, e, dt, now)
	})
}

// updatePlayer runs the control pipeline in a fixed order: input edges,
// timers, grounded refresh, horizontal movement, jump, attack, animation,
// hitbox placement. A dead player is frozen.
func updatePlayer(w donburi.World, e *donburi.Entry, dt, now time.Duration) {
	player := components.Player.Get(e)
	if player.IsDead {
		return
	}

	input := components.Input.Get(e)
	timers := components.Timers.Get(e)
	physics := components.Physics.Get(e)

	jumpPressed := input.JustPressed(cfg.ActionJump)
	attackPressed := input.JustPressed(cfg.ActionAttack)

	timers.Tick(dt)
	refreshGrounded(player, physics, timers)
	applyPlayerMovement(player, physics, timers, input)
	applyJump(player, physics, timers, jumpPressed)
	if attackPressed {
		startAttack(e, player, timers, now)
	}

	components.State.Get(e).StateTimer += dt
	if next := SelectPlayerAnim(player, physics); next != components.State.Get(e).CurrentState {
		setState(w, e, next)
	}
	syncHitbox(e)
}

func refreshGrounded(player *components.PlayerData, physics *components.PhysicsData, timers *timer.Bank) {
	if physics.OnFloor {
		timers.Set(components.TimerCoyote, cfg.Player.CoyoteTime)
		timers.Set(components.TimerGroundedGrace, cfg.Player.GroundedGrace)
		player.JumpCount = 0
		player.Grounded = true
		return
	}
	if timers.Elapsed(components.TimerGroundedGrace) {
		player.Grounded = false
	}
}

func applyPlayerMovement(player *components.PlayerData, physics *components.PhysicsData, timers *timer.Bank, input *components.InputData) {
	// Root-motion slow-down while swinging on the ground
	if player.IsAttacking && physics.OnFloor {
		physics.VelX *= cfg.Player.AttackDecay
		return
	}

	// Knockback owns horizontal velocity until the lock runs out
	if timers.Active(components.TimerKnockback) {
		return
	}

	switch {
	case input.Pressed(cfg.ActionMoveLeft):
		physics.VelX = -cfg.Player.MoveSpeed
		player.FacingRight = false
	case input.Pressed(cfg.ActionMoveRight):
		physics.VelX = cfg.Player.MoveSpeed
		player.FacingRight = true
	case physics.OnFloor:
		physics.VelX = gamemath.Decay(physics.VelX, cfg.Player.GroundDecay, cfg.Player.SnapSpeed)
	default:
		physics.VelX = gamemath.Decay(physics.VelX, cfg.Player.AirDecay, 0)
	}
}

func applyJump(player *components.PlayerData, physics *components.PhysicsData, timers *timer.Bank, jumpPressed bool) {
	if jumpPressed {
		timers.Set(components.TimerJumpBuffer, cfg.Player.JumpBuffer)
	}
	if timers.Elapsed(components.TimerJumpBuffer) {
		return
	}

	switch {
	case timers.Active(components.TimerCoyote) && player.JumpCount == 0:
		performJump(player, physics, timers, cfg.Player.JumpForce)
		player.JumpCount = 1
		timers.Clear(components.TimerJumpBuffer)
		timers.Clear(components.TimerCoyote)
	case player.JumpCount == 1 && cfg.Player.MaxJumps > 1:
		performJump(player, physics, timers, cfg.Player.AirJumpForce)
		player.JumpCount = 2
		timers.Clear(components.TimerJumpBuffer)
	}
}

// performJump also cancels any attack in progress; its pending hitbox
// effects become no-ops because IsAttacking is false.
func performJump(player *components.PlayerData, physics *components.PhysicsData, timers *timer.Bank, force float64) {
	physics.VelY = force
	player.IsAttacking = false
	player.HitboxActive = false
	player.Grounded = false
	timers.Clear(components.TimerGroundedGrace)
}

func startAttack(e *donburi.Entry, player *components.PlayerData, timers *timer.Bank, now time.Duration) {
	if player.IsAttacking || timers.Active(components.TimerAttackCooldown) {
		return
	}
	player.IsAttacking = true
	player.HitboxActive = false
	player.AttackEpoch++
	timers.Set(components.TimerAttackCooldown, cfg.Player.AttackCooldown)

	schedule := components.Schedule.Get(e)
	startup := now + cfg.Player.AttackStartup
	schedule.Add(startup, components.EffectHitboxOn, player.AttackEpoch)
	schedule.Add(startup+cfg.Player.AttackActive, components.EffectHitboxOff, player.AttackEpoch)
	schedule.Add(now+cfg.Player.AttackDuration, components.EffectAttackEnd, player.AttackEpoch)
}

// SelectPlayerAnim picks the animation state by priority:
// Die > Attack > Jump > Fall > Running > Idle.
func SelectPlayerAnim(player *components.PlayerData, physics *components.PhysicsData) cfg.StateID {
	switch {
	case player.IsDead:
		return cfg.Die
	case player.IsAttacking:
		return cfg.Attack
	case !player.Grounded && player.JumpCount > 0:
		return cfg.Jump
	case !player.Grounded && physics.VelY > cfg.Player.FallThreshold:
		return cfg.Fall
	case gamemath.Abs(physics.VelX) > cfg.Player.RunThreshold:
		return cfg.Running
	}
	return cfg.Idle
}

// syncHitbox keeps the melee hitbox in front of the player.
func syncHitbox(e *donburi.Entry) {
	player := components.Player.Get(e)
	obj := components.Object.Get(e)
	hitbox := components.Hitbox.Get(e)
	if hitbox.Object == nil {
		return
	}

	offset := cfg.Player.AttackOffset * gamemath.Direction(player.FacingRight)
	hitbox.X = obj.CenterX() + offset - hitbox.W/2
	hitbox.Y = obj.CenterY() - hitbox.H/2
	hitbox.Update()
}

// TakeDamage applies an incoming hit to the player. It is a no-op while
// invincible or dead, so overlapping sources inside the blink window only
// land once.
func TakeDamage(w donburi.World, e *donburi.Entry, amount int, sourceX float64) {
	if !e.Valid() {
		return
	}
	player := components.Player.Get(e)
	if player.IsInvincible || player.IsDead {
		return
	}

	health := components.Health.Get(e)
	dmg := gamemath.ResolveDamage(amount, player.Stats.Def)
	health.Current -= dmg
	dead := health.Current <= 0
	if dead {
		health.Current = 0
	}

	obj := components.Object.Get(e)
	physics := components.Physics.Get(e)
	physics.VelX = gamemath.AwayFrom(obj.CenterX(), sourceX) * cfg.Player.KnockbackForce
	physics.VelY = cfg.Player.KnockbackLift
	components.Timers.Get(e).Set(components.TimerKnockback, cfg.Player.KnockbackDuration)

	player.IsInvincible = true
	player.InvulnEpoch++
	startBlink(e, cfg.Player.BlinkAlpha, cfg.Player.BlinkInterval, cfg.Player.BlinkCount)
	window := cfg.Player.BlinkInterval * time.Duration(cfg.Player.BlinkCount)
	components.Schedule.Get(e).Add(Now(w)+window, components.EffectInvincibilityEnd, player.InvulnEpoch)

	events.DamageDealtEvent.Publish(w, events.DamageDealt{
		Target: e.Entity(),
		Amount: dmg,
		X:      obj.CenterX(),
		Y:      obj.Y,
	})
	publishHealth(w, e)

	if dead {
		die(w, e)
	}
}

// ForceKill kills the player regardless of invincibility. Used by the kill plane.
func ForceKill(w donburi.World, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if components.Player.Get(e).IsDead {
		return
	}
	components.Health.Get(e).Current = 0
	publishHealth(w, e)
	die(w, e)
}

func die(w donburi.World, e *donburi.Entry) {
	player := components.Player.Get(e)
	player.IsDead = true
	player.IsAttacking = false
	player.HitboxActive = false

	physics := components.Physics.Get(e)
	physics.Stop()
	physics.GravityOff = true

	setState(w, e, cfg.Die)
	components.Schedule.Get(e).Add(Now(w)+cfg.Player.DeathDuration, components.EffectDeathComplete, 0)
	log.Printf("player: died at level %d", player.Stats.Level)
}

// Heal restores hit points up to the maximum. Ignored once dead.
func Heal(w donburi.World, e *donburi.Entry, amount int) {
	if !e.Valid() || amount <= 0 {
		return
	}
	if components.Player.Get(e).IsDead {
		return
	}
	health := components.Health.Get(e)
	health.Current = min(health.Max, health.Current+amount)
	publishHealth(w, e)
}

func publishHealth(w donburi.World, e *donburi.Entry) {
	health := components.Health.Get(e)
	events.HealthChangedEvent.Publish(w, events.HealthChanged{
		Entity:  e.Entity(),
		Current: health.Current,
		Max:     health.Max,
	})
}
