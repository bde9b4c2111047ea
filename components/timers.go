package components

import (
	"github.com/automoto/thornwood/shared/timer"
	"github.com/yohamta/donburi"
)

const (
	TimerCoyote timer.ID = iota
	TimerJumpBuffer
	TimerAttackCooldown
	TimerGroundedGrace
	TimerKnockback
	TimerStun
)

var Timers = donburi.NewComponentType[timer.Bank]()
