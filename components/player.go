package components

import "github.com/yohamta/donburi"

// Stats is the player's progression state. Hit points live in Health.
// Events carry Stats by value so subscribers never see later mutations.
type Stats struct {
	Level     int
	Exp       int
	ExpToNext int
	Atk       int
	Def       int
	Crt       float64 // percent chance, 0-100
	Spd       int
}

type PlayerData struct {
	Stats Stats

	JumpCount   int
	Grounded    bool
	FacingRight bool

	IsAttacking  bool
	HitboxActive bool
	AttackEpoch  int

	IsInvincible bool
	InvulnEpoch  int

	IsDead bool
}

var Player = donburi.NewComponentType[PlayerData]()
