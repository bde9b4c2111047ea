package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// EnemySpawn is the per-enemy stat record passed at construction.
type EnemySpawn struct {
	HP  int
	Atk int
	Def int
	Exp int
}

type EnemyData struct {
	Atk       int
	Def       int
	ExpReward int

	FacingRight bool
	PatrolDir   float64 // -1 or 1
	SpawnX      float64

	// Target is a handle, not a reference; the player may be gone.
	Target donburi.Entity

	LastHitAt time.Duration
	WasHit    bool
	HitEpoch  int

	IsDead bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
