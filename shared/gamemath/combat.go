package gamemath

import "math"

// CriticalMultiplier scales raw attack on a critical hit.
const CriticalMultiplier = 1.5

// Roller is the random source used for critical rolls. *rand.Rand satisfies it.
type Roller interface {
	Float64() float64
}

// ResolveDamage returns the damage that gets through the target's defense.
// At least 1 point always lands.
func ResolveDamage(rawAttack, targetDef int) int {
	dmg := rawAttack - targetDef
	if dmg < 1 {
		return 1
	}
	return dmg
}

// RollCritical draws uniformly in [0,100) and compares against critChance percent.
func RollCritical(rng Roller, critChance float64) bool {
	if rng == nil || critChance <= 0 {
		return false
	}
	return rng.Float64()*100 < critChance
}

// CriticalDamage applies the critical multiplier and floors the result.
func CriticalDamage(atk int) int {
	return int(math.Floor(float64(atk) * CriticalMultiplier))
}
