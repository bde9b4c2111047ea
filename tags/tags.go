package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Wall   = donburi.NewTag().SetName("Wall")
)

// Resolv tags for collision queries
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	ResolvHitbox = "hitbox"
)
