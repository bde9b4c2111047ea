package systems

import (
	"log"
	"math"

	"github.com/automoto/thornwood/components"
	cfg "github.com/automoto/thornwood/config"
	"github.com/automoto/thornwood/events"
	"github.com/yohamta/donburi"
)

// GainExp credits experience and applies as many level-ups as it covers,
// carrying the remainder over each time.
func GainExp(w donburi.World, e *donburi.Entry, amount int) {
	if !e.Valid() || amount < 0 {
		return
	}
	player := components.Player.Get(e)
	stats := &player.Stats
	stats.Exp += amount
	events.ExpGainedEvent.Publish(w, events.ExpGained{Amount: amount, Stats: *stats})

	for stats.ExpToNext > 0 && stats.Exp >= stats.ExpToNext {
		stats.Exp -= stats.ExpToNext
		LevelUp(w, e)
	}
}

// LevelUp raises the level by one, grows the next threshold and fully heals.
func LevelUp(w donburi.World, e *donburi.Entry) {
	player := components.Player.Get(e)
	health := components.Health.Get(e)
	stats := &player.Stats

	stats.Level++
	stats.ExpToNext = int(math.Floor(float64(stats.ExpToNext)*cfg.Player.ExpGrowth + cfg.Player.ExpBonus))
	health.Max += cfg.Player.LevelHP
	health.Current = health.Max
	stats.Atk += cfg.Player.LevelAtk
	stats.Def += cfg.Player.LevelDef

	events.LevelGainedEvent.Publish(w, events.LevelGained{
		Stats: *stats,
		HP:    health.Current,
		MaxHP: health.Max,
	})
	publishHealth(w, e)
	log.Printf("player: reached level %d", stats.Level)
}
