package systems

import (
	"testing"

	"github.com/automoto/thornwood/components"
	cfg "github.com/automoto/thornwood/config"
	"github.com/automoto/thornwood/events"
	"github.com/automoto/thornwood/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type recorded struct {
	health []events.HealthChanged
	damage []events.DamageDealt
	exp    []events.ExpGained
}

func record(e *ecs.ECS) *recorded {
	r := &recorded{}
	events.HealthChangedEvent.Subscribe(e.World, func(w donburi.World, ev events.HealthChanged) {
		r.health = append(r.health, ev)
	})
	events.DamageDealtEvent.Subscribe(e.World, func(w donburi.World, ev events.DamageDealt) {
		r.damage = append(r.damage, ev)
	})
	events.ExpGainedEvent.Subscribe(e.World, func(w donburi.World, ev events.ExpGained) {
		r.exp = append(r.exp, ev)
	})
	return r
}

func TestTakeDamagePublishesDamageAndHealth(t *testing.T) {
	e := newTestECS(t)
	p := factory.CreatePlayer(e, 100, groundY)
	r := record(e)

	TakeDamage(e.World, p, 20, 0)
	assert.Empty(t, r.health, "events are delivered at end of tick")
	ProcessEvents(e)

	require.Len(t, r.damage, 1)
	assert.Equal(t, p.Entity(), r.damage[0].Target)
	assert.Equal(t, 15, r.damage[0].Amount, "def 5 absorbs part of the hit")
	require.Len(t, r.health, 1)
	assert.Equal(t, events.HealthChanged{Entity: p.Entity(), Current: 85, Max: 100}, r.health[0])

	Heal(e.World, p, 10)
	ProcessEvents(e)
	require.Len(t, r.health, 2)
	assert.Equal(t, 95, r.health[1].Current)
	assert.Equal(t, 100, r.health[1].Max)
}

func TestInvincibleHitPublishesNothing(t *testing.T) {
	e := newTestECS(t)
	p := factory.CreatePlayer(e, 100, groundY)
	TakeDamage(e.World, p, 20, 0)
	ProcessEvents(e)

	r := record(e)
	TakeDamage(e.World, p, 20, 0)
	ProcessEvents(e)
	assert.Empty(t, r.damage)
	assert.Empty(t, r.health)
}

func TestGainExpPublishesStatsBeforeLevelUp(t *testing.T) {
	e := newTestECS(t)
	p := factory.CreatePlayer(e, 100, groundY)
	r := record(e)

	GainExp(e.World, p, 150)
	ProcessEvents(e)

	require.Len(t, r.exp, 1)
	assert.Equal(t, 150, r.exp[0].Amount)
	assert.Equal(t, 1, r.exp[0].Stats.Level)
	assert.Equal(t, 150, r.exp[0].Stats.Exp)
	assert.Equal(t, cfg.Player.BaseExpToNext, r.exp[0].Stats.ExpToNext)

	maxHP := cfg.Player.BaseHP + cfg.Player.LevelHP
	require.Len(t, r.health, 1, "the level-up heal")
	assert.Equal(t, maxHP, r.health[0].Current)
	assert.Equal(t, maxHP, r.health[0].Max)
	assert.Equal(t, 2, components.Player.Get(p).Stats.Level)
}

func TestEnemyDamagePublishesDefendedAmount(t *testing.T) {
	e, _, b := newDuel(t)
	r := record(e)

	TakeEnemyDamage(e.World, b, 12, 0)
	ProcessEvents(e)

	require.Len(t, r.damage, 1)
	assert.Equal(t, b.Entity(), r.damage[0].Target)
	assert.Equal(t, 10, r.damage[0].Amount)
	require.Len(t, r.health, 1)
	assert.Equal(t, events.HealthChanged{Entity: b.Entity(), Current: 20, Max: 30}, r.health[0])
}
