package systems

import (
	"testing"
	"time"

	"github.com/automoto/thornwood/components"
	cfg "github.com/automoto/thornwood/config"
	"github.com/automoto/thornwood/shared/leveldata"
	"github.com/automoto/thornwood/systems/factory"
	"github.com/automoto/thornwood/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func setLevel(e *ecs.ECS, lvl *leveldata.Level) {
	entry, _ := components.Level.First(e.World)
	components.Level.Get(entry).Level = lvl
}

func respawn(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		UpdateRespawner(e)
	}
}

func enemies(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

func TestRespawnerTopsUpAheadOfPlayer(t *testing.T) {
	e := newTestECS(t)
	cfg.Spawner.Interval = 100 * time.Millisecond
	factory.CreatePlayer(e, 100, groundY)

	respawn(e, 6)
	assert.Zero(t, CountLiveEnemies(e.World))

	respawn(e, 1)
	spawned := enemies(e.World)
	require.Len(t, spawned, 1)

	b := spawned[0]
	obj := components.Object.Get(b)
	assert.GreaterOrEqual(t, obj.CenterX(), 100+cfg.Spawner.MinOffset)
	assert.Less(t, obj.CenterX(), 100+cfg.Spawner.MinOffset+cfg.Spawner.Jitter)
	assert.InDelta(t, groundY, obj.Y+obj.H, 0.001)

	want := factory.RespawnBoarStats(1)
	assert.Equal(t, want.HP, components.Health.Get(b).Max)
	assert.Equal(t, want.Atk, components.Enemy.Get(b).Atk)
	assert.Equal(t, want.Exp, components.Enemy.Get(b).ExpReward)
}

func TestRespawnerRespectsMinimum(t *testing.T) {
	e := newTestECS(t)
	cfg.Spawner.Interval = 100 * time.Millisecond
	p := factory.CreatePlayer(e, 100, groundY)
	for i := 0; i < cfg.Spawner.MinAlive; i++ {
		factory.CreateBoar(e, 800+float64(i)*100, groundY, components.EnemySpawn{}, p.Entity())
	}

	respawn(e, 20)
	assert.Equal(t, cfg.Spawner.MinAlive, CountLiveEnemies(e.World))
}

func TestRespawnerSkipsLevelEdge(t *testing.T) {
	e := newTestECS(t)
	cfg.Spawner.Interval = 100 * time.Millisecond
	setLevel(e, &leveldata.Level{Width: 400, Height: 480, PlayerSpawn: leveldata.Point{X: 100, Y: groundY}})
	factory.CreatePlayer(e, 100, groundY)

	respawn(e, 20)
	assert.Zero(t, CountLiveEnemies(e.World))
}

func TestRespawnerWaitsForLivePlayer(t *testing.T) {
	e := newTestECS(t)
	cfg.Spawner.Interval = 100 * time.Millisecond
	p := factory.CreatePlayer(e, 100, groundY)
	components.Player.Get(p).IsDead = true

	respawn(e, 20)
	assert.Zero(t, CountLiveEnemies(e.World))
}

func TestKillPlane(t *testing.T) {
	e := newTestECS(t)
	setLevel(e, &leveldata.Level{Width: 1600, Height: 480})
	p := factory.CreatePlayer(e, 100, groundY)
	b := factory.CreateBoar(e, 300, groundY, components.EnemySpawn{}, p.Entity())
	boarEntity := b.Entity()

	UpdateKillPlane(e)
	assert.False(t, components.Player.Get(p).IsDead)
	assert.True(t, e.World.Valid(boarEntity))

	components.Object.Get(b).Y = 480 + cfg.C.KillPlaneMargin + 1
	components.Object.Get(p).Y = 480 + cfg.C.KillPlaneMargin + 1
	UpdateKillPlane(e)
	assert.True(t, components.Player.Get(p).IsDead)
	assert.False(t, e.World.Valid(boarEntity))
	assert.Zero(t, components.Player.Get(p).Stats.Exp, "falling boars give nothing")
}

func TestKillPlaneIgnoresInvincibility(t *testing.T) {
	e := newTestECS(t)
	setLevel(e, &leveldata.Level{Width: 1600, Height: 480})
	p := factory.CreatePlayer(e, 100, groundY)
	components.Player.Get(p).IsInvincible = true

	components.Object.Get(p).Y = 600
	UpdateKillPlane(e)
	assert.True(t, components.Player.Get(p).IsDead)
	assert.Zero(t, components.Health.Get(p).Current)
}

func TestBlinkRunsOutAndRestoresAlpha(t *testing.T) {
	e := newTestECS(t)
	p := factory.CreatePlayer(e, 100, groundY)

	startBlink(p, 0.3, 80*time.Millisecond, 4)
	blink := components.Blink.Get(p)
	require.NotNil(t, blink.Seq)

	for i := 0; i < 4; i++ {
		UpdateBlink(e)
	}
	assert.Less(t, blink.Alpha, 1.0)

	for i := 0; i < 30; i++ {
		UpdateBlink(e)
	}
	assert.Nil(t, blink.Seq)
	assert.Equal(t, 1.0, blink.Alpha)
}

func TestScheduleFiresInOrderAndDropsStale(t *testing.T) {
	e := newTestECS(t)
	p := factory.CreatePlayer(e, 100, groundY)
	player := components.Player.Get(p)
	schedule := components.Schedule.Get(p)

	player.IsAttacking = true
	player.AttackEpoch = 2
	schedule.Add(20*time.Millisecond, components.EffectHitboxOff, 2)
	schedule.Add(10*time.Millisecond, components.EffectHitboxOn, 2)
	schedule.Add(10*time.Millisecond, components.EffectAttackEnd, 1)
	schedule.Add(time.Second, components.EffectAttackEnd, 2)

	advanceClock(e, 15*time.Millisecond)
	UpdateSchedules(e)
	assert.True(t, player.HitboxActive)
	assert.True(t, player.IsAttacking, "stale attack end ignored")
	assert.Len(t, schedule.Pending, 2)

	advanceClock(e, 10*time.Millisecond)
	UpdateSchedules(e)
	assert.False(t, player.HitboxActive)
	assert.Len(t, schedule.Pending, 1)
}
