package systems

import (
	"testing"
	"time"

	"github.com/automoto/thornwood/components"
	cfg "github.com/automoto/thornwood/config"
	"github.com/automoto/thornwood/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const groundY = 432.0

// newTestECS builds an empty world with a space and the session singletons.
// Tuning is reset before and after the test.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 1600, 480, cfg.C.CellSize, cfg.C.CellSize)
	factory.CreateGame(e, 1, nil)
	return e
}

func addGround(e *ecs.ECS) {
	factory.CreateWall(e, 0, groundY, 1600, 16)
}

// hold feeds one input sample; actions not listed are released.
func hold(p *donburi.Entry, actions ...cfg.ActionID) {
	var current [cfg.ActionCount]bool
	for _, a := range actions {
		current[a] = true
	}
	Advance(components.Input.Get(p), current)
}

// tick runs the gameplay pipeline once, minus device polling.
func tick(e *ecs.ECS) {
	UpdateClock(e)
	UpdateSchedules(e)
	UpdatePlayer(e)
	UpdateEnemies(e)
	UpdatePhysics(e)
	UpdateCollisions(e)
	UpdateOverlaps(e)
	UpdateBlink(e)
	UpdateDeaths(e)
	UpdateRespawner(e)
	UpdateKillPlane(e)
	ProcessEvents(e)
}

func ticks(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		tick(e)
	}
}

// advanceClock moves game time forward without running any other system.
func advanceClock(e *ecs.ECS, d time.Duration) {
	entry, _ := components.Clock.First(e.World)
	components.Clock.Get(entry).Now += d
}

// placeAt moves the body so its horizontal centre sits on x.
func placeAt(entry *donburi.Entry, x float64) {
	obj := components.Object.Get(entry)
	obj.X = x - obj.W/2
	obj.Update()
}

func stateOf(entry *donburi.Entry) cfg.StateID {
	return components.State.Get(entry).CurrentState
}
