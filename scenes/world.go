package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/thornwood/config"
	"github.com/automoto/thornwood/events"
	"github.com/automoto/thornwood/shared/leveldata"
	"github.com/automoto/thornwood/systems"
	"github.com/automoto/thornwood/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type SceneChanger interface {
	ChangeScene(scene interface{})
}

// ForestScene runs one life of the player through a level.
type ForestScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	level        *leveldata.Level
	seed         int64
	once         sync.Once

	died *events.PlayerDied
}

func NewForestScene(sc SceneChanger, level *leveldata.Level, seed int64) *ForestScene {
	return &ForestScene{sceneChanger: sc, level: level, seed: seed}
}

func (fs *ForestScene) Update() {
	fs.once.Do(fs.configure)
	fs.ecs.Update()

	if fs.died != nil {
		fs.sceneChanger.ChangeScene(NewGameOverScene(fs.sceneChanger, fs.level, fs.seed+1, fs.died.Stats))
	}
}

func (fs *ForestScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.NRGBA{18, 24, 20, 255})

	if fs.ecs == nil {
		return
	}
	fs.ecs.Draw(screen)
}

func (fs *ForestScene) configure() {
	fs.ecs = newWorld(fs.level, fs.seed, true)
	events.PlayerDiedEvent.Subscribe(fs.ecs.World, func(w donburi.World, e events.PlayerDied) {
		fs.died = &e
	})
}

// newWorld wires the fixed-order pipeline and populates the level. Input
// sampling is optional so the simulation can run without a window.
func newWorld(level *leveldata.Level, seed int64, sampleInput bool) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateClock)
	if sampleInput {
		e.AddSystem(systems.UpdateInput)
	}
	e.AddSystem(systems.UpdateSchedules)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdateEnemies)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateCollisions)
	e.AddSystem(systems.UpdateOverlaps)
	e.AddSystem(systems.UpdateBlink)
	e.AddSystem(systems.UpdateDeaths)
	e.AddSystem(systems.UpdateRespawner)
	e.AddSystem(systems.UpdateKillPlane)
	e.AddSystem(systems.ProcessEvents)

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawActors)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawStatus)

	factory.BuildLevel(e, level, seed)
	return e
}
