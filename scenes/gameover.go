package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/thornwood/components"
	cfg "github.com/automoto/thornwood/config"
	"github.com/automoto/thornwood/shared/leveldata"
	"github.com/automoto/thornwood/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the game over screen
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	level        *leveldata.Level
	seed         int64
	stats        components.Stats
	once         sync.Once
}

func NewGameOverScene(sc SceneChanger, level *leveldata.Level, seed int64, stats components.Stats) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, level: level, seed: seed, stats: stats}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())
	gs.ecs.World.Create(components.Input)

	restart := func() {
		gs.sceneChanger.ChangeScene(NewForestScene(gs.sceneChanger, gs.level, gs.seed))
	}

	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(restart))
	gs.ecs.AddRenderer(cfg.Default, systems.NewDrawGameOver(gs.stats))
}
