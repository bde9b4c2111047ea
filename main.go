package main

import (
	"flag"
	"image"
	"log"
	"time"

	"github.com/automoto/thornwood/config"
	"github.com/automoto/thornwood/levels"
	"github.com/automoto/thornwood/scenes"
	"github.com/automoto/thornwood/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds  image.Rectangle
	scene   Scene
	tuning  string
	watcher *config.TuningWatcher
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(level *leveldata.Level, seed int64, tuning string, watcher *config.TuningWatcher) *Game {
	g := &Game{
		bounds:  image.Rectangle{},
		tuning:  tuning,
		watcher: watcher,
	}
	g.scene = scenes.NewForestScene(g, level, seed)
	return g
}

func (g *Game) Update() error {
	g.applyTuningChanges()
	g.scene.Update()
	return nil
}

// applyTuningChanges reloads the tuning file between ticks so a running
// scene never sees a half-applied config.
func (g *Game) applyTuningChanges() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case <-g.watcher.Events:
			if err := config.LoadTuning(g.tuning); err != nil {
				log.Printf("Warning: tuning reload rejected: %v", err)
				continue
			}
			log.Printf("Reloaded tuning from %s", g.tuning)
		case err := <-g.watcher.Errors:
			log.Printf("Warning: tuning watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tuning := flag.String("config", "", "path to a YAML tuning file")
	watch := flag.Bool("watch", false, "reload the tuning file when it changes")
	seed := flag.Int64("seed", 0, "RNG seed (0 picks one from the clock)")
	flag.BoolVar(&config.Debug.DrawHitboxes, "debug", false, "outline collision objects")
	flag.Parse()

	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	var watcher *config.TuningWatcher
	if *watch && *tuning != "" {
		w, err := config.WatchTuning(*tuning)
		if err != nil {
			log.Printf("Warning: Could not watch tuning file: %v", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	level, err := leveldata.Load(levels.FS, levels.Default)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Thornwood")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TickRate)

	if err := ebiten.RunGame(NewGame(level, *seed, *tuning, watcher)); err != nil {
		log.Fatal(err)
	}
}
