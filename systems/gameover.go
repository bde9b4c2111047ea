package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/thornwood/components"
	cfg "github.com/automoto/thornwood/config"
	"github.com/automoto/thornwood/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameOver returns a system that calls restart on a fresh press of
// the restart action. The first tick only primes the input edges, so a key
// still held from gameplay does not count.
func NewUpdateGameOver(restart func()) ecs.System {
	primed := false
	return func(ecs *ecs.ECS) {
		if !primed {
			primed = true
			return
		}
		pressed := false
		components.Input.Each(ecs.World, func(e *donburi.Entry) {
			if components.Input.Get(e).JustPressed(cfg.ActionRestart) {
				pressed = true
			}
		})
		if pressed {
			restart()
		}
	}
}

// NewDrawGameOver renders the final stats of the run.
func NewDrawGameOver(stats components.Stats) func(*ecs.ECS, *ebiten.Image) {
	lines := []struct {
		text string
		font fonts.FontName
		dy   int
	}{
		{"GAME OVER", fonts.Title, -30},
		{fmt.Sprintf("reached level %d", stats.Level), fonts.Body, 10},
		{"press SPACE to restart", fonts.Body, 50},
	}
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		for _, l := range lines {
			face := l.font.Get()
			bounds := text.BoundString(face, l.text)
			text.Draw(screen, l.text, face, (w-bounds.Dx())/2, h/2+l.dy, color.White)
		}
	}
}
