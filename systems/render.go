package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/thornwood/components"
	cfg "github.com/automoto/thornwood/config"
	"github.com/automoto/thornwood/fonts"
	"github.com/automoto/thornwood/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Placeholder palette; sprites and animation playback live outside the core.
var (
	colorSolid   = color.NRGBA{62, 74, 58, 255}
	colorPlayer  = color.NRGBA{90, 160, 230, 255}
	colorBoar    = color.NRGBA{170, 90, 60, 255}
	colorCharge  = color.NRGBA{230, 120, 40, 255}
	colorStunned = color.NRGBA{220, 200, 80, 255}
)

// cameraX keeps the player centred, clamped to the level.
func cameraX(w donburi.World, screenW float64) float64 {
	playerEntry, ok := components.Player.First(w)
	if !ok {
		return 0
	}
	x := components.Object.Get(playerEntry).CenterX() - screenW/2
	if levelW := levelWidth(w); levelW > screenW {
		x = max(0, min(x, levelW-screenW))
	} else {
		x = 0
	}
	return x
}

func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	camX := cameraX(ecs.World, float64(screen.Bounds().Dx()))
	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.FillRect(screen, float32(o.X-camX), float32(o.Y), float32(o.W), float32(o.H), colorSolid, false)
	})
}

// DrawActors draws actor bodies with their blink or death-fade alpha applied.
func DrawActors(ecs *ecs.ECS, screen *ebiten.Image) {
	camX := cameraX(ecs.World, float64(screen.Bounds().Dx()))
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		alpha := 1.0
		if e.HasComponent(components.Blink) {
			alpha = components.Blink.Get(e).Alpha
		}
		if e.HasComponent(components.Death) {
			alpha = components.Death.Get(e).Alpha
		}

		c := colorPlayer
		if e.HasComponent(components.Enemy) {
			switch components.State.Get(e).CurrentState {
			case cfg.StateCharge:
				c = colorCharge
			case cfg.Stunned:
				c = colorStunned
			default:
				c = colorBoar
			}
		}
		c.A = uint8(float64(c.A) * alpha)
		vector.FillRect(screen, float32(o.X-camX), float32(o.Y), float32(o.W), float32(o.H), c, false)
	})
}

// DrawStatus prints the player's stats in the corner.
func DrawStatus(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	stats := components.Player.Get(playerEntry).Stats
	health := components.Health.Get(playerEntry)
	face := fonts.Status.Get()
	line := fmt.Sprintf("LV %d  HP %d/%d  EXP %d/%d  ATK %d  DEF %d",
		stats.Level, health.Current, health.Max, stats.Exp, stats.ExpToNext, stats.Atk, stats.Def)
	text.Draw(screen, line, face, 8, 8+face.Metrics().Ascent.Ceil(), color.White)
}
