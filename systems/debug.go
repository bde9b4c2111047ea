package systems

import (
	"image/color"

	"github.com/automoto/thornwood/components"
	cfg "github.com/automoto/thornwood/config"
	"github.com/automoto/thornwood/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object in view. The melee hitbox is
// only drawn while it can land hits.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawHitboxes {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	width := float64(screen.Bounds().Dx())
	camX := cameraX(ecs.World, width)

	hitboxLive := false
	if playerEntry, ok := components.Player.First(ecs.World); ok {
		hitboxLive = components.Player.Get(playerEntry).HitboxActive
	}

	for _, obj := range space.Objects() {
		// Cull objects outside the viewport
		if obj.X+obj.W < camX || obj.X > camX+width {
			continue
		}

		c := color.NRGBA{0, 255, 255, 255}
		switch {
		case obj.HasTags(tags.ResolvSolid):
			c = color.NRGBA{100, 100, 100, 255}
		case obj.HasTags(tags.ResolvPlayer):
			c = color.NRGBA{0, 0, 255, 255}
		case obj.HasTags(tags.ResolvEnemy):
			c = color.NRGBA{255, 0, 0, 255}
		case obj.HasTags(tags.ResolvHitbox):
			if !hitboxLive {
				continue
			}
			c = color.NRGBA{255, 60, 60, 255}
		}
		outline(screen, obj, camX, c)
	}
}

func outline(screen *ebiten.Image, obj *resolv.Object, camX float64, c color.Color) {
	x, y := float32(obj.X-camX), float32(obj.Y)
	w, h := float32(obj.W), float32(obj.H)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
