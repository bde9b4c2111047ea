package systems

import (
	"github.com/automoto/thornwood/components"
	"github.com/automoto/thornwood/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// contactEpsilon absorbs float drift when a body rests flush against a solid.
const contactEpsilon = 0.01

// UpdateCollisions integrates velocity into position against the solids in
// the space, then publishes the floor and lateral contact flags the state
// machines read on the next tick.
func UpdateCollisions(ecs *ecs.ECS) {
	w := ecs.World
	dt := DeltaTime(w).Seconds()
	worldW := levelWidth(w)

	components.Physics.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		resolveHorizontal(physics, obj, physics.VelX*dt, worldW)
		resolveVertical(physics, obj, physics.VelY*dt)
		obj.Update()
	})
}

func levelWidth(w donburi.World) float64 {
	if entry, ok := components.Level.First(w); ok {
		width, _ := components.Level.Get(entry).Bounds()
		return width
	}
	return 0
}

func resolveHorizontal(physics *components.PhysicsData, obj *resolv.Object, dx, worldW float64) {
	if dx != 0 {
		if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
			for _, s := range check.ObjectsByTags(tags.ResolvSolid) {
				if !overlapsVertically(obj, s) {
					continue
				}
				if dx > 0 && s.X >= obj.X+obj.W-contactEpsilon {
					dx = min(dx, s.X-(obj.X+obj.W))
				}
				if dx < 0 && s.X+s.W <= obj.X+contactEpsilon {
					dx = max(dx, s.X+s.W-obj.X)
				}
			}
		}
		obj.X += dx
	}

	atLeftEdge, atRightEdge := false, false
	if worldW > 0 {
		if obj.X <= 0 {
			obj.X = 0
			atLeftEdge = true
		}
		if obj.X+obj.W >= worldW {
			obj.X = worldW - obj.W
			atRightEdge = true
		}
	}

	physics.BlockedLeft = atLeftEdge || touchingSolid(obj, -1, 0)
	physics.BlockedRight = atRightEdge || touchingSolid(obj, 1, 0)
	if (physics.BlockedLeft && physics.VelX < 0) || (physics.BlockedRight && physics.VelX > 0) {
		physics.VelX = 0
	}
}

func resolveVertical(physics *components.PhysicsData, obj *resolv.Object, dy float64) {
	physics.OnFloor = false

	reach := dy
	if dy >= 0 {
		reach++
	}
	if check := obj.Check(0, reach, tags.ResolvSolid); check != nil {
		for _, s := range check.ObjectsByTags(tags.ResolvSolid) {
			if !overlapsHorizontally(obj, s) {
				continue
			}
			switch {
			case dy >= 0 && s.Y >= obj.Y+obj.H-contactEpsilon:
				if gap := s.Y - (obj.Y + obj.H); gap <= dy {
					dy = gap
					physics.OnFloor = true
				}
			case dy < 0 && s.Y+s.H <= obj.Y+contactEpsilon:
				if gap := obj.Y - (s.Y + s.H); gap <= -dy {
					dy = -gap
					physics.VelY = 0
				}
			}
		}
	}
	if physics.OnFloor && physics.VelY > 0 {
		physics.VelY = 0
	}
	obj.Y += dy
}

func touchingSolid(obj *resolv.Object, dx, dy float64) bool {
	check := obj.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return false
	}
	for _, s := range check.ObjectsByTags(tags.ResolvSolid) {
		if overlapsShifted(obj, s, dx, dy) {
			return true
		}
	}
	return false
}

func overlapsVertically(a, b *resolv.Object) bool {
	return a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

func overlapsHorizontally(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X
}

func overlapsShifted(a, b *resolv.Object, dx, dy float64) bool {
	return a.X+dx < b.X+b.W && a.X+dx+a.W > b.X &&
		a.Y+dy < b.Y+b.H && a.Y+dy+a.H > b.Y
}
