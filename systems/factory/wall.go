package factory

import (
	"github.com/automoto/thornwood/archetypes"
	"github.com/automoto/thornwood/components"
	"github.com/automoto/thornwood/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(ecs.World, obj)

	return wall
}
