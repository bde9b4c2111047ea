package systems

import (
	"github.com/automoto/thornwood/events"
	"github.com/yohamta/donburi/ecs"
)

// ProcessEvents delivers everything published during the tick. It runs last.
func ProcessEvents(ecs *ecs.ECS) {
	events.ProcessAll(ecs.World)
}
