package components

import (
	"time"

	"github.com/automoto/thornwood/config"
	"github.com/yohamta/donburi"
)

// StateData is the animation state for the player and the AI state for enemies.
type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    time.Duration // time spent in CurrentState
}

var State = donburi.NewComponentType[StateData]()
