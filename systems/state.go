package systems

import (
	"github.com/automoto/thornwood/components"
	cfg "github.com/automoto/thornwood/config"
	"github.com/automoto/thornwood/events"
	"github.com/yohamta/donburi"
)

// setState moves e into next and resets the state timer. StateChanged is
// only published for an actual change.
func setState(w donburi.World, e *donburi.Entry, next cfg.StateID) {
	state := components.State.Get(e)
	state.StateTimer = 0
	if state.CurrentState == next {
		return
	}
	prev := state.CurrentState
	state.PreviousState = prev
	state.CurrentState = next
	events.StateChangedEvent.Publish(w, events.StateChanged{
		Entity: e.Entity(),
		From:   prev,
		To:     next,
	})
}
