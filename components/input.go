package components

import (
	cfg "github.com/automoto/thornwood/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// InputData stores the current and previous tick's pressed state for all actions.
// JustPressed is computed on demand by comparing the two.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod
}

func (i *InputData) Pressed(a cfg.ActionID) bool {
	return i.Current[a]
}

// JustPressed is true only on a released -> held transition.
func (i *InputData) JustPressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()
