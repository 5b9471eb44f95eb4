package components

import (
	cfg "github.com/automoto/deal-closer/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed     bool // Currently held down
	JustPressed bool // Pressed this tick
}

// InputData stores the current and previous tick's held state for all actions.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Action returns the state of one action, deriving edges from the previous tick.
func (in *InputData) Action(id cfg.ActionID) ActionState {
	curr := in.Current[id]
	return ActionState{
		Pressed:     curr,
		JustPressed: curr && !in.Previous[id],
	}
}

// Advance moves the current state into Previous and sets the new held state.
func (in *InputData) Advance(held [cfg.ActionCount]bool) {
	in.Previous = in.Current
	in.Current = held
}

var Input = donburi.NewComponentType[InputData]()
