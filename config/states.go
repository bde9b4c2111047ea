package config

// StateID identifies a behaviour or animation state for an actor.
// Player animation states and boar AI states share the enum.
type StateID int

const (
	StateNone StateID = iota

	// Shared
	Idle
	Die

	// Player animation
	Running
	Jump
	Fall
	Attack

	// Boar AI
	Walk
	StateChase
	StateCharge
	Stunned
	Hit
)

var stateNames = map[StateID]string{
	StateNone:   "none",
	Idle:        "idle",
	Die:         "die",
	Running:     "run",
	Jump:        "jump",
	Fall:        "fall",
	Attack:      "attack",
	Walk:        "walk",
	StateChase:  "chase",
	StateCharge: "charge",
	Stunned:     "stunned",
	Hit:         "hit",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
