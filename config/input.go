package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionAttack
	ActionToggleDebug
	ActionToggleRadii
	ActionTimeScale
	ActionRestart
	ActionPause
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:        "none",
	ActionMoveLeft:    "moveLeft",
	ActionMoveRight:   "moveRight",
	ActionMoveUp:      "moveUp",
	ActionMoveDown:    "moveDown",
	ActionAttack:      "attack",
	ActionToggleDebug: "toggleDebug",
	ActionToggleRadii: "toggleRadii",
	ActionTimeScale:   "timeScale",
	ActionRestart:     "restart",
	ActionPause:       "pause",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputConfig holds device independent input tuning.
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
	}
}
