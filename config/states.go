package config

// StateID identifies a character animation state.
type StateID int

// StateNone means no animation has been chosen yet.
const StateNone StateID = -1

const (
	Idle StateID = iota
	Running
	Jump
	Celebrate
	Die
)

// StateToFileName maps StateID to the strip name under the character directory.
var StateToFileName = map[StateID]string{
	Idle:      "idle",
	Running:   "run",
	Jump:      "jump",
	Celebrate: "celebrate",
	Die:       "die",
}

func (s StateID) String() string {
	if name, ok := StateToFileName[s]; ok {
		return name
	}
	return "unknown"
}
