package physics

import "github.com/pthm-cable/lander/simstate"

// TerminalStatus classifies how an episode ended.
type TerminalStatus int

const (
	// Running means the episode has not yet terminated. A Trajectory
	// returned by RunEpisode never carries this status.
	Running TerminalStatus = iota
	Landed
	CrashedOffPad
	CrashedOnPad
	Lost
)

func (s TerminalStatus) String() string {
	switch s {
	case Running:
		return "Running"
	case Landed:
		return "Landed"
	case CrashedOffPad:
		return "CrashedOffPad"
	case CrashedOnPad:
		return "CrashedOnPad"
	case Lost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// CrashReason is a bitmask over the reasons a touchdown was not a clean
// landing.
type CrashReason uint8

const (
	UnevenGround CrashReason = 1 << iota
	NonZeroRotation
	VerticalTooFast
	HorizontalTooFast
)

// TickEvent reports whether a Step terminated the episode and, if so, how.
type TickEvent struct {
	Done    bool
	Status  TerminalStatus
	Reasons CrashReason
}

// Trajectory is the full record of one episode: the ordered states
// (beginning with the initial state), the decisions applied between
// consecutive states, and the terminal classification.
type Trajectory struct {
	States    []simstate.State
	Decisions []simstate.Decision
	Status    TerminalStatus
	Reasons   CrashReason
}

// Last returns the final state of the trajectory.
func (t Trajectory) Last() simstate.State {
	return t.States[len(t.States)-1]
}
