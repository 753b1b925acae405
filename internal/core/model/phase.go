package model

// Phase identifies one of the three countdown phases.
type Phase string

const (
	PhaseWork       Phase = "work"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

// Phases lists every phase in display order.
func Phases() []Phase {
	return []Phase{PhaseWork, PhaseShortBreak, PhaseLongBreak}
}

// Valid reports whether the phase is one of the known variants.
func (phase Phase) Valid() bool {
	switch phase {
	case PhaseWork, PhaseShortBreak, PhaseLongBreak:
		return true
	}
	return false
}

// Title returns a human-readable label for the phase.
func (phase Phase) Title() string {
	switch phase {
	case PhaseShortBreak:
		return "Short Break"
	case PhaseLongBreak:
		return "Long Break"
	default:
		return "Work"
	}
}
