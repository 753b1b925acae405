package model

// Snapshot is the persisted representation of a countdown session, plus the
// wall-clock timestamp of the last save. SavedAt lets the engine reconstruct
// how much time elapsed while the application was not running.
type Snapshot struct {
	ActiveMode            Phase         `json:"activeMode,omitempty"`
	ViewMode              Phase         `json:"viewMode,omitempty"`
	Remaining             map[Phase]int `json:"remaining"`
	IsRunning             bool          `json:"isRunning"`
	CompletedWorkSessions int           `json:"completedWorkSessions"`
	Config                TimerConfig   `json:"config"`
	SavedAt               int64         `json:"savedAt"`

	// LegacyMode carries the single "mode" field written by an older layout
	// that did not distinguish the active phase from the displayed one.
	LegacyMode Phase `json:"mode,omitempty"`
}

// Normalize fills missing fields from legacy aliases and forces every value
// into its valid range. It is the single place that knows about older
// persisted shapes; callers past this point may assume a well-formed snapshot.
func (snapshot *Snapshot) Normalize() {
	if !snapshot.ActiveMode.Valid() {
		snapshot.ActiveMode = snapshot.LegacyMode
	}
	if !snapshot.ViewMode.Valid() {
		snapshot.ViewMode = snapshot.LegacyMode
	}
	if !snapshot.ActiveMode.Valid() {
		snapshot.ActiveMode = PhaseWork
	}
	if !snapshot.ViewMode.Valid() {
		snapshot.ViewMode = snapshot.ActiveMode
	}
	snapshot.LegacyMode = ""

	snapshot.Config = snapshot.Config.Clamped()

	remaining := make(map[Phase]int, len(Phases()))
	for _, phase := range Phases() {
		full := snapshot.Config.FullSeconds(phase)
		value, ok := snapshot.Remaining[phase]
		if !ok {
			value = full
		}
		if value < 0 {
			value = 0
		}
		if value > full {
			value = full
		}
		remaining[phase] = value
	}
	snapshot.Remaining = remaining

	if snapshot.CompletedWorkSessions < 0 {
		snapshot.CompletedWorkSessions = 0
	}
	if snapshot.SavedAt < 0 {
		snapshot.SavedAt = 0
	}
}
