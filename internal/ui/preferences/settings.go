package preferences

import "time"

// Settings defines editable application preferences. Per-tool state (the
// timer session, tool options) is persisted separately through the state
// store; these are the app-wide knobs only.
type Settings struct {
	SoundEnabled bool
	Volume       float64

	LaunchAtLogin bool

	IdlePauseEnabled bool
	IdlePauseAfter   time.Duration
}

// DefaultSettings returns default settings for Pocketknife.
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled:     true,
		Volume:           0.8,
		LaunchAtLogin:    false,
		IdlePauseEnabled: false,
		IdlePauseAfter:   10 * time.Minute,
	}
}

// IdlePause returns the effective idle auto-pause threshold, zero when the
// feature is disabled.
func (settings Settings) IdlePause() time.Duration {
	if !settings.IdlePauseEnabled {
		return 0
	}
	return settings.IdlePauseAfter
}
