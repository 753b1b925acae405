package model

const (
	minPhaseMinutes = 1
	maxPhaseMinutes = 60
	minSessions     = 2
	maxSessions     = 99
)

// TimerConfig contains the phase durations for the countdown engine.
type TimerConfig struct {
	WorkMinutes             int `json:"work" yaml:"work_minutes"`
	ShortBreakMinutes       int `json:"shortBreak" yaml:"short_break_minutes"`
	LongBreakMinutes        int `json:"longBreak" yaml:"long_break_minutes"`
	SessionsBeforeLongBreak int `json:"sessionsBeforeLongBreak" yaml:"sessions_before_long_break"`
}

// DefaultTimerConfig returns the stock 25/5/15 Pomodoro configuration.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		WorkMinutes:             25,
		ShortBreakMinutes:       5,
		LongBreakMinutes:        15,
		SessionsBeforeLongBreak: 4,
	}
}

// Minutes returns the configured duration for a phase.
func (config TimerConfig) Minutes(phase Phase) int {
	switch phase {
	case PhaseShortBreak:
		return config.ShortBreakMinutes
	case PhaseLongBreak:
		return config.LongBreakMinutes
	default:
		return config.WorkMinutes
	}
}

// FullSeconds returns the full countdown length for a phase in seconds.
func (config TimerConfig) FullSeconds(phase Phase) int {
	return config.Minutes(phase) * 60
}

// Clamped returns a copy with every field forced into its valid range.
// Durations outside 1-60 minutes collapse to the nearest bound; a zero or
// negative field falls back to the default value for that field.
func (config TimerConfig) Clamped() TimerConfig {
	defaults := DefaultTimerConfig()
	config.WorkMinutes = clampMinutes(config.WorkMinutes, defaults.WorkMinutes)
	config.ShortBreakMinutes = clampMinutes(config.ShortBreakMinutes, defaults.ShortBreakMinutes)
	config.LongBreakMinutes = clampMinutes(config.LongBreakMinutes, defaults.LongBreakMinutes)

	switch {
	case config.SessionsBeforeLongBreak <= 0:
		config.SessionsBeforeLongBreak = defaults.SessionsBeforeLongBreak
	case config.SessionsBeforeLongBreak < minSessions:
		config.SessionsBeforeLongBreak = minSessions
	case config.SessionsBeforeLongBreak > maxSessions:
		config.SessionsBeforeLongBreak = maxSessions
	}
	return config
}

func clampMinutes(minutes, fallback int) int {
	switch {
	case minutes <= 0:
		return fallback
	case minutes < minPhaseMinutes:
		return minPhaseMinutes
	case minutes > maxPhaseMinutes:
		return maxPhaseMinutes
	}
	return minutes
}
