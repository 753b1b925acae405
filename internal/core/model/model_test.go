package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampedForcesValidRanges(t *testing.T) {
	tests := []struct {
		name     string
		input    TimerConfig
		expected TimerConfig
	}{
		{
			name:     "zero fields fall back to defaults",
			input:    TimerConfig{},
			expected: DefaultTimerConfig(),
		},
		{
			name: "over-range durations collapse to the upper bound",
			input: TimerConfig{
				WorkMinutes:             500,
				ShortBreakMinutes:       61,
				LongBreakMinutes:        90,
				SessionsBeforeLongBreak: 200,
			},
			expected: TimerConfig{
				WorkMinutes:             60,
				ShortBreakMinutes:       60,
				LongBreakMinutes:        60,
				SessionsBeforeLongBreak: 99,
			},
		},
		{
			name: "single session rounds up to the minimum",
			input: TimerConfig{
				WorkMinutes:             25,
				ShortBreakMinutes:       5,
				LongBreakMinutes:        15,
				SessionsBeforeLongBreak: 1,
			},
			expected: TimerConfig{
				WorkMinutes:             25,
				ShortBreakMinutes:       5,
				LongBreakMinutes:        15,
				SessionsBeforeLongBreak: 2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.Clamped())
		})
	}
}

func TestNormalizeMigratesLegacyMode(t *testing.T) {
	var snapshot Snapshot
	err := json.Unmarshal([]byte(`{
		"mode": "long_break",
		"remaining": {"long_break": 30},
		"isRunning": true,
		"config": {"work": 25, "shortBreak": 5, "longBreak": 15, "sessionsBeforeLongBreak": 4},
		"savedAt": 1700000000000
	}`), &snapshot)
	assert.NoError(t, err)

	snapshot.Normalize()
	assert.Equal(t, PhaseLongBreak, snapshot.ActiveMode)
	assert.Equal(t, PhaseLongBreak, snapshot.ViewMode)
	assert.Empty(t, snapshot.LegacyMode)
	assert.Equal(t, 30, snapshot.Remaining[PhaseLongBreak])
}

func TestNormalizeFillsMissingPhasesAtFullDuration(t *testing.T) {
	snapshot := Snapshot{
		ActiveMode: PhaseWork,
		Remaining:  map[Phase]int{PhaseWork: 10},
		Config:     DefaultTimerConfig(),
	}
	snapshot.Normalize()

	assert.Equal(t, 10, snapshot.Remaining[PhaseWork])
	assert.Equal(t, 5*60, snapshot.Remaining[PhaseShortBreak])
	assert.Equal(t, 15*60, snapshot.Remaining[PhaseLongBreak])
	assert.Equal(t, PhaseWork, snapshot.ViewMode)
}

func TestNormalizeClampsRemainingIntoRange(t *testing.T) {
	snapshot := Snapshot{
		ActiveMode: PhaseWork,
		ViewMode:   PhaseWork,
		Remaining: map[Phase]int{
			PhaseWork:       99999,
			PhaseShortBreak: -4,
		},
		Config:                DefaultTimerConfig(),
		CompletedWorkSessions: -1,
	}
	snapshot.Normalize()

	assert.Equal(t, 25*60, snapshot.Remaining[PhaseWork])
	assert.Equal(t, 0, snapshot.Remaining[PhaseShortBreak])
	assert.Zero(t, snapshot.CompletedWorkSessions)
}

func TestNormalizeDefaultsToWorkWhenEverythingMissing(t *testing.T) {
	snapshot := Snapshot{Config: DefaultTimerConfig()}
	snapshot.Normalize()

	assert.Equal(t, PhaseWork, snapshot.ActiveMode)
	assert.Equal(t, PhaseWork, snapshot.ViewMode)
}

func TestConfigJSONUsesStorageFieldNames(t *testing.T) {
	raw, err := json.Marshal(DefaultTimerConfig())
	assert.NoError(t, err)
	assert.JSONEq(t,
		`{"work": 25, "shortBreak": 5, "longBreak": 15, "sessionsBeforeLongBreak": 4}`,
		string(raw))
}
