package session

import (
	"time"

	"pocketknife/internal/core/model"
)

// EventType defines the type of engine event.
type EventType string

const (
	// EventTick fires once per elapsed second while the countdown runs.
	EventTick EventType = "tick"
	// EventStateChange fires after any user-driven mutation.
	EventStateChange EventType = "state_change"
	// EventPhaseComplete fires exactly once when a phase reaches zero.
	EventPhaseComplete EventType = "phase_complete"
	// EventIdlePause fires when idle auto-pause freezes the countdown.
	EventIdlePause EventType = "idle_pause"
)

// Event carries an engine update for observers. State is a detached copy;
// observers may read it without holding any engine lock.
type Event struct {
	Type  EventType
	State model.Snapshot
	At    time.Time
}
