package session

import (
	"errors"
	"log"
	"sync"
	"time"

	"pocketknife/internal/core/model"
)

// ErrIdleUnsupported indicates idle detection is not available on this system.
var ErrIdleUnsupported = errors.New("idle detection unsupported")

// StorageKey is the store key under which the timer persists its state.
const StorageKey = "pomodoro/session"

// Store persists a JSON-serializable value under a string key. All methods
// are best-effort from the engine's point of view: load failures fall back
// to a fresh session, save failures degrade to in-memory operation only.
type Store interface {
	Load(key string, out any) (bool, error)
	Save(key string, value any) error
	Clear(key string) error
}

// Notifier plays an audible cue on phase completion. Fire-and-forget.
type Notifier interface {
	Notify()
}

// IdleChecker reports the duration of user inactivity.
type IdleChecker interface {
	IdleDuration() (time.Duration, error)
}

// Options contains runtime options for the Engine.
type Options struct {
	Store    Store
	Notifier Notifier
	// StorageKey overrides the default persistence key.
	StorageKey string
	// TickInterval defaults to one second.
	TickInterval time.Duration
	// Now overrides the wall clock, for tests.
	Now func() time.Time
	// IdleChecker plus a positive IdlePauseAfter enable idle auto-pause.
	IdleChecker       IdleChecker
	IdlePauseAfter    time.Duration
	IdleCheckInterval time.Duration
}

// Engine is the countdown session state machine. One phase at a time counts
// down while running; completing a phase pauses the engine, refills the
// finished phase and advances to the next one. The whole session survives
// restarts through the Store: every mutation persists a snapshot stamped
// with the current wall-clock time, and the constructor subtracts the time
// that passed since the last save.
type Engine struct {
	mu            sync.Mutex
	config        model.TimerConfig
	activeMode    model.Phase
	viewMode      model.Phase
	remaining     map[model.Phase]int
	running       bool
	completedWork int

	store        Store
	notifier     Notifier
	key          string
	now          func() time.Time
	tickInterval time.Duration

	idleChecker       IdleChecker
	idlePauseAfter    time.Duration
	idleCheckInterval time.Duration
	lastIdleCheck     time.Time

	events   []chan Event
	loopStop chan struct{}
	closed   bool
}

// New creates an Engine, restoring persisted state if any. If the restored
// session was running when last saved, the elapsed wall-clock time is
// subtracted from the active phase and, unless that drives it to zero, the
// countdown resumes immediately.
func New(options Options) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	if options.StorageKey == "" {
		options.StorageKey = StorageKey
	}
	if options.IdleCheckInterval <= 0 {
		options.IdleCheckInterval = 5 * time.Second
	}

	engine := &Engine{
		store:             options.Store,
		notifier:          options.Notifier,
		key:               options.StorageKey,
		now:               options.Now,
		tickInterval:      options.TickInterval,
		idleChecker:       options.IdleChecker,
		idlePauseAfter:    options.IdlePauseAfter,
		idleCheckInterval: options.IdleCheckInterval,
	}

	engine.mu.Lock()
	engine.resetLocked(model.DefaultTimerConfig())
	engine.restoreLocked()
	if engine.running {
		engine.persistLocked()
		engine.startLoopLocked()
	}
	engine.mu.Unlock()
	return engine
}

// resetLocked installs the initial state for the given configuration.
func (engine *Engine) resetLocked(config model.TimerConfig) {
	engine.config = config.Clamped()
	engine.activeMode = model.PhaseWork
	engine.viewMode = model.PhaseWork
	engine.running = false
	engine.completedWork = 0
	engine.remaining = make(map[model.Phase]int, len(model.Phases()))
	for _, phase := range model.Phases() {
		engine.remaining[phase] = engine.config.FullSeconds(phase)
	}
}

// restoreLocked loads the persisted snapshot and replays elapsed wall-clock
// time. Completions that happened while the application was closed are not
// replayed: the session simply resumes paused at zero.
func (engine *Engine) restoreLocked() {
	if engine.store == nil {
		return
	}

	var snapshot model.Snapshot
	found, err := engine.store.Load(engine.key, &snapshot)
	if err != nil {
		log.Printf("session: load state: %v", err)
		return
	}
	if !found {
		return
	}
	snapshot.Normalize()

	engine.config = snapshot.Config
	engine.activeMode = snapshot.ActiveMode
	engine.viewMode = snapshot.ViewMode
	engine.running = snapshot.IsRunning
	engine.completedWork = snapshot.CompletedWorkSessions
	engine.remaining = snapshot.Remaining

	if !engine.running || snapshot.SavedAt == 0 {
		return
	}

	elapsed := int(engine.now().Sub(time.UnixMilli(snapshot.SavedAt)) / time.Second)
	if elapsed <= 0 {
		return
	}
	left := engine.remaining[engine.activeMode] - elapsed
	if left <= 0 {
		left = 0
		engine.running = false
	}
	engine.remaining[engine.activeMode] = left
}

// Subscribe registers a new observer channel. Events are dropped rather
// than block a slow observer.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	engine.events = append(engine.events, ch)
	engine.mu.Unlock()
	return ch
}

// Snapshot returns a detached copy of the current session state.
func (engine *Engine) Snapshot() model.Snapshot {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.snapshotLocked()
}

func (engine *Engine) snapshotLocked() model.Snapshot {
	remaining := make(map[model.Phase]int, len(engine.remaining))
	for phase, seconds := range engine.remaining {
		remaining[phase] = seconds
	}
	return model.Snapshot{
		ActiveMode:            engine.activeMode,
		ViewMode:              engine.viewMode,
		Remaining:             remaining,
		IsRunning:             engine.running,
		CompletedWorkSessions: engine.completedWork,
		Config:                engine.config,
		SavedAt:               engine.now().UnixMilli(),
	}
}

// SwitchView changes the displayed phase. A timer running in a different
// phase keeps counting down in the background.
func (engine *Engine) SwitchView(phase model.Phase) {
	if !phase.Valid() {
		return
	}
	engine.mu.Lock()
	engine.viewMode = phase
	engine.persistLocked()
	engine.emitLocked(EventStateChange)
	engine.mu.Unlock()
}

// ToggleRunning starts or pauses the countdown. Starting binds the active
// phase to whichever phase is currently displayed; pausing leaves the
// active phase unchanged.
func (engine *Engine) ToggleRunning() {
	engine.mu.Lock()
	if engine.running {
		engine.running = false
		engine.stopLoopLocked()
	} else {
		engine.activeMode = engine.viewMode
		engine.running = true
		engine.startLoopLocked()
	}
	engine.persistLocked()
	engine.emitLocked(EventStateChange)
	engine.mu.Unlock()
}

// ResetCurrentPhase pauses the engine and refills the displayed phase.
// Other phases and the session counter are untouched.
func (engine *Engine) ResetCurrentPhase() {
	engine.mu.Lock()
	engine.running = false
	engine.stopLoopLocked()
	engine.remaining[engine.viewMode] = engine.config.FullSeconds(engine.viewMode)
	engine.persistLocked()
	engine.emitLocked(EventStateChange)
	engine.mu.Unlock()
}

// ResetAll restores the initial state under the current configuration and
// erases the persisted snapshot entirely.
func (engine *Engine) ResetAll() {
	engine.mu.Lock()
	engine.stopLoopLocked()
	engine.resetLocked(engine.config)
	if engine.store != nil {
		if err := engine.store.Clear(engine.key); err != nil {
			log.Printf("session: clear state: %v", err)
		}
	}
	engine.emitLocked(EventStateChange)
	engine.mu.Unlock()
}

// UpdateConfig installs new phase durations. Phases still sitting at their
// untouched full duration are resized to the new setting; phases
// mid-countdown keep their remaining time.
func (engine *Engine) UpdateConfig(config model.TimerConfig) {
	config = config.Clamped()
	engine.mu.Lock()
	previous := engine.config
	for _, phase := range model.Phases() {
		if engine.remaining[phase] == previous.FullSeconds(phase) {
			engine.remaining[phase] = config.FullSeconds(phase)
		}
	}
	engine.config = config
	engine.persistLocked()
	engine.emitLocked(EventStateChange)
	engine.mu.Unlock()
}

// SetIdlePause updates the idle auto-pause threshold. Zero disables the
// feature.
func (engine *Engine) SetIdlePause(threshold time.Duration) {
	engine.mu.Lock()
	engine.idlePauseAfter = threshold
	engine.mu.Unlock()
}

// Close stops the ticking loop and closes observer channels. The final
// state is persisted so a later mount resumes where this one left off.
func (engine *Engine) Close() {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	engine.closed = true
	engine.stopLoopLocked()
	engine.persistLocked()
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (engine *Engine) startLoopLocked() {
	if engine.loopStop != nil || engine.closed {
		return
	}
	stop := make(chan struct{})
	engine.loopStop = stop
	go engine.run(stop)
}

func (engine *Engine) stopLoopLocked() {
	if engine.loopStop == nil {
		return
	}
	close(engine.loopStop)
	engine.loopStop = nil
}

// run drives the one-second tick while the engine is running. A completed
// phase is posted back to this loop rather than handled inside tick, so the
// zeroed state is persisted and observable before the phase advances.
func (engine *Engine) run(stop chan struct{}) {
	ticker := time.NewTicker(engine.tickInterval)
	defer ticker.Stop()

	completed := make(chan struct{}, 1)
	for {
		select {
		case <-stop:
			return
		case <-completed:
			engine.completePhase()
		case <-ticker.C:
			if engine.tick() {
				select {
				case completed <- struct{}{}:
				default:
				}
			}
		}
	}
}

// tick consumes one second from the active phase. It reports whether the
// phase reached zero and a completion should be scheduled.
func (engine *Engine) tick() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if !engine.running {
		return false
	}
	if engine.handleIdleLocked() {
		return false
	}

	left := engine.remaining[engine.activeMode]
	if left <= 1 {
		engine.remaining[engine.activeMode] = 0
		engine.persistLocked()
		engine.emitLocked(EventTick)
		return true
	}
	engine.remaining[engine.activeMode] = left - 1
	engine.persistLocked()
	engine.emitLocked(EventTick)
	return false
}

// completePhase fires the completion side effects exactly once: pause,
// refill the finished phase, advance active and view to the next phase and
// sound the notifier. After completion the engine waits for the next start.
func (engine *Engine) completePhase() {
	engine.mu.Lock()
	if engine.remaining[engine.activeMode] != 0 {
		engine.mu.Unlock()
		return
	}

	engine.running = false
	engine.stopLoopLocked()
	engine.remaining[engine.activeMode] = engine.config.FullSeconds(engine.activeMode)

	var next model.Phase
	if engine.activeMode == model.PhaseWork {
		engine.completedWork++
		if engine.completedWork%engine.config.SessionsBeforeLongBreak == 0 {
			next = model.PhaseLongBreak
		} else {
			next = model.PhaseShortBreak
		}
	} else {
		next = model.PhaseWork
	}
	engine.activeMode = next
	engine.viewMode = next

	engine.persistLocked()
	engine.emitLocked(EventPhaseComplete)
	notifier := engine.notifier
	engine.mu.Unlock()

	if notifier != nil {
		notifier.Notify()
	}
}

// handleIdleLocked pauses the countdown when the user has been inactive
// past the configured threshold. Reports whether the engine paused.
func (engine *Engine) handleIdleLocked() bool {
	if engine.idleChecker == nil || engine.idlePauseAfter <= 0 {
		return false
	}
	now := engine.now()
	if !engine.lastIdleCheck.IsZero() && now.Sub(engine.lastIdleCheck) < engine.idleCheckInterval {
		return false
	}
	engine.lastIdleCheck = now

	idle, err := engine.idleChecker.IdleDuration()
	if err != nil {
		if errors.Is(err, ErrIdleUnsupported) {
			engine.idlePauseAfter = 0
		} else {
			log.Printf("session: idle check: %v", err)
		}
		return false
	}
	if idle < engine.idlePauseAfter {
		return false
	}

	engine.running = false
	engine.stopLoopLocked()
	engine.persistLocked()
	engine.emitLocked(EventIdlePause)
	return true
}

func (engine *Engine) persistLocked() {
	if engine.store == nil {
		return
	}
	if err := engine.store.Save(engine.key, engine.snapshotLocked()); err != nil {
		log.Printf("session: save state: %v", err)
	}
}

func (engine *Engine) emitLocked(eventType EventType) {
	if len(engine.events) == 0 {
		return
	}
	event := Event{
		Type:  eventType,
		State: engine.snapshotLocked(),
		At:    engine.now(),
	}
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}
