package notify

import (
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Notifier announces phase completions with a short chime and a desktop
// notification. Notify is fire-and-forget: every failure is logged and
// swallowed, and playback is never cancelled.
type Notifier struct {
	app fyne.App

	mu           sync.Mutex
	soundEnabled bool
	volume       float64

	speakerOnce sync.Once
	speakerErr  error
}

// New creates a notifier. The fyne app may be nil, in which case only the
// audible cue is produced.
func New(app fyne.App) *Notifier {
	return &Notifier{
		app:          app,
		soundEnabled: true,
		volume:       0.8,
	}
}

// SetSound updates the audible-cue preferences.
func (notifier *Notifier) SetSound(enabled bool, volume float64) {
	notifier.mu.Lock()
	notifier.soundEnabled = enabled
	notifier.volume = volume
	notifier.mu.Unlock()
}

// Notify fires the completion cue.
func (notifier *Notifier) Notify() {
	if notifier.app != nil {
		notifier.app.SendNotification(fyne.NewNotification(
			"Pocketknife",
			"Time's up! The next phase is ready to start.",
		))
	}

	notifier.mu.Lock()
	enabled := notifier.soundEnabled
	volume := notifier.volume
	notifier.mu.Unlock()
	if !enabled {
		return
	}

	notifier.speakerOnce.Do(func() {
		notifier.speakerErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})
	if notifier.speakerErr != nil {
		log.Printf("notify: speaker init: %v", notifier.speakerErr)
		return
	}

	chime, err := buildChime(volume)
	if err != nil {
		log.Printf("notify: build chime: %v", err)
		return
	}
	speaker.Play(chime)
}

// buildChime produces a two-tone rising cue. Volume maps 0..1 onto an
// exponential gain where 1 is unity.
func buildChime(volume float64) (beep.Streamer, error) {
	low, err := generators.SinTone(sampleRate, 660)
	if err != nil {
		return nil, err
	}
	high, err := generators.SinTone(sampleRate, 880)
	if err != nil {
		return nil, err
	}

	sequence := beep.Seq(
		beep.Take(sampleRate.N(150*time.Millisecond), low),
		beep.Silence(sampleRate.N(60*time.Millisecond)),
		beep.Take(sampleRate.N(220*time.Millisecond), high),
	)
	return &effects.Volume{
		Streamer: sequence,
		Base:     2,
		Volume:   (volume - 1) * 5,
		Silent:   volume <= 0,
	}, nil
}
