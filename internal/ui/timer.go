package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"pocketknife/internal/core/model"
	"pocketknife/internal/core/session"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

var phaseColors = map[model.Phase]color.NRGBA{
	model.PhaseWork:       {R: 235, G: 87, B: 87, A: 255},
	model.PhaseShortBreak: {R: 76, G: 175, B: 80, A: 255},
	model.PhaseLongBreak:  {R: 33, G: 150, B: 243, A: 255},
}

// TimerView renders the Pomodoro timer tool and keeps itself in sync with
// the engine through its event stream.
type TimerView struct {
	window fyne.Window
	engine *session.Engine

	content       fyne.CanvasObject
	timeText      *canvas.Text
	statusLabel   *widget.Label
	sessionsLabel *widget.Label
	progress      *widget.ProgressBar
	startButton   *widget.Button
	phaseButtons  map[model.Phase]*widget.Button

	viewMode model.Phase
}

// NewTimerView builds the timer tool view and starts watching the engine.
func NewTimerView(window fyne.Window, engine *session.Engine) *TimerView {
	view := &TimerView{
		window:       window,
		engine:       engine,
		phaseButtons: make(map[model.Phase]*widget.Button, len(model.Phases())),
		viewMode:     model.PhaseWork,
	}

	view.timeText = canvas.NewText("25:00", phaseColors[model.PhaseWork])
	view.timeText.TextSize = 64
	view.timeText.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	view.timeText.Alignment = fyne.TextAlignCenter

	view.statusLabel = widget.NewLabel("Paused")
	view.statusLabel.Alignment = fyne.TextAlignCenter

	view.sessionsLabel = widget.NewLabel("Completed work sessions: 0")
	view.sessionsLabel.Alignment = fyne.TextAlignCenter

	view.progress = widget.NewProgressBar()
	view.progress.TextFormatter = func() string { return "" }

	phaseRow := container.NewGridWithColumns(len(model.Phases()))
	for _, phase := range model.Phases() {
		phase := phase
		button := widget.NewButton(phase.Title(), func() {
			view.engine.SwitchView(phase)
		})
		view.phaseButtons[phase] = button
		phaseRow.Add(button)
	}

	view.startButton = widget.NewButton("Start", func() {
		view.engine.ToggleRunning()
	})
	view.startButton.Importance = widget.HighImportance

	resetButton := widget.NewButton("Reset Phase", func() {
		view.engine.ResetCurrentPhase()
	})
	resetAllButton := widget.NewButton("Reset All", func() {
		dialog.ShowConfirm("Reset everything?",
			"This clears all phases, the session counter and saved state.",
			func(confirmed bool) {
				if confirmed {
					view.engine.ResetAll()
				}
			}, view.window)
	})
	settingsButton := widget.NewButton("Durations...", view.showSettings)

	controls := container.NewGridWithColumns(2, view.startButton, resetButton)
	footer := container.NewGridWithColumns(2, resetAllButton, settingsButton)

	view.content = container.NewVBox(
		phaseRow,
		container.NewPadded(view.timeText),
		view.progress,
		view.statusLabel,
		view.sessionsLabel,
		controls,
		footer,
	)

	view.apply(engine.Snapshot())
	view.watch()
	return view
}

// Content returns the root canvas object of the view.
func (view *TimerView) Content() fyne.CanvasObject {
	return view.content
}

// watch forwards engine events onto the fyne main thread. The loop ends
// when the engine closes its observer channels.
func (view *TimerView) watch() {
	events := view.engine.Subscribe(8)
	go func() {
		for event := range events {
			state := event.State
			fyne.Do(func() {
				view.apply(state)
			})
		}
	}()
}

func (view *TimerView) apply(state model.Snapshot) {
	view.viewMode = state.ViewMode

	remaining := state.Remaining[state.ViewMode]
	view.timeText.Text = formatSeconds(remaining)
	view.timeText.Color = phaseColors[state.ViewMode]
	view.timeText.Refresh()

	full := state.Config.FullSeconds(state.ViewMode)
	if full > 0 {
		view.progress.SetValue(float64(full-remaining) / float64(full))
	}

	switch {
	case state.IsRunning && state.ActiveMode == state.ViewMode:
		view.statusLabel.SetText("Running")
	case state.IsRunning:
		view.statusLabel.SetText(state.ActiveMode.Title() + " running in background")
	default:
		view.statusLabel.SetText("Paused")
	}

	view.sessionsLabel.SetText(fmt.Sprintf("Completed work sessions: %d", state.CompletedWorkSessions))

	if state.IsRunning {
		view.startButton.SetText("Pause")
	} else {
		view.startButton.SetText("Start")
	}

	for phase, button := range view.phaseButtons {
		if phase == state.ViewMode {
			button.Importance = widget.HighImportance
		} else {
			button.Importance = widget.MediumImportance
		}
		button.Refresh()
	}
}

// showSettings edits the phase durations. Inputs are clamped here, at the
// boundary, so the engine only ever sees positive integers.
func (view *TimerView) showSettings() {
	config := view.engine.Snapshot().Config

	workEntry := widget.NewEntry()
	workEntry.SetText(strconv.Itoa(config.WorkMinutes))
	shortEntry := widget.NewEntry()
	shortEntry.SetText(strconv.Itoa(config.ShortBreakMinutes))
	longEntry := widget.NewEntry()
	longEntry.SetText(strconv.Itoa(config.LongBreakMinutes))
	sessionsEntry := widget.NewEntry()
	sessionsEntry.SetText(strconv.Itoa(config.SessionsBeforeLongBreak))

	items := []*widget.FormItem{
		widget.NewFormItem("Work (minutes)", workEntry),
		widget.NewFormItem("Short break (minutes)", shortEntry),
		widget.NewFormItem("Long break (minutes)", longEntry),
		widget.NewFormItem("Sessions before long break", sessionsEntry),
	}

	dialog.ShowForm("Timer Durations", "Save", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}
		if minutes, ok := parsePositiveInt(workEntry.Text); ok {
			config.WorkMinutes = minutes
		}
		if minutes, ok := parsePositiveInt(shortEntry.Text); ok {
			config.ShortBreakMinutes = minutes
		}
		if minutes, ok := parsePositiveInt(longEntry.Text); ok {
			config.LongBreakMinutes = minutes
		}
		if sessions, ok := parsePositiveInt(sessionsEntry.Text); ok {
			config.SessionsBeforeLongBreak = sessions
		}
		view.engine.UpdateConfig(config)
	}, view.window)
}

func formatSeconds(total int) string {
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
