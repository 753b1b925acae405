package preferences

import (
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the application preferences UI.
type Window struct {
	window   fyne.Window
	settings Settings
	onSave   func(Settings)

	soundCheck     *widget.Check
	volumeSlider   *widget.Slider
	autostartCheck *widget.Check
	idleCheck      *widget.Check
	idleMinutes    *widget.Entry
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Pocketknife Preferences")

	soundCheck := widget.NewCheck("Play a chime when a phase completes", nil)
	soundCheck.SetChecked(settings.SoundEnabled)

	volumeSlider := widget.NewSlider(0, 1)
	volumeSlider.Step = 0.05
	volumeSlider.Value = settings.Volume

	autostartCheck := widget.NewCheck("Launch at login", nil)
	autostartCheck.SetChecked(settings.LaunchAtLogin)

	idleCheck := widget.NewCheck("Pause the timer when I step away", nil)
	idleCheck.SetChecked(settings.IdlePauseEnabled)

	idleMinutes := widget.NewEntry()
	idleMinutes.SetText(strconv.Itoa(int(settings.IdlePauseAfter / time.Minute)))

	form := container.NewVBox(
		widget.NewLabelWithStyle("Notifications", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		soundCheck,
		widget.NewLabel("Chime volume"),
		volumeSlider,
		widget.NewLabelWithStyle("System", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		autostartCheck,
		idleCheck,
		container.NewHBox(widget.NewLabel("After"), idleMinutes, widget.NewLabel("minutes of inactivity")),
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(400, 340))

	prefs := &Window{
		window:         window,
		settings:       settings,
		onSave:         onSave,
		soundCheck:     soundCheck,
		volumeSlider:   volumeSlider,
		autostartCheck: autostartCheck,
		idleCheck:      idleCheck,
		idleMinutes:    idleMinutes,
	}

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		window.Hide()
	}
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

func (prefs *Window) handleSave() {
	settings := prefs.settings
	settings.SoundEnabled = prefs.soundCheck.Checked
	settings.Volume = prefs.volumeSlider.Value
	settings.LaunchAtLogin = prefs.autostartCheck.Checked
	settings.IdlePauseEnabled = prefs.idleCheck.Checked

	if minutes, err := strconv.Atoi(prefs.idleMinutes.Text); err == nil && minutes > 0 {
		settings.IdlePauseAfter = time.Duration(minutes) * time.Minute
	}

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}
