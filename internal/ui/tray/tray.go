package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnOpen        func()
	OnTogglePause func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles the system tray menu: a status line mirroring the timer
// plus shortcuts to the window and the pause toggle.
type Manager struct {
	app        desktop.App
	statusItem *fyne.MenuItem
	pauseItem  *fyne.MenuItem
	callbacks  Callbacks

	running     bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		statusLabel: "idle",
	}

	manager.statusItem = fyne.NewMenuItem("Status: idle", nil)
	manager.statusItem.Disabled = true

	manager.pauseItem = fyne.NewMenuItem("Start timer", func() {
		if manager.callbacks.OnTogglePause != nil {
			manager.callbacks.OnTogglePause()
		}
	})

	app.SetSystemTrayMenu(manager.buildMenu())
	return manager
}

// SetStatus updates the status line, e.g. "work 24:59".
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.refresh()
}

// SetRunning flips the pause item between start and pause wording.
func (manager *Manager) SetRunning(running bool) {
	manager.running = running
	if running {
		manager.pauseItem.Label = "Pause timer"
	} else {
		manager.pauseItem.Label = "Start timer"
	}
	manager.refresh()
}

func (manager *Manager) refresh() {
	manager.statusItem.Label = fmt.Sprintf("Status: %s", manager.statusLabel)
	manager.app.SetSystemTrayMenu(manager.buildMenu())
}

func (manager *Manager) buildMenu() *fyne.Menu {
	return fyne.NewMenu("Pocketknife",
		manager.statusItem,
		fyne.NewMenuItem("Open Pocketknife", func() {
			if manager.callbacks.OnOpen != nil {
				manager.callbacks.OnOpen()
			}
		}),
		manager.pauseItem,
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	)
}
