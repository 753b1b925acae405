package main

import (
	"fmt"
	"log"
	"os"

	"pocketknife/internal/core/session"
	"pocketknife/internal/notify"
	"pocketknife/internal/platform"
	"pocketknife/internal/storage"
	"pocketknife/internal/ui"
	"pocketknife/internal/ui/preferences"
	"pocketknife/internal/ui/tray"
	"pocketknife/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "Pocketknife"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.pocketknife.app")
	fyneApp.SetIcon(resources.MustLogo("pocketknife.png"))

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}

	store, err := storage.NewStore(appName)
	if err != nil {
		log.Printf("state store unavailable, running in-memory only: %v", err)
	}

	notifier := notify.New(fyneApp)
	notifier.SetSound(settings.SoundEnabled, settings.Volume)

	options := session.Options{
		Notifier:       notifier,
		IdleChecker:    platform.NewIdleProvider(),
		IdlePauseAfter: settings.IdlePause(),
	}
	if store != nil {
		options.Store = store
	}
	engine := session.New(options)

	mainWindow := ui.NewMainWindow(fyneApp, engine, store)
	window := mainWindow.Window()

	platformService := platform.NewService()
	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		previous := settings
		settings = updated
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.Printf("save settings: %v", err)
		}
		notifier.SetSound(settings.SoundEnabled, settings.Volume)
		engine.SetIdlePause(settings.IdlePause())
		if settings.LaunchAtLogin != previous.LaunchAtLogin {
			applyAutostart(platformService, settings.LaunchAtLogin)
		}
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnOpen: func() {
				window.Show()
				window.RequestFocus()
			},
			OnTogglePause: func() {
				engine.ToggleRunning()
			},
			OnPreferences: func() {
				prefsWindow.Show()
			},
			OnQuit: func() {
				engine.Close()
				fyneApp.Quit()
			},
		})
		desktopApp.SetSystemTrayIcon(resources.MustLogo("pocketknife.png"))

		// Closing the window keeps the timer ticking in the tray.
		window.SetCloseIntercept(func() {
			window.Hide()
		})
	} else {
		window.SetOnClosed(func() {
			engine.Close()
		})
	}

	events := engine.Subscribe(5)
	go func() {
		for event := range events {
			if trayManager == nil {
				continue
			}
			state := event.State
			status := fmt.Sprintf("%s %s",
				state.ActiveMode.Title(),
				formatRemaining(state.Remaining[state.ActiveMode]))
			if !state.IsRunning {
				status = "idle"
			}
			fyne.Do(func() {
				trayManager.SetStatus(status)
				trayManager.SetRunning(state.IsRunning)
			})
		}
	}()

	window.Show()
	fyneApp.Run()
}

func formatRemaining(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func applyAutostart(service platform.Service, enabled bool) {
	if !enabled {
		if err := service.DisableAutostart(appName); err != nil {
			log.Printf("disable autostart: %v", err)
		}
		return
	}
	execPath, err := os.Executable()
	if err != nil {
		log.Printf("enable autostart: resolve executable: %v", err)
		return
	}
	if err := service.EnableAutostart(appName, execPath); err != nil {
		log.Printf("enable autostart: %v", err)
	}
}
