package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"pocketknife/internal/core/session"
	"pocketknife/internal/registry"
	"pocketknife/internal/storage"
)

// MainWindow is the application shell: a home screen listing every tool
// from the registry, plus one tab per tool.
type MainWindow struct {
	window fyne.Window
	tabs   *container.AppTabs
}

// NewMainWindow builds the shell and all tool views.
func NewMainWindow(app fyne.App, engine *session.Engine, store *storage.Store) *MainWindow {
	window := app.NewWindow("Pocketknife")
	window.Resize(fyne.NewSize(860, 620))

	main := &MainWindow{window: window}

	builders := map[string]func() fyne.CanvasObject{
		"timer":     func() fyne.CanvasObject { return NewTimerView(window, engine).Content() },
		"passgen":   func() fyne.CanvasObject { return newPassgenView(app, store) },
		"textstat":  newTextstatView,
		"stego":     func() fyne.CanvasObject { return newStegoView(app) },
		"diffview":  newDiffView,
		"mdpreview": func() fyne.CanvasObject { return newMarkdownView(app, window) },
	}

	tools := registry.Tools()
	items := make([]*container.TabItem, 0, len(tools)+1)
	items = append(items, container.NewTabItem("Home", main.buildHome(tools)))

	for _, tool := range tools {
		builder, ok := builders[tool.ID]
		if !ok {
			continue
		}
		items = append(items, container.NewTabItem(tool.Name, builder()))
	}

	// The home buttons capture main.tabs through the closure; it is set
	// before the window is shown.
	main.tabs = container.NewAppTabs(items...)
	main.tabs.SetTabLocation(container.TabLocationLeading)

	window.SetContent(main.tabs)
	return main
}

// buildHome renders the registry as a grid of cards, one per tool.
func (main *MainWindow) buildHome(tools []registry.Tool) fyne.CanvasObject {
	cards := make([]fyne.CanvasObject, 0, len(tools))
	for index, tool := range tools {
		tabIndex := index + 1
		open := widget.NewButton("Open", func() {
			main.tabs.SelectIndex(tabIndex)
		})
		cards = append(cards, widget.NewCard(tool.Name, tool.Description, open))
	}
	grid := container.NewGridWithColumns(2, cards...)
	return container.NewVScroll(grid)
}

// Window returns the underlying fyne window.
func (main *MainWindow) Window() fyne.Window {
	return main.window
}

// ShowTimer brings the window forward with the timer tab selected.
func (main *MainWindow) ShowTimer() {
	main.tabs.SelectIndex(1)
	main.window.Show()
	main.window.RequestFocus()
}
