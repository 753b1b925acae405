package ui

import (
	"fmt"
	"log"
	"time"

	"pocketknife/internal/storage"
	"pocketknife/internal/tools/diffview"
	"pocketknife/internal/tools/mdpreview"
	"pocketknife/internal/tools/passgen"
	"pocketknife/internal/tools/stego"
	"pocketknife/internal/tools/textstat"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const passgenOptionsKey = "passgen/options"

// newPassgenView builds the password generator tool. Options persist in
// the state store so the next launch remembers them.
func newPassgenView(app fyne.App, store *storage.Store) fyne.CanvasObject {
	options := passgen.DefaultOptions()
	if store != nil {
		if _, err := store.Load(passgenOptionsKey, &options); err != nil {
			log.Printf("passgen: load options: %v", err)
			options = passgen.DefaultOptions()
		}
	}

	lengthLabel := widget.NewLabel(fmt.Sprintf("Length: %d", options.Length))
	lengthSlider := widget.NewSlider(4, 64)
	lengthSlider.Step = 1
	lengthSlider.Value = float64(options.Length)
	lengthSlider.OnChanged = func(value float64) {
		options.Length = int(value)
		lengthLabel.SetText(fmt.Sprintf("Length: %d", options.Length))
	}

	lowerCheck := widget.NewCheck("Lowercase (a-z)", func(checked bool) { options.Lower = checked })
	lowerCheck.SetChecked(options.Lower)
	upperCheck := widget.NewCheck("Uppercase (A-Z)", func(checked bool) { options.Upper = checked })
	upperCheck.SetChecked(options.Upper)
	digitsCheck := widget.NewCheck("Digits (0-9)", func(checked bool) { options.Digits = checked })
	digitsCheck.SetChecked(options.Digits)
	symbolsCheck := widget.NewCheck("Symbols (!@#...)", func(checked bool) { options.Symbols = checked })
	symbolsCheck.SetChecked(options.Symbols)

	output := widget.NewEntry()
	output.TextStyle = fyne.TextStyle{Monospace: true}
	output.PlaceHolder = "Generated password appears here"

	generateButton := widget.NewButton("Generate", func() {
		password, err := passgen.Generate(options)
		if err != nil {
			output.SetText("")
			output.PlaceHolder = err.Error()
			output.Refresh()
			return
		}
		output.SetText(password)
		if store != nil {
			if err := store.Save(passgenOptionsKey, options); err != nil {
				log.Printf("passgen: save options: %v", err)
			}
		}
	})
	generateButton.Importance = widget.HighImportance

	copyButton := widget.NewButton("Copy", func() {
		if output.Text != "" {
			app.Clipboard().SetContent(output.Text)
		}
	})

	return container.NewVBox(
		lengthLabel,
		lengthSlider,
		lowerCheck,
		upperCheck,
		digitsCheck,
		symbolsCheck,
		output,
		container.NewGridWithColumns(2, generateButton, copyButton),
	)
}

// newTextstatView builds the word counter tool: statistics update on every
// keystroke.
func newTextstatView() fyne.CanvasObject {
	results := widget.NewLabel("")
	results.Wrapping = fyne.TextWrapWord

	input := widget.NewMultiLineEntry()
	input.PlaceHolder = "Paste or type text here..."
	input.Wrapping = fyne.TextWrapWord

	render := func(text string) {
		stats := textstat.Analyze(text)
		results.SetText(fmt.Sprintf(
			"Characters: %d (%d without spaces)\nWords: %d\nSentences: %d\nLines: %d\nParagraphs: %d\nReading time: ~%s",
			stats.Characters, stats.CharactersNoSpace,
			stats.Words, stats.Sentences, stats.Lines, stats.Paragraphs,
			stats.ReadingTime.Round(time.Second),
		))
	}
	input.OnChanged = render
	render("")

	return container.NewBorder(nil, results, nil, nil, input)
}

// newStegoView builds the zero-width steganography tool.
func newStegoView(app fyne.App) fyne.CanvasObject {
	coverEntry := widget.NewMultiLineEntry()
	coverEntry.PlaceHolder = "Cover text (what everyone sees)"
	secretEntry := widget.NewEntry()
	secretEntry.PlaceHolder = "Secret message"
	encodedOutput := widget.NewMultiLineEntry()
	encodedOutput.PlaceHolder = "Encoded text appears here"

	encodeButton := widget.NewButton("Hide Message", func() {
		encodedOutput.SetText(stego.Encode(coverEntry.Text, secretEntry.Text))
	})
	encodeButton.Importance = widget.HighImportance
	copyButton := widget.NewButton("Copy", func() {
		if encodedOutput.Text != "" {
			app.Clipboard().SetContent(encodedOutput.Text)
		}
	})

	encodeTab := container.NewVBox(
		coverEntry,
		secretEntry,
		container.NewGridWithColumns(2, encodeButton, copyButton),
		encodedOutput,
	)

	decodeInput := widget.NewMultiLineEntry()
	decodeInput.PlaceHolder = "Paste text that may contain a hidden message"
	decodedLabel := widget.NewLabel("")
	decodedLabel.Wrapping = fyne.TextWrapWord

	decodeButton := widget.NewButton("Reveal Message", func() {
		secret, found := stego.Decode(decodeInput.Text)
		if !found {
			decodedLabel.SetText("No hidden message found.")
			return
		}
		decodedLabel.SetText("Hidden message: " + secret)
	})

	decodeTab := container.NewVBox(decodeInput, decodeButton, decodedLabel)

	return container.NewAppTabs(
		container.NewTabItem("Encode", encodeTab),
		container.NewTabItem("Decode", decodeTab),
	)
}

// newDiffView builds the diff viewer tool.
func newDiffView() fyne.CanvasObject {
	beforeEntry := widget.NewMultiLineEntry()
	beforeEntry.PlaceHolder = "Original text"
	afterEntry := widget.NewMultiLineEntry()
	afterEntry.PlaceHolder = "Changed text"

	result := widget.NewMultiLineEntry()
	result.TextStyle = fyne.TextStyle{Monospace: true}
	similarityLabel := widget.NewLabel("")

	compareButton := widget.NewButton("Compare", func() {
		diff, err := diffview.Unified(beforeEntry.Text, afterEntry.Text, "original", "changed")
		if err != nil {
			similarityLabel.SetText(err.Error())
			return
		}
		result.SetText(diff)
		similarityLabel.SetText(fmt.Sprintf("Similarity: %.0f%%",
			diffview.Similarity(beforeEntry.Text, afterEntry.Text)*100))
	})
	compareButton.Importance = widget.HighImportance

	inputs := container.NewGridWithColumns(2, beforeEntry, afterEntry)
	return container.NewBorder(
		nil,
		container.NewVBox(compareButton, similarityLabel, result),
		nil, nil,
		inputs,
	)
}

// newMarkdownView builds the markdown previewer: live rendered preview on
// the right, HTML export to the clipboard.
func newMarkdownView(app fyne.App, window fyne.Window) fyne.CanvasObject {
	preview := widget.NewRichTextFromMarkdown("")
	preview.Wrapping = fyne.TextWrapWord

	input := widget.NewMultiLineEntry()
	input.PlaceHolder = "# Markdown source..."
	input.OnChanged = func(text string) {
		preview.ParseMarkdown(text)
	}

	exportButton := widget.NewButton("Copy as HTML", func() {
		html, err := mdpreview.ToHTML(input.Text)
		if err != nil {
			dialog.ShowError(err, window)
			return
		}
		app.Clipboard().SetContent(html)
	})

	split := container.NewGridWithColumns(2, input, container.NewVScroll(preview))
	return container.NewBorder(nil, exportButton, nil, nil, split)
}
