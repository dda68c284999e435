// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/stemforge/stemnorm/pipeline"
)

type normalizerUI struct {
	window fyne.Window

	inputEntry    *widget.Entry
	outputEntry   *widget.Entry
	targetEntry   *widget.Entry
	continueCheck *widget.Check

	normalizeBtn *widget.Button
	progressBar  *widget.ProgressBar
	statusLog    *widget.Entry
}

func main() {
	a := app.NewWithID("com.stemforge.stemnorm")

	w := a.NewWindow("Audio Stem Normalizer")
	w.Resize(fyne.NewSize(560, 480))

	ui := &normalizerUI{window: w}
	ui.setupUI()

	w.ShowAndRun()
}

func (ui *normalizerUI) setupUI() {
	ui.inputEntry = widget.NewEntry()
	ui.inputEntry.SetPlaceHolder("Folder with one subfolder per song")
	browseInput := widget.NewButton("Browse...", func() { ui.pickFolder(ui.inputEntry) })

	ui.outputEntry = widget.NewEntry()
	ui.outputEntry.SetPlaceHolder("Folder for the adjusted stems")
	browseOutput := widget.NewButton("Browse...", func() { ui.pickFolder(ui.outputEntry) })

	ui.targetEntry = widget.NewEntry()
	ui.targetEntry.SetText("-14.0")

	ui.continueCheck = widget.NewCheck("Continue past folder errors", nil)

	ui.normalizeBtn = widget.NewButton("Normalize", ui.startRun)

	ui.progressBar = widget.NewProgressBar()

	ui.statusLog = widget.NewMultiLineEntry()
	ui.statusLog.Disable()
	ui.statusLog.SetPlaceHolder("Processing log will appear here...")

	form := container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel("Input Folder:"), browseInput, ui.inputEntry),
		container.NewBorder(nil, nil, widget.NewLabel("Output Folder:"), browseOutput, ui.outputEntry),
		container.NewBorder(nil, nil, widget.NewLabel("Target Loudness (LUFS):"), nil, ui.targetEntry),
		ui.continueCheck,
		widget.NewSeparator(),
		ui.normalizeBtn,
		ui.progressBar,
	)

	ui.window.SetContent(container.NewBorder(form, nil, nil, nil, ui.statusLog))
}

func (ui *normalizerUI) pickFolder(entry *widget.Entry) {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}

		entry.SetText(uri.Path())
	}, ui.window)
}

func (ui *normalizerUI) startRun() {
	input := strings.TrimSpace(ui.inputEntry.Text)
	output := strings.TrimSpace(ui.outputEntry.Text)

	if input == "" || output == "" {
		dialog.ShowError(errors.New("select an input and an output folder"), ui.window)
		return
	}

	target, err := strconv.ParseFloat(strings.TrimSpace(ui.targetEntry.Text), 64)
	if err != nil {
		dialog.ShowError(fmt.Errorf("invalid target loudness: %w", err), ui.window)
		return
	}

	ui.normalizeBtn.Disable()
	ui.progressBar.SetValue(0)
	ui.statusLog.SetText("")

	// All the work happens off the UI thread; everything that touches
	// a widget afterwards goes through fyne.Do.
	go ui.run(input, output, target, ui.continueCheck.Checked)
}

func (ui *normalizerUI) run(input, output string, target float64, keepGoing bool) {
	report, err := pipeline.Run(input, output, target, pipeline.Options{
		ContinueOnError: keepGoing,
		Status:          ui.logStatus,
		Progress: func(done, total int) {
			fyne.Do(func() {
				ui.progressBar.SetValue(float64(done) / float64(total))
			})
		},
	})

	fyne.Do(func() {
		ui.progressBar.SetValue(0)
		ui.normalizeBtn.Enable()

		if err != nil {
			dialog.ShowError(fmt.Errorf("an error occurred: %w", err), ui.window)
			return
		}

		var warnings []string
		if report != nil {
			for _, folder := range report.VerificationFailures() {
				warnings = append(warnings, "verification failed: "+folder)
			}
			for _, ferr := range report.Errs() {
				warnings = append(warnings, ferr.Error())
			}
		}

		if len(warnings) > 0 {
			dialog.ShowInformation("Finished with warnings", strings.Join(warnings, "\n"), ui.window)
			return
		}

		dialog.ShowInformation("Success", "All stems have been processed successfully.", ui.window)
	})
}

func (ui *normalizerUI) logStatus(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	fyne.Do(func() {
		current := ui.statusLog.Text
		if current != "" {
			current += "\n"
		}

		ui.statusLog.SetText(current + msg)
	})
}
