package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/imgforge/img-converter/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	// UI components
	workerEntry       *widget.Entry
	maxDimensionEntry *widget.Entry
	suffixEntry       *widget.Entry
	onSaved           func()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Parallel conversion workers
	sd.workerEntry = widget.NewEntry()
	sd.workerEntry.SetPlaceHolder("1-16")

	// Optional downscale bound
	sd.maxDimensionEntry = widget.NewEntry()
	sd.maxDimensionEntry.SetPlaceHolder("0 keeps the original size")

	// Default filename suffix
	sd.suffixEntry = widget.NewEntry()
	sd.suffixEntry.SetPlaceHolder("_out")

	form := container.NewVBox(
		widget.NewLabel("Conversion Settings"),
		widget.NewSeparator(),

		widget.NewLabel("Parallel Workers:"),
		sd.workerEntry,

		widget.NewLabel("Max Image Dimension (px):"),
		sd.maxDimensionEntry,

		widget.NewLabel("Default Filename Suffix:"),
		sd.suffixEntry,
	)

	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogW, SettingsDialogH))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.workerEntry.SetText(strconv.Itoa(sd.settings.GetWorkerCount()))
	sd.maxDimensionEntry.SetText(strconv.Itoa(sd.settings.GetMaxDimension()))
	sd.suffixEntry.SetText(sd.settings.GetFilenameSuffix())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if workers, err := strconv.Atoi(sd.workerEntry.Text); err == nil {
		sd.settings.SetWorkerCount(workers)
	}

	if maxDim, err := strconv.Atoi(sd.maxDimensionEntry.Text); err == nil {
		sd.settings.SetMaxDimension(maxDim)
	}

	sd.settings.SetFilenameSuffix(sd.suffixEntry.Text)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
