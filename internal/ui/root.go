package ui

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/imgforge/img-converter/internal/config"
	"github.com/imgforge/img-converter/internal/convert"
	"github.com/imgforge/img-converter/internal/model"
	"github.com/imgforge/img-converter/internal/platform"
	"github.com/imgforge/img-converter/internal/scan"
	"github.com/imgforge/img-converter/internal/selection"
)

// RootUI represents the main UI structure
type RootUI struct {
	window     fyne.Window
	settings   *config.Settings
	scanSvc    *scan.Service
	convertSvc convert.Converter

	// Source selection
	pathEntry         *widget.Entry
	recursiveCheck    *widget.Check
	inputFormatSelect *widget.Select
	fileTree          *FileTree
	selectedLabel     *widget.Label

	// Conversion options
	outputFormatSelect *widget.Select
	heicQualityRow     *fyne.Container
	heicQualitySlider  *widget.Slider
	heicQualityValue   *widget.Label
	outputDirEntry     *widget.Entry
	suffixEntry        *widget.Entry
	appendSuffixCheck  *widget.Check
	replaceCheck       *widget.Check
	outputOptionsBox   *fyne.Container

	// Progress and logging
	convertBtn    *widget.Button
	cancelBtn     *widget.Button
	progressBar   *widget.ProgressBar
	progressLabel *widget.Label
	logList       *widget.List
	logLines      []string
	logMutex      sync.Mutex

	// Progress counters for the running batch
	progressMutex sync.Mutex
	completedJobs int
	totalJobs     int

	// UI update debouncing
	lastUIUpdate  time.Time
	uiUpdateMutex sync.Mutex

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, scanSvc *scan.Service, convertSvc convert.Converter) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	ui := &RootUI{
		window:     window,
		settings:   settings,
		scanSvc:    scanSvc,
		convertSvc: convertSvc,
	}

	log.Printf("RootUI initialized with convert service: %v", ui.convertSvc != nil)

	// Set up service callbacks
	ui.scanSvc.SetCompleteCallback(ui.onScanComplete)
	ui.convertSvc.SetUpdateCallback(ui.onJobUpdate)
	ui.convertSvc.SetBatchDoneCallback(ui.onBatchDone)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Source path entry
	ui.pathEntry = widget.NewEntry()
	ui.pathEntry.SetPlaceHolder("Select an image file or a directory to scan")
	// Trigger a scan when the user presses Enter in the path field
	ui.pathEntry.OnSubmitted = func(string) {
		ui.onScanClick()
	}

	selectFileBtn := widget.NewButton("Select File", ui.onSelectFile)
	selectDirBtn := widget.NewButton("Select Folder", ui.onSelectDirectory)

	// Settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Create logo
	logo, err := LoadLogoResource()
	var logoImage *canvas.Image
	if err == nil {
		logoImage = canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
	}

	var leading *fyne.Container
	if logoImage != nil {
		leading = container.NewHBox(logoImage, settingsBtn)
	} else {
		leading = container.NewHBox(settingsBtn)
	}
	topPanel := container.NewBorder(nil, nil, leading, container.NewHBox(selectFileBtn, selectDirBtn), ui.pathEntry)

	// Scan options row
	ui.recursiveCheck = widget.NewCheck("Include subdirectories", func(checked bool) {
		ui.settings.SetRecursiveScan(checked)
		ui.rescanIfPathSet()
	})
	ui.recursiveCheck.SetChecked(ui.settings.GetRecursiveScan())

	ui.inputFormatSelect = widget.NewSelect(formatOptions(model.InputFormats()), func(selected string) {
		ui.settings.SetInputFormat(model.Format(selected))
		ui.rescanIfPathSet()
	})
	ui.inputFormatSelect.SetSelected(ui.settings.GetInputFormat().String())

	rescanBtn := widget.NewButton("Rescan", ui.onScanClick)
	selectAllBtn := widget.NewButton("All", func() { ui.fileTree.SetAllChecked(true) })
	selectNoneBtn := widget.NewButton("None", func() { ui.fileTree.SetAllChecked(false) })
	ui.selectedLabel = widget.NewLabel("0 of 0 files selected")

	scanRow := container.NewHBox(
		ui.recursiveCheck,
		widget.NewLabel("Input:"),
		ui.inputFormatSelect,
		rescanBtn,
		selectAllBtn,
		selectNoneBtn,
		ui.selectedLabel,
	)

	// Notification panel under the path row (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	topCombined := container.NewVBox(topPanel, scanRow, ui.notificationContainer)

	// File selection tree
	ui.fileTree = NewFileTree(ui.updateSelectedCount)

	// Conversion log
	ui.logList = widget.NewList(
		func() int {
			ui.logMutex.Lock()
			defer ui.logMutex.Unlock()
			return len(ui.logLines)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			ui.logMutex.Lock()
			defer ui.logMutex.Unlock()
			if id < len(ui.logLines) {
				obj.(*widget.Label).SetText(ui.logLines[id])
			}
		},
	)

	clearLogBtn := widget.NewButton("Clear Log", ui.onClearLog)
	clearLogBtn.Importance = widget.LowImportance
	logHeader := container.NewBorder(nil, nil, widget.NewLabel("Log"), clearLogBtn)
	logPane := container.NewBorder(logHeader, nil, nil, nil, ui.logList)

	centerSplit := container.NewVSplit(ui.fileTree.Widget(), logPane)
	centerSplit.Offset = 0.72

	// Output options
	ui.outputFormatSelect = widget.NewSelect(formatOptions(model.OutputFormats()), ui.onOutputFormatChanged)

	ui.heicQualityValue = widget.NewLabel("")
	ui.heicQualitySlider = widget.NewSlider(1, 100)
	ui.heicQualitySlider.Step = 1
	ui.heicQualitySlider.OnChanged = func(value float64) {
		ui.settings.SetHEICQuality(int(value))
		ui.heicQualityValue.SetText(fmt.Sprintf("%d", int(value)))
	}
	ui.heicQualitySlider.SetValue(float64(ui.settings.GetHEICQuality()))
	ui.heicQualityValue.SetText(fmt.Sprintf("%d", ui.settings.GetHEICQuality()))
	ui.heicQualityRow = container.NewBorder(nil, nil, widget.NewLabel("HEIC quality:"), ui.heicQualityValue, ui.heicQualitySlider)

	formatRow := container.NewBorder(nil, nil, widget.NewLabel("Convert to:"), nil, ui.outputFormatSelect)

	ui.outputDirEntry = widget.NewEntry()
	ui.outputDirEntry.SetPlaceHolder("Same directory as source")
	ui.outputDirEntry.SetText(ui.settings.GetOutputDirectory())
	browseDirBtn := widget.NewButton("Browse", ui.onBrowseOutputDirectory)
	outputDirRow := container.NewBorder(nil, nil, widget.NewLabel("Output folder:"), browseDirBtn, ui.outputDirEntry)

	ui.suffixEntry = widget.NewEntry()
	ui.suffixEntry.SetPlaceHolder(convert.DefaultSuffix)
	ui.suffixEntry.SetText(ui.settings.GetFilenameSuffix())
	ui.appendSuffixCheck = widget.NewCheck("Append suffix:", func(checked bool) {
		ui.settings.SetAppendSuffix(checked)
		if checked {
			ui.suffixEntry.Enable()
		} else {
			ui.suffixEntry.Disable()
		}
	})
	ui.appendSuffixCheck.SetChecked(ui.settings.GetAppendSuffix())
	if !ui.appendSuffixCheck.Checked {
		ui.suffixEntry.Disable()
	}
	suffixRow := container.NewBorder(nil, nil, ui.appendSuffixCheck, nil, ui.suffixEntry)

	ui.outputOptionsBox = container.NewVBox(outputDirRow, suffixRow)

	ui.replaceCheck = widget.NewCheck("Replace original files", ui.onReplaceToggled)
	ui.replaceCheck.SetChecked(ui.settings.GetReplaceOriginals())
	ui.onReplaceToggled(ui.settings.GetReplaceOriginals())

	optionsBox := container.NewVBox(
		formatRow,
		ui.heicQualityRow,
		ui.outputOptionsBox,
		ui.replaceCheck,
	)

	// Set the initial output format after the quality row exists so the
	// select callback can toggle its visibility.
	ui.outputFormatSelect.SetSelected(ui.settings.GetOutputFormat().String())

	// Progress and action row
	ui.progressBar = widget.NewProgressBar()
	ui.progressLabel = widget.NewLabel(fmt.Sprintf(ProgressLabelFormat, 0, 0))
	progressRow := container.NewBorder(nil, nil, nil, ui.progressLabel, ui.progressBar)

	ui.convertBtn = widget.NewButton("Convert", ui.onConvertClick)
	ui.convertBtn.Importance = widget.HighImportance
	ui.cancelBtn = widget.NewButton("Cancel", ui.onCancelClick)
	ui.cancelBtn.Disable()
	buttonRow := container.NewGridWithColumns(2, ui.convertBtn, ui.cancelBtn)

	bottomPanel := container.NewVBox(
		widget.NewSeparator(),
		optionsBox,
		progressRow,
		buttonRow,
	)

	content := container.NewBorder(
		topCombined, // top
		bottomPanel, // bottom
		nil,         // left
		nil,         // right
		centerSplit, // center - file tree and log
	)

	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem("Settings", ui.onShowSettings)

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu("File", settingsItem),
	)

	ui.window.SetMainMenu(mainMenu)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, func() {
		widget.ShowPopUp(widget.NewLabel("Settings saved"), ui.window.Canvas())
	}).Show()
}

// onSelectFile opens a file picker restricted to supported image extensions.
func (ui *RootUI) onSelectFile() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		log.Printf("File selected: %s", path)
		ui.pathEntry.SetText(path)
		ui.startScan(path)
	}, ui.window)
	fileDialog.SetFilter(storage.NewExtensionFileFilter(model.FormatAuto.Extensions()))
	fileDialog.SetLocation(ui.pickerStartLocation(ui.pathEntry.Text))
	fileDialog.Show()
}

// onSelectDirectory opens a folder picker.
func (ui *RootUI) onSelectDirectory() {
	folderDialog := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		path := uri.Path()

		log.Printf("Directory selected: %s", path)
		ui.pathEntry.SetText(path)
		ui.startScan(path)
	}, ui.window)
	folderDialog.SetLocation(ui.pickerStartLocation(ui.pathEntry.Text))
	folderDialog.Show()
}

// onBrowseOutputDirectory picks the output directory.
func (ui *RootUI) onBrowseOutputDirectory() {
	folderDialog := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.outputDirEntry.SetText(uri.Path())
		ui.settings.SetOutputDirectory(uri.Path())
	}, ui.window)
	folderDialog.SetLocation(ui.pickerStartLocation(ui.outputDirEntry.Text))
	folderDialog.Show()
}

// pickerStartLocation resolves the initial directory for file pickers: the
// last used path when one is set, otherwise the user's Pictures directory.
// Returns nil (dialog default) when neither resolves.
func (ui *RootUI) pickerStartLocation(current string) fyne.ListableURI {
	dir := strings.TrimSpace(current)
	if dir == "" {
		pictures, err := platform.GetHomePicturesDir()
		if err != nil {
			return nil
		}
		dir = pictures
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	lister, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		return nil
	}
	return lister
}

// onScanClick starts a scan of the entered path.
func (ui *RootUI) onScanClick() {
	path := strings.TrimSpace(ui.pathEntry.Text)
	if path == "" {
		widget.ShowPopUp(widget.NewLabel("Please select a file or directory first"), ui.window.Canvas())
		return
	}
	ui.startScan(path)
}

// rescanIfPathSet re-runs the scan when options change and a path is present.
func (ui *RootUI) rescanIfPathSet() {
	if strings.TrimSpace(ui.pathEntry.Text) != "" {
		ui.startScan(strings.TrimSpace(ui.pathEntry.Text))
	}
}

// startScan kicks off a background scan of the given root.
func (ui *RootUI) startScan(root string) {
	if ui.scanSvc.IsScanning() {
		log.Printf("Scan already in progress, ignoring request for %s", root)
		return
	}

	log.Printf("Starting scan: root=%s recursive=%v filter=%s",
		root, ui.recursiveCheck.Checked, ui.inputFormatSelect.Selected)

	ui.showNotification("Scanning "+root, true)

	ui.scanSvc.ScanAsync(root, scan.Options{
		Recursive: ui.recursiveCheck.Checked,
		Filter:    model.Format(ui.inputFormatSelect.Selected),
	})
}

// onScanComplete receives scan results from the background scan goroutine.
func (ui *RootUI) onScanComplete(result scan.Result, err error) {
	fyne.Do(func() {
		ui.hideNotification()

		if err != nil {
			log.Printf("Scan failed: %v", err)
			ui.fileTree.Clear()
			widget.ShowPopUp(widget.NewLabel("Scan failed: "+err.Error()), ui.window.Canvas())
			return
		}

		log.Printf("Scan completed: root=%s files=%d skipped=%d",
			result.Root, len(result.Files), len(result.Skipped))

		ui.fileTree.SetNodes(selection.New(result.Root, result.Files))

		for _, skipped := range result.Skipped {
			ui.appendLog(IconError + " Skipped during scan: " + skipped.Error())
		}
		if len(result.Files) == 0 {
			ui.appendLog("No supported images found in " + result.Root)
		}
	})
}

// updateSelectedCount refreshes the "N of M files selected" label.
func (ui *RootUI) updateSelectedCount() {
	checked, total := ui.fileTree.Counts()
	ui.selectedLabel.SetText(fmt.Sprintf("%d of %d files selected", checked, total))
}

// onOutputFormatChanged stores the target format and toggles the HEIC quality row.
func (ui *RootUI) onOutputFormatChanged(selected string) {
	format := model.Format(selected)
	ui.settings.SetOutputFormat(format)

	if format == model.FormatHEIC {
		ui.heicQualityRow.Show()
	} else {
		ui.heicQualityRow.Hide()
	}
}

// onReplaceToggled stores the replace flag and hides the output options, since
// replace mode always writes next to the source without a suffix.
func (ui *RootUI) onReplaceToggled(checked bool) {
	ui.settings.SetReplaceOriginals(checked)

	if checked {
		ui.outputOptionsBox.Hide()
	} else {
		ui.outputOptionsBox.Show()
	}
}

// onConvertClick validates the selection and submits the batch.
func (ui *RootUI) onConvertClick() {
	if ui.convertSvc.IsRunning() {
		widget.ShowPopUp(widget.NewLabel("A conversion is already running"), ui.window.Canvas())
		return
	}

	files := ui.fileTree.CheckedFiles()
	if len(files) == 0 {
		widget.ShowPopUp(widget.NewLabel("No files selected"), ui.window.Canvas())
		return
	}

	suffix := ""
	if ui.appendSuffixCheck.Checked {
		suffix = ui.suffixEntry.Text
	}
	outputDir := strings.TrimSpace(ui.outputDirEntry.Text)

	// Persist current choices for the next run
	ui.settings.SetFilenameSuffix(ui.suffixEntry.Text)
	ui.settings.SetOutputDirectory(outputDir)

	opts := convert.BatchOptions{
		TargetFormat: model.Format(ui.outputFormatSelect.Selected),
		OutputDir:    outputDir,
		Suffix:       suffix,
		ReplaceFiles: ui.replaceCheck.Checked,
		HEICQuality:  ui.settings.GetHEICQuality(),
		MaxDimension: ui.settings.GetMaxDimension(),
	}
	requests := convert.NewRequests(files, opts)

	ui.progressMutex.Lock()
	ui.completedJobs = 0
	ui.totalJobs = len(requests)
	ui.progressMutex.Unlock()
	ui.progressBar.SetValue(0)
	ui.progressLabel.SetText(fmt.Sprintf(ProgressLabelFormat, 0, len(requests)))

	batchID, err := ui.convertSvc.StartBatch(requests, ui.settings.GetWorkerCount())
	if err != nil {
		log.Printf("Failed to start batch: %v", err)
		widget.ShowPopUp(widget.NewLabel("Error: "+err.Error()), ui.window.Canvas())
		return
	}

	log.Printf("Batch started: id=%s files=%d target=%s workers=%d",
		batchID, len(requests), opts.TargetFormat, ui.settings.GetWorkerCount())

	ui.appendLog(fmt.Sprintf("Converting %d files to %s", len(requests), opts.TargetFormat))
	ui.convertBtn.Disable()
	ui.cancelBtn.Enable()
}

// onCancelClick requests cooperative cancellation of the running batch.
func (ui *RootUI) onCancelClick() {
	log.Printf("Cancellation requested")
	ui.convertSvc.Cancel()
	ui.cancelBtn.Disable()
	ui.appendLog("Cancellation requested, finishing jobs in progress")
}

// onJobUpdate handles job updates from the conversion workers.
func (ui *RootUI) onJobUpdate(job *model.ConversionJob) {
	log.Printf("Job update: id=%s status=%s source=%s", job.ID, job.Status, job.Request.SourcePath)

	if !job.Status.IsFinished() {
		return
	}

	ui.progressMutex.Lock()
	ui.completedJobs++
	completed := ui.completedJobs
	total := ui.totalJobs
	ui.progressMutex.Unlock()

	line := ""
	switch job.Status {
	case model.JobStatusCompleted:
		line = "Converted " + job.DisplayName() + " → " + job.Request.OutputPath
	case model.JobStatusSkipped:
		line = "Skipped " + job.DisplayName()
	case model.JobStatusError:
		line = IconError + " Failed " + job.DisplayName() + ": " + job.LastError
	case model.JobStatusCancelled:
		line = "Cancelled " + job.DisplayName()
	}

	fyne.Do(func() {
		if total > 0 {
			ui.progressBar.SetValue(float64(completed) / float64(total))
		}
		ui.progressLabel.SetText(fmt.Sprintf(ProgressLabelFormat, completed, total))
		if line != "" {
			ui.appendLog(line)
		}
	})

	ui.debouncedUIUpdate()
}

// onBatchDone handles batch completion from the conversion service.
func (ui *RootUI) onBatchDone(summary model.BatchSummary) {
	log.Printf("Batch finished: id=%s %s elapsed=%s", summary.BatchID, summary, summary.Elapsed)

	fyne.Do(func() {
		ui.convertBtn.Enable()
		ui.cancelBtn.Disable()
		ui.appendLog("Finished: " + summary.String())

		fyne.CurrentApp().SendNotification(&fyne.Notification{
			Title:   "Conversion complete",
			Content: summary.String(),
		})

		ui.showToastNotification(summary)
	})
}

// showToastNotification shows an in-app toast with the batch outcome and a
// shortcut to reveal the first converted file.
func (ui *RootUI) showToastNotification(summary model.BatchSummary) {
	titleLabel := widget.NewLabel("Conversion complete")
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(summary.String())
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	firstOutput := ""
	for _, result := range summary.Results {
		if result.Outcome == model.OutcomeSuccess && result.OutputPath != "" {
			firstOutput = result.OutputPath
			break
		}
	}

	var toastPopup *widget.PopUp

	actions := container.NewHBox()
	if firstOutput != "" {
		revealBtn := widget.NewButton("Reveal", func() {
			ui.onRevealFile(firstOutput)
		})
		revealBtn.Importance = widget.HighImportance
		actions.Add(revealBtn)

		openBtn := widget.NewButton("Open", func() {
			ui.onOpenFile(firstOutput)
		})
		openBtn.Importance = widget.MediumImportance
		actions.Add(openBtn)
	}

	closeBtn := widget.NewButton(IconClose, func() {
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, titleLabel, closeBtn)
	content := container.NewVBox(header, messageLabel, actions)

	toastPopup = widget.NewModalPopUp(content, ui.window.Canvas())

	// Position in top-right corner
	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPos := fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin)

	toastPopup.Resize(toastSize)
	toastPopup.Move(toastPos)
	toastPopup.Show()

	// Auto-hide after configured time
	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(func() {
			if toastPopup != nil {
				toastPopup.Hide()
			}
		})
	}()
}

// onRevealFile opens the file in the system file manager.
func (ui *RootUI) onRevealFile(filePath string) {
	log.Printf("onRevealFile called for path: %s", filePath)

	if filePath == "" {
		widget.ShowPopUp(widget.NewLabel("Error: No file path provided"), ui.window.Canvas())
		return
	}

	if err := platform.OpenFileInManager(filePath); err != nil {
		log.Printf("Error revealing file %s: %v", filePath, err)
		widget.ShowPopUp(widget.NewLabel("Error opening file: "+err.Error()), ui.window.Canvas())
		return
	}

	log.Printf("File revealed successfully: %s", filePath)
}

// onOpenFile opens a converted file with the default system application.
func (ui *RootUI) onOpenFile(filePath string) {
	log.Printf("onOpenFile called for path: %s", filePath)

	if filePath == "" {
		widget.ShowPopUp(widget.NewLabel("Error: No file path provided"), ui.window.Canvas())
		return
	}

	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		log.Printf("Error opening file %s: %v", filePath, err)
		widget.ShowPopUp(widget.NewLabel("Error opening file: "+err.Error()), ui.window.Canvas())
		return
	}

	log.Printf("File opened successfully: %s", filePath)
}

// onClearLog empties the conversion log pane.
func (ui *RootUI) onClearLog() {
	ui.logMutex.Lock()
	ui.logLines = nil
	ui.logMutex.Unlock()

	ui.logList.Refresh()
}

// showNotification displays a message in the notification panel under the
// path row. When spinning is true, a spinner indicates background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationSpinner.Hide()
		ui.notificationContainer.Hide()
	})
}

// appendLog adds a line to the conversion log and scrolls it into view.
// Safe to call from the UI thread only; goroutines must wrap it in fyne.Do.
func (ui *RootUI) appendLog(line string) {
	ui.logMutex.Lock()
	ui.logLines = append(ui.logLines, line)
	ui.logMutex.Unlock()

	ui.logList.Refresh()
	ui.logList.ScrollToBottom()
}

// debouncedUIUpdate prevents excessive UI updates by limiting frequency
func (ui *RootUI) debouncedUIUpdate() {
	ui.uiUpdateMutex.Lock()
	defer ui.uiUpdateMutex.Unlock()

	now := time.Now()
	if now.Sub(ui.lastUIUpdate) < UIUpdateDebounce {
		return
	}

	ui.lastUIUpdate = now
}

// formatOptions converts formats to their display strings.
func formatOptions(formats []model.Format) []string {
	options := make([]string, 0, len(formats))
	for _, format := range formats {
		options = append(options, format.String())
	}
	return options
}
