package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/imgforge/img-converter/internal/config"
	"github.com/imgforge/img-converter/internal/convert"
	"github.com/imgforge/img-converter/internal/platform"
	"github.com/imgforge/img-converter/internal/scan"
	"github.com/imgforge/img-converter/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.imgforge.img-converter"
	AppName = "Image Converter"

	WindowWidth  = 800
	WindowHeight = 640
)

func main() {
	// Log version information
	fmt.Printf("Image Converter v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Ensure a usable default output directory exists
	settings := config.NewSettings(myApp)
	if outputDir := settings.GetOutputDirectory(); outputDir != "" {
		if err := platform.CreateDirectoryIfNotExists(outputDir); err != nil {
			fmt.Printf("failed to ensure output dir: %v\n", err)
		}
	}

	// Initialize services
	scanSvc := scan.NewService()
	convertSvc := convert.NewService()

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, scanSvc, convertSvc)

	// Show and run
	myWindow.ShowAndRun()
}
