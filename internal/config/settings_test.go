package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/imgforge/img-converter/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestOutputFormat(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	format := settings.GetOutputFormat()
	if format != DefaultOutputFormat {
		t.Errorf("Expected default output format %s, got %s", DefaultOutputFormat, format)
	}

	// Test setting custom value
	settings.SetOutputFormat(model.FormatWEBP)
	if settings.GetOutputFormat() != model.FormatWEBP {
		t.Errorf("Expected output format WEBP, got %s", settings.GetOutputFormat())
	}
}

func TestInputFormat(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetInputFormat() != model.FormatAuto {
		t.Errorf("Expected default input format Auto-detect, got %s", settings.GetInputFormat())
	}

	settings.SetInputFormat(model.FormatPNG)
	if settings.GetInputFormat() != model.FormatPNG {
		t.Errorf("Expected input format PNG, got %s", settings.GetInputFormat())
	}
}

func TestRecursiveScan(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetRecursiveScan() {
		t.Error("Recursive scan should default to true")
	}

	settings.SetRecursiveScan(false)
	if settings.GetRecursiveScan() {
		t.Error("Expected recursive scan to be false after setting")
	}
}

func TestFilenameSuffix(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	suffix := settings.GetFilenameSuffix()
	if suffix != DefaultSuffix {
		t.Errorf("Expected default suffix %s, got %s", DefaultSuffix, suffix)
	}

	// Test setting custom value
	settings.SetFilenameSuffix("_converted")
	if settings.GetFilenameSuffix() != "_converted" {
		t.Errorf("Expected suffix '_converted', got %s", settings.GetFilenameSuffix())
	}

	// Test empty suffix defaults back
	settings.SetFilenameSuffix("")
	if settings.GetFilenameSuffix() != DefaultSuffix {
		t.Errorf("Empty suffix should default to %s, got %s", DefaultSuffix, settings.GetFilenameSuffix())
	}
}

func TestHEICQuality(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	quality := settings.GetHEICQuality()
	if quality != DefaultHEICQuality {
		t.Errorf("Expected default HEIC quality %d, got %d", DefaultHEICQuality, quality)
	}

	// Test setting custom value
	settings.SetHEICQuality(75)
	if settings.GetHEICQuality() != 75 {
		t.Errorf("Expected HEIC quality 75, got %d", settings.GetHEICQuality())
	}

	// Test boundary values
	settings.SetHEICQuality(0) // Should be clamped to 1
	if settings.GetHEICQuality() != 1 {
		t.Error("HEIC quality should be clamped to minimum 1")
	}

	settings.SetHEICQuality(150) // Should be clamped to 100
	if settings.GetHEICQuality() != 100 {
		t.Error("HEIC quality should be clamped to maximum 100")
	}

	// A value persisted out of range (e.g. by an older build) is clamped
	// on read, not returned as-is
	app.Preferences().SetInt(KeyHEICQuality, 250)
	if settings.GetHEICQuality() != 100 {
		t.Errorf("Expected persisted out-of-range quality clamped to 100, got %d", settings.GetHEICQuality())
	}
	if app.Preferences().Int(KeyHEICQuality) != 100 {
		t.Error("Expected out-of-range preference normalized on read")
	}
}

func TestWorkerCount(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	workers := settings.GetWorkerCount()
	if workers != DefaultWorkerCount() {
		t.Errorf("Expected default worker count %d, got %d", DefaultWorkerCount(), workers)
	}

	// Test setting custom value
	settings.SetWorkerCount(8)
	if settings.GetWorkerCount() != 8 {
		t.Errorf("Expected worker count 8, got %d", settings.GetWorkerCount())
	}

	// Test boundary values
	settings.SetWorkerCount(0) // Should be clamped to 1
	if settings.GetWorkerCount() != 1 {
		t.Error("Worker count should be clamped to minimum 1")
	}

	settings.SetWorkerCount(99) // Should be clamped to 16
	if settings.GetWorkerCount() != 16 {
		t.Error("Worker count should be clamped to maximum 16")
	}
}

func TestDefaultWorkerCount(t *testing.T) {
	workers := DefaultWorkerCount()
	if workers < MinWorkerCount || workers > 4 {
		t.Errorf("Default worker count %d outside expected range [1, 4]", workers)
	}
}

func TestOutputDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Empty by default: outputs go next to the source
	if settings.GetOutputDirectory() != "" {
		t.Errorf("Expected empty default output directory, got %s", settings.GetOutputDirectory())
	}

	settings.SetOutputDirectory("/pics/out")
	if settings.GetOutputDirectory() != "/pics/out" {
		t.Errorf("Expected output directory '/pics/out', got %s", settings.GetOutputDirectory())
	}
}

func TestReplaceOriginals(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetReplaceOriginals() {
		t.Error("Replace originals should default to false")
	}

	settings.SetReplaceOriginals(true)
	if !settings.GetReplaceOriginals() {
		t.Error("Expected replace originals to be true after setting")
	}
}

func TestMaxDimension(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetMaxDimension() != 0 {
		t.Errorf("Expected max dimension disabled by default, got %d", settings.GetMaxDimension())
	}

	settings.SetMaxDimension(2048)
	if settings.GetMaxDimension() != 2048 {
		t.Errorf("Expected max dimension 2048, got %d", settings.GetMaxDimension())
	}

	settings.SetMaxDimension(-5) // Negative disables
	if settings.GetMaxDimension() != 0 {
		t.Error("Negative max dimension should disable downscaling")
	}
}
