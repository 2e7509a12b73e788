package config

import (
	"runtime"

	"fyne.io/fyne/v2"

	"github.com/imgforge/img-converter/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyOutputFormat     = "output_format"
	KeyInputFormat      = "input_format"
	KeyRecursiveScan    = "recursive_scan"
	KeyFilenameSuffix   = "filename_suffix"
	KeyAppendSuffix     = "append_suffix"
	KeyHEICQuality      = "heic_quality"
	KeyWorkerCount      = "worker_count"
	KeyOutputDirectory  = "output_directory"
	KeyReplaceOriginals = "replace_originals"
	KeyMaxDimension     = "max_dimension"
)

// Default values
const (
	DefaultOutputFormat  = model.FormatJPG
	DefaultInputFormat   = model.FormatAuto
	DefaultRecursiveScan = true
	DefaultSuffix        = "_out"
	DefaultAppendSuffix  = true
	DefaultHEICQuality   = 90
	DefaultMaxDimension  = 0

	MinWorkerCount = 1
	MaxWorkerCount = 16
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetOutputFormat returns the configured output format
func (s *Settings) GetOutputFormat() model.Format {
	value := s.app.Preferences().String(KeyOutputFormat)
	if value == "" {
		s.SetOutputFormat(DefaultOutputFormat)
		return DefaultOutputFormat
	}
	return model.Format(value)
}

// SetOutputFormat sets the output format
func (s *Settings) SetOutputFormat(format model.Format) {
	s.app.Preferences().SetString(KeyOutputFormat, string(format))
}

// GetInputFormat returns the configured input format filter
func (s *Settings) GetInputFormat() model.Format {
	value := s.app.Preferences().String(KeyInputFormat)
	if value == "" {
		s.SetInputFormat(DefaultInputFormat)
		return DefaultInputFormat
	}
	return model.Format(value)
}

// SetInputFormat sets the input format filter
func (s *Settings) SetInputFormat(format model.Format) {
	s.app.Preferences().SetString(KeyInputFormat, string(format))
}

// GetRecursiveScan returns whether directory scans descend into subdirectories
func (s *Settings) GetRecursiveScan() bool {
	return s.app.Preferences().BoolWithFallback(KeyRecursiveScan, DefaultRecursiveScan)
}

// SetRecursiveScan sets the recursive scan flag
func (s *Settings) SetRecursiveScan(recursive bool) {
	s.app.Preferences().SetBool(KeyRecursiveScan, recursive)
}

// GetFilenameSuffix returns the suffix inserted before the output extension
func (s *Settings) GetFilenameSuffix() string {
	value := s.app.Preferences().String(KeyFilenameSuffix)
	if value == "" {
		s.SetFilenameSuffix(DefaultSuffix)
		return DefaultSuffix
	}
	return value
}

// SetFilenameSuffix sets the filename suffix
func (s *Settings) SetFilenameSuffix(suffix string) {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	s.app.Preferences().SetString(KeyFilenameSuffix, suffix)
}

// GetAppendSuffix returns whether the suffix is applied to output filenames
func (s *Settings) GetAppendSuffix() bool {
	return s.app.Preferences().BoolWithFallback(KeyAppendSuffix, DefaultAppendSuffix)
}

// SetAppendSuffix sets whether the suffix is applied
func (s *Settings) SetAppendSuffix(enabled bool) {
	s.app.Preferences().SetBool(KeyAppendSuffix, enabled)
}

// GetHEICQuality returns the HEIC encode quality
func (s *Settings) GetHEICQuality() int {
	value := s.app.Preferences().Int(KeyHEICQuality)
	if value <= 0 {
		s.SetHEICQuality(DefaultHEICQuality)
		return DefaultHEICQuality
	}
	if value > 100 {
		// A preference persisted out of range is normalized on read.
		s.SetHEICQuality(value)
		return 100
	}
	return value
}

// SetHEICQuality sets the HEIC encode quality, clamped to 1..100
func (s *Settings) SetHEICQuality(quality int) {
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}
	s.app.Preferences().SetInt(KeyHEICQuality, quality)
}

// GetWorkerCount returns the worker pool size for conversion batches
func (s *Settings) GetWorkerCount() int {
	value := s.app.Preferences().Int(KeyWorkerCount)
	if value <= 0 {
		value = DefaultWorkerCount()
		s.SetWorkerCount(value)
	}
	return value
}

// SetWorkerCount sets the worker pool size, clamped to the supported range
func (s *Settings) SetWorkerCount(count int) {
	if count < MinWorkerCount {
		count = MinWorkerCount
	}
	if count > MaxWorkerCount {
		count = MaxWorkerCount
	}
	s.app.Preferences().SetInt(KeyWorkerCount, count)
}

// DefaultWorkerCount returns the default pool size for this machine
func DefaultWorkerCount() int {
	workers := runtime.NumCPU()
	if workers > 4 {
		workers = 4
	}
	if workers < MinWorkerCount {
		workers = MinWorkerCount
	}
	return workers
}

// GetOutputDirectory returns the configured output directory; empty means
// outputs are written next to their source files
func (s *Settings) GetOutputDirectory() string {
	return s.app.Preferences().String(KeyOutputDirectory)
}

// SetOutputDirectory sets the output directory
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDirectory, dir)
}

// GetReplaceOriginals returns whether conversions replace the source files
func (s *Settings) GetReplaceOriginals() bool {
	return s.app.Preferences().BoolWithFallback(KeyReplaceOriginals, false)
}

// SetReplaceOriginals sets the replace-originals flag
func (s *Settings) SetReplaceOriginals(replace bool) {
	s.app.Preferences().SetBool(KeyReplaceOriginals, replace)
}

// GetMaxDimension returns the optional downscale bound in pixels (0 = off)
func (s *Settings) GetMaxDimension() int {
	value := s.app.Preferences().IntWithFallback(KeyMaxDimension, DefaultMaxDimension)
	if value < 0 {
		return 0
	}
	return value
}

// SetMaxDimension sets the downscale bound; values below zero disable it
func (s *Settings) SetMaxDimension(pixels int) {
	if pixels < 0 {
		pixels = 0
	}
	s.app.Preferences().SetInt(KeyMaxDimension, pixels)
}
