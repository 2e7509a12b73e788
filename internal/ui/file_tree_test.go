package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/imgforge/img-converter/internal/model"
	"github.com/imgforge/img-converter/internal/selection"
)

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		name     string
		size     int64
		expected string
	}{
		{"bytes", 512, "512 B"},
		{"kilobytes", 2048, "2.0 KB"},
		{"megabytes", 3 << 20, "3.0 MB"},
		{"fractional megabytes", 1572864, "1.5 MB"},
		{"zero", 0, "0 B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatFileSize(tt.size)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestNodeLabel(t *testing.T) {
	dir := &selection.Node{Name: "photos", IsDir: true}
	if label := nodeLabel(dir); label != IconFolder+" photos" {
		t.Errorf("Unexpected directory label: %q", label)
	}

	file := &selection.Node{
		Name: "cat.png",
		File: model.DiscoveredFile{Path: "/tmp/cat.png", Format: model.FormatPNG, Size: 1024},
	}
	expected := IconFile + " cat.png" + MiddleDotSeparator + "1.0 KB"
	if label := nodeLabel(file); label != expected {
		t.Errorf("Expected %q, got %q", expected, label)
	}
}

func TestFileTree_Selection(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	files := []model.DiscoveredFile{
		{Path: "/photos/a.png", Format: model.FormatPNG, Size: 10},
		{Path: "/photos/sub/b.jpg", Format: model.FormatJPG, Size: 20},
	}

	toggles := 0
	ft := NewFileTree(func() { toggles++ })

	// Empty tree reports zero counts
	if checked, total := ft.Counts(); checked != 0 || total != 0 {
		t.Errorf("Expected empty counts, got %d/%d", checked, total)
	}

	ft.SetNodes(selection.New("/photos", files))

	if toggles == 0 {
		t.Error("Expected toggle callback after SetNodes")
	}

	checked, total := ft.Counts()
	if checked != 2 || total != 2 {
		t.Errorf("Expected all files checked initially, got %d/%d", checked, total)
	}

	ft.SetAllChecked(false)
	checked, _ = ft.Counts()
	if checked != 0 {
		t.Errorf("Expected no files checked after SetAllChecked(false), got %d", checked)
	}
	if len(ft.CheckedFiles()) != 0 {
		t.Error("Expected no checked files")
	}

	ft.SetAllChecked(true)
	if got := len(ft.CheckedFiles()); got != 2 {
		t.Errorf("Expected 2 checked files, got %d", got)
	}
}
