package scan

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/imgforge/img-converter/internal/model"
)

// writeTestTree lays out a small directory of image and non-image files.
func writeTestTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := []string{
		"photo.png",
		"pic.jpg",
		"notes.txt",
		filepath.Join("sub", "inner.webp"),
		filepath.Join("sub", "deep", "scan.tif"),
	}

	for _, name := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("Failed to create dir for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	return root
}

func pathSet(files []model.DiscoveredFile) map[string]bool {
	set := make(map[string]bool, len(files))
	for _, f := range files {
		set[filepath.Base(f.Path)] = true
	}
	return set
}

func TestScan_NonRecursive(t *testing.T) {
	root := writeTestTree(t)

	result, err := Scan(root, Options{Recursive: false, Filter: model.FormatAuto})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(result.Files) != 2 {
		t.Fatalf("Expected 2 files, got %d: %v", len(result.Files), result.Files)
	}

	found := pathSet(result.Files)
	if !found["photo.png"] || !found["pic.jpg"] {
		t.Errorf("Expected photo.png and pic.jpg, got %v", found)
	}
	if found["notes.txt"] {
		t.Error("notes.txt must never be discovered")
	}
}

func TestScan_Recursive(t *testing.T) {
	root := writeTestTree(t)

	result, err := Scan(root, Options{Recursive: true, Filter: model.FormatAuto})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(result.Files) != 4 {
		t.Fatalf("Expected 4 files, got %d", len(result.Files))
	}

	found := pathSet(result.Files)
	for _, name := range []string{"photo.png", "pic.jpg", "inner.webp", "scan.tif"} {
		if !found[name] {
			t.Errorf("Expected %s to be discovered", name)
		}
	}

	// Results must be ordered by path.
	for i := 1; i < len(result.Files); i++ {
		if result.Files[i-1].Path >= result.Files[i].Path {
			t.Errorf("Files not sorted: %s before %s", result.Files[i-1].Path, result.Files[i].Path)
		}
	}
}

func TestScan_FormatFilter(t *testing.T) {
	root := writeTestTree(t)

	result, err := Scan(root, Options{Recursive: true, Filter: model.FormatJPG})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(result.Files) != 1 {
		t.Fatalf("Expected 1 file for JPG filter, got %d", len(result.Files))
	}
	if filepath.Base(result.Files[0].Path) != "pic.jpg" {
		t.Errorf("Expected pic.jpg, got %s", result.Files[0].Path)
	}
	if result.Files[0].Format != model.FormatJPG {
		t.Errorf("Expected format JPG, got %s", result.Files[0].Format)
	}
}

func TestScan_SingleFileRoot(t *testing.T) {
	root := writeTestTree(t)

	result, err := Scan(filepath.Join(root, "photo.png"), Options{Filter: model.FormatAuto})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(result.Files) != 1 {
		t.Fatalf("Expected 1 file, got %d", len(result.Files))
	}

	result, err = Scan(filepath.Join(root, "notes.txt"), Options{Filter: model.FormatAuto})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(result.Files) != 0 {
		t.Errorf("Expected no files for notes.txt, got %d", len(result.Files))
	}
}

func TestScan_MissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"), Options{Filter: model.FormatAuto})
	if err == nil {
		t.Error("Expected error for missing root, got nil")
	}
}

func TestSniffFormat(t *testing.T) {
	dir := t.TempDir()

	// A real PNG without a recognizable extension.
	headless := filepath.Join(dir, "headless")
	f, err := os.Create(headless)
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	if err := png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatalf("Failed to encode png: %v", err)
	}
	f.Close()

	format, err := SniffFormat(headless)
	if err != nil {
		t.Fatalf("SniffFormat failed: %v", err)
	}
	if format != model.FormatPNG {
		t.Errorf("Expected PNG from sniffing, got %s", format)
	}

	// Plain text is unknown, not an error.
	text := filepath.Join(dir, "plain")
	if err := os.WriteFile(text, []byte("hello world"), 0o644); err != nil {
		t.Fatalf("Failed to write text file: %v", err)
	}

	format, err = SniffFormat(text)
	if err != nil {
		t.Fatalf("SniffFormat failed: %v", err)
	}
	if format != model.FormatUnknown {
		t.Errorf("Expected unknown format for text, got %s", format)
	}
}

func TestScan_AutoDetectSniffsUnknownExtensions(t *testing.T) {
	root := t.TempDir()

	headless := filepath.Join(root, "camera-roll")
	f, err := os.Create(headless)
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	if err := png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatalf("Failed to encode png: %v", err)
	}
	f.Close()

	result, err := Scan(root, Options{Filter: model.FormatAuto})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(result.Files) != 1 {
		t.Fatalf("Expected sniffed file to be discovered, got %d files", len(result.Files))
	}
	if result.Files[0].Format != model.FormatPNG {
		t.Errorf("Expected sniffed format PNG, got %s", result.Files[0].Format)
	}

	// A specific format filter matches extensions only.
	result, err = Scan(root, Options{Filter: model.FormatPNG})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(result.Files) != 0 {
		t.Errorf("Expected no files for extension-only filter, got %d", len(result.Files))
	}
}

func TestService_ScanAsync(t *testing.T) {
	root := writeTestTree(t)
	service := NewService()

	done := make(chan Result, 1)
	service.SetCompleteCallback(func(result Result, err error) {
		if err != nil {
			t.Errorf("Async scan returned error: %v", err)
		}
		done <- result
	})

	service.ScanAsync(root, Options{Recursive: true, Filter: model.FormatAuto})

	select {
	case result := <-done:
		if len(result.Files) != 4 {
			t.Errorf("Expected 4 files from async scan, got %d", len(result.Files))
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Async scan did not complete")
	}

	if service.IsScanning() {
		t.Error("Service should not report scanning after completion")
	}
}

func TestDetect(t *testing.T) {
	dir := t.TempDir()

	// A recognized extension resolves without touching the content.
	format, err := Detect(filepath.Join(dir, "missing.jpg"))
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if format != model.FormatJPG {
		t.Errorf("Expected JPG from extension, got %s", format)
	}

	// An unrecognized extension falls back to content sniffing.
	headless := filepath.Join(dir, "photo.dat")
	f, err := os.Create(headless)
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	if err := png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatalf("Failed to encode png: %v", err)
	}
	f.Close()

	format, err = Detect(headless)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if format != model.FormatPNG {
		t.Errorf("Expected PNG from sniffing, got %s", format)
	}
}
