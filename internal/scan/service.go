package scan

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/imgforge/img-converter/internal/model"
)

// Options controls a single scan.
type Options struct {
	// Recursive walks subdirectories when the root is a directory.
	Recursive bool

	// Filter restricts discovery to one input format; FormatAuto accepts
	// every supported extension.
	Filter model.Format
}

// Result is the outcome of one scan: the ordered files found plus the
// entries that had to be skipped.
type Result struct {
	Root    string
	Files   []model.DiscoveredFile
	Skipped []model.ScanError
}

// Service runs scans in the background so the UI stays responsive. Results
// are delivered through the completion callback.
type Service struct {
	mu         sync.Mutex
	scanning   bool
	onComplete func(Result, error)
}

// NewService creates a new scan service
func NewService() *Service {
	return &Service{}
}

// SetCompleteCallback sets the callback invoked when a background scan ends.
func (s *Service) SetCompleteCallback(callback func(Result, error)) {
	s.onComplete = callback
}

// IsScanning reports whether a background scan is in flight.
func (s *Service) IsScanning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scanning
}

// ScanAsync runs Scan in a goroutine and reports through the callback.
// A scan already in flight makes this a no-op.
func (s *Service) ScanAsync(root string, opts Options) {
	s.mu.Lock()
	if s.scanning {
		s.mu.Unlock()
		log.Printf("Scan already in progress, ignoring request for %s", root)
		return
	}
	s.scanning = true
	s.mu.Unlock()

	go func() {
		result, err := Scan(root, opts)

		s.mu.Lock()
		s.scanning = false
		s.mu.Unlock()

		if s.onComplete != nil {
			s.onComplete(result, err)
		}
	}()
}

// Scan discovers image files under root. A file root yields zero or one
// DiscoveredFile; a directory root is listed (or walked when opts.Recursive)
// and filtered through opts.Filter. Unreadable entries are recorded in
// Result.Skipped and the scan continues; only an unreadable root is an error.
func Scan(root string, opts Options) (Result, error) {
	result := Result{Root: root}
	if opts.Filter == model.FormatUnknown {
		opts.Filter = model.FormatAuto
	}

	info, err := os.Stat(root)
	if err != nil {
		return result, fmt.Errorf("failed to stat %s: %w", root, err)
	}

	if !info.IsDir() {
		if file, ok := discover(root, info.Size(), opts.Filter); ok {
			result.Files = append(result.Files, file)
		}
		return result, nil
	}

	if opts.Recursive {
		err = walkTree(root, opts.Filter, &result)
	} else {
		err = listDir(root, opts.Filter, &result)
	}
	if err != nil {
		return result, err
	}

	sort.Slice(result.Files, func(i, j int) bool {
		return result.Files[i].Path < result.Files[j].Path
	})
	return result, nil
}

// walkTree recursively collects matching files under root.
func walkTree(root string, filter model.Format, result *Result) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return fmt.Errorf("failed to walk %s: %w", root, err)
			}
			log.Printf("Skipping unreadable entry %s: %v", path, err)
			result.Skipped = append(result.Skipped, model.ScanError{Path: path, Err: err})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		size := int64(0)
		if fi, err := d.Info(); err == nil {
			size = fi.Size()
		}

		if file, ok := discover(path, size, filter); ok {
			result.Files = append(result.Files, file)
		}
		return nil
	})
}

// listDir collects matching files in root without descending.
func listDir(root string, filter model.Format, result *Result) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", root, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(root, entry.Name())
		info, err := entry.Info()
		if err != nil {
			log.Printf("Skipping unreadable entry %s: %v", path, err)
			result.Skipped = append(result.Skipped, model.ScanError{Path: path, Err: err})
			continue
		}

		if file, ok := discover(path, info.Size(), filter); ok {
			result.Files = append(result.Files, file)
		}
	}
	return nil
}

// discover builds a DiscoveredFile when path passes the filter. Files with
// an unrecognized extension are content-sniffed under the auto-detect
// filter; a specific filter matches extensions only.
func discover(path string, size int64, filter model.Format) (model.DiscoveredFile, bool) {
	if filter != model.FormatAuto {
		format, ok := model.FormatFromPath(path)
		if !ok || format != filter {
			return model.DiscoveredFile{}, false
		}
		return model.DiscoveredFile{Path: path, Format: format, Size: size}, true
	}

	format, err := Detect(path)
	if err != nil || format == model.FormatUnknown {
		return model.DiscoveredFile{}, false
	}
	return model.DiscoveredFile{Path: path, Format: format, Size: size}, true
}
