package convert

import (
	"path/filepath"
	"strings"

	"github.com/imgforge/img-converter/internal/model"
)

// DefaultSuffix is appended to output filenames unless the user changes or
// clears it.
const DefaultSuffix = "_out"

// BatchOptions are the global conversion settings in effect when a batch is
// submitted.
type BatchOptions struct {
	TargetFormat model.Format
	OutputDir    string // empty means next to the source file
	Suffix       string // inserted before the extension, may be empty
	ReplaceFiles bool   // write next to the source and delete the source
	HEICQuality  int    // 0..100, HEIC output only
	MaxDimension int    // optional downscale bound in pixels, 0 disables
}

// NewRequest derives the immutable conversion request for one discovered
// file. The output name is <stem><suffix>.<target-ext>; replace mode ignores
// the suffix and the output directory and writes next to the source.
func NewRequest(file model.DiscoveredFile, opts BatchOptions) model.ConversionRequest {
	base := filepath.Base(file.Path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	outDir := opts.OutputDir
	suffix := opts.Suffix
	if opts.ReplaceFiles {
		outDir = filepath.Dir(file.Path)
		suffix = ""
	} else if outDir == "" {
		outDir = filepath.Dir(file.Path)
	}

	return model.ConversionRequest{
		SourcePath:   file.Path,
		SourceFormat: file.Format,
		TargetFormat: opts.TargetFormat,
		OutputPath:   filepath.Join(outDir, stem+suffix+"."+opts.TargetFormat.Ext()),
		HEICQuality:  opts.HEICQuality,
		MaxDimension: opts.MaxDimension,
		ReplaceFile:  opts.ReplaceFiles,
	}
}

// NewRequests derives one request per file.
func NewRequests(files []model.DiscoveredFile, opts BatchOptions) []model.ConversionRequest {
	requests := make([]model.ConversionRequest, 0, len(files))
	for _, file := range files {
		requests = append(requests, NewRequest(file, opts))
	}
	return requests
}
