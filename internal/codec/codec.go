package codec

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/imgforge/img-converter/internal/model"
)

// Default encode settings
const (
	DefaultJPEGQuality = 90
	DefaultWEBPQuality = 90
	DefaultHEICQuality = 90
)

// ErrUnsupportedFormat is returned when no codec is registered for a format.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// ErrHEICUnavailable is returned by the HEIC codec on builds without libheif.
var ErrHEICUnavailable = errors.New("HEIC support is not available in this build")

// EncodeOptions carries per-encode settings. Quality applies to lossy
// formats that honor it (HEIC per the UI, JPEG/WEBP fall back to defaults
// when zero).
type EncodeOptions struct {
	Quality int // 0..100, 0 means format default
}

// Codec decodes and encodes one image format.
type Codec interface {
	// Format returns the format this codec handles.
	Format() model.Format

	// Available returns true if the codec is ready to use. Codecs backed
	// by optional native libraries may be compiled out.
	Available() bool

	// DecodeFile reads and decodes the image at path.
	DecodeFile(path string) (image.Image, error)

	// EncodeFile encodes img and writes it to path, creating or
	// truncating the file.
	EncodeFile(path string, img image.Image, opts EncodeOptions) error
}

var registry = map[model.Format]Codec{}

func register(c Codec) {
	registry[c.Format()] = c
}

// For returns the codec registered for the format.
func For(format model.Format) (Codec, error) {
	c, ok := registry[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return c, nil
}

// decodeVia opens path and runs a stream decoder over it.
func decodeVia(path string, decode func(io.Reader) (image.Image, error)) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source: %w", err)
	}
	defer f.Close()

	img, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

// encodeVia creates path and runs a stream encoder into it. The partial file
// is removed when encoding fails so no corrupt output is left behind.
func encodeVia(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}

	if err := encode(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to finish output: %w", err)
	}
	return nil
}

// clampQuality bounds a quality value to 0..100, substituting fallback for
// the zero value.
func clampQuality(quality, fallback int) int {
	if quality == 0 {
		quality = fallback
	}
	if quality < 0 {
		return 0
	}
	if quality > 100 {
		return 100
	}
	return quality
}
