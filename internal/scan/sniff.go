package scan

import (
	"fmt"
	"io"
	"os"

	"github.com/h2non/filetype"

	"github.com/imgforge/img-converter/internal/model"
)

// filetype matchers need at most 261 bytes of the file header.
const sniffHeaderLen = 261

// SniffFormat detects an image format from file content rather than the
// extension. Returns FormatUnknown (and no error) when the content does not
// match any supported format.
func SniffFormat(path string) (model.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.FormatUnknown, fmt.Errorf("failed to open for sniffing: %w", err)
	}
	defer f.Close()

	header := make([]byte, sniffHeaderLen)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return model.FormatUnknown, fmt.Errorf("failed to read header: %w", err)
	}

	kind, err := filetype.Match(header[:n])
	if err != nil {
		return model.FormatUnknown, fmt.Errorf("failed to match header: %w", err)
	}

	switch kind.Extension {
	case "jpg":
		return model.FormatJPG, nil
	case "png":
		return model.FormatPNG, nil
	case "bmp":
		return model.FormatBMP, nil
	case "tif":
		return model.FormatTIFF, nil
	case "webp":
		return model.FormatWEBP, nil
	case "heif":
		return model.FormatHEIC, nil
	default:
		return model.FormatUnknown, nil
	}
}

// Detect resolves a file's format by extension first, falling back to
// content sniffing for unrecognized extensions.
func Detect(path string) (model.Format, error) {
	if format, ok := model.FormatFromPath(path); ok {
		return format, nil
	}
	return SniffFormat(path)
}
