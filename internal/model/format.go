package model

import (
	"path/filepath"
	"strings"
)

// Format identifies a raster image format the converter can read or write.
type Format string

const (
	FormatJPG  Format = "JPG"
	FormatPNG  Format = "PNG"
	FormatBMP  Format = "BMP"
	FormatTIFF Format = "TIFF"
	FormatWEBP Format = "WEBP"
	FormatHEIC Format = "HEIC"

	// FormatAuto is the input filter value that accepts any supported
	// extension instead of a single format.
	FormatAuto Format = "Auto-detect"

	// FormatUnknown marks files whose format could not be determined.
	FormatUnknown Format = ""
)

// String returns the string representation of Format
func (f Format) String() string {
	return string(f)
}

// OutputFormats returns the formats the converter can write, in display order.
func OutputFormats() []Format {
	return []Format{FormatJPG, FormatPNG, FormatBMP, FormatTIFF, FormatWEBP, FormatHEIC}
}

// InputFormats returns the input filter choices, auto-detect first.
func InputFormats() []Format {
	return []Format{FormatAuto, FormatJPG, FormatPNG, FormatBMP, FormatTIFF, FormatWEBP, FormatHEIC}
}

// Extensions returns the file extensions (with leading dot, lowercase)
// recognized for the format. FormatAuto returns every supported extension.
func (f Format) Extensions() []string {
	switch f {
	case FormatJPG:
		return []string{".jpg", ".jpeg"}
	case FormatPNG:
		return []string{".png"}
	case FormatBMP:
		return []string{".bmp"}
	case FormatTIFF:
		return []string{".tiff", ".tif"}
	case FormatWEBP:
		return []string{".webp"}
	case FormatHEIC:
		return []string{".heic", ".heif"}
	case FormatAuto:
		var exts []string
		for _, format := range OutputFormats() {
			exts = append(exts, format.Extensions()...)
		}
		return exts
	default:
		return nil
	}
}

// Ext returns the primary extension used when writing the format, without dot.
func (f Format) Ext() string {
	switch f {
	case FormatJPG:
		return "jpg"
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	case FormatWEBP:
		return "webp"
	case FormatHEIC:
		return "heic"
	default:
		return strings.ToLower(string(f))
	}
}

// FormatFromPath determines the format from a file path's extension.
// Returns FormatUnknown and false for unrecognized extensions.
func FormatFromPath(path string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range OutputFormats() {
		for _, known := range format.Extensions() {
			if ext == known {
				return format, true
			}
		}
	}
	return FormatUnknown, false
}

// Matches reports whether the file at path passes this format used as an
// input filter. FormatAuto matches any supported extension.
func (f Format) Matches(path string) bool {
	detected, ok := FormatFromPath(path)
	if !ok {
		return false
	}
	if f == FormatAuto {
		return true
	}
	return detected == f
}
