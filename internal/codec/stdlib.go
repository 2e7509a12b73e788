package codec

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/imgforge/img-converter/internal/model"
)

func init() {
	register(jpegCodec{})
	register(pngCodec{})
}

// jpegCodec handles JPEG via the standard library.
type jpegCodec struct{}

func (jpegCodec) Format() model.Format { return model.FormatJPG }
func (jpegCodec) Available() bool      { return true }

func (jpegCodec) DecodeFile(path string) (image.Image, error) {
	return decodeVia(path, jpeg.Decode)
}

func (jpegCodec) EncodeFile(path string, img image.Image, opts EncodeOptions) error {
	quality := clampQuality(opts.Quality, DefaultJPEGQuality)
	return encodeVia(path, func(w io.Writer) error {
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	})
}

// pngCodec handles PNG via the standard library.
type pngCodec struct{}

func (pngCodec) Format() model.Format { return model.FormatPNG }
func (pngCodec) Available() bool      { return true }

func (pngCodec) DecodeFile(path string) (image.Image, error) {
	return decodeVia(path, png.Decode)
}

func (pngCodec) EncodeFile(path string, img image.Image, _ EncodeOptions) error {
	return encodeVia(path, func(w io.Writer) error {
		return png.Encode(w, img)
	})
}
