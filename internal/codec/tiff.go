package codec

import (
	"image"
	"io"

	"golang.org/x/image/tiff"

	"github.com/imgforge/img-converter/internal/model"
)

func init() {
	register(tiffCodec{})
}

// tiffCodec handles TIFF via golang.org/x/image.
type tiffCodec struct{}

func (tiffCodec) Format() model.Format { return model.FormatTIFF }
func (tiffCodec) Available() bool      { return true }

func (tiffCodec) DecodeFile(path string) (image.Image, error) {
	return decodeVia(path, tiff.Decode)
}

func (tiffCodec) EncodeFile(path string, img image.Image, _ EncodeOptions) error {
	return encodeVia(path, func(w io.Writer) error {
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	})
}
