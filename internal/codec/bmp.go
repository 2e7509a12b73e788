package codec

import (
	"image"
	"io"

	"github.com/jsummers/gobmp"

	"github.com/imgforge/img-converter/internal/model"
)

func init() {
	register(bmpCodec{})
}

// bmpCodec handles BMP via gobmp.
type bmpCodec struct{}

func (bmpCodec) Format() model.Format { return model.FormatBMP }
func (bmpCodec) Available() bool      { return true }

func (bmpCodec) DecodeFile(path string) (image.Image, error) {
	return decodeVia(path, gobmp.Decode)
}

func (bmpCodec) EncodeFile(path string, img image.Image, _ EncodeOptions) error {
	return encodeVia(path, func(w io.Writer) error {
		return gobmp.Encode(w, img)
	})
}
