//go:build !heic

package codec

import (
	"image"

	"github.com/imgforge/img-converter/internal/model"
)

func init() {
	register(heicStub{})
}

// heicStub stands in for the libheif codec on builds without the "heic" tag.
// It keeps HEIC selectable in the registry so callers get a clear error
// instead of ErrUnsupportedFormat.
type heicStub struct{}

func (heicStub) Format() model.Format { return model.FormatHEIC }
func (heicStub) Available() bool      { return false }

func (heicStub) DecodeFile(string) (image.Image, error) {
	return nil, ErrHEICUnavailable
}

func (heicStub) EncodeFile(string, image.Image, EncodeOptions) error {
	return ErrHEICUnavailable
}
