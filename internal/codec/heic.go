//go:build heic

package codec

import (
	"fmt"
	"image"

	heif "github.com/strukturag/libheif-go"

	"github.com/imgforge/img-converter/internal/model"
)

func init() {
	register(heicCodec{})
}

// heicCodec handles HEIC/HEIF through libheif. It is only compiled in under
// the "heic" build tag since libheif is not present on every platform.
type heicCodec struct{}

func (heicCodec) Format() model.Format { return model.FormatHEIC }
func (heicCodec) Available() bool      { return true }

func (heicCodec) DecodeFile(path string) (image.Image, error) {
	ctx, err := heif.NewContext()
	if err != nil {
		return nil, fmt.Errorf("failed to init libheif: %w", err)
	}

	if err := ctx.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	handle, err := ctx.GetPrimaryImageHandle()
	if err != nil {
		return nil, fmt.Errorf("failed to get primary image: %w", err)
	}

	decoded, err := handle.DecodeImage(heif.ColorspaceUndefined, heif.ChromaUndefined, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	img, err := decoded.GetImage()
	if err != nil {
		return nil, fmt.Errorf("failed to convert decoded image: %w", err)
	}
	return img, nil
}

func (heicCodec) EncodeFile(path string, img image.Image, opts EncodeOptions) error {
	quality := clampQuality(opts.Quality, DefaultHEICQuality)

	ctx, err := heif.EncodeFromImage(img, heif.CompressionHEVC, quality,
		heif.LosslessModeDisabled, heif.LoggingLevelNone)
	if err != nil {
		return fmt.Errorf("failed to encode HEIC: %w", err)
	}

	if err := ctx.WriteToFile(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
