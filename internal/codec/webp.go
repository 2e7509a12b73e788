package codec

import (
	"image"
	"io"

	"github.com/kolesa-team/go-webp/decoder"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"

	"github.com/imgforge/img-converter/internal/model"
)

func init() {
	register(webpCodec{})
}

// webpCodec handles WEBP via the libwebp bindings.
type webpCodec struct{}

func (webpCodec) Format() model.Format { return model.FormatWEBP }
func (webpCodec) Available() bool      { return true }

func (webpCodec) DecodeFile(path string) (image.Image, error) {
	return decodeVia(path, func(r io.Reader) (image.Image, error) {
		return webp.Decode(r, &decoder.Options{})
	})
}

func (webpCodec) EncodeFile(path string, img image.Image, opts EncodeOptions) error {
	quality := clampQuality(opts.Quality, DefaultWEBPQuality)
	return encodeVia(path, func(w io.Writer) error {
		options, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, float32(quality))
		if err != nil {
			return err
		}
		return webp.Encode(w, img, options)
	})
}
