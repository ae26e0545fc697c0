package app

import (
	"fmt"
	"image"

	"zoop-converter/internal/codec"
	"zoop-converter/internal/codec/opencv"
	"zoop-converter/internal/config"
)

// NewCodec returns the conversion backend named in cfg.
func NewCodec(cfg config.Config) (codec.ImageCodec, error) {
	switch cfg.Codec {
	case config.CodecImaging:
		return codec.NewImagingCodec(cfg.JPEGQuality, cfg.AutoOrient), nil
	case config.CodecOpenCV:
		return opencv.New(cfg.JPEGQuality), nil
	default:
		return nil, fmt.Errorf("unknown codec %q", cfg.Codec)
	}
}

// thumbnailLoader always decodes through imaging; previews do not depend on
// the conversion backend.
func thumbnailLoader(c *codec.ImagingCodec) func(path string, size int) (image.Image, error) {
	return func(path string, size int) (image.Image, error) {
		decoded, err := c.Decode(path)
		if err != nil {
			return nil, err
		}
		defer decoded.Release()
		return codec.Thumbnail(decoded, size)
	}
}
