package codec

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

const DefaultJPEGQuality = 95

var imagingEncodable = []string{".jpg", ".jpeg", ".png", ".gif", ".tif", ".tiff", ".bmp"}

type stdImage struct {
	img image.Image
}

func (s *stdImage) Bounds() image.Rectangle { return s.img.Bounds() }
func (s *stdImage) Release()                {}

// Image exposes the decoded pixels.
func (s *stdImage) Image() image.Image { return s.img }

// ImagingCodec is the pure Go backend built on disintegration/imaging
type ImagingCodec struct {
	jpegQuality int
	autoOrient  bool
}

func NewImagingCodec(jpegQuality int, autoOrient bool) *ImagingCodec {
	if jpegQuality <= 0 || jpegQuality > 100 {
		jpegQuality = DefaultJPEGQuality
	}
	return &ImagingCodec{jpegQuality: jpegQuality, autoOrient: autoOrient}
}

func (c *ImagingCodec) Name() string { return "imaging" }

func (c *ImagingCodec) EncodableExtensions() []string {
	out := make([]string, len(imagingEncodable))
	copy(out, imagingEncodable)
	return out
}

func (c *ImagingCodec) Decode(path string) (Decoded, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(c.autoOrient))
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return &stdImage{img: img}, nil
}

func (c *ImagingCodec) Encode(img Decoded, destination string) error {
	src, ok := img.(*stdImage)
	if !ok {
		return &EncodeError{Path: destination, Err: fmt.Errorf("image was not decoded by %s", c.Name())}
	}

	if _, err := imaging.FormatFromFilename(destination); err != nil {
		return &EncodeError{Path: destination, Err: fmt.Errorf("unsupported target format %q", strings.ToLower(filepath.Ext(destination)))}
	}

	if err := imaging.Save(src.img, destination, imaging.JPEGQuality(c.jpegQuality)); err != nil {
		return &EncodeError{Path: destination, Err: err}
	}
	return nil
}

// Thumbnail scales a decoded image into a size x size square for previews.
func Thumbnail(img Decoded, size int) (image.Image, error) {
	src, ok := img.(interface{ Image() image.Image })
	if !ok {
		return nil, errors.New("thumbnail needs a decoded standard image")
	}
	pixels := src.Image()
	if pixels == nil {
		return nil, errors.New("decoded image has no pixels")
	}
	return imaging.Fit(pixels, size, size, imaging.Lanczos), nil
}
