// Package opencv is the ImageCodec backend on top of gocv.
package opencv

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"zoop-converter/internal/codec"

	"gocv.io/x/gocv"
)

var encodable = []string{".jpg", ".jpeg", ".png", ".bmp", ".tif", ".tiff", ".webp"}

type matImage struct {
	mat gocv.Mat
}

func (m *matImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.mat.Cols(), m.mat.Rows())
}

func (m *matImage) Release() {
	m.mat.Close()
}

// Image converts the Mat for previews; nil when the Mat type has no image form.
func (m *matImage) Image() image.Image {
	img, err := m.mat.ToImage()
	if err != nil {
		return nil
	}
	return img
}

type Codec struct {
	jpegQuality int
}

func New(jpegQuality int) *Codec {
	if jpegQuality <= 0 || jpegQuality > 100 {
		jpegQuality = codec.DefaultJPEGQuality
	}
	return &Codec{jpegQuality: jpegQuality}
}

func (c *Codec) Name() string { return "opencv" }

func (c *Codec) EncodableExtensions() []string {
	out := make([]string, len(encodable))
	copy(out, encodable)
	return out
}

func (c *Codec) Decode(path string) (codec.Decoded, error) {
	mat := gocv.IMRead(path, gocv.IMReadUnchanged)
	if mat.Empty() {
		mat.Close()
		return nil, &codec.DecodeError{Path: path, Err: errors.New("opencv could not read image")}
	}
	if err := validateMat(mat, "decode"); err != nil {
		mat.Close()
		return nil, &codec.DecodeError{Path: path, Err: err}
	}
	return &matImage{mat: mat}, nil
}

func (c *Codec) Encode(img codec.Decoded, destination string) error {
	src, ok := img.(*matImage)
	if !ok {
		return &codec.EncodeError{Path: destination, Err: fmt.Errorf("image was not decoded by %s", c.Name())}
	}

	if err := validateMat(src.mat, "encode"); err != nil {
		return &codec.EncodeError{Path: destination, Err: err}
	}

	ext := strings.ToLower(filepath.Ext(destination))
	var written bool
	switch ext {
	case ".jpg", ".jpeg":
		written = gocv.IMWriteWithParams(destination, src.mat, []int{int(gocv.IMWriteJpegQuality), c.jpegQuality})
	case "":
		return &codec.EncodeError{Path: destination, Err: errors.New("destination has no extension")}
	default:
		written = gocv.IMWrite(destination, src.mat)
	}

	if !written {
		return &codec.EncodeError{Path: destination, Err: fmt.Errorf("opencv could not write %s", ext)}
	}
	return nil
}
