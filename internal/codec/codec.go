// Package codec decodes and re-encodes whole image files.
package codec

import (
	"fmt"
	"image"
)

// Decoded is an image held in codec-specific form between Decode and Encode
type Decoded interface {
	Bounds() image.Rectangle
	Release()
}

// ImageCodec reads a file fully and writes it back in the format implied by
// the destination extension.
type ImageCodec interface {
	Name() string
	Decode(path string) (Decoded, error)
	Encode(img Decoded, destination string) error
	EncodableExtensions() []string
}

// DecodeError means the source could not be read or understood
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError means the destination could not be written
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
