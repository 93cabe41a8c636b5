// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package image

import (
	"errors"
	"fmt"
	stdimage "image"

	xdraw "golang.org/x/image/draw"
)

// Channels is the number of bytes per pixel in an interleaved RGBA buffer.
const Channels = 4

// ErrGeometry is returned when a buffer length does not match width*height*4.
var ErrGeometry = errors.New("image: buffer length does not match geometry")

// CheckGeometry reports whether a buffer of n bytes holds exactly
// width*height RGBA pixels. The kernels never call it; it is for callers that
// want a reported error instead of a fault.
func CheckGeometry(n int, width, height uint32) error {
	pixels := uint64(width) * uint64(height)
	if n < 0 || n%Channels != 0 || uint64(n/Channels) != pixels {
		return fmt.Errorf("%w: %d bytes for %dx%d", ErrGeometry, n, width, height)
	}
	return nil
}

// RGBA is a row-major view over an interleaved RGBA byte buffer.
// Rows are tightly packed: the stride is always width*4.
type RGBA struct {
	pix    []byte
	width  int
	height int
	stride int // bytes per row
}

// NewRGBA allocates a zeroed width x height image.
// Non-positive dimensions produce an empty image.
func NewRGBA(width, height int) *RGBA {
	if width <= 0 || height <= 0 {
		return &RGBA{}
	}
	return &RGBA{
		pix:    make([]byte, width*height*Channels),
		width:  width,
		height: height,
		stride: width * Channels,
	}
}

// WrapRGBA returns a view over pix without copying it.
func WrapRGBA(pix []byte, width, height int) (*RGBA, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative size %dx%d", ErrGeometry, width, height)
	}
	if err := CheckGeometry(len(pix), uint32(width), uint32(height)); err != nil {
		return nil, err
	}
	return &RGBA{pix: pix, width: width, height: height, stride: width * Channels}, nil
}

// FromImage converts any image into a tightly packed RGBA copy whose origin
// is (0, 0).
func FromImage(src stdimage.Image) *RGBA {
	b := src.Bounds()
	dst := stdimage.NewRGBA(stdimage.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)
	return &RGBA{pix: dst.Pix, width: b.Dx(), height: b.Dy(), stride: dst.Stride}
}

// ToImage returns a standard library image sharing the same pixels.
func (img *RGBA) ToImage() *stdimage.RGBA {
	return &stdimage.RGBA{
		Pix:    img.pix,
		Stride: img.stride,
		Rect:   stdimage.Rect(0, 0, img.width, img.height),
	}
}

// Width returns the image width in pixels.
func (img *RGBA) Width() int {
	return img.width
}

// Height returns the image height in pixels.
func (img *RGBA) Height() int {
	return img.height
}

// Stride returns the number of bytes per row.
func (img *RGBA) Stride() int {
	return img.stride
}

// Pix returns the underlying buffer. Kernels mutate it in place.
func (img *RGBA) Pix() []byte {
	return img.pix
}

// Row returns a mutable slice for the specified row.
func (img *RGBA) Row(y int) []byte {
	if y < 0 || y >= img.height || img.pix == nil {
		return nil
	}
	start := y * img.stride
	return img.pix[start : start+img.stride]
}

// PixelOffset returns the index of the red byte of pixel (x, y).
func (img *RGBA) PixelOffset(x, y int) int {
	return y*img.stride + x*Channels
}

// At returns the R, G, B, A bytes at (x, y), or zeros when out of range.
func (img *RGBA) At(x, y int) [Channels]byte {
	var px [Channels]byte
	if x < 0 || x >= img.width || y < 0 || y >= img.height || img.pix == nil {
		return px
	}
	copy(px[:], img.pix[img.PixelOffset(x, y):])
	return px
}

// Set writes the R, G, B, A bytes at (x, y). Out-of-range writes are ignored.
func (img *RGBA) Set(x, y int, px [Channels]byte) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height || img.pix == nil {
		return
	}
	copy(img.pix[img.PixelOffset(x, y):], px[:])
}

// Clone creates a deep copy of the image.
func (img *RGBA) Clone() *RGBA {
	clone := *img
	if img.pix != nil {
		clone.pix = make([]byte, len(img.pix))
		copy(clone.pix, img.pix)
	}
	return &clone
}

// Rect defines a rectangular region within an image.
type Rect struct {
	X0, Y0 int // Top-left corner (inclusive)
	X1, Y1 int // Bottom-right corner (exclusive)
}

// Width returns the rectangle width.
func (r Rect) Width() int {
	return r.X1 - r.X0
}

// Height returns the rectangle height.
func (r Rect) Height() int {
	return r.Y1 - r.Y0
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X0 && x < r.X1 && y >= r.Y0 && y < r.Y1
}

// Bounds returns the bounding rectangle of the image.
func (img *RGBA) Bounds() Rect {
	return Rect{X0: 0, Y0: 0, X1: img.width, Y1: img.height}
}

// Interior returns the pixels Blur rewrites: everything except the outer
// one-pixel border. It is empty for images narrower or shorter than 3.
func (img *RGBA) Interior() Rect {
	if img.width < 3 || img.height < 3 {
		return Rect{}
	}
	return Rect{X0: 1, Y0: 1, X1: img.width - 1, Y1: img.height - 1}
}
