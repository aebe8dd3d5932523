// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datasource

import (
	"image"
	"math"

	"github.com/gonum/matrix/mat64"
	"golang.org/x/image/draw"
)

// Image is a 2-D raster: either a scalar field (one value per pixel,
// usually colored through a colormap) or a color image with 3
// (opaque) or 4 channels.
//
// Scalar rows are image rows: At(row, col) is the pixel at x=col,
// y=row. If the image is transposed, width and height swap.
type Image struct {
	base
	scalar     *mat64.Dense
	color      *image.NRGBA
	depth      int
	transposed bool
	bounds     cache[[2]float64]
}

// NewImage returns a scalar Image over m. m may be nil for an empty
// image.
func NewImage(m *mat64.Dense) *Image {
	s := &Image{}
	s.init(s, s.bounds.clear)
	s.setScalar(m)
	return s
}

// NewColorImage returns a color Image with the pixels of src. src is
// converted to non-premultiplied RGBA; the result has depth 3 if src
// is opaque and 4 otherwise.
func NewColorImage(src image.Image) *Image {
	s := &Image{}
	s.init(s, s.bounds.clear)
	s.setColor(src)
	return s
}

func (s *Image) setScalar(m *mat64.Dense) {
	s.scalar, s.color, s.depth = m, nil, 1
}

func (s *Image) setColor(src image.Image) {
	sb := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, sb.Dx(), sb.Dy()))
	draw.Copy(dst, image.Point{}, src, sb, draw.Src, nil)
	s.scalar, s.color, s.depth = nil, dst, 4
	if o, ok := src.(interface{ Opaque() bool }); ok && o.Opaque() {
		s.depth = 3
	}
}

func (s *Image) Kind() Kind { return ImageKind }

// Size returns the number of pixels.
func (s *Image) Size() int {
	w, h := s.dims()
	return w * h
}

// dims returns the untransposed width and height.
func (s *Image) dims() (w, h int) {
	switch {
	case s.scalar != nil:
		r, c := s.scalar.Dims()
		return c, r
	case s.color != nil:
		b := s.color.Bounds()
		return b.Dx(), b.Dy()
	}
	return 0, 0
}

func (s *Image) Width() int {
	w, h := s.dims()
	if s.transposed {
		return h
	}
	return w
}

func (s *Image) Height() int {
	w, h := s.dims()
	if s.transposed {
		return w
	}
	return h
}

// Depth returns the number of values per pixel: 1, 3 or 4.
func (s *Image) Depth() int { return s.depth }

func (s *Image) Transposed() bool { return s.transposed }

// SetTransposed swaps the roles of rows and columns. This counts as a
// data change.
func (s *Image) SetTransposed(t bool) {
	s.transposed = t
	s.dataChanged()
}

// Scalar returns the scalar field, or nil for a color image.
func (s *Image) Scalar() *mat64.Dense { return s.scalar }

// Color returns the color raster, or nil for a scalar image.
func (s *Image) Color() *image.NRGBA { return s.color }

// At returns the Depth() values of the pixel at (x, y) in displayed
// (possibly transposed) coordinates. Color channels are in [0, 255].
func (s *Image) At(x, y int) []float64 {
	if s.transposed {
		x, y = y, x
	}
	if s.scalar != nil {
		return []float64{s.scalar.At(y, x)}
	}
	c := s.color.NRGBAAt(x, y)
	return []float64{float64(c.R), float64(c.G), float64(c.B), float64(c.A)}[:s.depth]
}

// SetData replaces the image with a scalar field.
func (s *Image) SetData(m *mat64.Dense) {
	s.setScalar(m)
	s.dataChanged()
}

// SetImage replaces the image with the pixels of src.
func (s *Image) SetImage(src image.Image) {
	s.setColor(src)
	s.dataChanged()
}

// ArrayBounds returns the pixel extent: x in [0, Width()] and y in
// [0, Height()].
func (s *Image) ArrayBounds() (x, y [2]float64) {
	return [2]float64{0, float64(s.Width())}, [2]float64{0, float64(s.Height())}
}

// Bounds returns the extent of the pixel values. For color images this
// covers the Depth() channels of every pixel.
func (s *Image) Bounds() (lo, hi float64) {
	b := s.bounds.get(func() [2]float64 {
		lo, hi := s.valueBounds()
		return [2]float64{lo, hi}
	})
	return b[0], b[1]
}

func (s *Image) valueBounds() (lo, hi float64) {
	switch {
	case s.scalar != nil:
		r, _ := s.scalar.Dims()
		vals := make([]float64, 0, s.Size())
		for i := 0; i < r; i++ {
			vals = append(vals, s.scalar.RawRowView(i)...)
		}
		return floatBounds(vals, SortNone)
	case s.color != nil && s.Size() > 0:
		lo, hi = math.Inf(1), math.Inf(-1)
		pix := s.color.Pix
		w, h := s.dims()
		for y := 0; y < h; y++ {
			row := pix[y*s.color.Stride : y*s.color.Stride+4*w]
			for i, v := range row {
				if i%4 >= s.depth {
					continue
				}
				lo, hi = math.Min(lo, float64(v)), math.Max(hi, float64(v))
			}
		}
		return lo, hi
	}
	return 0, 0
}

// BoundsFor returns Bounds; the selector does not apply to images.
func (s *Image) BoundsFor(sel Selector) (lo, hi float64) {
	return s.Bounds()
}
