package photomanip

import (
	"fmt"

	"github.com/BeatGlow/photomanip/draw"
	"github.com/BeatGlow/photomanip/pixel"
)

// PixelImage provides access to a bitmap as an array of Pixels.
//
// The bitmap is shared, not owned. Its dimensions are captured when the PixelImage is
// created and the bitmap must not be resized afterwards. A PixelImage is not safe for
// concurrent use together with writers of the same bitmap.
//
// Pixels carry no alpha. Reading a translucent pixel yields its non-premultiplied
// color and SetPixels always writes opaque pixels, so a Pixels/SetPixels round trip
// leaves the bitmap unchanged only where it is opaque.
type PixelImage struct {
	bitmap draw.Image
	width  int
	height int
}

// New maps a PixelImage onto b.
func New(b draw.Image) *PixelImage {
	r := b.Bounds()
	return &PixelImage{
		bitmap: b,
		width:  r.Dx(),
		height: r.Dy(),
	}
}

// Width of the image in pixels.
func (p *PixelImage) Width() int {
	return p.width
}

// Height of the image in pixels.
func (p *PixelImage) Height() int {
	return p.height
}

// Bitmap returns the wrapped bitmap. Changes made to it are visible through p.
func (p *PixelImage) Bitmap() draw.Image {
	return p.bitmap
}

// Pixels returns the image's pixel data as a newly allocated array, indexed as
// [row][column] with dimensions [Height][Width].
func (p *PixelImage) Pixels() [][]pixel.Pixel {
	var (
		origin = p.bitmap.Bounds().Min
		data   = make([][]pixel.Pixel, p.height)
		all    = make([]pixel.Pixel, p.width*p.height)
	)
	rgb, _ := p.bitmap.(*pixel.RGBImage)
	for row := range data {
		data[row] = all[row*p.width : (row+1)*p.width : (row+1)*p.width]
		for col := range data[row] {
			x, y := origin.X+col, origin.Y+row
			if rgb != nil {
				data[row][col] = rgb.PixelAt(x, y)
			} else {
				data[row][col] = pixel.Model.Convert(p.bitmap.At(x, y)).(pixel.Pixel)
			}
		}
	}
	return data
}

// SetPixels writes data into the bitmap. The array must match the layout returned by
// Pixels and every channel must be within 0-255. The bitmap is left untouched if
// data is rejected.
func (p *PixelImage) SetPixels(data [][]pixel.Pixel) error {
	if err := p.checkPixels(data); err != nil {
		return err
	}

	origin := p.bitmap.Bounds().Min
	for row, pixels := range data {
		for col, v := range pixels {
			p.bitmap.Set(origin.X+col, origin.Y+row, v)
		}
	}
	return nil
}

func (p *PixelImage) checkPixels(data [][]pixel.Pixel) error {
	if len(data) != p.height {
		return fmt.Errorf("%w: %d rows, image height is %d", ErrSizeMismatch, len(data), p.height)
	}
	for row, pixels := range data {
		if len(pixels) != p.width {
			return fmt.Errorf("%w: row %d has %d pixels, image width is %d", ErrSizeMismatch, row, len(pixels), p.width)
		}
	}
	for row, pixels := range data {
		for col, v := range pixels {
			if !v.Valid() {
				return fmt.Errorf("%w: pixel %+v at row %d, column %d", ErrChannelRange, v, row, col)
			}
		}
	}
	return nil
}

// ApplyKernel filters src with weights and scale, see [ApplyKernel]. A nil src filters p.
func (p *PixelImage) ApplyKernel(weights [][]int, src *PixelImage, scale int) ([][]pixel.Pixel, error) {
	if src == nil {
		src = p
	}
	return ApplyKernel(weights, src, scale)
}

// Filter applies k to the image, clamps the result and writes it back into the bitmap.
func (p *PixelImage) Filter(k Kernel) error {
	data, err := k.Apply(p)
	if err != nil {
		return err
	}
	return p.SetPixels(Clamp(data))
}
