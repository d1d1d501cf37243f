// Package framebuffer provides access to the operating system's native framebuffer, so
// filtered images can be previewed without an encoder round trip.
//
// This requires framebuffer device support in the operating system. The framebuffer
// can be opened with the [Open] call and is then drawn on like any other bitmap.
package framebuffer

import (
	"errors"
	"image"
	"image/color"

	"github.com/BeatGlow/photomanip/draw"
	"github.com/BeatGlow/photomanip/pixel"
)

// Errors
var (
	ErrNotSupported     = errors.New("framebuffer: not supported")
	ErrUnsupportedModel = errors.New("framebuffer: unsupported color model")
)

// Device is an opened framebuffer. Drawing on it changes the screen immediately.
type Device struct {
	pixel.Image
	close func() error
}

// Close releases the framebuffer memory.
func (d *Device) Close() error {
	if d.close == nil {
		return nil
	}
	err := d.close()
	d.close = nil
	return err
}

// Show draws img centered on the device, clearing the area around it.
func (d *Device) Show(img image.Image) {
	var (
		screen = d.Bounds()
		size   = img.Bounds().Size()
		offset = screen.Min.Add(screen.Size().Sub(size).Div(2))
		r      = image.Rectangle{Min: offset, Max: offset.Add(size)}
	)
	d.Clear()
	draw.Draw(d, r.Intersect(screen), img, img.Bounds().Min.Add(r.Intersect(screen).Min.Sub(r.Min)), draw.Src)
}

// rgbaImage adds the pixel.Image methods to image.RGBA.
type rgbaImage struct {
	*image.RGBA
}

func (i rgbaImage) Clear() {
	for j := range i.Pix {
		i.Pix[j] = 0
	}
}

func (i rgbaImage) Fill(c color.Color) {
	draw.Fill(i.RGBA, i.Rect, c)
}

var _ pixel.Image = rgbaImage{}
