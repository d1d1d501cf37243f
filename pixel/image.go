package pixel

import (
	"encoding/binary"
	"image"
	"image/color"

	"github.com/BeatGlow/photomanip/draw"
)

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values and is the container used by all image formats in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (p *Buffer) PixOffset(x, y, bytesPerPixel int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*bytesPerPixel
}

func (p *Buffer) fill(value []byte) {
	for i, l := 0, len(p.Pix); i+len(value) <= l; i += len(value) {
		copy(p.Pix[i:], value)
	}
}

func makeBuffer(r image.Rectangle, bytesPerPixel int) Buffer {
	stride := r.Dx() * bytesPerPixel
	return Buffer{
		Rect:   r,
		Pix:    make([]byte, stride*r.Dy()),
		Stride: stride,
	}
}

// RGBImage is a 24-bits per pixel 8-8-8-bit RGB image. Its pixels are Pixel values.
type RGBImage struct {
	Buffer
}

// NewRGBImage returns an RGBImage of w by h pixels.
func NewRGBImage(w, h int) *RGBImage {
	return NewRGBImageRect(image.Rect(0, 0, w, h))
}

// NewRGBImageRect returns an RGBImage covering r.
func NewRGBImageRect(r image.Rectangle) *RGBImage {
	return &RGBImage{
		Buffer: makeBuffer(r, 3),
	}
}

func (p *RGBImage) ColorModel() color.Model {
	return Model
}

func (p *RGBImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return p.PixelAt(x, y)
}

// PixelAt returns the Pixel at (x, y) without boxing it in a color.Color.
func (p *RGBImage) PixelAt(x, y int) Pixel {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return Pixel{}
	}
	i := p.PixOffset(x, y, 3)
	s := p.Pix[i : i+3 : i+3]
	return Pixel{R: int(s[0]), G: int(s[1]), B: int(s[2])}
}

func (p *RGBImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	v := pixelModel(c).(Pixel).Clamp()
	i := p.PixOffset(x, y, 3)
	s := p.Pix[i : i+3 : i+3]
	s[0] = uint8(v.R)
	s[1] = uint8(v.G)
	s[2] = uint8(v.B)
}

func (p *RGBImage) Fill(c color.Color) {
	v := pixelModel(c).(Pixel).Clamp()
	p.fill([]byte{uint8(v.R), uint8(v.G), uint8(v.B)})
}

// CRGB16Image is a 16-bits per pixel 5-6-5-bit RGB image.
type CRGB16Image struct {
	Buffer
	Order binary.ByteOrder
}

func NewCRGB16Image(w, h int) *CRGB16Image {
	return &CRGB16Image{
		Buffer: makeBuffer(image.Rect(0, 0, w, h), 2),
		Order:  binary.BigEndian,
	}
}

func (p *CRGB16Image) ColorModel() color.Model {
	return CRGB16Model
}

func (p *CRGB16Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return CRGB16{p.Order.Uint16(p.Pix[p.PixOffset(x, y, 2):])}
}

func (p *CRGB16Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.Order.PutUint16(p.Pix[p.PixOffset(x, y, 2):], crgb16Model(c).(CRGB16).V)
}

func (p *CRGB16Image) Fill(c color.Color) {
	value := make([]byte, 2)
	p.Order.PutUint16(value, crgb16Model(c).(CRGB16).V)
	p.fill(value)
}

// CBGR16Image is a 16-bits per pixel 5-6-5-bit BGR image.
type CBGR16Image struct {
	Buffer
	Order binary.ByteOrder
}

func NewCBGR16Image(w, h int) *CBGR16Image {
	return &CBGR16Image{
		Buffer: makeBuffer(image.Rect(0, 0, w, h), 2),
		Order:  binary.BigEndian,
	}
}

func (p *CBGR16Image) ColorModel() color.Model {
	return CBGR16Model
}

func (p *CBGR16Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return CBGR16{p.Order.Uint16(p.Pix[p.PixOffset(x, y, 2):])}
}

func (p *CBGR16Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.Order.PutUint16(p.Pix[p.PixOffset(x, y, 2):], cbgr16Model(c).(CBGR16).V)
}

func (p *CBGR16Image) Fill(c color.Color) {
	value := make([]byte, 2)
	p.Order.PutUint16(value, cbgr16Model(c).(CBGR16).V)
	p.fill(value)
}

// XRGB32Image is a 32-bits per pixel image holding each pixel as a 0xXXRRGGBB word,
// the layout of most 32-bit framebuffers. The X byte is written as 0xff.
type XRGB32Image struct {
	Buffer
	Order binary.ByteOrder
}

func NewXRGB32Image(w, h int) *XRGB32Image {
	return &XRGB32Image{
		Buffer: makeBuffer(image.Rect(0, 0, w, h), 4),
		Order:  binary.LittleEndian,
	}
}

func (p *XRGB32Image) ColorModel() color.Model {
	return XRGB32Model
}

func (p *XRGB32Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	v := p.Order.Uint32(p.Pix[p.PixOffset(x, y, 4):])
	return Pixel{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)}
}

func (p *XRGB32Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.Order.PutUint32(p.Pix[p.PixOffset(x, y, 4):], xrgb32(c))
}

func (p *XRGB32Image) Fill(c color.Color) {
	value := make([]byte, 4)
	p.Order.PutUint32(value, xrgb32(c))
	p.fill(value)
}

func xrgb32(c color.Color) uint32 {
	v := pixelModel(c).(Pixel).Clamp()
	return 0xff<<24 | uint32(v.R)<<16 | uint32(v.G)<<8 | uint32(v.B)
}

// Interface checks.
var (
	_ Image = (*RGBImage)(nil)
	_ Image = (*CRGB16Image)(nil)
	_ Image = (*CBGR16Image)(nil)
	_ Image = (*XRGB32Image)(nil)
)
