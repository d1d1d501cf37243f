package pixel

import "image/color"

// Pixel holds the red, green and blue samples of a single pixel.
//
// Channels are conventionally in the range 0-255, but nothing enforces that on
// construction; filter output may be negative or exceed 255 until it is clamped.
type Pixel struct {
	R, G, B int
}

// New returns a Pixel with the given channel samples.
func New(r, g, b int) Pixel {
	return Pixel{R: r, G: g, B: b}
}

// Valid reports whether all channels are within 0-255.
func (p Pixel) Valid() bool {
	return inRange(p.R) && inRange(p.G) && inRange(p.B)
}

// Clamp returns p with every channel clamped to 0-255.
func (p Pixel) Clamp() Pixel {
	return Pixel{R: clamp(p.R), G: clamp(p.G), B: clamp(p.B)}
}

// RGBA implements color.Color. Out of range channels are clamped.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	r = uint32(clamp(p.R))
	g = uint32(clamp(p.G))
	b = uint32(clamp(p.B))
	return r | r<<8, g | g<<8, b | b<<8, 0xffff
}

func inRange(v int) bool {
	return v >= 0 && v <= 0xff
}

func clamp(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 0xff:
		return 0xff
	default:
		return v
	}
}

func pixelModel(c color.Color) color.Color {
	switch c := c.(type) {
	case Pixel:
		return c
	case color.RGBA:
		if c.A == 0xff {
			return Pixel{R: int(c.R), G: int(c.G), B: int(c.B)}
		}
	}
	// Raw samples are non-premultiplied 8-bit values.
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{R: int(n.R), G: int(n.G), B: int(n.B)}
}
