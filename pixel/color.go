package pixel

import "image/color"

// Models for the color types in this package.
var (
	Model       color.Model = color.ModelFunc(pixelModel)
	CRGB16Model color.Model = color.ModelFunc(crgb16Model)
	CBGR16Model color.Model = color.ModelFunc(cbgr16Model)

	// XRGB32Model converts to Pixel like Model. It identifies XRGB32Image buffers.
	XRGB32Model color.Model = color.ModelFunc(pixelModel)
)

// Black and White are the extremes of the Pixel range.
var (
	Black = Pixel{}
	White = Pixel{R: 0xff, G: 0xff, B: 0xff}
)

// CRGB16 represents a 16-bit 5-6-5 RGB color.
type CRGB16 struct {
	// CRed, 5, CGreen, 6, CBlue, 5
	V uint16
}

func (c CRGB16) RGBA() (r, g, b, a uint32) {
	return expand565(c.V>>11, c.V>>5, c.V)
}

func crgb16Model(c color.Color) color.Color {
	switch c := c.(type) {
	case CRGB16:
		return c
	case CBGR16:
		return CRGB16{swap565(c.V)}
	default:
		hi, mid, lo := pack565(c)
		return CRGB16{hi<<11 | mid<<5 | lo}
	}
}

// CBGR16 represents a 16-bit 5-6-5 BGR color.
type CBGR16 struct {
	// CBlue, 5, CGreen, 6, CRed, 5
	V uint16
}

func (c CBGR16) RGBA() (r, g, b, a uint32) {
	return expand565(c.V, c.V>>5, c.V>>11)
}

func cbgr16Model(c color.Color) color.Color {
	switch c := c.(type) {
	case CBGR16:
		return c
	case CRGB16:
		return CBGR16{swap565(c.V)}
	default:
		r, g, b := pack565(c)
		return CBGR16{b<<11 | g<<5 | r}
	}
}

// pack565 reduces c to 5-bit red, 6-bit green and 5-bit blue.
func pack565(c color.Color) (r, g, b uint16) {
	cr, cg, cb, _ := c.RGBA()
	return uint16(cr >> 11), uint16(cg >> 10), uint16(cb >> 11)
}

// expand565 widens the low 5, 6 and 5 bits of the arguments to 16-bit components.
func expand565(r5, g6, b5 uint16) (r, g, b, a uint32) {
	red := uint32(r5&0x1f) << 3
	grn := uint32(g6&0x3f) << 2
	blu := uint32(b5&0x1f) << 3
	// Duplicate the high bits in the low bits.
	red |= red >> 5
	grn |= grn >> 6
	blu |= blu >> 5
	// Duplicate the whole value in the high byte.
	red |= red << 8
	grn |= grn << 8
	blu |= blu << 8
	return red, grn, blu, 0xffff
}

func swap565(v uint16) uint16 {
	return (v&0x1f)<<11 | v&0x07e0 | v>>11
}
