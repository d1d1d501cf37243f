package pixel

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPixel(t *testing.T) {
	tests := []struct {
		name  string
		p     Pixel
		valid bool
		clamp Pixel
	}{
		{"black", Black, true, Black},
		{"white", White, true, White},
		{"mixed", New(12, 200, 99), true, New(12, 200, 99)},
		{"negative", New(-1, 0, -300), false, New(0, 0, 0)},
		{"overflow", New(256, 255, 1000), false, New(255, 255, 255)},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			assert.Equal(it, test.valid, test.p.Valid())
			assert.Equal(it, test.clamp, test.p.Clamp())

			r, g, b, a := test.p.RGBA()
			assert.Equal(it, uint32(test.clamp.R)*0x101, r)
			assert.Equal(it, uint32(test.clamp.G)*0x101, g)
			assert.Equal(it, uint32(test.clamp.B)*0x101, b)
			assert.Equal(it, uint32(0xffff), a)
		})
	}
}

func TestModel(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		want Pixel
	}{
		{"pixel", New(-5, 7, 900), New(-5, 7, 900)},
		{"rgba", color.RGBA{R: 1, G: 2, B: 3, A: 0xff}, New(1, 2, 3)},
		{"nrgba", color.NRGBA{R: 10, G: 20, B: 30, A: 0x80}, New(10, 20, 30)},
		{"gray", color.Gray{Y: 77}, New(77, 77, 77)},
		{"rgba64", color.RGBA64{R: 0xffff, G: 0x8080, B: 0, A: 0xffff}, New(255, 128, 0)},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			assert.Equal(it, test.want, Model.Convert(test.c))
		})
	}
}

func TestCRGB16(t *testing.T) {
	for _, test := range []struct {
		name string
		c    color.Color
		want uint16
	}{
		{"black", color.Black, 0x0000},
		{"white", color.White, 0xffff},
		{"red", color.RGBA{R: 0xff, A: 0xff}, 0xf800},
		{"green", color.RGBA{G: 0xff, A: 0xff}, 0x07e0},
		{"blue", color.RGBA{B: 0xff, A: 0xff}, 0x001f},
	} {
		t.Run(test.name, func(it *testing.T) {
			c := CRGB16Model.Convert(test.c).(CRGB16)
			if c.V != test.want {
				it.Errorf("expected %#04x, got %#04x", test.want, c.V)
			}
			r, g, b, _ := c.RGBA()
			wr, wg, wb, _ := test.c.RGBA()
			if r != wr || g != wg || b != wb {
				it.Errorf("expected %#04x %#04x %#04x, got %#04x %#04x %#04x", wr, wg, wb, r, g, b)
			}
		})
	}
}

func TestCBGR16(t *testing.T) {
	red := CBGR16Model.Convert(color.RGBA{R: 0xff, A: 0xff}).(CBGR16)
	assert.Equal(t, uint16(0x001f), red.V)
	assert.Equal(t, CRGB16{0xf800}, CRGB16Model.Convert(red))
	assert.Equal(t, red, CBGR16Model.Convert(CRGB16{0xf800}))
}
