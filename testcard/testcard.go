// Package testcard draws synthetic source images for trying out convolution kernels.
//
// A card has a diagonal gradient, a white frame around its edge, a row of primary color
// boxes and an optional text label. Hard edges next to smooth gradients make the effect
// of blur, sharpen and edge detection kernels easy to see.
package testcard

import (
	"errors"
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/BeatGlow/photomanip/draw"
	"github.com/BeatGlow/photomanip/pixel"
)

// ErrSize is returned for cards without any pixels.
var ErrSize = errors.New("testcard: width and height must be positive")

// Config describes the test card.
type Config struct {
	// Width of the card in pixels.
	Width int

	// Height of the card in pixels.
	Height int

	// Label is drawn in the lower left corner, if not empty.
	Label string

	// FontSize of the label in points.
	FontSize float64
}

// DefaultConfig are the default configuration values.
var DefaultConfig = Config{
	Width:    320,
	Height:   240,
	Label:    "photomanip",
	FontSize: 24,
}

var boxColors = []pixel.Pixel{
	{R: 0xff},
	{G: 0xff},
	{B: 0xff},
	{R: 0xff, G: 0xff},
	pixel.White,
	pixel.Black,
}

var (
	regular     *truetype.Font
	regularErr  error
	regularOnce sync.Once
)

func regularFont() (*truetype.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = freetype.ParseFont(goregular.TTF)
	})
	return regular, regularErr
}

// New draws a test card of w by h pixels with the default font size.
func New(w, h int, label string) (*pixel.RGBImage, error) {
	config := DefaultConfig
	config.Width = w
	config.Height = h
	config.Label = label
	return Draw(&config)
}

// Draw draws a test card. A nil config uses DefaultConfig.
func Draw(config *Config) (*pixel.RGBImage, error) {
	if config == nil {
		config = &DefaultConfig
	}
	config = &Config{
		Width:    config.Width,
		Height:   config.Height,
		Label:    config.Label,
		FontSize: config.FontSize,
	}
	if config.Width <= 0 || config.Height <= 0 {
		return nil, ErrSize
	}
	if config.FontSize <= 0 {
		config.FontSize = DefaultConfig.FontSize
	}

	var (
		w   = config.Width
		h   = config.Height
		img = pixel.NewRGBImage(w, h)
	)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, pixel.Pixel{
				R: x * 0xff / max(w-1, 1),
				G: y * 0xff / max(h-1, 1),
				B: 0x80,
			})
		}
	}

	// Boxes along the top, clear of the frame.
	size := min(w, h) / 6
	if size > 0 {
		for i, c := range boxColors {
			x := size/2 + i*(size+size/2)
			if x+size >= w-1 {
				break
			}
			draw.Box(img, image.Rect(x, size/2, x+size, size/2+size), c)
		}
	}

	if config.Label != "" {
		if err := drawLabel(img, config); err != nil {
			return nil, err
		}
	}

	draw.Rectangle(img, img.Bounds(), pixel.White)
	return img, nil
}

func drawLabel(img draw.Image, config *Config) error {
	f, err := regularFont()
	if err != nil {
		return err
	}

	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(f)
	c.SetFontSize(config.FontSize)
	c.SetClip(img.Bounds().Inset(1))
	c.SetDst(img)
	c.SetSrc(image.NewUniform(color.White))
	c.SetHinting(font.HintingFull)

	margin := int(config.FontSize / 2)
	_, err = c.DrawString(config.Label, freetype.Pt(margin, config.Height-margin))
	return err
}
