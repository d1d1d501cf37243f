// Package imageio decodes image files into mutable bitmaps and encodes bitmaps back to files.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/BeatGlow/photomanip/draw"
	"github.com/BeatGlow/photomanip/pixel"
)

// Errors
var (
	ErrUnknownFormat = errors.New("imageio: unknown image format")
)

// Supported formats.
const (
	PNG  = "png"
	JPEG = "jpeg"
	GIF  = "gif"
	BMP  = "bmp"
	TIFF = "tiff"
	WebP = "webp"
)

// JPEGQuality is used when encoding JPEG files.
var JPEGQuality = 90

var extensions = map[string]string{
	".png":  PNG,
	".jpg":  JPEG,
	".jpeg": JPEG,
	".gif":  GIF,
	".bmp":  BMP,
	".tif":  TIFF,
	".tiff": TIFF,
	".webp": WebP,
}

func init() {
	// golang.org/x/image registers bmp and tiff itself, webp is registered here.
	image.RegisterFormat(WebP, "RIFF????WEBPVP8", webp.Decode, webp.DecodeConfig)
}

// FormatFromPath returns the format for the extension of path.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if format, ok := extensions[ext]; ok {
		return format, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
}

// Decode reads an image of any supported format and copies it into an RGBImage.
func Decode(r io.Reader) (*pixel.RGBImage, string, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", fmt.Errorf("%w: %v", ErrUnknownFormat, err)
		}
		return nil, "", err
	}
	dst := pixel.NewRGBImageRect(src.Bounds())
	draw.Copy(dst, src)
	return dst, format, nil
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case PNG:
		return png.Encode(w, img)
	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case GIF:
		return gif.Encode(w, img, nil)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case WebP:
		rgba := image.NewRGBA(img.Bounds())
		draw.Copy(rgba, img)
		return webp.Encode(w, rgba, &webp.Options{Lossless: true})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Open decodes the image file name.
func Open(name string) (*pixel.RGBImage, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imageio: %s: %w", name, err)
	}
	return img, nil
}

// Save encodes img to the file name, choosing the format from its extension.
func Save(name string, img image.Image) (err error) {
	format, err := FormatFromPath(name)
	if err != nil {
		return err
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Encode(f, img, format)
}
