// Package photomanip exposes a bitmap as a two dimensional array of pixels and applies
// 3x3 weighted convolution filters to it.
//
// A [PixelImage] wraps any [draw.Image] without copying it. [PixelImage.Pixels] reads
// the bitmap into a fresh [][]pixel.Pixel, [ApplyKernel] filters such an array and
// [PixelImage.SetPixels] writes one back.
package photomanip

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Errors
var (
	ErrInvalidArgument = errors.New("photomanip: invalid argument")
	ErrSizeMismatch    = fmt.Errorf("%w: array size does not match", ErrInvalidArgument)
	ErrChannelRange    = fmt.Errorf("%w: channel value out of range 0-255", ErrInvalidArgument)
	ErrKernelShape     = fmt.Errorf("%w: kernel weights must be 3x3", ErrInvalidArgument)
	ErrDivisionByZero  = fmt.Errorf("%w: kernel scale is zero", ErrInvalidArgument)
)

var logger *log.Logger

func init() {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "photomanip",
		Level:  log.WarnLevel,
	})
	if os.Getenv("PHOTOMANIP_DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	}
}

// SetLogger replaces the package logger. A nil logger discards all output.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}
