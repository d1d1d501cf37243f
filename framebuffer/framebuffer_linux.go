package framebuffer

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"os"
	"syscall"

	"github.com/BeatGlow/photomanip/internal/ioctl"
	"github.com/BeatGlow/photomanip/pixel"
)

const (
	// From <linux/fb.h>
	fbioGetVScreenInfo ioctl.Command = 0x4600
	fbioGetFScreenInfo ioctl.Command = 0x4602
)

// Open a Linux FrameBuffer device (fbdev) by name, typically /dev/fb[0..x].
func Open(name string) (*Device, error) {
	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, err
	}

	var (
		fd         = f.Fd()
		info       linuxFrameBufferInfo
		screenInfo linuxVarScreenInfo
	)
	if err = ioctl.Do(fd, fbioGetFScreenInfo, &info); err != nil {
		_ = f.Close()
		return nil, err
	}

	// Request virtual screen info.
	if err = ioctl.Do(fd, fbioGetVScreenInfo, &screenInfo); err != nil {
		_ = f.Close()
		return nil, err
	}
	model, err := linuxParseColorModel(&screenInfo)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	// Map pixel buffer.
	pix, err := syscall.Mmap(int(fd), 0, int(info.SmemLen), syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	buffer := pixel.Buffer{
		Rect:   image.Rect(0, 0, int(screenInfo.Xres), int(screenInfo.Yres)),
		Pix:    pix,
		Stride: int(info.LineLength),
	}
	return &Device{
		Image: newImage(buffer, model),
		close: func() error {
			if err := syscall.Munmap(pix); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}, nil
}

func newImage(buffer pixel.Buffer, model color.Model) pixel.Image {
	switch model {
	case pixel.CRGB16Model:
		return &pixel.CRGB16Image{Buffer: buffer, Order: binary.NativeEndian}
	case pixel.CBGR16Model:
		return &pixel.CBGR16Image{Buffer: buffer, Order: binary.NativeEndian}
	case pixel.XRGB32Model:
		return &pixel.XRGB32Image{Buffer: buffer, Order: binary.NativeEndian}
	default:
		return rgbaImage{&image.RGBA{Pix: buffer.Pix, Stride: buffer.Stride, Rect: buffer.Rect}}
	}
}

type linuxFrameBufferInfo struct {
	ID         [16]byte  // Identification string eg "TT Builtin"
	SmemStart  uintptr   // Start of frame buffer mem
	SmemLen    uint32    // Length of frame buffer mem
	Type       uint32    // FB_TYPE_
	TypeAux    uint32    // Interleave for interleaved Planes
	Visual     uint32    // FB_VISUAL_
	Xpanstep   uint16    // Zero if no hardware panning
	Ypanstep   uint16    // Zero if no hardware panning
	Ywrapstep  uint16    // Zero if no hardware ywrap
	LineLength uint32    // Length of a line in bytes
	MmioStart  uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen    uint32    // Length of Memory Mapped I/O
	Accel      uint32    // Type of acceleration available
	Reserved   [3]uint16 // Reserved for future compatibility
}

// linuxBitField for the color
type linuxBitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

// linuxVarScreenInfo contains device independent changeable information about a frame buffer device and a specific video mode.
type linuxVarScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha linuxBitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}

func (f linuxBitField) is(offset, length uint32) bool {
	return f.Offset == offset && f.Length == length
}

func linuxParseColorModel(info *linuxVarScreenInfo) (color.Model, error) {
	if info == nil {
		return nil, errors.New("framebuffer: invalid VarScreenInfo")
	}

	switch info.BitsPerPixel {
	case 16:
		switch {
		case info.Blue.is(0, 5) && info.Green.is(5, 6) && info.Red.is(11, 5):
			return pixel.CRGB16Model, nil
		case info.Red.is(0, 5) && info.Green.is(5, 6) && info.Blue.is(11, 5):
			return pixel.CBGR16Model, nil
		}

	case 32:
		switch {
		case info.Blue.is(0, 8) && info.Green.is(8, 8) && info.Red.is(16, 8):
			return pixel.XRGB32Model, nil
		case info.Red.is(0, 8) && info.Green.is(8, 8) && info.Blue.is(16, 8):
			return color.RGBAModel, nil
		}
	}

	return nil, ErrUnsupportedModel
}
