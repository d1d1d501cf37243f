// Package pixel implements the per-pixel value type and the buffer backed bitmaps used by photomanip.
//
// All types are compatible with Go's native [color.Color] and [image.Image] / [draw.Image]
// interfaces, so any of them can be wrapped by a photomanip.PixelImage.
package pixel
