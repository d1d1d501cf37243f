// Package draw provides the bitmap interface used throughout photomanip together with
// a few primitive shapes for building synthetic images.
package draw

import (
	"image"
	"image/color"
	"image/draw"
)

// Drawer is an alias for [image/draw.Drawer].
type Drawer = draw.Drawer

// Image is an alias for [image/draw.Image]. Any Image can act as a bitmap.
type Image = draw.Image

// Op is an alias for image/draw.Op
type Op = draw.Op

const (
	// Over specifies ``(src in mask) over dst''.
	Over Op = iota

	// Src specifies ``src in mask''.
	Src
)

// Draw calls [DrawMask] with a nil mask.
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point, op Op) {
	DrawMask(dst, r, src, sp, nil, image.Point{}, op)
}

// DrawMask aligns r.Min in dst with sp in src and mp in mask and then replaces the rectangle r
// in dst with the result of a Porter-Duff composition. A nil mask is treated as opaque.
func DrawMask(dst Image, r image.Rectangle, src image.Image, sp image.Point, mask image.Image, mp image.Point, op Op) {
	draw.DrawMask(dst, r, src, sp, mask, mp, op)
}

// Copy replaces the whole of dst with src, aligned at their minimum points.
func Copy(dst Image, src image.Image) {
	Draw(dst, dst.Bounds(), src, src.Bounds().Min, Src)
}

// Fill paints every pixel of r in dst with c.
func Fill(dst Image, r image.Rectangle, c color.Color) {
	Draw(dst, r, image.NewUniform(c), image.Point{}, Src)
}
