package photomanip

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/BeatGlow/photomanip/pixel"
)

// Kernel is a named 3x3 weights matrix and the divisor applied to its weighted sums.
type Kernel struct {
	Name    string
	Weights [][]int
	Scale   int
}

// Built-in kernels.
var (
	Identity = Kernel{
		Name: "identity",
		Weights: [][]int{
			{0, 0, 0},
			{0, 1, 0},
			{0, 0, 0},
		},
		Scale: 1,
	}
	BoxBlur = Kernel{
		Name: "blur",
		Weights: [][]int{
			{1, 1, 1},
			{1, 1, 1},
			{1, 1, 1},
		},
		Scale: 9,
	}
	GaussianBlur = Kernel{
		Name: "gaussian",
		Weights: [][]int{
			{1, 2, 1},
			{2, 4, 2},
			{1, 2, 1},
		},
		Scale: 16,
	}
	Sharpen = Kernel{
		Name: "sharpen",
		Weights: [][]int{
			{0, -1, 0},
			{-1, 5, -1},
			{0, -1, 0},
		},
		Scale: 1,
	}
	EdgeDetect = Kernel{
		Name: "edge",
		Weights: [][]int{
			{-1, -1, -1},
			{-1, 8, -1},
			{-1, -1, -1},
		},
		Scale: 1,
	}
	Emboss = Kernel{
		Name: "emboss",
		Weights: [][]int{
			{-2, -1, 0},
			{-1, 1, 1},
			{0, 1, 2},
		},
		Scale: 1,
	}
)

// Kernels returns the built-in kernels.
func Kernels() []Kernel {
	return []Kernel{Identity, BoxBlur, GaussianBlur, Sharpen, EdgeDetect, Emboss}
}

// Lookup finds a kernel by name, ignoring case. The built-in kernels are searched
// after any extra kernels given.
func Lookup(name string, extra ...Kernel) (Kernel, bool) {
	return lo.Find(append(extra[:len(extra):len(extra)], Kernels()...), func(k Kernel) bool {
		return strings.EqualFold(k.Name, name)
	})
}

func (k Kernel) String() string {
	rows := lo.Map(k.Weights, func(row []int, _ int) string {
		return strings.Trim(fmt.Sprint(row), "[]")
	})
	return fmt.Sprintf("%s [%s] / %d", k.Name, strings.Join(rows, "; "), k.Scale)
}

// Validate checks the shape of the weights and the scale.
func (k Kernel) Validate() error {
	if err := checkWeights(k.Weights); err != nil {
		return err
	}
	if k.Scale == 0 {
		return ErrDivisionByZero
	}
	return nil
}

// Apply filters src with the kernel, see [ApplyKernel].
func (k Kernel) Apply(src *PixelImage) ([][]pixel.Pixel, error) {
	return ApplyKernel(k.Weights, src, k.Scale)
}

func checkWeights(weights [][]int) error {
	if len(weights) != 3 {
		return fmt.Errorf("%w: got %d rows", ErrKernelShape, len(weights))
	}
	for i, row := range weights {
		if len(row) != 3 {
			return fmt.Errorf("%w: row %d has %d weights", ErrKernelShape, i, len(row))
		}
	}
	return nil
}

// ApplyKernel convolves the pixels of src with a 3x3 weights matrix.
//
// Weights are indexed [dy+1][dx+1] for the neighbor at row offset dy and column offset
// dx. Every interior pixel becomes, per channel, the weighted sum of its neighborhood
// divided by scale, truncating toward zero. The results are not clamped, so they may
// be negative or exceed 255. Border pixels are copied from src unchanged.
//
// src is only read. The returned array is newly allocated.
func ApplyKernel(weights [][]int, src *PixelImage, scale int) ([][]pixel.Pixel, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: no source image", ErrInvalidArgument)
	}
	if err := checkWeights(weights); err != nil {
		return nil, err
	}
	if scale == 0 {
		return nil, ErrDivisionByZero
	}

	logger.Debug("apply kernel", "weights", weights, "scale", scale, "width", src.width, "height", src.height)

	var (
		in  = src.Pixels()
		out = src.Pixels()
	)
	for row := 1; row < src.height-1; row++ {
		for col := 1; col < src.width-1; col++ {
			var r, g, b int
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					var (
						w = weights[dy+1][dx+1]
						v = in[row+dy][col+dx]
					)
					r += v.R * w
					g += v.G * w
					b += v.B * w
				}
			}
			out[row][col] = pixel.Pixel{R: r / scale, G: g / scale, B: b / scale}
		}
	}
	return out, nil
}

// Clamp returns a copy of data with every channel clamped to 0-255, making filter
// output acceptable to [PixelImage.SetPixels].
func Clamp(data [][]pixel.Pixel) [][]pixel.Pixel {
	return lo.Map(data, func(row []pixel.Pixel, _ int) []pixel.Pixel {
		return lo.Map(row, func(v pixel.Pixel, _ int) pixel.Pixel {
			return v.Clamp()
		})
	})
}
