package photomanip

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeatGlow/photomanip/pixel"
)

func uniformImage(w, h int, v pixel.Pixel) *PixelImage {
	b := pixel.NewRGBImage(w, h)
	b.Fill(v)
	return New(b)
}

func TestApplyKernelBorder(t *testing.T) {
	src := New(testRandomImage(13, 8))
	want := src.Pixels()
	for _, k := range Kernels() {
		t.Run(k.Name, func(it *testing.T) {
			got, err := k.Apply(src)
			require.NoError(it, err)
			require.Len(it, got, src.Height())

			last := src.Height() - 1
			assert.Equal(it, want[0], got[0])
			assert.Equal(it, want[last], got[last])
			for row := range got {
				require.Len(it, got[row], src.Width())
				assert.Equal(it, want[row][0], got[row][0], "row %d", row)
				assert.Equal(it, want[row][src.Width()-1], got[row][src.Width()-1], "row %d", row)
			}
		})
	}
}

func TestApplyKernelIdentity(t *testing.T) {
	src := New(testRandomImage(9, 7))
	got, err := ApplyKernel(Identity.Weights, src, 1)
	require.NoError(t, err)
	if diff := cmp.Diff(src.Pixels(), got); diff != "" {
		t.Errorf("identity kernel changed the image (-want +got):\n%s", diff)
	}
}

func TestApplyKernelBoxBlur(t *testing.T) {
	src := uniformImage(3, 3, pixel.New(100, 100, 100))
	got, err := BoxBlur.Apply(src)
	require.NoError(t, err)
	assert.Equal(t, pixel.New(100, 100, 100), got[1][1])
}

func TestApplyKernelTruncates(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		weights [][]int
		scale   int
		want    int
	}{
		{"positive", 10, Identity.Weights, 3, 3},
		{"exact", 12, Identity.Weights, 3, 4},
		{"just-below", 11, Identity.Weights, 3, 3},
		{"negative-scale", 10, Identity.Weights, -3, -3},
		{"negative-sum", 10, [][]int{{0, 0, 0}, {0, -1, 0}, {0, 0, 0}}, 3, -3},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			v := test.value
			src := uniformImage(3, 3, pixel.New(v, v, v))
			got, err := ApplyKernel(test.weights, src, test.scale)
			require.NoError(it, err)
			assert.Equal(it, pixel.New(test.want, test.want, test.want), got[1][1])
		})
	}
}

func TestApplyKernelNegativeSum(t *testing.T) {
	// A dark center inside a brighter ring gives a negative Laplacian.
	b := pixel.NewRGBImage(3, 3)
	b.Fill(pixel.New(10, 20, 30))
	b.Set(1, 1, pixel.New(0, 0, 0))
	src := New(b)

	got, err := EdgeDetect.Apply(src)
	require.NoError(t, err)
	// 8*0 - 8*v
	assert.Equal(t, pixel.New(-80, -160, -240), got[1][1])
	assert.False(t, got[1][1].Valid())

	// Results are not clamped, so writing them back is rejected until they are.
	require.ErrorIs(t, src.SetPixels(got), ErrChannelRange)
	require.NoError(t, src.SetPixels(Clamp(got)))
	assert.Equal(t, pixel.Black, b.PixelAt(1, 1))
}

func TestApplyKernelNeighborhood(t *testing.T) {
	// Each weight picks out a single neighbor, so the output locates the weight index.
	b := pixel.NewRGBImage(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			b.Set(x, y, pixel.New(y*3+x, 0, 0))
		}
	}
	src := New(b)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			weights := [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
			weights[dy+1][dx+1] = 1
			got, err := ApplyKernel(weights, src, 1)
			require.NoError(t, err)
			assert.Equal(t, (1+dy)*3+(1+dx), got[1][1].R, "offset (%d,%d)", dx, dy)
		}
	}
}

func TestApplyKernelSource(t *testing.T) {
	src := New(testRandomImage(5, 5))
	before := src.Pixels()
	other := New(pixel.NewRGBImage(2, 2))

	got, err := other.ApplyKernel(Sharpen.Weights, src, Sharpen.Scale)
	require.NoError(t, err)
	assert.Len(t, got, 5)
	// The source is only read.
	assert.Equal(t, before, src.Pixels())

	self, err := src.ApplyKernel(Sharpen.Weights, nil, Sharpen.Scale)
	require.NoError(t, err)
	assert.Equal(t, got, self)
}

func TestApplyKernelSmallImages(t *testing.T) {
	for _, size := range [][2]int{{0, 0}, {1, 1}, {2, 5}, {5, 2}} {
		src := New(testRandomImage(size[0], size[1]))
		got, err := EdgeDetect.Apply(src)
		require.NoError(t, err)
		assert.Equal(t, src.Pixels(), got)
	}
}

func TestApplyKernelErrors(t *testing.T) {
	src := uniformImage(4, 4, pixel.White)
	tests := []struct {
		name    string
		weights [][]int
		src     *PixelImage
		scale   int
		want    error
	}{
		{"zero-scale", Identity.Weights, src, 0, ErrDivisionByZero},
		{"nil-weights", nil, src, 1, ErrKernelShape},
		{"two-rows", [][]int{{0, 0, 0}, {0, 1, 0}}, src, 1, ErrKernelShape},
		{"short-row", [][]int{{0, 0, 0}, {0, 1}, {0, 0, 0}}, src, 1, ErrKernelShape},
		{"5x5", [][]int{{0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, 0, 1, 0, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}}, src, 1, ErrKernelShape},
		{"nil-source", Identity.Weights, nil, 1, ErrInvalidArgument},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			got, err := ApplyKernel(test.weights, test.src, test.scale)
			require.ErrorIs(it, err, test.want)
			require.ErrorIs(it, err, ErrInvalidArgument)
			assert.Nil(it, got)
		})
	}
}

func TestKernelValidate(t *testing.T) {
	for _, k := range Kernels() {
		assert.NoError(t, k.Validate(), k.Name)
	}
	assert.ErrorIs(t, Kernel{Weights: Identity.Weights}.Validate(), ErrDivisionByZero)
	assert.ErrorIs(t, Kernel{Scale: 1}.Validate(), ErrKernelShape)
}

func TestLookup(t *testing.T) {
	k, ok := Lookup("SHARPEN")
	require.True(t, ok)
	assert.Equal(t, Sharpen, k)

	_, ok = Lookup("unknown")
	assert.False(t, ok)

	custom := Kernel{Name: "blur", Weights: Identity.Weights, Scale: 2}
	k, ok = Lookup("blur", custom)
	require.True(t, ok)
	assert.Equal(t, custom, k)
}

func TestKernelString(t *testing.T) {
	assert.Equal(t, "sharpen [0 -1 0; -1 5 -1; 0 -1 0] / 1", Sharpen.String())
}

func TestFilter(t *testing.T) {
	b := pixel.NewRGBImage(3, 3)
	b.Fill(pixel.New(200, 200, 200))
	b.Set(1, 1, pixel.New(250, 10, 200))
	p := New(b)

	require.NoError(t, p.Filter(Sharpen))
	// 5*250-4*200, 5*10-4*200, 5*200-4*200
	assert.Equal(t, pixel.New(255, 0, 200), b.PixelAt(1, 1))
	assert.Equal(t, pixel.New(200, 200, 200), b.PixelAt(0, 0))

	assert.ErrorIs(t, p.Filter(Kernel{Weights: Identity.Weights}), ErrDivisionByZero)
}

func TestClamp(t *testing.T) {
	data := [][]pixel.Pixel{{pixel.New(-1, 300, 5)}, {pixel.New(255, 0, 256)}}
	assert.Equal(t, [][]pixel.Pixel{{pixel.New(0, 255, 5)}, {pixel.New(255, 0, 255)}}, Clamp(data))
	assert.Equal(t, pixel.New(-1, 300, 5), data[0][0])
}
