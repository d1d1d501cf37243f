// Package kernelfile reads and writes convolution kernel definitions in INI format.
//
// Every section defines one kernel named after the section:
//
//	[sharpen-soft]
//	weights = 0 -1 0, -1 9 -1, 0 -1 0
//	scale   = 5
//
// Rows of the weights matrix are separated by commas, the entries of a row by white
// space. The scale defaults to 1.
package kernelfile

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/ini.v1"

	"github.com/BeatGlow/photomanip"
)

// Keys used in a kernel section.
const (
	WeightsKey = "weights"
	ScaleKey   = "scale"
)

// Load parses kernel definitions from source, which may be a file name, a []byte or an
// io.Reader, as accepted by [ini.Load]. Kernels are returned in file order.
func Load(source any) ([]photomanip.Kernel, error) {
	f, err := ini.Load(source)
	if err != nil {
		return nil, fmt.Errorf("kernelfile: %w", err)
	}

	scale := 1
	if defaults := f.Section(ini.DefaultSection); defaults.HasKey(ScaleKey) {
		if scale, err = defaults.Key(ScaleKey).Int(); err != nil {
			return nil, fmt.Errorf("kernelfile: invalid default %s: %w", ScaleKey, err)
		}
	}

	var kernels []photomanip.Kernel
	for _, section := range f.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		k, err := parseSection(section, scale)
		if err != nil {
			return nil, err
		}
		kernels = append(kernels, k)
	}
	return kernels, nil
}

func parseSection(section *ini.Section, scale int) (photomanip.Kernel, error) {
	k := photomanip.Kernel{
		Name:  section.Name(),
		Scale: scale,
	}
	if !section.HasKey(WeightsKey) {
		return k, fmt.Errorf("kernelfile: [%s]: %w: missing %q", k.Name, photomanip.ErrKernelShape, WeightsKey)
	}

	weights, err := ParseWeights(section.Key(WeightsKey).String())
	if err != nil {
		return k, fmt.Errorf("kernelfile: [%s]: %w", k.Name, err)
	}
	k.Weights = weights

	if section.HasKey(ScaleKey) {
		if k.Scale, err = section.Key(ScaleKey).Int(); err != nil {
			return k, fmt.Errorf("kernelfile: [%s]: invalid %s: %w", k.Name, ScaleKey, err)
		}
	}
	if err = k.Validate(); err != nil {
		return k, fmt.Errorf("kernelfile: [%s]: %w", k.Name, err)
	}
	return k, nil
}

// ParseWeights parses a weights matrix such as "1 2 1, 2 4 2, 1 2 1".
func ParseWeights(s string) ([][]int, error) {
	var err error
	weights := lo.Map(strings.Split(s, ","), func(row string, _ int) []int {
		return lo.Map(strings.Fields(row), func(field string, _ int) int {
			v, perr := strconv.Atoi(field)
			if perr != nil && err == nil {
				err = fmt.Errorf("%w: %q is not an integer", photomanip.ErrKernelShape, field)
			}
			return v
		})
	})
	if err != nil {
		return nil, err
	}
	return weights, nil
}

// FormatWeights is the inverse of ParseWeights.
func FormatWeights(weights [][]int) string {
	return strings.Join(lo.Map(weights, func(row []int, _ int) string {
		return strings.Join(lo.Map(row, func(v int, _ int) string {
			return strconv.Itoa(v)
		}), " ")
	}), ", ")
}

// Save writes kernels to w in the format read by Load.
func Save(w io.Writer, kernels ...photomanip.Kernel) error {
	f := ini.Empty()
	for _, k := range kernels {
		if err := k.Validate(); err != nil {
			return fmt.Errorf("kernelfile: [%s]: %w", k.Name, err)
		}
		section, err := f.NewSection(k.Name)
		if err != nil {
			return fmt.Errorf("kernelfile: %w", err)
		}
		if _, err = section.NewKey(WeightsKey, FormatWeights(k.Weights)); err != nil {
			return fmt.Errorf("kernelfile: %w", err)
		}
		if _, err = section.NewKey(ScaleKey, strconv.Itoa(k.Scale)); err != nil {
			return fmt.Errorf("kernelfile: %w", err)
		}
	}
	_, err := f.WriteTo(w)
	return err
}
