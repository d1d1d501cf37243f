package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/BeatGlow/photomanip"
	"github.com/BeatGlow/photomanip/framebuffer"
	"github.com/BeatGlow/photomanip/imageio"
)

type filterOptions struct {
	*options
	kernels []string
	noClamp bool
	preview string
}

func newFilterCommand(opts *options) *cobra.Command {
	fopts := &filterOptions{options: opts}
	cmd := &cobra.Command{
		Use:   "filter <input> <output>",
		Short: "Filter an image with one or more kernels",
		Long: `Filter decodes the input image, applies every kernel in order and encodes the
result in the format matching the output file extension. The one pixel border of the
image is left unfiltered.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return fopts.run(args[0], args[1])
		},
	}
	cmd.Flags().StringSliceVarP(&fopts.kernels, "kernel", "k", []string{photomanip.Sharpen.Name}, "Kernel to apply, may be repeated")
	cmd.Flags().BoolVar(&fopts.noClamp, "no-clamp", false, "Fail on out of range results instead of clamping them")
	cmd.Flags().StringVar(&fopts.preview, "preview", "", "Framebuffer device to show the result on, e.g. /dev/fb0")
	return cmd
}

func (opts *filterOptions) run(input, output string) error {
	extra, err := opts.extraKernels()
	if err != nil {
		return err
	}
	kernels := make([]photomanip.Kernel, 0, len(opts.kernels))
	for _, name := range opts.kernels {
		k, ok := photomanip.Lookup(name, extra...)
		if !ok {
			return fmt.Errorf("unknown kernel %q", name)
		}
		kernels = append(kernels, k)
	}

	img, err := imageio.Open(input)
	if err != nil {
		return err
	}
	p := photomanip.New(img)
	opts.logger.Info("loaded image", "file", input, "width", p.Width(), "height", p.Height())

	for _, k := range kernels {
		start := time.Now()
		data, err := k.Apply(p)
		if err != nil {
			return fmt.Errorf("kernel %s: %w", k.Name, err)
		}
		if !opts.noClamp {
			data = photomanip.Clamp(data)
		}
		if err = p.SetPixels(data); err != nil {
			return fmt.Errorf("kernel %s: %w", k.Name, err)
		}
		opts.logger.Info("applied kernel", "kernel", k.Name, "took", time.Since(start))
	}

	if err = imageio.Save(output, p.Bitmap()); err != nil {
		return err
	}
	opts.logger.Info("saved image", "file", output)

	if opts.preview != "" {
		return opts.show(p)
	}
	return nil
}

func (opts *filterOptions) show(p *photomanip.PixelImage) error {
	fb, err := framebuffer.Open(opts.preview)
	if err != nil {
		return err
	}
	opts.logger.Debug("preview", "device", opts.preview, "size", fb.Bounds().Size())
	fb.Show(p.Bitmap())
	return fb.Close()
}
