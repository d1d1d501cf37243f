package main

import (
	"github.com/spf13/cobra"

	"github.com/BeatGlow/photomanip/imageio"
	"github.com/BeatGlow/photomanip/testcard"
)

func newTestcardCommand(opts *options) *cobra.Command {
	config := testcard.DefaultConfig
	cmd := &cobra.Command{
		Use:   "testcard <output>",
		Short: "Write a synthetic test image",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			img, err := testcard.Draw(&config)
			if err != nil {
				return err
			}
			if err = imageio.Save(args[0], img); err != nil {
				return err
			}
			opts.logger.Info("saved test card", "file", args[0], "width", config.Width, "height", config.Height)
			return nil
		},
	}
	cmd.Flags().IntVar(&config.Width, "width", config.Width, "Width in pixels")
	cmd.Flags().IntVar(&config.Height, "height", config.Height, "Height in pixels")
	cmd.Flags().StringVar(&config.Label, "label", config.Label, "Text drawn on the card")
	cmd.Flags().Float64Var(&config.FontSize, "font-size", config.FontSize, "Label size in points")
	return cmd
}
