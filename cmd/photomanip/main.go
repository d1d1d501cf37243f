package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/BeatGlow/photomanip"
	"github.com/BeatGlow/photomanip/kernelfile"
)

type options struct {
	debug       bool
	kernelsFile string
	logger      *log.Logger
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := new(options)
	cmd := &cobra.Command{
		Use:           "photomanip",
		Short:         "Apply 3x3 convolution kernels to images",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
				Prefix: "photomanip",
				Level:  log.InfoLevel,
			})
			if opts.debug || os.Getenv("PHOTOMANIP_DEBUG") != "" {
				opts.logger.SetLevel(log.DebugLevel)
			}
			photomanip.SetLogger(opts.logger)
		},
	}
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.kernelsFile, "kernels", "", "INI file with additional kernel definitions")

	cmd.AddCommand(
		newFilterCommand(opts),
		newKernelsCommand(opts),
		newTestcardCommand(opts),
	)
	return cmd
}

// extraKernels loads the kernels from the --kernels file, if one was given.
func (opts *options) extraKernels() ([]photomanip.Kernel, error) {
	if opts.kernelsFile == "" {
		return nil, nil
	}
	kernels, err := kernelfile.Load(opts.kernelsFile)
	if err != nil {
		return nil, err
	}
	opts.logger.Debug("loaded kernels", "file", opts.kernelsFile, "count", len(kernels))
	return kernels, nil
}

func newKernelsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "kernels",
		Short: "List the available kernels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			extra, err := opts.extraKernels()
			if err != nil {
				return err
			}
			for _, k := range append(extra, photomanip.Kernels()...) {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	}
}
