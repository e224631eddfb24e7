// Command qrgen reads a payload and writes it out as a QR code image.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mazzegi/qrgen"
	"github.com/mazzegi/qrgen/render"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	inPath     string
	outPath    string
	levelL     bool
	levelM     bool
	levelQ     bool
	levelH     bool
	pixels     int
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "qrgen",
		Short:         "Encode a payload as a QR code image",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.inPath, "input", "i", "", "input file (default stdin)")
	flags.StringVarP(&opts.outPath, "output", "o", "", "output file (default stdout)")
	flags.BoolVarP(&opts.levelL, "level-l", "l", false, "error correction level L (default)")
	flags.BoolVarP(&opts.levelM, "level-m", "m", false, "error correction level M")
	flags.BoolVarP(&opts.levelQ, "level-q", "q", false, "error correction level Q")
	flags.BoolVar(&opts.levelH, "level-h", false, "error correction level H")
	flags.IntVarP(&opts.pixels, "pixels", "p", 20, "pixels per module (must be positive)")
	flags.StringVarP(&opts.configPath, "config", "c", "", "optional YAML config file overriding flag defaults")
	return cmd
}

func run(opts *options) error {
	if opts.configPath != "" {
		if err := applyConfigFile(opts); err != nil {
			logger.Error("failed to read config", "path", opts.configPath, "err", err)
			return err
		}
	}

	level, err := chosenLevel(opts)
	if err != nil {
		logger.Error(err.Error())
		return err
	}
	if opts.pixels < 1 {
		err := fmt.Errorf("pixels per module must be positive, got %d", opts.pixels)
		logger.Error(err.Error())
		return err
	}

	payload, err := readPayload(opts.inPath)
	if err != nil {
		logger.Error("failed to read input", "err", err)
		return err
	}

	matrix, dim, err := qrgen.Encode(payload, level)
	if err != nil {
		logger.Error("encode failed", "err", err)
		return err
	}
	logger.Debug("encoded symbol", "level", level, "dimension", dim)

	quietZone := dim / 5
	pixels := render.Scale(matrix, opts.pixels, quietZone)

	out, closeFn, err := openOutput(opts.outPath)
	if err != nil {
		logger.Error("failed to open output", "err", err)
		return err
	}
	defer closeFn()

	if err := render.WritePNG(out, pixels, render.Black); err != nil {
		logger.Error("failed to write image", "err", err)
		return err
	}
	return nil
}

// chosenLevel resolves the four mutually exclusive level flags to a
// single qrgen.Level, defaulting to L when none are set.
func chosenLevel(opts *options) (qrgen.Level, error) {
	set := 0
	level := qrgen.LevelL
	if opts.levelL {
		set++
		level = qrgen.LevelL
	}
	if opts.levelM {
		set++
		level = qrgen.LevelM
	}
	if opts.levelQ {
		set++
		level = qrgen.LevelQ
	}
	if opts.levelH {
		set++
		level = qrgen.LevelH
	}
	if set > 1 {
		return level, fmt.Errorf("only one of -l, -m, -q, --level-h may be given")
	}
	return level, nil
}

func readPayload(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
