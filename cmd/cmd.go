package cmd

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"slack-gif/stamp"
)

var Cmd = &cli.Command{
	Name:  "slack-gif",
	Usage: "Resize gifs and turn them into Slack stamps",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "dir",
			Usage:   "Process all gif files in given directories",
			Aliases: []string{"d"},
		},
		&cli.StringFlag{
			Name:    "stamp",
			Usage:   "Build a 128x128 Slack stamp (standard, optimized or lightweight)",
			Aliases: []string{"s"},
		},
		&cli.IntFlag{
			Name:    "width",
			Usage:   "Target width in pixels",
			Aliases: []string{"w"},
		},
		&cli.IntFlag{
			Name:    "height",
			Usage:   "Target height in pixels",
			Aliases: []string{"H"},
		},
		&cli.IntFlag{
			Name:  "scale",
			Usage: "Scale to a percentage of the source size (10-200)",
		},
		&cli.BoolFlag{
			Name:    "keep-aspect",
			Usage:   "Shrink the target geometry to keep the source aspect ratio",
			Aliases: []string{"k"},
		},
		&cli.BoolFlag{
			Name:    "info",
			Usage:   "Print gif information without processing",
			Aliases: []string{"i"},
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "Number of files processed concurrently",
			Value: 4,
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Verbose processing logs",
		},
	},
	Action: action,
}

type options struct {
	stampLevel stamp.Level
	width      int
	height     int
	scale      int
	keepAspect bool
	info       bool

	opt stamp.Optimizer
	log zerolog.Logger
}

func action(ctx context.Context, c *cli.Command) error {
	args := c.Args().Slice()
	if len(args) == 0 {
		cli.ShowAppHelpAndExit(c, 0)
	}

	opts := options{
		stampLevel: stamp.Level(c.String("stamp")),
		width:      int(c.Int("width")),
		height:     int(c.Int("height")),
		scale:      int(c.Int("scale")),
		keepAspect: c.Bool("keep-aspect"),
		info:       c.Bool("info"),
	}
	if !opts.info && opts.stampLevel == "" && opts.scale == 0 &&
		(opts.width == 0 || opts.height == 0) {
		return fmt.Errorf("specify --stamp, --info, --scale, or both --width and --height")
	}
	if opts.scale != 0 {
		if err := stamp.ValidateScale(opts.scale); err != nil {
			return err
		}
	}

	logLevel := zerolog.InfoLevel
	if c.Bool("debug") {
		logLevel = zerolog.DebugLevel
	}
	opts.log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(logLevel).With().Timestamp().Logger()
	opts.opt = stamp.DetectOptimizer(opts.log)

	paths := collectPaths(args, c.Bool("dir"))
	processPaths(paths, int(c.Int("workers")), func(p string) {
		processFile(p, opts)
	})
	return nil
}

// processFile runs one file through the requested operation. Reporting is per
// file; one bad file never stops the batch.
func processFile(inPath string, opts options) {
	data, err := os.ReadFile(inPath)
	if err != nil {
		fmt.Printf("❌ Failed reading '%s': %s\n", inPath, err.Error())
		return
	}

	proc, err := stamp.NewProcessor(data, opts.opt, opts.log)
	if err != nil {
		fmt.Printf("❌ Failed decoding '%s': %s\n", inPath, err.Error())
		return
	}

	if opts.info {
		printInfo(inPath, proc.Source())
		return
	}

	var (
		out    []byte
		outW   int
		outH   int
		prefix string
	)
	if opts.stampLevel != "" {
		out, err = proc.Stamp(opts.stampLevel)
		outW, outH = stamp.StampSize, stamp.StampSize
		prefix = "Slack_"
	} else {
		outW, outH = targetGeometry(proc.Source(), opts)
		out, err = proc.Resize(outW, outH)
	}
	if err != nil {
		fmt.Printf("❌ Failed processing '%s': %s\n", inPath, err.Error())
		return
	}

	outPath := filepath.Join(
		path.Dir(inPath),
		prefix+outputName(path.Base(inPath), outW, outH),
	)
	if err = os.WriteFile(outPath, out, 0o644); err != nil {
		fmt.Printf("❌ Failed saving '%s': %s\n", outPath, err.Error())
		return
	}
	fmt.Printf(
		"🟢 Saved '%s' (%s, %s)\n",
		path.Base(outPath),
		formatSize(len(out)),
		sizeChange(len(data), len(out)),
	)
}

// targetGeometry resolves the flags into a concrete geometry for the
// unconstrained resize path. Validation happens inside the processor.
func targetGeometry(src *stamp.Source, opts options) (int, int) {
	if opts.scale > 0 {
		return src.Width() * opts.scale / 100, src.Height() * opts.scale / 100
	}
	if opts.keepAspect {
		return stamp.FitAspect(opts.width, opts.height, src.Width(), src.Height())
	}
	return opts.width, opts.height
}

// outputName mirrors the download name the original tool produced.
func outputName(base string, width, height int) string {
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s_resized_%dx%d.gif", base[:len(base)-len(ext)], width, height)
}
