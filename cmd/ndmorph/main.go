// SPDX-License-Identifier: MIT

// Command ndmorph applies erosion, dilation, seeded watershed or connected
// component labeling to an array stored as JSON or a grayscale image.
//
// Usage:
//
//	ndmorph -op erode|dilate|watershed|label -in FILE [-markers FILE]
//	        [-out FILE] [-conn cross|box] [-label-markers]
//	        [-config FILE] [-log-level L] [-log-format console|json]
//
// Without -out the result is printed to stdout as JSON. Exit status is 0 on
// success, 2 for usage or configuration errors and 1 for processing errors.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-logr/zerologr"
	"github.com/katalvlaran/ndmorph/dispatch"
	"github.com/katalvlaran/ndmorph/internal/config"
	"github.com/katalvlaran/ndmorph/ndarray"
	"github.com/katalvlaran/ndmorph/ndio"
	"github.com/katalvlaran/ndmorph/strel"
	"github.com/rs/zerolog"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, executes one operation and returns the exit status.
// Logs go to stderr so stdout only ever carries the JSON result.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ndmorph", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var over config.Config
	var cfgPath string
	fs.StringVar(&over.Op, "op", "", "operation: erode, dilate, watershed or label")
	fs.StringVar(&over.In, "in", "", "input array (.json, .png, .gif, .jpg, .bmp, .tif)")
	fs.StringVar(&over.Markers, "markers", "", "watershed markers array")
	fs.StringVar(&over.Out, "out", "", "output file; JSON on stdout when empty")
	fs.StringVar(&over.Conn, "conn", "", "structuring element: cross or box (default cross)")
	fs.BoolVar(&over.LabelMarkers, "label-markers", false, "label a binary markers image before flooding")
	fs.StringVar(&over.Logging.Level, "log-level", "", "log level (default info)")
	fs.StringVar(&over.Logging.Format, "log-format", "", "log format: console or json (default console)")
	fs.StringVar(&cfgPath, "config", "", "JSON config file; flags override its values")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "ndmorph: unexpected arguments: %v\n", fs.Args())
		return exitUsage
	}

	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath, nil)
		if err != nil {
			fmt.Fprintf(stderr, "ndmorph: %v\n", err)
			return exitUsage
		}
		cfg = loaded
	}
	cfg = config.Merge(cfg, over)
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(stderr, "ndmorph: %v\n", err)
		return exitUsage
	}

	zl := newLogger(cfg.Logging, stderr)
	eng := dispatch.New(dispatch.WithLogger(zerologr.New(&zl)))
	if err := process(eng, cfg, stdout, &zl); err != nil {
		zl.Error().Err(err).Str("op", cfg.Op).Str("in", cfg.In).Msg("ndmorph failed")
		return exitFail
	}

	return exitOK
}

// newLogger builds the zerolog logger selected by l; l is already validated.
func newLogger(l config.Logging, w io.Writer) zerolog.Logger {
	zerologr.NameFieldName = "logger"
	zerologr.NameSeparator = "/"
	level, _ := zerolog.ParseLevel(l.Level)
	if l.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// process loads the operands, runs cfg.Op and writes the result.
func process(eng *dispatch.Engine, cfg config.Config, stdout io.Writer, zl *zerolog.Logger) error {
	op, _ := dispatch.ParseOp(cfg.Op)
	conn, _ := strel.ParseConnectivity(cfg.Conn)

	array, err := ndio.ReadFile(cfg.In)
	if err != nil {
		return err
	}
	bc, err := strel.ForKind(array.Kind(), array.NDim(), conn)
	if err != nil {
		return err
	}
	zl.Debug().Str("kind", array.Kind().String()).Ints("shape", array.Shape()).
		Str("conn", conn.String()).Msg("input loaded")

	var res ndarray.Tensor
	switch op {
	case dispatch.OpErode:
		res, err = eng.Erode(array, bc)
	case dispatch.OpDilate:
		res, err = eng.Dilate(array, bc)
	case dispatch.OpLabel:
		var n int
		res, n, err = eng.Label(array, bc)
		if err == nil {
			zl.Info().Int("components", n).Msg("labeled")
		}
	case dispatch.OpWatershed:
		var markers ndarray.Tensor
		markers, err = loadMarkers(eng, cfg, array, bc, zl)
		if err != nil {
			return err
		}
		res, err = eng.CWatershed(array, markers, bc)
	}
	if err != nil {
		return err
	}

	if cfg.Out == "" {
		return ndio.EncodeJSON(stdout, res)
	}
	if err := ndio.WriteFile(cfg.Out, res); err != nil {
		return err
	}
	zl.Info().Str("out", cfg.Out).Str("op", op.String()).Msg("result written")

	return nil
}

// loadMarkers reads the markers file in array's kind, labeling it first
// when cfg.LabelMarkers is set.
func loadMarkers(eng *dispatch.Engine, cfg config.Config, array, bc ndarray.Tensor, zl *zerolog.Logger) (ndarray.Tensor, error) {
	raw, err := ndio.ReadFile(cfg.Markers)
	if err != nil {
		return nil, err
	}
	markers, err := ndarray.ConvertTo(raw, array.Kind())
	if err != nil {
		return nil, err
	}
	if !cfg.LabelMarkers {
		return markers, nil
	}
	labels, n, err := eng.Label(markers, bc)
	if err != nil {
		return nil, fmt.Errorf("label markers: %w", err)
	}
	zl.Info().Int("seeds", n).Msg("markers labeled")

	return labels, nil
}
