// SPDX-License-Identifier: MIT

// Package config holds the ndmorph CLI settings: defaults, a strict JSON
// file loader, flag-over-file merging and aggregated validation.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/ndmorph/dispatch"
	"github.com/katalvlaran/ndmorph/strel"
	"github.com/rs/zerolog"
	"go.uber.org/multierr"
)

// ErrNoSource is returned by Load when neither a path nor raw bytes are given.
var ErrNoSource = errors.New("config: no config source provided")

// Config is one ndmorph invocation.
type Config struct {
	Op           string  `json:"op"`
	In           string  `json:"in"`
	Markers      string  `json:"markers,omitempty"`
	Out          string  `json:"out,omitempty"`
	Conn         string  `json:"conn"`
	LabelMarkers bool    `json:"label_markers,omitempty"`
	Logging      Logging `json:"logging"`
}

// Logging selects the CLI logger.
type Logging struct {
	Level  string `json:"level"`  // zerolog level name
	Format string `json:"format"` // console | json
}

// Default returns a Config with every optional field set.
// Op and In have no default.
func Default() Config {
	return Config{
		Conn: strel.ConnFace.String(),
		Logging: Logging{
			Level:  zerolog.InfoLevel.String(),
			Format: "console",
		},
	}
}

// Load parses a Config from raw JSON or, when raw is empty, from the file at
// path. Fields absent from the document keep their Default value; unknown
// fields are rejected.
func Load(path string, raw []byte) (Config, error) {
	cfg := Default()
	var r io.Reader
	switch {
	case len(raw) > 0:
		r = bytes.NewReader(raw)
	case path != "":
		f, err := os.Open(path)
		if err != nil {
			return cfg, err
		}
		defer f.Close()
		r = f
	default:
		return cfg, ErrNoSource
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Merge overlays over onto base; empty strings and false do not override.
func Merge(base, over Config) Config {
	out := base
	if s := strings.TrimSpace(over.Op); s != "" {
		out.Op = s
	}
	if s := strings.TrimSpace(over.In); s != "" {
		out.In = s
	}
	if s := strings.TrimSpace(over.Markers); s != "" {
		out.Markers = s
	}
	if s := strings.TrimSpace(over.Out); s != "" {
		out.Out = s
	}
	if s := strings.TrimSpace(over.Conn); s != "" {
		out.Conn = s
	}
	if over.LabelMarkers {
		out.LabelMarkers = true
	}
	if s := strings.TrimSpace(over.Logging.Level); s != "" {
		out.Logging.Level = s
	}
	if s := strings.TrimSpace(over.Logging.Format); s != "" {
		out.Logging.Format = s
	}

	return out
}

// Validate reports every problem with cfg at once, joined with multierr.
func Validate(cfg Config) error {
	var errs error

	op, err := dispatch.ParseOp(cfg.Op)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("config: op: %w", err))
	}
	if strings.TrimSpace(cfg.In) == "" {
		errs = multierr.Append(errs, errors.New("config: in not set"))
	}
	if err == nil && op == dispatch.OpWatershed && strings.TrimSpace(cfg.Markers) == "" {
		errs = multierr.Append(errs, errors.New("config: watershed requires markers"))
	}
	if cfg.LabelMarkers && (err != nil || op != dispatch.OpWatershed) {
		errs = multierr.Append(errs, errors.New("config: label_markers only applies to watershed"))
	}
	if _, err := strel.ParseConnectivity(cfg.Conn); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("config: conn: %w", err))
	}
	if lvl, err := zerolog.ParseLevel(cfg.Logging.Level); err != nil || lvl == zerolog.NoLevel {
		errs = multierr.Append(errs, fmt.Errorf("config: logging.level %q invalid", cfg.Logging.Level))
	}
	switch cfg.Logging.Format {
	case "console", "json":
	default:
		errs = multierr.Append(errs, fmt.Errorf("config: logging.format %q not console or json", cfg.Logging.Format))
	}

	return errs
}
