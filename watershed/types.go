// SPDX-License-Identifier: MIT

package watershed

import "github.com/go-logr/logr"

// Stats reports counters from one CWatershed call.
type Stats struct {
	Seeds   int // nonzero marker positions
	Pushes  int // queue insertions, seeds included
	Settled int // positions popped and expanded
}

// Options configures CWatershed.
//
// Logger – receives a V(1) summary after each call.
// Stats  – when non-nil, overwritten with the call's counters.
type Options struct {
	Logger logr.Logger
	Stats  *Stats
}

// Option represents a functional option for configuring CWatershed.
type Option func(*Options)

// WithLogger routes the per-call summary to log.
func WithLogger(log logr.Logger) Option {
	return func(o *Options) {
		o.Logger = log
	}
}

// WithStats makes CWatershed write its counters into s.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}

// DefaultOptions returns Options with a discarding logger and no stats sink.
func DefaultOptions() Options {
	return Options{
		Logger: logr.Discard(),
	}
}
