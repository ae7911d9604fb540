package dynmst

import (
	log "github.com/inconshreveable/log15"
)

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// Options holds the configurable collaborators of an Adjuster.
//
// Fields:
//
//	Logger   log.Logger — receives Debug records for every update; silent by default.
//	Metrics  *Metrics   — Prometheus collectors; nil disables metrics.
//	Validate bool       — run core.Verify on (graph, tree) before mutating anything.
type Options struct {
	// Logger receives one record per decision. Never nil after DefaultOptions.
	Logger log.Logger

	// Metrics, if non-nil, is updated after every call.
	Metrics *Metrics

	// Validate makes every call pay O(V log V + E_T) to reject an invalid
	// tree with ErrInconsistentState before the graph is touched.
	Validate bool
}

// DefaultOptions returns Options with:
//   - a log15 logger tagged module=dynmst that discards every record
//   - no metrics
//   - no pre-validation
func DefaultOptions() Options {
	logger := log.New("module", "dynmst")
	logger.SetHandler(log.DiscardHandler())

	return Options{
		Logger:   logger,
		Metrics:  nil,
		Validate: false,
	}
}

// WithLogger returns an Option that routes records to logger.
// Passing nil keeps the discarding default.
func WithLogger(logger log.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithMetrics returns an Option that records outcomes into m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// WithValidation returns an Option that verifies the tree is a spanning tree
// of the graph before each adjustment.
func WithValidation() Option {
	return func(o *Options) {
		o.Validate = true
	}
}
