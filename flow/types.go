// File: types.go
// Role: Sentinel errors, functional options, and the change-notification
// Event type for FlowNetwork.
package flow

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Sentinel errors returned by FlowNetwork's mutation and algorithm entry
// points. Each is wrapped with a "flow: " prefix, following the same
// convention the core package uses.
var (
	// ErrSourceNotFound indicates SetSource, or a snapshot read by
	// LoadNetwork, named a source id absent from the graph.
	ErrSourceNotFound = fmt.Errorf("flow: %w", errSourceNotFound)
	errSourceNotFound = fmt.Errorf("source vertex not found")

	// ErrSinkNotFound indicates the configured sink id is absent from the graph.
	ErrSinkNotFound = fmt.Errorf("flow: %w", errSinkNotFound)
	errSinkNotFound = fmt.Errorf("sink vertex not found")

	// ErrSourceSinkUnset indicates an algorithm was invoked before both
	// source and sink were set.
	ErrSourceSinkUnset = fmt.Errorf("flow: %w", errSourceSinkUnset)
	errSourceSinkUnset = fmt.Errorf("source and sink must both be set")

	// ErrSameSourceSink indicates a snapshot read by LoadNetwork names the
	// same vertex as source and sink. SetSource/SetSink do not return it;
	// they clear the other designation instead.
	ErrSameSourceSink = fmt.Errorf("flow: %w", errSameSourceSink)
	errSameSourceSink = fmt.Errorf("source and sink must differ")

	// ErrIOFailure is wrapped by the error returned when a file write,
	// file read, or YAML decode fails during save/load; that error carries
	// the underlying error's message as text, not as a wrapped error.
	ErrIOFailure = fmt.Errorf("flow: %w", errIOFailure)
	errIOFailure = fmt.Errorf("I/O failure")
)

// unsetID is the sentinel used for an unset source or sink.
const unsetID = -1

// Event is the change-notification payload delivered to every live
// Subscribe callback once per mutating FlowNetwork call, per the table
// in spec.md §6.
type Event struct {
	// Op names the operation that produced this event (e.g. "AddVertex").
	Op string

	// UpdateGraph mirrors FlowNetwork.IsUpdateGraph() at the time of the call.
	UpdateGraph bool

	// DrawGraph mirrors FlowNetwork.IsDrawGraph() at the time of the call.
	DrawGraph bool
}

// Option configures a FlowNetwork at construction time.
type Option func(*FlowNetwork)

// WithLogger installs a zerolog.Logger used to trace algorithm steps
// (Dinic's applied augmenting paths and layered-network rebuilds,
// GoldbergTarjan's discharge steps) when
// WithVerbose(true) is also set. The default logger is zerolog.Nop().
func WithLogger(logger zerolog.Logger) Option {
	return func(n *FlowNetwork) {
		n.logger = logger
	}
}

// WithVerbose enables per-step algorithm tracing via the installed logger.
func WithVerbose(verbose bool) Option {
	return func(n *FlowNetwork) {
		n.verbose = verbose
	}
}
