// Package mock provides test doubles for kickoff interfaces using
// function fields.
package mock

import (
	"context"

	"github.com/fwojciec/kickoff"
)

// Interface compliance checks.
var (
	_ kickoff.Generator = (*Generator)(nil)
	_ kickoff.Stream    = (*Stream)(nil)
)

// Generator is a test double for kickoff.Generator.
// Set StreamFn before calling Stream.
type Generator struct {
	StreamFn func(ctx context.Context, req kickoff.Request) (kickoff.Stream, error)
}

// Stream delegates to StreamFn.
func (g *Generator) Stream(ctx context.Context, req kickoff.Request) (kickoff.Stream, error) {
	return g.StreamFn(ctx, req)
}

// Stream is a test double for kickoff.Stream.
// Set the function fields for the methods you need. NextFn and TextFn
// panic when nil to catch missing setup. StateFn and CloseFn are nil-safe
// (zero value and no-op) because test code commonly calls defer
// stream.Close() and these methods rarely need custom behavior.
type Stream struct {
	NextFn  func() (kickoff.Event, error)
	StateFn func() kickoff.StreamState
	TextFn  func() (string, error)
	CloseFn func() error
}

// Next delegates to NextFn.
func (s *Stream) Next() (kickoff.Event, error) {
	return s.NextFn()
}

// State delegates to StateFn. Returns StreamStateNew when StateFn is nil.
func (s *Stream) State() kickoff.StreamState {
	if s.StateFn == nil {
		return kickoff.StreamStateNew
	}
	return s.StateFn()
}

// Text delegates to TextFn.
func (s *Stream) Text() (string, error) {
	return s.TextFn()
}

// Close delegates to CloseFn. Returns nil when CloseFn is not set.
func (s *Stream) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}
