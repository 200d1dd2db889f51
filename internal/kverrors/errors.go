// Package kverrors defines the typed error values returned across the
// actor/HTTP boundary of a node. NoReadConsensus, NoWriteConsensus and
// SelfAddressMismatch carry an optional wrapped cause so that the HTTP layer
// can render a full chain, not just a leaf message; the others are leaves.
package kverrors

import "fmt"

// NotActive is returned by the bouncer when a storage or coordinator call
// arrives before the node has activated.
type NotActive struct{}

func (NotActive) Error() string { return "node is not active" }

// AlreadyActive is returned when Activate is called on an already-active
// bouncer.
type AlreadyActive struct{}

func (AlreadyActive) Error() string { return "node is already active" }

// BadRunId is returned when Activate is called with a run id that does not
// match the node's own.
type BadRunId struct {
	Expected, Got string
}

func (e BadRunId) Error() string {
	return fmt.Sprintf("run id mismatch: expected %s, got %s", e.Expected, e.Got)
}

// KeyNotFound is returned by the HTTP layer (not the storage layer, which
// reports absence via a bool) when a public or internal Get finds nothing.
type KeyNotFound struct {
	Key string
}

func (e KeyNotFound) Error() string { return fmt.Sprintf("key %s not found", e.Key) }

// NoReadConsensus is returned by the coordinator when no reply bucket for a
// Get reaches the configured read quorum.
type NoReadConsensus struct {
	Cause error
}

func (e NoReadConsensus) Error() string { return "failed to reach read consensus" }
func (e NoReadConsensus) Unwrap() error { return e.Cause }

// NoWriteConsensus is returned by the coordinator when no reply bucket for a
// Put reaches the configured write quorum.
type NoWriteConsensus struct {
	Cause error
}

func (e NoWriteConsensus) Error() string { return "failed to reach write consensus" }
func (e NoWriteConsensus) Unwrap() error { return e.Cause }

// SelfIdOutOfRange is a fatal startup error: --self-id is negative or names
// a slot past the end of the cluster config's address list.
type SelfIdOutOfRange struct {
	SelfID, NumAddresses int
}

func (e SelfIdOutOfRange) Error() string {
	return fmt.Sprintf("self-id %d is out of range for %d configured addresses", e.SelfID, e.NumAddresses)
}

// SelfAddressMismatch is a fatal startup error: the run id observed by
// looping back through the node's own configured public URL does not match
// this process's run id.
type SelfAddressMismatch struct {
	BaseURL string
	Cause   error
}

func (e SelfAddressMismatch) Error() string {
	return fmt.Sprintf("the base URL %q given as self is not actually self", e.BaseURL)
}
func (e SelfAddressMismatch) Unwrap() error { return e.Cause }

// Trace walks err's Unwrap chain and renders one string per link, outermost
// first, so an HTTP client can see the full cause chain behind a failure.
func Trace(err error) []string {
	var trace []string
	for err != nil {
		trace = append(trace, err.Error())
		switch u := err.(type) {
		case interface{ Unwrap() error }:
			err = u.Unwrap()
		default:
			err = nil
		}
	}
	return trace
}
