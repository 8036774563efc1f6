// pokey_observer.go - structured observer interface for the POKEY core
//
// The reference toggles diagnostic output via compile-time verbosity flags.
// That makes logging a correctness concern because the flag changes what
// code paths run. Observer replaces it: the core always takes the same
// path and simply notifies whoever is listening, so logging is entirely a
// caller decision.

package pokey

// Observer receives notifications of register activity and lifecycle
// events. Implementations must not block and must not call back into the
// Core that is notifying them.
type Observer interface {
	// RegisterWritten is called after a register write has been applied,
	// with the CPU cycle it was applied at.
	RegisterWritten(cycle uint64, reg Register, value uint8)

	// SamplesEmitted is called after Sync produces one or more samples,
	// reporting how many and the resulting ring fill.
	SamplesEmitted(count int, ringFill int)

	// BackendError receives an audio backend's transition to a degraded
	// state (device unavailable, format mismatch, and so on). Neither Core
	// nor OtoBackend calls it; NewOtoBackend reports its failure only as a
	// returned error.
	BackendError(err error)
}

// NopObserver discards every notification. It is the default when a
// Config leaves Observer nil.
type NopObserver struct{}

func (NopObserver) RegisterWritten(cycle uint64, reg Register, value uint8) {}
func (NopObserver) SamplesEmitted(count int, ringFill int)                  {}
func (NopObserver) BackendError(err error)                                  {}
