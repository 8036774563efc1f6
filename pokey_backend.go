// pokey_backend.go - audio backend contract
//
// The host audio contract (spec 6) asks for mono signed-16 samples at a
// host-chosen rate. If the device cannot be opened or offers a different
// format, the core must keep running silently rather than fail, so a
// Backend's constructor returns a *Error rather than panicking and every
// other method is safe to call on a backend that never started.

package pokey

// Backend plays a Core's Ring through a real audio device, or discards it
// in headless environments.
type Backend interface {
	// Start begins playback. The oto backend pulls samples from the
	// attached core and calls Core.SetPlaying(true); the headless stand-in
	// only records the started state and never calls SetPlaying.
	Start()

	// Stop halts playback. The oto backend calls Core.SetPlaying(false).
	Stop()

	// Close releases device resources. Safe to call after Stop, or
	// without ever calling Start.
	Close()

	// IsStarted reports whether Start has been called without a matching
	// Stop or Close.
	IsStarted() bool
}
