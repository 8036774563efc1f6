//go:build headless

// pokey_backend_headless.go - no-op backend for headless builds, adapted
// from the reference engine's headless OtoPlayer stand-in.

package pokey

// OtoBackend is a no-op stand-in used when the real oto backend is built
// out. ShouldThrottle always reports false through it since Core.playing
// never becomes true, matching spec 7's "audio disabled" fallback.
type OtoBackend struct {
	started bool
}

func NewOtoBackend(sampleRateHz int) (*OtoBackend, error) {
	return &OtoBackend{}, nil
}

func (b *OtoBackend) Attach(core *Core) {}

func (b *OtoBackend) Start() { b.started = true }
func (b *OtoBackend) Stop()  { b.started = false }
func (b *OtoBackend) Close() { b.started = false }

func (b *OtoBackend) IsStarted() bool { return b.started }
