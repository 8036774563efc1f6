//go:build !headless

// pokey_backend_oto.go - oto v3 audio output, adapted from the reference
// engine's OtoPlayer to pull signed-16 PCM from a Core's Ring instead of a
// float32 synth callback.

package pokey

import (
	"sync"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
)

// OtoBackend streams a Core's Ring to the host audio device via oto.
type OtoBackend struct {
	ctx    *oto.Context
	player *oto.Player
	core   atomic.Pointer[Core] // atomic for lock-free Read()

	sampleBuf []int16 // pre-allocated scratch used by Read
	started   bool
	mutex     sync.Mutex // only for setup/control, never the hot Read path
}

// NewOtoBackend opens a mono signed-16-bit oto context at sampleRateHz. A
// failure here is an AudioDeviceUnavailable error per spec 7; callers
// should keep the Core running without a backend rather than abort.
func NewOtoBackend(sampleRateHz int) (*OtoBackend, error) {
	opts := &oto.NewContextOptions{
		SampleRate:   sampleRateHz,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   4,
	}

	ctx, ready, err := oto.NewContext(opts)
	if err != nil {
		return nil, &Error{Kind: ErrAudioDeviceUnavailable, Msg: err.Error()}
	}
	<-ready

	return &OtoBackend{ctx: ctx}, nil
}

// Attach wires the backend to a Core. Must be called before Start.
func (b *OtoBackend) Attach(core *Core) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.core.Store(core)
	b.player = b.ctx.NewPlayer(b)
	b.sampleBuf = make([]int16, 4096)
}

// Read implements io.Reader for oto's pull model: it drains int16 samples
// from the attached Core's Ring and writes them out as little-endian
// bytes. Called from oto's internal audio thread.
func (b *OtoBackend) Read(p []byte) (int, error) {
	core := b.core.Load()
	if core == nil {
		for i := range p {
			p[i] = 0
		}
		return len(p), nil
	}

	numSamples := len(p) / 2
	if len(b.sampleBuf) < numSamples {
		b.sampleBuf = make([]int16, numSamples)
	}
	samples := b.sampleBuf[:numSamples]
	core.ReadSamples(samples)

	for i, s := range samples {
		p[i*2] = byte(uint16(s))
		p[i*2+1] = byte(uint16(s) >> 8)
	}
	return numSamples * 2, nil
}

func (b *OtoBackend) Start() {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if !b.started && b.player != nil {
		b.player.Play()
		b.started = true
		if core := b.core.Load(); core != nil {
			core.SetPlaying(true)
		}
	}
}

func (b *OtoBackend) Stop() {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if b.started && b.player != nil {
		b.player.Pause()
		b.started = false
		if core := b.core.Load(); core != nil {
			core.SetPlaying(false)
		}
	}
}

func (b *OtoBackend) Close() {
	b.Stop()
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if b.player != nil {
		b.player.Close()
		b.player = nil
	}
}

func (b *OtoBackend) IsStarted() bool {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.started
}
