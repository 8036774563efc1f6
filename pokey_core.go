// pokey_core.go - PokeyCore: the top-level object tying the polynomial
// generators, channels, mixer, resampler, and ring together (spec 2, 3).
//
// Core is exclusively owned by the emulator (producer) thread except for
// the Ring, which is safe to read concurrently from an audio callback
// thread. No Sync call may execute concurrently with Close (spec 5).

package pokey

import "sync/atomic"

// Core is a cycle-accurate software model of one POKEY chip.
type Core struct {
	cfg Config

	bank   ChannelBank
	regs   [RegCount]uint8
	audctl uint8
	skctl  uint8

	resampler *Resampler
	ring      *Ring
	observer  Observer

	target int

	hasSynced bool
	lastCycle uint64

	playing atomic.Bool
	closed  atomic.Bool

	sampleBatch []int16
}

// NewCore builds a Core from cfg, applying defaults for zero fields and
// validating the result (spec 6, "Configuration"). A RingAllocationFailed
// error here is fatal; per spec 7 the caller should treat the core as if
// audio were disabled rather than aborting the emulator.
func NewCore(cfg Config) (*Core, error) {
	normalized, err := cfg.normalized()
	if err != nil {
		return nil, err
	}

	ring, err := NewRing(normalized.RingCapacity)
	if err != nil {
		return nil, err
	}

	c := &Core{
		cfg:         normalized,
		resampler:   NewResampler(normalized.CPUClockHz, normalized.SampleRateHz),
		ring:        ring,
		observer:    normalized.Observer,
		target:      normalized.TargetFillSamples,
		sampleBatch: make([]int16, 0, normalized.DeviceBufferSamples*2),
	}
	c.bank.Reset()
	c.bank.RecomputeDividers(0)
	c.bank.ResetDividers(0)
	return c, nil
}

// SetPlaying records whether the audio backend is actively playing. It is
// safe to call from the backend's own goroutine; ShouldThrottle reads it
// without additional synchronization.
func (c *Core) SetPlaying(playing bool) {
	c.playing.Store(playing)
}

// Sync advances the core to the given absolute CPU cycle, stepping the
// polynomial generators and channels one cycle at a time, mixing, and
// feeding the resampler. Samples produced land in the Ring in generation
// order. Calling Sync with cycle <= the last observed cycle is a
// ProtocolViolation and is silently ignored; Sync is idempotent on
// non-advancing cycles (spec 7).
func (c *Core) Sync(cycle uint64) {
	if c.closed.Load() {
		return
	}

	var delta uint64
	if !c.hasSynced {
		delta = cycle
		c.hasSynced = true
	} else {
		if cycle <= c.lastCycle {
			return
		}
		delta = cycle - c.lastCycle
	}
	c.lastCycle = cycle

	c.sampleBatch = c.sampleBatch[:0]
	emit := func(s int16) { c.sampleBatch = append(c.sampleBatch, s) }

	c.resampler.AdjustRate(c.ring.Fill(), c.target, emit)

	held := c.skctl&SkctlResetMask == 0
	for i := uint64(0); i < delta; i++ {
		if held {
			c.bank.Poly.Reset()
			for ci := range c.bank.Ch {
				c.bank.Ch[ci].ClkAccCycles = 0
			}
		} else {
			c.bank.Poly.Step()
			c.bank.StepCycle(c.audctl)
		}
		level := MixCycle(&c.bank, c.audctl, c.skctl)
		c.resampler.Integrate(level, emit)
	}

	if len(c.sampleBatch) > 0 {
		c.ring.Write(c.sampleBatch)
		c.observer.SamplesEmitted(len(c.sampleBatch), c.ring.Fill())
	}
}

// ShouldThrottle reports whether the emulator loop should pause: the ring
// is at or above 75% full and the backend reports active playback (spec
// 4.5). When the backend never calls SetPlaying(true) — because no device
// could be opened — this always returns false and the caller must fall
// back to wall-clock pacing.
func (c *Core) ShouldThrottle() bool {
	return c.ring.ShouldThrottle(c.playing.Load())
}

// ReadSamples drains up to len(dst) samples for an audio backend; see
// Ring.Read for underrun behavior.
func (c *Core) ReadSamples(dst []int16) {
	c.ring.Read(dst)
}

// RingFill exposes the current ring occupancy, mainly for diagnostics and
// tests.
func (c *Core) RingFill() int {
	return c.ring.Fill()
}

// TimerPeriod computes the named timer's period from this core's current
// register state (spec 4.6).
func (c *Core) TimerPeriod(timer Timer) uint32 {
	return TimerPeriod(timer,
		c.bank.Ch[0].AUDF, c.bank.Ch[1].AUDF, c.bank.Ch[2].AUDF, c.bank.Ch[3].AUDF,
		c.audctl, c.skctl)
}

// Close marks the core closed. No further Sync calls take effect. Per
// spec 5 the caller must ensure no Sync is in flight concurrently with
// Close; Core does not itself provide that exclusion.
func (c *Core) Close() {
	c.closed.Store(true)
	c.playing.Store(false)
}
