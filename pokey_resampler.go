// pokey_resampler.go - 32.32 fixed-point box-filter resampler, DC block,
// and the adaptive rate controller that keeps the sample ring near its
// target fill.

package pokey

import "math"

// cycleWidthFP is the fixed-point phase contributed by one emulated CPU
// cycle (spec 4.4: "1 << 32 per emulated cycle").
const cycleWidthFP = uint64(1) << 32

// DCBlock is a one-pole high-pass filter that removes the static offset
// left by the unipolar mixer output (spec 4.4, 3).
type DCBlock struct {
	R  float32
	X1 float32
	Y1 float32
}

func newDCBlock(sampleRateHz int) DCBlock {
	r := float32(math.Exp(-2 * math.Pi * 20 / float64(sampleRateHz)))
	return DCBlock{R: r}
}

func (dc *DCBlock) apply(x float32) float32 {
	y := x - dc.X1 + dc.R*dc.Y1
	dc.X1 = x
	dc.Y1 = y
	return y
}

// Resampler integrates the cycle-level mixer signal into output samples
// via box filtering, and tracks the adaptive cycles-per-sample used to
// absorb host-scheduler jitter (spec 3, 4.4).
type Resampler struct {
	Base              uint64 // (cpu_hz << 32) / sample_rate_hz, the un-adjusted rate
	CyclesPerSampleFP uint64
	SamplePhaseFP     uint64
	SampleAccum       int64
	DC                DCBlock
}

// NewResampler builds a resampler for the given CPU clock and output
// sample rate.
func NewResampler(cpuHz uint32, sampleRateHz int) *Resampler {
	base := (uint64(cpuHz) << 32) / uint64(sampleRateHz)
	return &Resampler{
		Base:              base,
		CyclesPerSampleFP: base,
		DC:                newDCBlock(sampleRateHz),
	}
}

// AdjustRate recomputes the effective cycles-per-sample from the current
// ring fill, clamped to base +/- 2% (spec 4.4). It must be called once at
// the start of each Sync batch, before any Integrate calls in that batch.
// emit is invoked with a synthesized sample if shrinking the rate would
// otherwise violate the phase invariant mid-batch.
func (r *Resampler) AdjustRate(ringFill, target int, emit func(int16)) {
	if target <= 0 {
		return
	}

	delta := ringFill - target
	if delta > target {
		delta = target
	}
	if delta < -target {
		delta = -target
	}

	adjustment := int64(delta) * int64(r.Base) / 50 / int64(target)
	adjusted := int64(r.Base) + adjustment

	minAdjusted := int64(r.Base) * 98 / 100
	maxAdjusted := int64(r.Base) * 102 / 100
	if adjusted < minAdjusted {
		adjusted = minAdjusted
	}
	if adjusted > maxAdjusted {
		adjusted = maxAdjusted
	}
	newRate := uint64(adjusted)

	if newRate < r.CyclesPerSampleFP && r.SamplePhaseFP >= newRate {
		var avg int64
		if r.SamplePhaseFP > 0 {
			avg = r.SampleAccum / int64(r.SamplePhaseFP)
		}
		emit(r.finalize(avg))

		r.SamplePhaseFP -= newRate
		r.SampleAccum = avg * int64(r.SamplePhaseFP)
	}

	r.CyclesPerSampleFP = newRate
}

// Integrate folds one CPU cycle's mixer level into the box-filter
// accumulator, emitting zero or more finalized samples as sample
// boundaries are crossed.
func (r *Resampler) Integrate(level int32, emit func(int16)) {
	remaining := cycleWidthFP
	for remaining > 0 {
		spaceLeft := r.CyclesPerSampleFP - r.SamplePhaseFP
		if remaining < spaceLeft {
			r.SampleAccum += int64(level) * int64(remaining)
			r.SamplePhaseFP += remaining
			return
		}

		r.SampleAccum += int64(level) * int64(spaceLeft)
		raw := r.SampleAccum / int64(r.CyclesPerSampleFP)
		emit(r.finalize(raw))

		r.SampleAccum = 0
		r.SamplePhaseFP = 0
		remaining -= spaceLeft
	}
}

// finalize maps an integrated mixer level in [0, 28000] to a clamped
// signed 16-bit sample, applying gain and the DC blocker (spec 4.4).
func (r *Resampler) finalize(raw int64) int16 {
	const gain = float32(0.75 / 28000.0)
	x := float32(raw) * gain
	y := r.DC.apply(x)

	scaled := y * 32767
	if scaled > 32767 {
		scaled = 32767
	}
	if scaled < -32768 {
		scaled = -32768
	}
	return int16(scaled)
}
