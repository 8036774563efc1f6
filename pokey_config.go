// pokey_config.go - configuration and defaults for the POKEY core

package pokey

// Default tuning values recognized at Init time. These mirror the reference
// player's defaults: 48kHz output, an 8192-sample ring, and a PAL master
// clock, with the target fill ratio derived from the device buffer size.
const (
	DefaultSampleRateHz = 48000
	DefaultRingCapacity = 8192
	DefaultCPUClockHz   = ClockPAL

	minSampleRateHz = 22050
	maxSampleRateHz = 96000
	minRingCapacity = 256
)

// Config configures a new Core. Zero-value fields are replaced by their
// defaults in NewCore.
type Config struct {
	// SampleRateHz is the host audio output rate. Must be in [22050, 96000]
	// when nonzero; zero selects DefaultSampleRateHz.
	SampleRateHz int

	// RingCapacity is the sample ring's fixed capacity. Must be >= 4x the
	// expected device callback buffer size; zero selects DefaultRingCapacity.
	RingCapacity int

	// TargetFillSamples is the ring fill level the adaptive resampler tries
	// to hold. Zero selects two device buffers' worth, clamped to
	// [256, 0.75*RingCapacity].
	TargetFillSamples int

	// DeviceBufferSamples is the host callback's typical buffer size, used
	// to check RingCapacity against and to derive TargetFillSamples when
	// that is left at zero. Zero selects RingCapacity/32. The throttle
	// high-water mark does not depend on it (it is 75% of RingCapacity).
	DeviceBufferSamples int

	// CPUClockHz is the emulated CPU/POKEY master clock. Zero selects
	// DefaultCPUClockHz (PAL).
	CPUClockHz uint32

	// Observer receives structured notifications of register activity and
	// emitted samples. Nil installs a no-op observer.
	Observer Observer
}

func (c Config) normalized() (Config, error) {
	out := c

	if out.SampleRateHz == 0 {
		out.SampleRateHz = DefaultSampleRateHz
	}
	if out.SampleRateHz < minSampleRateHz || out.SampleRateHz > maxSampleRateHz {
		return Config{}, &Error{Kind: ErrFormatMismatch, Msg: "sample rate out of range"}
	}

	if out.RingCapacity == 0 {
		out.RingCapacity = DefaultRingCapacity
	}
	if out.DeviceBufferSamples == 0 {
		out.DeviceBufferSamples = out.RingCapacity / 32
	}
	if out.RingCapacity < 4*out.DeviceBufferSamples {
		return Config{}, &Error{Kind: ErrRingAllocationFailed, Msg: "ring capacity too small for device buffer"}
	}

	if out.TargetFillSamples == 0 {
		out.TargetFillSamples = 2 * out.DeviceBufferSamples
	}
	maxTarget := out.RingCapacity * 3 / 4
	if out.TargetFillSamples < minRingCapacity {
		out.TargetFillSamples = minRingCapacity
	}
	if out.TargetFillSamples > maxTarget {
		out.TargetFillSamples = maxTarget
	}

	if out.CPUClockHz == 0 {
		out.CPUClockHz = DefaultCPUClockHz
	}

	if out.Observer == nil {
		out.Observer = NopObserver{}
	}

	return out, nil
}
