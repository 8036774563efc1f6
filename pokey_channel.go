// pokey_channel.go - per-channel dividers, reload arithmetic, and clock-out

package pokey

// Channel holds one audio channel's register-derived state and divider
// bookkeeping (spec 3, Channel[i]).
type Channel struct {
	AUDF uint8
	AUDC uint8

	Counter      uint32
	Output       uint8 // 0 or 1
	ClkDivCycles uint32
	ClkAccCycles uint32
}

// ChannelBank owns the four channels plus the shared polynomial state they
// read from. Index 0-3 corresponds to AUDF1/AUDC1 .. AUDF4/AUDC4.
type ChannelBank struct {
	Poly PolyState
	Ch   [4]Channel

	// HipassLatch holds the XOR state fed by ch2's and ch3's divider
	// pulses into ch0's and ch1's output respectively (spec 4.2).
	HipassLatch [2]uint8
}

// Reset returns every channel and the polynomial state to power-on values.
func (cb *ChannelBank) Reset() {
	cb.Poly.Reset()
	for i := range cb.Ch {
		cb.Ch[i] = Channel{}
	}
	cb.HipassLatch = [2]uint8{}
}

// RecomputeDividers sets each channel's ClkDivCycles from AUDCTL. Call
// whenever AUDCTL changes.
func (cb *ChannelBank) RecomputeDividers(audctl uint8) {
	base := uint32(FastDivider)
	if audctl&AudctlClock15KHz != 0 {
		base = CyclesPerLine
	}

	cb.Ch[0].ClkDivCycles = base
	if audctl&Audctl179Ch1 != 0 {
		cb.Ch[0].ClkDivCycles = 1
	}
	cb.Ch[1].ClkDivCycles = base

	cb.Ch[2].ClkDivCycles = base
	if audctl&Audctl179Ch3 != 0 {
		cb.Ch[2].ClkDivCycles = 1
	}
	cb.Ch[3].ClkDivCycles = base
}

// singleReload returns the 8-bit reload value for a channel not acting as
// the high half of a pair.
func singleReload(ch *Channel) uint32 {
	if ch.ClkDivCycles == 1 {
		return uint32(ch.AUDF) + 4
	}
	return uint32(ch.AUDF) + 1
}

// pairReload returns the combined 16-bit reload value for a pair, given
// the low channel (prescaler) and high channel (audible).
func pairReload(low, high *Channel) uint32 {
	period := (uint32(high.AUDF) << 8) | uint32(low.AUDF)
	if low.ClkDivCycles == 1 {
		return period + 7
	}
	return period + 1
}

// ResetDividers reloads every channel's counter to its current reload
// value and zeroes its cycle accumulator. Used by STIMER (spec 4.6).
func (cb *ChannelBank) ResetDividers(audctl uint8) {
	pair01 := audctl&AudctlCh2ByCh1 != 0
	pair23 := audctl&AudctlCh4ByCh3 != 0

	if pair01 {
		cb.Ch[0].Counter = pairReload(&cb.Ch[0], &cb.Ch[1])
		cb.Ch[1].Counter = cb.Ch[0].Counter
	} else {
		cb.Ch[0].Counter = singleReload(&cb.Ch[0])
		cb.Ch[1].Counter = singleReload(&cb.Ch[1])
	}
	if pair23 {
		cb.Ch[2].Counter = pairReload(&cb.Ch[2], &cb.Ch[3])
		cb.Ch[3].Counter = cb.Ch[2].Counter
	} else {
		cb.Ch[2].Counter = singleReload(&cb.Ch[2])
		cb.Ch[3].Counter = singleReload(&cb.Ch[3])
	}
	for i := range cb.Ch {
		cb.Ch[i].ClkAccCycles = 0
	}
}

// clockOut applies the distortion table of spec 4.2 to channel idx,
// latching a new output bit (or leaving it unchanged if the poly-5 gate
// blocks it).
func (cb *ChannelBank) clockOut(idx int, audctl uint8) {
	ch := &cb.Ch[idx]

	if ch.AUDC&AudcVolumeOnly != 0 {
		ch.Output = 1
		return
	}

	dist := (ch.AUDC & AudcDistortionMask) >> AudcDistortionShift

	var bit uint8
	switch dist {
	case DistPoly17Poly5, DistPoly17:
		if audctl&AudctlPoly9 != 0 {
			bit = cb.Poly.Poly9Bit0()
		} else {
			bit = cb.Poly.Poly17Bit0()
		}
	case DistPoly17Poly4, DistPoly4:
		bit = cb.Poly.Poly4Bit0()
	default: // 1, 3, 5, 7: toggle
		bit = ch.Output ^ 1
	}

	if dist <= 3 {
		if cb.Poly.Poly5Bit0() == 1 {
			ch.Output = bit
		}
		return
	}
	ch.Output = bit
}

// StepCycle advances every channel divider by one CPU cycle and fires
// clock-out on underflow, honoring 16-bit pairing and the high-pass
// latches. Callers must have already advanced cb.Poly for this cycle
// (or held it at seed) per SKCTL bits 0-1.
func (cb *ChannelBank) StepCycle(audctl uint8) {
	pair01 := audctl&AudctlCh2ByCh1 != 0
	pair23 := audctl&AudctlCh4ByCh3 != 0

	var ch2Pulse, ch3Pulse bool

	if pair01 {
		cb.stepPair(0, 1, audctl)
	} else {
		cb.stepSingle(0, audctl)
		cb.stepSingle(1, audctl)
	}
	if pair23 {
		ch3Pulse = cb.stepPair(2, 3, audctl)
	} else {
		if cb.stepSingle(2, audctl) {
			ch2Pulse = true
		}
		if cb.stepSingle(3, audctl) {
			ch3Pulse = true
		}
	}

	// Each latch snapshots its gated channel's current output on a pulse;
	// it is not a free-running flip-flop (original_source/A8E/Pokey.c).
	if ch2Pulse {
		cb.HipassLatch[0] = cb.Ch[0].Output
	}
	if ch3Pulse {
		cb.HipassLatch[1] = cb.Ch[1].Output
	}
}

// stepSingle advances one non-paired channel; returns true if its divider
// underflowed this cycle (used to feed the high-pass latches).
func (cb *ChannelBank) stepSingle(idx int, audctl uint8) bool {
	ch := &cb.Ch[idx]
	ch.ClkAccCycles++
	if ch.ClkAccCycles < ch.ClkDivCycles {
		return false
	}
	ch.ClkAccCycles = 0
	if ch.Counter > 0 {
		ch.Counter--
	}
	if ch.Counter != 0 {
		return false
	}
	ch.Counter = singleReload(ch)
	cb.clockOut(idx, audctl)
	return true
}

// stepPair advances a 16-bit pair, ticking the combined counter at the low
// channel's rate and firing clock-out on the high channel only. The low
// channel is a silent prescaler and contributes no mixer output.
func (cb *ChannelBank) stepPair(lowIdx, highIdx int, audctl uint8) bool {
	low := &cb.Ch[lowIdx]
	high := &cb.Ch[highIdx]

	low.ClkAccCycles++
	if low.ClkAccCycles < low.ClkDivCycles {
		return false
	}
	low.ClkAccCycles = 0
	if high.Counter > 0 {
		high.Counter--
	}
	if high.Counter != 0 {
		return false
	}
	high.Counter = pairReload(low, high)
	cb.clockOut(highIdx, audctl)
	return true
}

// Prescaled reports whether channel idx is acting as a silent 16-bit-pair
// prescaler under the given AUDCTL and should be excluded from mixing.
func Prescaled(idx int, audctl uint8) bool {
	switch idx {
	case 0:
		return audctl&AudctlCh2ByCh1 != 0
	case 2:
		return audctl&AudctlCh4ByCh3 != 0
	default:
		return false
	}
}
