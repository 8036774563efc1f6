// pokey_mixer.go - per-channel volume table, high-pass/two-tone, soft-clip

package pokey

// volumeTable is POKEY's non-linear per-channel DAC curve (spec 4.3).
// Approximates ~3dB per step; single-channel max 8000, four-channel
// pre-clip peak 32000.
var volumeTable = [16]int32{
	0, 63, 88, 125, 177, 250, 354, 500,
	707, 1000, 1414, 2000, 2828, 4000, 5657, 8000,
}

// softClip compresses values above 8000 by 3/4 and clamps to [0, 28000]
// (spec 4.3). It is monotone but not idempotent: a second application
// compresses again (softClip(28000) is 23000).
func softClip(x int32) int32 {
	if x > 8000 {
		x = 8000 + (x-8000)*3/4
	}
	if x < 0 {
		return 0
	}
	if x > 28000 {
		return 28000
	}
	return x
}

// effectiveOutput returns channel idx's output bit after applying the
// high-pass latch XOR. A vol_only channel always reads as 1 (a constant
// level scaled by its volume) and skips the XOR entirely (spec 4.2).
func effectiveOutput(cb *ChannelBank, idx int, audctl uint8) uint8 {
	ch := &cb.Ch[idx]
	if ch.AUDC&AudcVolumeOnly != 0 {
		return 1
	}
	switch idx {
	case 0:
		if audctl&AudctlHipassCh0 != 0 {
			return ch.Output ^ cb.HipassLatch[0]
		}
	case 1:
		if audctl&AudctlHipassCh1 != 0 {
			return ch.Output ^ cb.HipassLatch[1]
		}
	}
	return ch.Output
}

// MixCycle combines the four channel outputs into one soft-clipped level
// for the current CPU cycle (spec 4.3).
func MixCycle(cb *ChannelBank, audctl, skctl uint8) int32 {
	out0 := effectiveOutput(cb, 0, audctl)
	out1 := effectiveOutput(cb, 1, audctl)

	if skctl&SkctlTwoTone != 0 {
		out0 &= out1
	}

	outs := [4]uint8{out0, out1, effectiveOutput(cb, 2, audctl), effectiveOutput(cb, 3, audctl)}

	var sum int32
	for i := 0; i < 4; i++ {
		if Prescaled(i, audctl) {
			continue
		}
		vol := cb.Ch[i].AUDC & AudcVolumeMask
		if outs[i] != 0 {
			sum += volumeTable[vol]
		}
	}

	return softClip(sum)
}
