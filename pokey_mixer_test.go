// pokey_mixer_test.go - soft-clip curve, volume table, high-pass and
// two-tone mixing (spec 4.3).

package pokey

import "testing"

func TestSoftClip(t *testing.T) {
	tests := []struct {
		in   int32
		want int32
	}{
		{-100, 0},
		{0, 0},
		{8000, 8000},
		{8000 + 4000, 8000 + 3000}, // above the knee, compressed by 3/4
		{32000, 26000},             // four channels at max volume: 8000 + 24000*3/4
		{100000, 28000},
	}
	for _, tt := range tests {
		if got := softClip(tt.in); got != tt.want {
			t.Errorf("softClip(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSoftClip_MonotoneAndBounded(t *testing.T) {
	prev := softClip(-1000)
	for x := int32(-1000); x <= 40000; x += 37 {
		got := softClip(x)
		if got < prev {
			t.Fatalf("softClip not monotone at x=%d: %d < previous %d", x, got, prev)
		}
		if got < 0 || got > 28000 {
			t.Fatalf("softClip(%d) = %d out of [0, 28000]", x, got)
		}
		prev = got
	}
}

func TestVolumeTable_Endpoints(t *testing.T) {
	if volumeTable[0] != 0 {
		t.Errorf("volume 0 should be silent, got %d", volumeTable[0])
	}
	if volumeTable[15] != 8000 {
		t.Errorf("max volume should be 8000, got %d", volumeTable[15])
	}
	for i := 1; i < 16; i++ {
		if volumeTable[i] <= volumeTable[i-1] {
			t.Errorf("volume table not strictly increasing at index %d", i)
		}
	}
}

func TestEffectiveOutput_VolOnlySkipsHipass(t *testing.T) {
	var cb ChannelBank
	cb.Ch[0].AUDC = AudcVolumeOnly | 5
	cb.Ch[0].Output = 1
	cb.HipassLatch[0] = 1

	got := effectiveOutput(&cb, 0, AudctlHipassCh0)
	if got != 1 {
		t.Errorf("vol_only channel must bypass the high-pass XOR, got %d", got)
	}
}

func TestEffectiveOutput_HipassXOR(t *testing.T) {
	var cb ChannelBank
	cb.Ch[0].AUDC = 0xA0 // dist 5, vol 0, not vol_only
	cb.Ch[0].Output = 1
	cb.HipassLatch[0] = 1

	got := effectiveOutput(&cb, 0, AudctlHipassCh0)
	if got != 0 {
		t.Errorf("expected output XOR latch = 1^1 = 0, got %d", got)
	}

	got = effectiveOutput(&cb, 0, 0)
	if got != 1 {
		t.Errorf("without the AUDCTL bit, output should pass through unchanged, got %d", got)
	}
}

func TestMixCycle_Silence(t *testing.T) {
	var cb ChannelBank
	cb.Reset()
	if got := MixCycle(&cb, 0, 0); got != 0 {
		t.Errorf("all channels at volume 0 should mix to silence, got %d", got)
	}
}

func TestMixCycle_SingleChannelMatchesVolumeTable(t *testing.T) {
	var cb ChannelBank
	cb.Reset()
	cb.Ch[0].AUDC = AudcVolumeOnly | 8
	got := MixCycle(&cb, 0, 0)
	want := softClip(volumeTable[8])
	if got != want {
		t.Errorf("single channel mix = %d, want %d", got, want)
	}
}

func TestMixCycle_PrescaledChannelExcluded(t *testing.T) {
	var cb ChannelBank
	cb.Reset()
	cb.Ch[0].AUDC = AudcVolumeOnly | 15 // would dominate the mix if counted
	cb.Ch[1].AUDC = AudcVolumeOnly | 3

	got := MixCycle(&cb, AudctlCh2ByCh1, 0)
	want := softClip(volumeTable[3])
	if got != want {
		t.Errorf("prescaler channel 0 should be excluded from the mix: got %d, want %d", got, want)
	}
}

func TestMixCycle_TwoTone_ANDsChannelsZeroAndOne(t *testing.T) {
	var cb ChannelBank
	cb.Reset()
	cb.Ch[0].AUDC = AudcVolumeOnly | 10
	cb.Ch[0].Output = 1
	cb.Ch[1].AUDC = 0 // vol 0, contributes nothing either way
	cb.Ch[1].Output = 0

	withoutTwoTone := MixCycle(&cb, 0, 0)
	withTwoTone := MixCycle(&cb, 0, SkctlTwoTone)

	if withoutTwoTone == 0 {
		t.Fatalf("test setup: channel 0 should contribute when two-tone is off")
	}
	if withTwoTone != 0 {
		t.Errorf("two-tone AND of output 1 and output 0 should silence channel 0's contribution, got %d", withTwoTone)
	}
}
