// pokey_timer_test.go - the timer period service (spec 4.6), a pure
// function of register state independent of any running Core.

package pokey

import "testing"

func TestTimerPeriod_DisabledWhenSkctlHeld(t *testing.T) {
	if got := TimerPeriod(Timer1, 10, 0, 0, 0, 0, 0); got != 0 {
		t.Errorf("SKCTL reset bits clear should disable every timer, got %d", got)
	}
}

func TestTimerPeriod_Timer1_ZeroAudfDisabled(t *testing.T) {
	if got := TimerPeriod(Timer1, 0, 0, 0, 0, 0, 3); got != 0 {
		t.Errorf("AUDF1=0 should disable timer 1, got %d", got)
	}
}

func TestTimerPeriod_Timer1_DisabledWhenPaired(t *testing.T) {
	if got := TimerPeriod(Timer1, 50, 0, 0, 0, AudctlCh2ByCh1, 3); got != 0 {
		t.Errorf("timer 1 should be disabled when channel 0 is a pair's prescaler, got %d", got)
	}
}

func TestTimerPeriod_Timer1_Single64kHz(t *testing.T) {
	got := TimerPeriod(Timer1, 126, 0, 0, 0, 0, 3)
	want := uint32(127) * 28
	if got != want {
		t.Errorf("timer 1 = %d, want %d", got, want)
	}
}

func TestTimerPeriod_Timer1_FastClock(t *testing.T) {
	got := TimerPeriod(Timer1, 126, 0, 0, 0, Audctl179Ch1, 3)
	want := uint32(126+4) * 1
	if got != want {
		t.Errorf("timer 1 fast clock = %d, want %d", got, want)
	}
}

// TestTimerPeriod_Timer2_Paired mirrors the worked example in spec 8
// scenario 6 (AUDF1=0x0A, AUDF2=0x02, pair period 0x020A, 64kHz base).
// The scenario's own arithmetic (0x020A+1)*28=14868 does not follow from
// its own formula; 0x020A=522, and (522+1)*28=14644. This test uses the
// formula-correct figure.
func TestTimerPeriod_Timer2_Paired(t *testing.T) {
	const audf1, audf2 = 0x0A, 0x02
	got := TimerPeriod(Timer2, audf1, audf2, 0, 0, AudctlCh2ByCh1, 3)
	want := uint32(0x020A+1) * 28
	if want != 14644 {
		t.Fatalf("test arithmetic check failed: %d", want)
	}
	if got != want {
		t.Errorf("timer 2 paired period = %d, want %d", got, want)
	}
}

func TestTimerPeriod_Timer2_PairedFastClock(t *testing.T) {
	const audf1, audf2 = 0x0A, 0x02
	got := TimerPeriod(Timer2, audf1, audf2, 0, 0, AudctlCh2ByCh1|Audctl179Ch1, 3)
	want := uint32(0x020A+7) * 1
	if got != want {
		t.Errorf("timer 2 paired fast clock = %d, want %d", got, want)
	}
}

func TestTimerPeriod_Timer2_Unpaired(t *testing.T) {
	got := TimerPeriod(Timer2, 0, 99, 0, 0, 0, 3)
	want := uint32(100) * 28
	if got != want {
		t.Errorf("timer 2 unpaired = %d, want %d", got, want)
	}
}

func TestTimerPeriod_Timer4_Unpaired(t *testing.T) {
	got := TimerPeriod(Timer4, 0, 0, 0, 49, 0, 3)
	want := uint32(50) * 28
	if got != want {
		t.Errorf("timer 4 unpaired = %d, want %d", got, want)
	}
}

func TestTimerPeriod_Timer4_Paired(t *testing.T) {
	const audf3, audf4 = 0x05, 0x01
	got := TimerPeriod(Timer4, 0, 0, audf3, audf4, AudctlCh4ByCh3, 3)
	period34 := uint32(0x0105)
	want := (period34 + 1) * 28
	if got != want {
		t.Errorf("timer 4 paired = %d, want %d", got, want)
	}
}

func TestTimerPeriod_15KHzBase(t *testing.T) {
	got := TimerPeriod(Timer1, 10, 0, 0, 0, AudctlClock15KHz, 3)
	want := uint32(11) * CyclesPerLine
	if got != want {
		t.Errorf("timer 1 at 15kHz base = %d, want %d", got, want)
	}
}
