// pokey_poly_test.go - tests for the four polynomial generators

package pokey

import "testing"

func TestPolyState_ResetSeeds(t *testing.T) {
	var p PolyState
	p.poly4 = 5
	p.poly5 = 7
	p.poly9 = 3
	p.poly17 = 9
	p.Reset()

	if p.poly4 != 0 {
		t.Errorf("poly4 seed: expected 0, got %#x", p.poly4)
	}
	if p.poly5 != 0 {
		t.Errorf("poly5 seed: expected 0, got %#x", p.poly5)
	}
	if p.poly9 != 0x1FF {
		t.Errorf("poly9 seed: expected 0x1FF, got %#x", p.poly9)
	}
	if p.poly17 != 0x1FFFF {
		t.Errorf("poly17 seed: expected 0x1FFFF, got %#x", p.poly17)
	}
	if p.RandomByte() != 0xFF {
		t.Errorf("RANDOM after reset: expected 0xFF, got %#x", p.RandomByte())
	}
}

func TestPolyState_4Bit_FirstSteps(t *testing.T) {
	var p PolyState
	p.Reset()

	want := []uint8{0, 1, 3, 7, 14, 13}
	if p.poly4 != want[0] {
		t.Fatalf("seed mismatch")
	}
	for i := 1; i < len(want); i++ {
		p.Step()
		if p.poly4 != want[i] {
			t.Errorf("step %d: expected poly4=%#x, got %#x", i, want[i], p.poly4)
		}
	}
}

func TestPolyState_9And17Bit_NeverZero(t *testing.T) {
	var p PolyState
	p.Reset()

	for i := 0; i < 1<<18; i++ {
		p.Step()
		if p.poly9 == 0 {
			t.Fatalf("poly9 hit the zero fixed point at step %d", i)
		}
		if p.poly17 == 0 {
			t.Fatalf("poly17 hit the zero fixed point at step %d", i)
		}
	}
}

func TestPolyState_WidthsStayMasked(t *testing.T) {
	var p PolyState
	p.Reset()
	for i := 0; i < 10000; i++ {
		p.Step()
		if p.poly4 > 0x0F {
			t.Fatalf("poly4 exceeded 4 bits: %#x", p.poly4)
		}
		if p.poly5 > 0x1F {
			t.Fatalf("poly5 exceeded 5 bits: %#x", p.poly5)
		}
		if p.poly9 > 0x1FF {
			t.Fatalf("poly9 exceeded 9 bits: %#x", p.poly9)
		}
		if p.poly17 > 0x1FFFF {
			t.Fatalf("poly17 exceeded 17 bits: %#x", p.poly17)
		}
	}
}
