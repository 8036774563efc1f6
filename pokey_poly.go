// pokey_poly.go - the four polynomial (LFSR) noise generators
//
// The reference engine defined tick17/tick9/tick5/tick4 methods but never
// called them, driving channel noise from generic oscillator modes instead.
// This rewrite makes the four counters the real, cycle-stepped source of
// every noise distortion mode.

package pokey

// PolyState holds the four shared linear-feedback shift registers. They are
// read-only to channels and advance once per CPU cycle, unconditionally,
// whenever SKCTL bits 0-1 are nonzero.
type PolyState struct {
	poly4  uint8  // 4-bit, seed 0x0
	poly5  uint8  // 5-bit, seed 0x0
	poly9  uint16 // 9-bit, seed 0x1FF
	poly17 uint32 // 17-bit, seed 0x1FFFF
}

// Reset returns every counter to its seed: all-ones for the 9- and 17-bit
// registers, where zero is a fixed point of the XOR taps, and zero for the
// 4- and 5-bit registers, whose inverted (XNOR) feedback moves off zero on
// the first step.
func (p *PolyState) Reset() {
	p.poly4 = 0
	p.poly5 = 0
	p.poly9 = 0x1FF
	p.poly17 = 0x1FFFF
}

// Step advances all four counters by one CPU cycle. The bit formulas are
// normative (spec 4.1); any deviation breaks the randomness of game noise.
func (p *PolyState) Step() {
	// 4-bit: shift left; new bit0 = NOT(bit2 XOR bit3).
	b2 := (p.poly4 >> 2) & 1
	b3 := (p.poly4 >> 3) & 1
	newBit := (b2 ^ b3) ^ 1
	p.poly4 = ((p.poly4 << 1) | newBit) & 0x0F

	// 5-bit: shift left; new bit0 = NOT(bit2 XOR bit4).
	b2 = (p.poly5 >> 2) & 1
	b4 := (p.poly5 >> 4) & 1
	newBit = (b2 ^ b4) ^ 1
	p.poly5 = ((p.poly5 << 1) | newBit) & 0x1F

	// 9-bit: shift right; new bit8 = bit0 XOR bit5.
	n0 := p.poly9 & 1
	n5 := (p.poly9 >> 5) & 1
	p.poly9 = (p.poly9 >> 1) | ((n0 ^ n5) << 8)
	p.poly9 &= 0x1FF

	// 17-bit: shift right, bit7 replaced by bit8 XOR bit13, bit16 filled
	// from the old bit0.
	old0 := p.poly17 & 1
	b8 := (p.poly17 >> 8) & 1
	b13 := (p.poly17 >> 13) & 1
	fedBit := b8 ^ b13
	shifted := p.poly17 >> 1
	shifted &^= 1 << 7
	shifted |= fedBit << 7
	shifted |= old0 << 16
	p.poly17 = shifted & 0x1FFFF
}

// Bit0 accessors used by channel clock-out logic and the RANDOM register.
func (p *PolyState) Poly4Bit0() uint8  { return p.poly4 & 1 }
func (p *PolyState) Poly5Bit0() uint8  { return p.poly5 & 1 }
func (p *PolyState) Poly9Bit0() uint8  { return uint8(p.poly9 & 1) }
func (p *PolyState) Poly17Bit0() uint8 { return uint8(p.poly17 & 1) }

// RandomByte returns the low byte of the 17-bit generator, as read through
// the RANDOM register (offset 0x0A).
func (p *PolyState) RandomByte() uint8 {
	return uint8(p.poly17 & 0xFF)
}
