// pokey_registers.go - register read/write dispatch (spec 6)
//
// The reference dispatches MMIO bytes through a shared address-space
// function-pointer table. This core instead dispatches on the register
// offset with a switch and keeps its own copy of the sixteen register
// bytes inside Core; the memory-mapping from a specific machine's address
// bus to these sixteen offsets is the CPU emulator's concern, not this
// core's.

package pokey

// WriteRegister applies a register write at the given CPU cycle. Per spec
// 6, every write is preceded by a Sync call so state before the write
// emits correctly; WriteRegister performs that Sync itself.
//
// The write-side offsets owned by external collaborators (SEROUT at 0x0D,
// POTGO at 0x0B) are accepted and stored for read-back but have no effect
// on audio generation. Offsets outside 0x00-0x0F are ignored: nothing is
// stored and the observer is not notified.
func (c *Core) WriteRegister(cycle uint64, reg Register, value uint8) {
	c.Sync(cycle)

	if int(reg) >= RegCount {
		return
	}
	c.regs[reg] = value

	switch reg {
	case RegAUDF1:
		c.bank.Ch[0].AUDF = value
	case RegAUDC1:
		c.bank.Ch[0].AUDC = value
	case RegAUDF2:
		c.bank.Ch[1].AUDF = value
	case RegAUDC2:
		c.bank.Ch[1].AUDC = value
	case RegAUDF3:
		c.bank.Ch[2].AUDF = value
	case RegAUDC3:
		c.bank.Ch[2].AUDC = value
	case RegAUDF4:
		c.bank.Ch[3].AUDF = value
	case RegAUDC4:
		c.bank.Ch[3].AUDC = value
	case RegAUDCTL:
		c.audctl = value
		c.bank.RecomputeDividers(value)
	case RegSTIMER:
		c.bank.ResetDividers(c.audctl)
	case RegSKCTL:
		c.skctl = value
	}

	c.observer.RegisterWritten(cycle, reg, value)
}

// ReadRegister returns the current value at the given offset, applying the
// read-side reinterpretation of spec 6's table where it differs from the
// write-side meaning (RANDOM instead of SKREST, and so on). External-
// collaborator fields (POT0..POT7, ALLPOT, KBCODE, SERIN, IRQST) read back
// whatever was last stored there, since this core does not implement pot
// scanning, serial framing, or IRQ latching.
func (c *Core) ReadRegister(reg Register) uint8 {
	if int(reg) >= RegCount {
		return 0
	}
	if reg == RegRANDOM {
		return c.bank.Poly.RandomByte()
	}
	return c.regs[reg]
}
