package cpu

// Every Instruction reads its operand from c.M and, if it writes anything
// back, writes through c.AbsAddress (or c.Accumulator for the shift/rotate
// ops operating in Accumulator mode). None of them touch c.ProgramCounter
// except the ones that are explicitly about control flow: the branches,
// JMP, JSR, RTS, RTI and BRK.
//
// https://www.nesdev.org/obelisk-6502-guide/reference.html

// setZN sets the Zero and Negative flags from v, as almost every instruction
// that loads or computes a result does.
func (c *Cpu) setZN(v byte) {
	c.Flags.Zero = v == 0
	c.Flags.Negative = v&0x80 != 0
}

// addToAccumulator is the shared core of ADC and SBC: SBC is ADC with the
// operand's bits flipped, since A - M - (1-C) == A + ^M + C in two's
// complement.
func (c *Cpu) addToAccumulator(value byte) {
	carry := uint16(0)
	if c.Flags.Carry {
		carry = 1
	}
	sum := uint16(c.Accumulator) + uint16(value) + carry
	result := byte(sum)

	c.Flags.Carry = sum > 0xff
	// overflow occurs when two operands of the same sign produce a
	// result of the other sign
	c.Flags.Overflow = (c.Accumulator^result)&(value^result)&0x80 != 0

	c.Accumulator = result
	c.setZN(c.Accumulator)
}

// writeShiftResult stores the result of ASL/LSR/ROL/ROR back where it came
// from: the Accumulator in Accumulator mode, memory otherwise.
func (c *Cpu) writeShiftResult(v byte) {
	if c.Mode == Accumulator {
		c.Accumulator = v
	} else {
		c.Write(c.AbsAddress, v)
	}
}

// compare is the shared core of CMP, CPX and CPY.
func (c *Cpu) compare(reg byte, value byte) {
	c.Flags.Carry = reg >= value
	c.setZN(reg - value)
}

// branch is the shared core of the eight conditional branches: 1 extra cycle
// if taken, 1 more still if the branch crosses a page.
func (c *Cpu) branch(taken bool) byte {
	if !taken {
		return 0
	}
	var extra byte = 1
	if c.PageCrossed {
		extra++
	}
	c.ProgramCounter = c.AbsAddress
	return extra
}

// ADC - Add with Carry
func (c *Cpu) ADC() byte {
	c.addToAccumulator(c.M)
	return 0
}

// AND - Logical AND
func (c *Cpu) AND() byte {
	c.Accumulator &= c.M
	c.setZN(c.Accumulator)
	return 0
}

// ASL - Arithmetic Shift Left
func (c *Cpu) ASL() byte {
	c.Flags.Carry = c.M&0x80 != 0
	result := c.M << 1
	c.writeShiftResult(result)
	c.setZN(result)
	return 0
}

func (c *Cpu) BCC() byte { return c.branch(!c.Flags.Carry) }
func (c *Cpu) BCS() byte { return c.branch(c.Flags.Carry) }
func (c *Cpu) BEQ() byte { return c.branch(c.Flags.Zero) }
func (c *Cpu) BMI() byte { return c.branch(c.Flags.Negative) }
func (c *Cpu) BNE() byte { return c.branch(!c.Flags.Zero) }
func (c *Cpu) BPL() byte { return c.branch(!c.Flags.Negative) }
func (c *Cpu) BVC() byte { return c.branch(!c.Flags.Overflow) }
func (c *Cpu) BVS() byte { return c.branch(c.Flags.Overflow) }

// BIT - Bit Test
func (c *Cpu) BIT() byte {
	c.Flags.Zero = c.Accumulator&c.M == 0
	c.Flags.Overflow = c.M&0x40 != 0
	c.Flags.Negative = c.M&0x80 != 0
	return 0
}

// BRK - Force Interrupt. Under HaltOnBRK (the default) this simply stops the
// Cpu, since most freestanding 6502 test programs use BRK as an end marker
// and never populate the IRQ vector. Under InterruptOnBRK it behaves as real
// hardware does: push PC+1 and the flags (with B set), disable interrupts,
// and vector through 0xfffe.
func (c *Cpu) BRK() byte {
	switch c.Halt {
	case InterruptOnBRK:
		c.ProgramCounter++ // the signature byte following the opcode
		c.push16(c.ProgramCounter)
		c.push(c.flagsByte(true))
		c.Flags.DisableInterrupt = true
		c.ProgramCounter = c.Bus.Read16(0xfffe)
	default:
		c.halted = true
	}
	return 0
}

// CLC - Clear Carry Flag
func (c *Cpu) CLC() byte { c.Flags.Carry = false; return 0 }

// CLD - Clear Decimal Mode
func (c *Cpu) CLD() byte { c.Flags.Decimal = false; return 0 }

// CLI - Clear Interrupt Disable
func (c *Cpu) CLI() byte { c.Flags.DisableInterrupt = false; return 0 }

// CLV - Clear Overflow Flag
func (c *Cpu) CLV() byte { c.Flags.Overflow = false; return 0 }

// CMP - Compare
func (c *Cpu) CMP() byte { c.compare(c.Accumulator, c.M); return 0 }

// CPX - Compare X Register
func (c *Cpu) CPX() byte { c.compare(c.X, c.M); return 0 }

// CPY - Compare Y Register
func (c *Cpu) CPY() byte { c.compare(c.Y, c.M); return 0 }

// DEC - Decrement Memory
func (c *Cpu) DEC() byte {
	v := c.M - 1
	c.Write(c.AbsAddress, v)
	c.setZN(v)
	return 0
}

// DEX - Decrement X Register
func (c *Cpu) DEX() byte { c.X--; c.setZN(c.X); return 0 }

// DEY - Decrement Y Register
func (c *Cpu) DEY() byte { c.Y--; c.setZN(c.Y); return 0 }

// EOR - Exclusive OR
func (c *Cpu) EOR() byte {
	c.Accumulator ^= c.M
	c.setZN(c.Accumulator)
	return 0
}

// INC - Increment Memory
func (c *Cpu) INC() byte {
	v := c.M + 1
	c.Write(c.AbsAddress, v)
	c.setZN(v)
	return 0
}

// INX - Increment X Register
func (c *Cpu) INX() byte { c.X++; c.setZN(c.X); return 0 }

// INY - Increment Y Register
func (c *Cpu) INY() byte { c.Y++; c.setZN(c.Y); return 0 }

// JMP - Jump. Both the Absolute and Indirect forms land here: the
// Indirect-mode page-wrap bug is entirely resolve's concern, not this
// instruction's.
func (c *Cpu) JMP() byte {
	c.ProgramCounter = c.AbsAddress
	return 0
}

// JSR - Jump to Subroutine. Pushes the address of the last byte of the JSR
// instruction (not the next instruction); RTS adds the 1 back.
func (c *Cpu) JSR() byte {
	c.push16(c.ProgramCounter + 1)
	c.ProgramCounter = c.AbsAddress
	return 0
}

// LDA - Load Accumulator
func (c *Cpu) LDA() byte {
	c.Accumulator = c.M
	c.setZN(c.Accumulator)
	return 0
}

// LDX - Load X Register
func (c *Cpu) LDX() byte {
	c.X = c.M
	c.setZN(c.X)
	return 0
}

// LDY - Load Y Register
func (c *Cpu) LDY() byte {
	c.Y = c.M
	c.setZN(c.Y)
	return 0
}

// LSR - Logical Shift Right
func (c *Cpu) LSR() byte {
	c.Flags.Carry = c.M&0x01 != 0
	result := c.M >> 1
	c.writeShiftResult(result)
	c.setZN(result)
	return 0
}

// NOP - No Operation
func (c *Cpu) NOP() byte { return 0 }

// ORA - Logical Inclusive OR
func (c *Cpu) ORA() byte {
	c.Accumulator |= c.M
	c.setZN(c.Accumulator)
	return 0
}

// PHA - Push Accumulator
func (c *Cpu) PHA() byte { c.push(c.Accumulator); return 0 }

// PHP - Push Processor Status. The pushed byte always has both B and Unused
// set, regardless of how an interrupt would push them.
func (c *Cpu) PHP() byte { c.push(c.flagsByte(true)); return 0 }

// PLA - Pull Accumulator
func (c *Cpu) PLA() byte {
	c.Accumulator = c.pop()
	c.setZN(c.Accumulator)
	return 0
}

// PLP - Pull Processor Status. B is always cleared and Unused always set
// after a pull, regardless of what was on the stack.
func (c *Cpu) PLP() byte {
	c.setFlagsFromByte(c.pop())
	return 0
}

// ROL - Rotate Left
func (c *Cpu) ROL() byte {
	oldCarry := c.Flags.Carry
	c.Flags.Carry = c.M&0x80 != 0
	result := c.M << 1
	if oldCarry {
		result |= 0x01
	}
	c.writeShiftResult(result)
	c.setZN(result)
	return 0
}

// ROR - Rotate Right
func (c *Cpu) ROR() byte {
	oldCarry := c.Flags.Carry
	c.Flags.Carry = c.M&0x01 != 0
	result := c.M >> 1
	if oldCarry {
		result |= 0x80
	}
	c.writeShiftResult(result)
	c.setZN(result)
	return 0
}

// RTI - Return from Interrupt
func (c *Cpu) RTI() byte {
	c.setFlagsFromByte(c.pop())
	c.ProgramCounter = c.pop16()
	return 0
}

// RTS - Return from Subroutine
func (c *Cpu) RTS() byte {
	c.ProgramCounter = c.pop16() + 1
	return 0
}

// SBC - Subtract with Carry
func (c *Cpu) SBC() byte {
	c.addToAccumulator(c.M ^ 0xff)
	return 0
}

// SEC - Set Carry Flag
func (c *Cpu) SEC() byte { c.Flags.Carry = true; return 0 }

// SED - Set Decimal Flag
func (c *Cpu) SED() byte { c.Flags.Decimal = true; return 0 }

// SEI - Set Interrupt Disable
func (c *Cpu) SEI() byte { c.Flags.DisableInterrupt = true; return 0 }

// STA - Store Accumulator
func (c *Cpu) STA() byte { c.Write(c.AbsAddress, c.Accumulator); return 0 }

// STX - Store X Register
func (c *Cpu) STX() byte { c.Write(c.AbsAddress, c.X); return 0 }

// STY - Store Y Register
func (c *Cpu) STY() byte { c.Write(c.AbsAddress, c.Y); return 0 }

// TAX - Transfer Accumulator to X
func (c *Cpu) TAX() byte { c.X = c.Accumulator; c.setZN(c.X); return 0 }

// TAY - Transfer Accumulator to Y
func (c *Cpu) TAY() byte { c.Y = c.Accumulator; c.setZN(c.Y); return 0 }

// TSX - Transfer Stack Pointer to X
func (c *Cpu) TSX() byte { c.X = c.Stack; c.setZN(c.X); return 0 }

// TXA - Transfer X to Accumulator
func (c *Cpu) TXA() byte { c.Accumulator = c.X; c.setZN(c.Accumulator); return 0 }

// TXS - Transfer X to Stack Pointer. Unlike the other transfers, TXS does
// not touch any flags.
func (c *Cpu) TXS() byte { c.Stack = c.X; return 0 }

// TYA - Transfer Y to Accumulator
func (c *Cpu) TYA() byte { c.Accumulator = c.Y; c.setZN(c.Accumulator); return 0 }
