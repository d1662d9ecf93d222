package cpu

import "gone6502/mask"

// An AddressingMode tells the Cpu where to find the byte of memory (if any)
// that an Instruction operates on. There are 13 possible modes.
//
// Most Instructions can index the full 64 kB range of memory, that is, 256
// pages of 256 bytes. The exception is ZeroPage, which is confined to the
// first page of 256 bytes.
type AddressingMode int

// https://problemkaputt.de/everynes.htm#cpumemoryaddressing
// https://www.nesdev.org/wiki/CPU_addressing_modes

const (
	Implied     AddressingMode = iota // does not read an operand
	Accumulator                       // operates on Cpu.Accumulator directly

	Immediate // the operand byte itself is the value
	ZeroPage  // 0x0000-0x00ff
	ZeroPageX
	ZeroPageY // LDX, STX
	IndirectX // rarely used
	IndirectY // may involve page crossing
	Relative  // branches

	Absolute
	AbsoluteX // may involve page crossing
	AbsoluteY // may involve page crossing

	Indirect // JMP only
)

// resolve computes the effective address for mode, given operandPC, the
// address of the first operand byte (i.e. the byte immediately following the
// opcode). It is a pure function: it reads memory through the Bus but never
// advances c.ProgramCounter. Step is solely responsible for moving the PC,
// after the Instruction has run, by op.Length-1.
//
// The second return value reports whether forming the address crossed a page
// boundary, which costs an extra cycle on indexed reads.
func (c *Cpu) resolve(mode AddressingMode, operandPC uint16) (uint16, bool) {
	switch mode {
	case Implied, Accumulator:
		return 0, false

	case Immediate:
		return operandPC, false

	case ZeroPage:
		return uint16(c.Read(operandPC)), false

	case ZeroPageX:
		return uint16(c.Read(operandPC) + c.X), false

	case ZeroPageY:
		return uint16(c.Read(operandPC) + c.Y), false

	case Relative:
		// the offset is relative to the address of the instruction
		// following the branch, i.e. one past this operand byte
		rel := int8(c.Read(operandPC))
		base := operandPC + 1
		target := uint16(int32(base) + int32(rel))
		return target, target&0xff00 != base&0xff00

	case Absolute:
		return c.Bus.Read16(operandPC), false

	case AbsoluteX:
		base := c.Bus.Read16(operandPC)
		addr := base + uint16(c.X)
		return addr, addr&0xff00 != base&0xff00

	case AbsoluteY:
		base := c.Bus.Read16(operandPC)
		addr := base + uint16(c.Y)
		return addr, addr&0xff00 != base&0xff00

	case IndirectX:
		// one operand byte, three reads. the pointer addition wraps
		// within page zero: it never carries into the page byte
		ptr := c.Read(operandPC) + c.X
		lo := c.Read(uint16(ptr))
		hi := c.Read(uint16(ptr + 1))
		return mask.Word(hi, lo), false

	case IndirectY:
		// unlike IndirectX, the Y offset is applied after the
		// indirection, so a page cross is possible here
		ptr := c.Read(operandPC)
		lo := c.Read(uint16(ptr))
		hi := c.Read(uint16(ptr + 1))
		base := mask.Word(hi, lo)
		addr := base + uint16(c.Y)
		return addr, addr&0xff00 != base&0xff00

	case Indirect:
		ptr := c.Bus.Read16(operandPC)
		lo := c.Read(ptr)
		var hi byte
		if byte(ptr) == 0xff {
			// the infamous JMP ($xxFF) bug: the high byte is
			// fetched from the start of the same page, not the
			// next one
			hi = c.Read(ptr & 0xff00)
		} else {
			hi = c.Read(ptr + 1)
		}
		return mask.Word(hi, lo), false
	}

	return 0, false
}

// modeLength returns the instruction length in bytes (opcode + operand) for
// mode, used to derive Opcode.Length without repeating it at every table
// entry.
func modeLength(mode AddressingMode) byte {
	switch mode {
	case Implied, Accumulator:
		return 1
	case Immediate, ZeroPage, ZeroPageX, ZeroPageY, IndirectX, IndirectY, Relative:
		return 2
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 3
	}
	return 1
}
