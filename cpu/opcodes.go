package cpu

// An Opcode is keyed in Opcodes by a unique byte value (0x00-0xff). There are 256
// possible byte values, but only 151 correspond to a legal Cpu instruction.
//
// The Opcode carries the AddressingMode used to resolve its operand, the
// number of Cycles it costs before page-crossing penalties, and Length, the
// total size in bytes of the instruction (opcode byte included) -- this is
// what Step uses to bump the PC for instructions that don't move it
// themselves.
//
// Multiple Opcodes may share the same Instruction, differing only in how the
// operand is resolved; that resolution is entirely the Cpu's job, not the
// Instruction's.
type Opcode struct {
	AddressingMode AddressingMode
	Cycles         byte
	Length         byte
	Instruction    func(c *Cpu) byte
	Name           string // for the disassembler and debugger
}

func op(instr func(c *Cpu) byte, name string, cycles byte, mode AddressingMode) Opcode {
	return Opcode{
		Instruction:    instr,
		Name:           name,
		Cycles:         cycles,
		AddressingMode: mode,
		Length:         modeLength(mode),
	}
}

// Opcodes lists all 151 byte values the Cpu recognises, mapped to the 56
// instructions they invoke.
//
// Generated from http://www.6502.org/tutorials/6502opcodes.html
var Opcodes = map[byte]Opcode{
	0x69: op((*Cpu).ADC, "ADC", 2, Immediate),
	0x65: op((*Cpu).ADC, "ADC", 3, ZeroPage),
	0x75: op((*Cpu).ADC, "ADC", 4, ZeroPageX),
	0x6D: op((*Cpu).ADC, "ADC", 4, Absolute),
	0x7D: op((*Cpu).ADC, "ADC", 4, AbsoluteX),
	0x79: op((*Cpu).ADC, "ADC", 4, AbsoluteY),
	0x61: op((*Cpu).ADC, "ADC", 6, IndirectX),
	0x71: op((*Cpu).ADC, "ADC", 5, IndirectY),

	0x29: op((*Cpu).AND, "AND", 2, Immediate),
	0x25: op((*Cpu).AND, "AND", 3, ZeroPage),
	0x35: op((*Cpu).AND, "AND", 4, ZeroPageX),
	0x2D: op((*Cpu).AND, "AND", 4, Absolute),
	0x3D: op((*Cpu).AND, "AND", 4, AbsoluteX),
	0x39: op((*Cpu).AND, "AND", 4, AbsoluteY),
	0x21: op((*Cpu).AND, "AND", 6, IndirectX),
	0x31: op((*Cpu).AND, "AND", 5, IndirectY),

	0x0A: op((*Cpu).ASL, "ASL", 2, Accumulator),
	0x06: op((*Cpu).ASL, "ASL", 5, ZeroPage),
	0x16: op((*Cpu).ASL, "ASL", 6, ZeroPageX),
	0x0E: op((*Cpu).ASL, "ASL", 6, Absolute),
	0x1E: op((*Cpu).ASL, "ASL", 7, AbsoluteX),

	0x24: op((*Cpu).BIT, "BIT", 3, ZeroPage),
	0x2C: op((*Cpu).BIT, "BIT", 4, Absolute),

	0x00: op((*Cpu).BRK, "BRK", 7, Implied),

	0xC9: op((*Cpu).CMP, "CMP", 2, Immediate),
	0xC5: op((*Cpu).CMP, "CMP", 3, ZeroPage),
	0xD5: op((*Cpu).CMP, "CMP", 4, ZeroPageX),
	0xCD: op((*Cpu).CMP, "CMP", 4, Absolute),
	0xDD: op((*Cpu).CMP, "CMP", 4, AbsoluteX),
	0xD9: op((*Cpu).CMP, "CMP", 4, AbsoluteY),
	0xC1: op((*Cpu).CMP, "CMP", 6, IndirectX),
	0xD1: op((*Cpu).CMP, "CMP", 5, IndirectY),

	0xE0: op((*Cpu).CPX, "CPX", 2, Immediate),
	0xE4: op((*Cpu).CPX, "CPX", 3, ZeroPage),
	0xEC: op((*Cpu).CPX, "CPX", 4, Absolute),

	0xC0: op((*Cpu).CPY, "CPY", 2, Immediate),
	0xC4: op((*Cpu).CPY, "CPY", 3, ZeroPage),
	0xCC: op((*Cpu).CPY, "CPY", 4, Absolute),

	0xC6: op((*Cpu).DEC, "DEC", 5, ZeroPage),
	0xD6: op((*Cpu).DEC, "DEC", 6, ZeroPageX),
	0xCE: op((*Cpu).DEC, "DEC", 6, Absolute),
	0xDE: op((*Cpu).DEC, "DEC", 7, AbsoluteX),

	0x49: op((*Cpu).EOR, "EOR", 2, Immediate),
	0x45: op((*Cpu).EOR, "EOR", 3, ZeroPage),
	0x55: op((*Cpu).EOR, "EOR", 4, ZeroPageX),
	0x4D: op((*Cpu).EOR, "EOR", 4, Absolute),
	0x5D: op((*Cpu).EOR, "EOR", 4, AbsoluteX),
	0x59: op((*Cpu).EOR, "EOR", 4, AbsoluteY),
	0x41: op((*Cpu).EOR, "EOR", 6, IndirectX),
	0x51: op((*Cpu).EOR, "EOR", 5, IndirectY),

	0xE6: op((*Cpu).INC, "INC", 5, ZeroPage),
	0xF6: op((*Cpu).INC, "INC", 6, ZeroPageX),
	0xEE: op((*Cpu).INC, "INC", 6, Absolute),
	0xFE: op((*Cpu).INC, "INC", 7, AbsoluteX),

	0x4C: op((*Cpu).JMP, "JMP", 3, Absolute),
	0x6C: op((*Cpu).JMP, "JMP", 5, Indirect),

	0x20: op((*Cpu).JSR, "JSR", 6, Absolute),

	0xA9: op((*Cpu).LDA, "LDA", 2, Immediate),
	0xA5: op((*Cpu).LDA, "LDA", 3, ZeroPage),
	0xB5: op((*Cpu).LDA, "LDA", 4, ZeroPageX),
	0xAD: op((*Cpu).LDA, "LDA", 4, Absolute),
	0xBD: op((*Cpu).LDA, "LDA", 4, AbsoluteX),
	0xB9: op((*Cpu).LDA, "LDA", 4, AbsoluteY),
	0xA1: op((*Cpu).LDA, "LDA", 6, IndirectX),
	0xB1: op((*Cpu).LDA, "LDA", 5, IndirectY),

	0xA2: op((*Cpu).LDX, "LDX", 2, Immediate),
	0xA6: op((*Cpu).LDX, "LDX", 3, ZeroPage),
	0xB6: op((*Cpu).LDX, "LDX", 4, ZeroPageY),
	0xAE: op((*Cpu).LDX, "LDX", 4, Absolute),
	0xBE: op((*Cpu).LDX, "LDX", 4, AbsoluteY),

	0xA0: op((*Cpu).LDY, "LDY", 2, Immediate),
	0xA4: op((*Cpu).LDY, "LDY", 3, ZeroPage),
	0xB4: op((*Cpu).LDY, "LDY", 4, ZeroPageX),
	0xAC: op((*Cpu).LDY, "LDY", 4, Absolute),
	0xBC: op((*Cpu).LDY, "LDY", 4, AbsoluteX),

	0x4A: op((*Cpu).LSR, "LSR", 2, Accumulator),
	0x46: op((*Cpu).LSR, "LSR", 5, ZeroPage),
	0x56: op((*Cpu).LSR, "LSR", 6, ZeroPageX),
	0x4E: op((*Cpu).LSR, "LSR", 6, Absolute),
	0x5E: op((*Cpu).LSR, "LSR", 7, AbsoluteX),

	0xEA: op((*Cpu).NOP, "NOP", 2, Implied),

	0x09: op((*Cpu).ORA, "ORA", 2, Immediate),
	0x05: op((*Cpu).ORA, "ORA", 3, ZeroPage),
	0x15: op((*Cpu).ORA, "ORA", 4, ZeroPageX),
	0x0D: op((*Cpu).ORA, "ORA", 4, Absolute),
	0x1D: op((*Cpu).ORA, "ORA", 4, AbsoluteX),
	0x19: op((*Cpu).ORA, "ORA", 4, AbsoluteY),
	0x01: op((*Cpu).ORA, "ORA", 6, IndirectX),
	0x11: op((*Cpu).ORA, "ORA", 5, IndirectY),

	0x2A: op((*Cpu).ROL, "ROL", 2, Accumulator),
	0x26: op((*Cpu).ROL, "ROL", 5, ZeroPage),
	0x36: op((*Cpu).ROL, "ROL", 6, ZeroPageX),
	0x2E: op((*Cpu).ROL, "ROL", 6, Absolute),
	0x3E: op((*Cpu).ROL, "ROL", 7, AbsoluteX),

	0x6A: op((*Cpu).ROR, "ROR", 2, Accumulator),
	0x66: op((*Cpu).ROR, "ROR", 5, ZeroPage),
	0x76: op((*Cpu).ROR, "ROR", 6, ZeroPageX),
	0x6E: op((*Cpu).ROR, "ROR", 6, Absolute),
	0x7E: op((*Cpu).ROR, "ROR", 7, AbsoluteX),

	0x40: op((*Cpu).RTI, "RTI", 6, Implied),
	0x60: op((*Cpu).RTS, "RTS", 6, Implied),

	0xE9: op((*Cpu).SBC, "SBC", 2, Immediate),
	0xE5: op((*Cpu).SBC, "SBC", 3, ZeroPage),
	0xF5: op((*Cpu).SBC, "SBC", 4, ZeroPageX),
	0xED: op((*Cpu).SBC, "SBC", 4, Absolute),
	0xFD: op((*Cpu).SBC, "SBC", 4, AbsoluteX),
	0xF9: op((*Cpu).SBC, "SBC", 4, AbsoluteY),
	0xE1: op((*Cpu).SBC, "SBC", 6, IndirectX),
	0xF1: op((*Cpu).SBC, "SBC", 5, IndirectY),

	0x85: op((*Cpu).STA, "STA", 3, ZeroPage),
	0x95: op((*Cpu).STA, "STA", 4, ZeroPageX),
	0x8D: op((*Cpu).STA, "STA", 4, Absolute),
	0x9D: op((*Cpu).STA, "STA", 5, AbsoluteX),
	0x99: op((*Cpu).STA, "STA", 5, AbsoluteY),
	0x81: op((*Cpu).STA, "STA", 6, IndirectX),
	0x91: op((*Cpu).STA, "STA", 6, IndirectY),

	0x86: op((*Cpu).STX, "STX", 3, ZeroPage),
	0x96: op((*Cpu).STX, "STX", 4, ZeroPageY),
	0x8E: op((*Cpu).STX, "STX", 4, Absolute),

	0x84: op((*Cpu).STY, "STY", 3, ZeroPage),
	0x94: op((*Cpu).STY, "STY", 4, ZeroPageX),
	0x8C: op((*Cpu).STY, "STY", 4, Absolute),

	// clear/set flag
	0x18: op((*Cpu).CLC, "CLC", 2, Implied),
	0x38: op((*Cpu).SEC, "SEC", 2, Implied),
	0x58: op((*Cpu).CLI, "CLI", 2, Implied),
	0x78: op((*Cpu).SEI, "SEI", 2, Implied),
	0xB8: op((*Cpu).CLV, "CLV", 2, Implied),
	0xD8: op((*Cpu).CLD, "CLD", 2, Implied),
	0xF8: op((*Cpu).SED, "SED", 2, Implied),

	// register transfer, increment, decrement
	0xAA: op((*Cpu).TAX, "TAX", 2, Implied),
	0x8A: op((*Cpu).TXA, "TXA", 2, Implied),
	0xCA: op((*Cpu).DEX, "DEX", 2, Implied),
	0xE8: op((*Cpu).INX, "INX", 2, Implied),
	0xA8: op((*Cpu).TAY, "TAY", 2, Implied),
	0x98: op((*Cpu).TYA, "TYA", 2, Implied),
	0x88: op((*Cpu).DEY, "DEY", 2, Implied),
	0xC8: op((*Cpu).INY, "INY", 2, Implied),

	// branch
	0x10: op((*Cpu).BPL, "BPL", 2, Relative),
	0x30: op((*Cpu).BMI, "BMI", 2, Relative),
	0x50: op((*Cpu).BVC, "BVC", 2, Relative),
	0x70: op((*Cpu).BVS, "BVS", 2, Relative),
	0x90: op((*Cpu).BCC, "BCC", 2, Relative),
	0xB0: op((*Cpu).BCS, "BCS", 2, Relative),
	0xD0: op((*Cpu).BNE, "BNE", 2, Relative),
	0xF0: op((*Cpu).BEQ, "BEQ", 2, Relative),

	// stack
	0x9A: op((*Cpu).TXS, "TXS", 2, Implied),
	0xBA: op((*Cpu).TSX, "TSX", 2, Implied),
	0x48: op((*Cpu).PHA, "PHA", 3, Implied),
	0x68: op((*Cpu).PLA, "PLA", 4, Implied),
	0x08: op((*Cpu).PHP, "PHP", 3, Implied),
	0x28: op((*Cpu).PLP, "PLP", 4, Implied),
}
