// Package disassembler renders the instruction at a given address as a
// human-readable string, without executing it. It is standalone tooling:
// the cpu package's debugger does not call it. It never advances a Cpu.
package disassembler

import (
	"fmt"

	"gone6502/bus"
	"gone6502/cpu"
)

// Step disassembles the instruction at pc and returns its text along with
// its length in bytes (how far to advance pc to reach the next instruction).
// An illegal opcode byte disassembles as ".byte $xx".
func Step(b bus.Interface, pc uint16) (string, int) {
	code := b.Read(pc)
	op, ok := cpu.Opcodes[code]
	if !ok {
		return fmt.Sprintf(".byte $%02x", code), 1
	}

	operandPC := pc + 1
	var operand string

	switch op.AddressingMode {
	case cpu.Implied:
		operand = ""
	case cpu.Accumulator:
		operand = "A"
	case cpu.Immediate:
		operand = fmt.Sprintf("#$%02x", b.Read(operandPC))
	case cpu.ZeroPage:
		operand = fmt.Sprintf("$%02x", b.Read(operandPC))
	case cpu.ZeroPageX:
		operand = fmt.Sprintf("$%02x,X", b.Read(operandPC))
	case cpu.ZeroPageY:
		operand = fmt.Sprintf("$%02x,Y", b.Read(operandPC))
	case cpu.Relative:
		rel := int8(b.Read(operandPC))
		target := uint16(int32(operandPC+1) + int32(rel))
		operand = fmt.Sprintf("$%04x", target)
	case cpu.Absolute:
		operand = fmt.Sprintf("$%04x", b.Read16(operandPC))
	case cpu.AbsoluteX:
		operand = fmt.Sprintf("$%04x,X", b.Read16(operandPC))
	case cpu.AbsoluteY:
		operand = fmt.Sprintf("$%04x,Y", b.Read16(operandPC))
	case cpu.IndirectX:
		operand = fmt.Sprintf("($%02x,X)", b.Read(operandPC))
	case cpu.IndirectY:
		operand = fmt.Sprintf("($%02x),Y", b.Read(operandPC))
	case cpu.Indirect:
		operand = fmt.Sprintf("($%04x)", b.Read16(operandPC))
	}

	if operand == "" {
		return op.Name, int(op.Length)
	}
	return op.Name + " " + operand, int(op.Length)
}
