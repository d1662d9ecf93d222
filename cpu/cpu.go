// Package cpu implements the MOS Technology 6502 microprocessor, as used in
// the NES (decimal mode omitted, since the NES's 6502 never implements it).

package cpu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gone6502/bus"
	"gone6502/mask"
)

// Flags are the 8 bits of the status register (aka the P register).
//
// 7654 3210
// NV1B DIZC
type Flags struct {
	Negative         bool // bit 7
	Overflow         bool // bit 6
	Unused           bool // bit 5, always reads as 1
	B                bool // bit 4, only meaningful on the stack
	Decimal          bool // bit 3, inherited from the 6502 but unused by the NES
	DisableInterrupt bool // bit 2
	Zero             bool // bit 1
	Carry            bool // bit 0
}

// HaltPolicy governs what BRK does: a real 6502 always pushes PC and flags
// and vectors through 0xfffe. Many standalone 6502 test programs,
// however, use BRK purely as a "stop" marker and never populate that vector,
// so the default policy treats BRK as a halt instead of an interrupt.
type HaltPolicy int

const (
	HaltOnBRK HaltPolicy = iota
	InterruptOnBRK
)

// ErrHalted is returned by Step once the Cpu has executed a BRK under
// HaltOnBRK. Run treats it as a normal stopping condition, not a failure.
var ErrHalted = errors.New("cpu: halted")

// State is an immutable snapshot of the Cpu's architectural state, handed to
// an Observer after each Step. It is a value, not a pointer to the Cpu, so an
// Observer can never reach back in and mutate the machine it is watching.
type State struct {
	PC     uint16
	SP     byte
	A      byte
	X      byte
	Y      byte
	Flags  Flags
	Cycles byte
}

// The Cpu has no memory of its own, aside from a handful of registers.
// Instead it interfaces with a Bus that supplies and accepts bytes at a given
// address; the Cpu never needs to know whether that address is RAM, a PPU
// register, or cartridge ROM.
type Cpu struct {
	Bus bus.Interface

	Flags Flags

	Accumulator byte
	X           byte
	Y           byte

	// Stack Pointer. Stack instructions (PHA, PLA, PHP, PLP, JSR, RTS,
	// BRK, RTI) always access page 1 (0x0100-0x01ff); this register holds
	// the low byte of that address and wraps within the page.
	Stack byte

	// ProgramCounter is a 2-byte address that advances through the
	// program. The byte it points at is always the next opcode to fetch.
	ProgramCounter uint16

	Mode        AddressingMode // the mode of the opcode currently executing
	M           byte           // the resolved operand byte for the current opcode
	AbsAddress  uint16         // the resolved effective address, if any
	PageCrossed bool           // true if resolving AbsAddress crossed a page
	Cycles      byte           // cycles remaining to "wait out" after Step

	Halt HaltPolicy

	// Observer, if set, is called once per Step with a snapshot of the
	// Cpu's state, after the instruction (and any implied PC change) has
	// fully applied.
	Observer func(State)

	halted bool
}

// New returns a Cpu wired to b, with flags and registers as they are after
// power-on but before the first Reset.
func New(b bus.Interface) *Cpu {
	return &Cpu{Bus: b}
}

// Read reads one byte from the given addr via the Bus.
func (c *Cpu) Read(addr uint16) byte {
	return c.Bus.Read(addr)
}

// Write passes data to the Bus, which decides what actually happens to it.
func (c *Cpu) Write(addr uint16, data byte) {
	c.Bus.Write(addr, data)
}

// LoadProgram parses a whitespace-separated string of hex byte pairs and
// writes it to the Bus starting at addr. It panics on a malformed pair.
func (c *Cpu) LoadProgram(program []byte, addr uint16) {
	for i, s := range strings.Fields(string(program)) {
		b, err := strconv.ParseInt(s, 16, 16)
		if err != nil {
			panic(err)
		}
		c.Write(addr+uint16(i), byte(b))
	}
}

// Load writes a raw byte slice to the Bus starting at origin. It returns an
// error rather than panicking if the program would run past the top of the
// address space.
func (c *Cpu) Load(program []byte, origin uint16) error {
	if int(origin)+len(program) > 0x10000 {
		return fmt.Errorf("cpu: program of %d bytes at %#04x overruns address space", len(program), origin)
	}
	for i, b := range program {
		c.Write(origin+uint16(i), b)
	}
	return nil
}

// LoadAndRun loads program at origin, points the reset vector at it, resets
// the Cpu, and runs until it halts.
func (c *Cpu) LoadAndRun(program []byte, origin uint16) error {
	if err := c.Load(program, origin); err != nil {
		return err
	}
	c.Bus.Write16(0xfffc, origin)
	c.Reset()
	return c.Run()
}

// Reset puts the Cpu into its post-reset state and loads the PC from the
// reset vector at 0xfffc. Reset does not touch the contents of memory.
func (c *Cpu) Reset() {
	c.Accumulator = 0
	c.X = 0
	c.Y = 0
	c.Stack = 0xfd

	c.Flags = Flags{Unused: true, DisableInterrupt: true}

	c.ProgramCounter = c.Bus.Read16(0xfffc)

	c.M = 0
	c.AbsAddress = 0
	c.Cycles = 8
	c.halted = false
}

// Step fetches, decodes, and executes exactly one instruction, then notifies
// Observer. It implements:
//
//	code = read(PC); PC += 1
//	savedPC = PC
//	op = table[code]
//	dispatch(op)
//	if PC == savedPC { PC += op.Length - 1 }
//	observer(state)
//
// Instructions that themselves alter PC (branches, JMP, JSR, RTS, RTI, BRK)
// are left alone; every other instruction gets the bulk bump that accounts
// for its operand bytes.
func (c *Cpu) Step() error {
	if c.halted {
		return ErrHalted
	}

	code := c.Read(c.ProgramCounter)
	op, ok := Opcodes[code]
	if !ok {
		return fmt.Errorf("cpu: illegal opcode %#02x at %#04x", code, c.ProgramCounter)
	}
	c.ProgramCounter++
	savedPC := c.ProgramCounter

	c.Mode = op.AddressingMode
	c.AbsAddress, c.PageCrossed = c.resolve(op.AddressingMode, c.ProgramCounter)

	switch op.AddressingMode {
	case Implied:
		// no operand to fetch
	case Accumulator:
		c.M = c.Accumulator
	default:
		c.M = c.Read(c.AbsAddress)
	}

	extra := op.Instruction(c)

	c.Cycles = op.Cycles + extra
	// Relative mode's page-cross penalty is folded into the branch's own
	// return value above, since it only applies when the branch is taken.
	if c.PageCrossed && op.AddressingMode != Relative {
		c.Cycles++
	}
	c.PageCrossed = false

	if c.ProgramCounter == savedPC {
		c.ProgramCounter += uint16(op.Length) - 1
	}

	if c.Observer != nil {
		c.Observer(c.State())
	}

	return nil
}

// Run steps the Cpu until it halts (via BRK under HaltOnBRK) or hits an
// illegal opcode.
func (c *Cpu) Run() error {
	for {
		if err := c.Step(); err != nil {
			if errors.Is(err, ErrHalted) {
				return nil
			}
			return err
		}
	}
}

// State returns a snapshot of the Cpu's current architectural state.
func (c *Cpu) State() State {
	return State{
		PC:     c.ProgramCounter,
		SP:     c.Stack,
		A:      c.Accumulator,
		X:      c.X,
		Y:      c.Y,
		Flags:  c.Flags,
		Cycles: c.Cycles,
	}
}

// push writes b to the stack page and decrements the stack pointer, wrapping
// at 0x00/0xff as real hardware does.
func (c *Cpu) push(b byte) {
	c.Write(0x0100|uint16(c.Stack), b)
	c.Stack--
}

// pop increments the stack pointer and reads the byte it now points at.
func (c *Cpu) pop() byte {
	c.Stack++
	return c.Read(0x0100 | uint16(c.Stack))
}

func (c *Cpu) push16(w uint16) {
	c.push(byte(w >> 8))
	c.push(byte(w))
}

func (c *Cpu) pop16() uint16 {
	lo := c.pop()
	hi := c.pop()
	return mask.Word(hi, lo)
}

// flagsByte packs Flags into the P register layout. breakBit controls bit 4,
// which is only ever 1 when pushed by PHP or BRK, never by a hardware
// interrupt.
func (c *Cpu) flagsByte(breakBit bool) byte {
	var b byte
	if c.Flags.Carry {
		b |= 1 << 0
	}
	if c.Flags.Zero {
		b |= 1 << 1
	}
	if c.Flags.DisableInterrupt {
		b |= 1 << 2
	}
	if c.Flags.Decimal {
		b |= 1 << 3
	}
	if breakBit {
		b |= 1 << 4
	}
	b |= 1 << 5 // always set when observed on the stack
	if c.Flags.Overflow {
		b |= 1 << 6
	}
	if c.Flags.Negative {
		b |= 1 << 7
	}
	return b
}

// setFlagsFromByte unpacks a pulled P register byte into Flags. Per PLP and
// RTI's defined behaviour, bits 4 and 5 never come from the stack: B is
// always cleared and Unused is always set.
func (c *Cpu) setFlagsFromByte(b byte) {
	c.Flags.Carry = mask.IsSet(b, mask.I8)
	c.Flags.Zero = mask.IsSet(b, mask.I7)
	c.Flags.DisableInterrupt = mask.IsSet(b, mask.I6)
	c.Flags.Decimal = mask.IsSet(b, mask.I5)
	c.Flags.Overflow = mask.IsSet(b, mask.I2)
	c.Flags.Negative = mask.IsSet(b, mask.I1)
	c.Flags.B = false
	c.Flags.Unused = true
}

// NMI services a non-maskable interrupt: it cannot be disabled by the I
// flag, and always vectors through 0xfffa.
func (c *Cpu) NMI() {
	c.push16(c.ProgramCounter)
	c.push(c.flagsByte(false))
	c.Flags.DisableInterrupt = true
	c.ProgramCounter = c.Bus.Read16(0xfffa)
	c.Cycles = 8
}

// IRQ services a maskable interrupt. It is ignored entirely while
// DisableInterrupt is set.
func (c *Cpu) IRQ() {
	if c.Flags.DisableInterrupt {
		return
	}
	c.push16(c.ProgramCounter)
	c.push(c.flagsByte(false))
	c.Flags.DisableInterrupt = true
	c.ProgramCounter = c.Bus.Read16(0xfffe)
	c.Cycles = 7
}
