package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gone6502/bus"
)

// newTestCpu returns a Cpu over a flat 64 KiB RAM bus, halting (rather than
// vectoring through 0xfffe) on BRK, which is the convention every scenario
// below assumes.
func newTestCpu() *Cpu {
	c := New(bus.NewRAM())
	c.Halt = HaltOnBRK
	return c
}

func loadAndRun(t *testing.T, program []byte) *Cpu {
	t.Helper()
	c := newTestCpu()
	if err := c.LoadAndRun(program, 0x8000); err != nil {
		t.Fatalf("LoadAndRun: %v", err)
	}
	return c
}

func TestLoadProgram(t *testing.T) {
	program := "A2 0A 8E 00 00 A2 03 8E 01 00 AC 00 00 A9 00 18 6D 01 00 88 D0 FA 8D 02 00 EA EA EA"

	c := newTestCpu()
	c.LoadProgram([]byte(program), 0x8000)

	assert.Equal(t, byte(0xa2), c.Read(0x8000))
	assert.Equal(t, byte(0x0a), c.Read(0x8001))
	assert.Equal(t, byte(0x8e), c.Read(0x8002))
	assert.Equal(t, byte(0xea), c.Read(0x801b))

	assert.Equal(t, "LDX", Opcodes[c.Read(0x8000)].Name)
	assert.Equal(t, "ASL", Opcodes[c.Read(0x8001)].Name)
	assert.Equal(t, "STX", Opcodes[c.Read(0x8002)].Name)
	assert.Equal(t, "NOP", Opcodes[c.Read(0x801b)].Name)
	assert.Equal(t, "BRK", Opcodes[c.Read(0x801c)].Name)
}

// TestStepTrace walks the classic "multiply 10 by 3" program one Step at a
// time and checks M, the registers, and the name of the next instruction
// after each step.
func TestStepTrace(t *testing.T) {
	program := "A2 0A 8E 00 00 A2 03 8E 01 00 AC 00 00 A9 00 18 6D 01 00 88 D0 FA 8D 02 00 EA EA EA 00"

	c := newTestCpu()
	offset := uint16(0x8000)
	c.LoadProgram([]byte(program), offset)
	c.Bus.Write16(0xfffc, offset)
	c.Reset()

	assert.Equal(t, "LDX", Opcodes[c.Read(c.ProgramCounter)].Name)

	for _, want := range []struct {
		M, A, X, Y byte
		InstName   string
	}{
		{M: 0xa, A: 0, X: 0xa, Y: 0, InstName: "STX"},
		{M: 0, A: 0, X: 0xa, Y: 0, InstName: "LDX"}, // STX reads M before storing
		{M: 3, A: 0, X: 3, Y: 0, InstName: "STX"},
		{M: 0, A: 0, X: 3, Y: 0, InstName: "LDY"},
		{M: 0xa, A: 0, X: 3, Y: 0xa, InstName: "LDA"},
		{M: 0, A: 0, X: 3, Y: 0xa, InstName: "CLC"},
		{M: 0, A: 0, X: 3, Y: 0xa, InstName: "ADC"},
		{M: 3, A: 3, X: 3, Y: 0xa, InstName: "DEY"},
		{M: 3, A: 3, X: 3, Y: 9, InstName: "BNE"},
	} {
		beforeName := Opcodes[c.Read(c.ProgramCounter)].Name
		err := c.Step()
		if err != nil && err != ErrHalted {
			t.Fatalf("Step: %v", err)
		}
		assert.Equal(t, want.M, c.M, "M after %s", beforeName)
		assert.Equal(t, want.A, c.Accumulator, "A after %s", beforeName)
		assert.Equal(t, want.X, c.X, "X after %s", beforeName)
		assert.Equal(t, want.Y, c.Y, "Y after %s", beforeName)
		assert.Equal(t, want.InstName, Opcodes[c.Read(c.ProgramCounter)].Name, "next instruction after %s", beforeName)
	}
}

func TestMultiplyTenByThreeEndState(t *testing.T) {
	program := []byte{
		0xA2, 0x0A, 0x8E, 0x00, 0x00, // LDX #$0A; STX $0000
		0xA2, 0x03, 0x8E, 0x01, 0x00, // LDX #$03; STX $0001
		0xAC, 0x00, 0x00, // LDY $0000
		0xA9, 0x00, 0x18, // LDA #$00; CLC
		0x6D, 0x01, 0x00, // ADC $0001
		0x88, 0xD0, 0xFA, // DEY; BNE -6
		0x8D, 0x02, 0x00, // STA $0002
		0x00, // BRK
	}

	c := loadAndRun(t, program)

	assert.Equal(t, byte(10), c.Read(0), "mem[0]")
	assert.Equal(t, byte(3), c.Read(1), "mem[1]")
	assert.Equal(t, byte(30), c.Read(2), "mem[2]")
	assert.Equal(t, byte(30), c.Accumulator)
}

// The seven concrete end-to-end scenarios.

func TestScenario_LDA_TAX(t *testing.T) {
	c := loadAndRun(t, []byte{0xA9, 0x0A, 0xAA, 0x00})
	assert.Equal(t, byte(0x0A), c.X)
	assert.False(t, c.Flags.Zero)
	assert.False(t, c.Flags.Negative)
}

func TestScenario_LDA_TAX_INX_negative(t *testing.T) {
	c := loadAndRun(t, []byte{0xA9, 0xC0, 0xAA, 0xE8, 0x00})
	assert.Equal(t, byte(0xC1), c.X)
	assert.True(t, c.Flags.Negative)
}

func TestScenario_INX_overflow(t *testing.T) {
	c := loadAndRun(t, []byte{0xA9, 0xFF, 0xAA, 0xE8, 0xE8, 0x00})
	assert.Equal(t, byte(0x01), c.X)
	assert.False(t, c.Flags.Zero)
}

func TestScenario_LDA_ZeroPage(t *testing.T) {
	c := newTestCpu()
	c.Write(0x0010, 0x55)
	if err := c.LoadAndRun([]byte{0xA5, 0x10, 0x00}, 0x8000); err != nil {
		t.Fatalf("LoadAndRun: %v", err)
	}
	assert.Equal(t, byte(0x55), c.Accumulator)
}

func TestScenario_ADC_noOverflow(t *testing.T) {
	c := loadAndRun(t, []byte{0xA9, 0x05, 0x69, 0x03, 0x00})
	assert.Equal(t, byte(0x08), c.Accumulator)
	assert.False(t, c.Flags.Carry)
	assert.False(t, c.Flags.Overflow)
}

func TestScenario_ADC_signedOverflow(t *testing.T) {
	c := loadAndRun(t, []byte{0xA9, 0x50, 0x69, 0x50, 0x00})
	assert.Equal(t, byte(0xA0), c.Accumulator)
	assert.False(t, c.Flags.Carry)
	assert.True(t, c.Flags.Overflow)
}

func TestScenario_CountdownLoop(t *testing.T) {
	c := loadAndRun(t, []byte{
		0xA2, 0x08, // LDX #$08
		0xCA, // DEX
		0x8E, 0x00, 0x02, // STX $0200
		0xE0, 0x03, // CPX #$03
		0xD0, 0xF8, // BNE -8
		0x00, // BRK
	})
	assert.Equal(t, byte(0x03), c.Read(0x0200))
	assert.Equal(t, byte(0x03), c.X)
}

// Property-style tests per the invariants section.

func TestSBCEqualsADCWithComplement(t *testing.T) {
	for _, tt := range []struct {
		a, m byte
		c    bool
	}{
		{0x50, 0xf0, true},
		{0x10, 0x05, false},
		{0x00, 0x01, true},
		{0x80, 0x01, false},
	} {
		sbc := newTestCpu()
		sbc.Flags.Carry = tt.c
		sbc.Accumulator = tt.a
		sbc.M = tt.m
		sbc.SBC()

		adc := newTestCpu()
		adc.Flags.Carry = tt.c
		adc.Accumulator = tt.a
		adc.M = tt.m ^ 0xff
		adc.ADC()

		assert.Equal(t, adc.Accumulator, sbc.Accumulator)
		assert.Equal(t, adc.Flags, sbc.Flags)
	}
}

func TestPHPThenPLPRestoresExceptBandU(t *testing.T) {
	c := newTestCpu()
	c.Flags = Flags{Negative: true, Overflow: true, Decimal: true, Carry: true}
	c.PHP()
	c.Flags = Flags{} // scramble
	c.PLP()

	assert.True(t, c.Flags.Negative)
	assert.True(t, c.Flags.Overflow)
	assert.True(t, c.Flags.Decimal)
	assert.True(t, c.Flags.Carry)
	assert.False(t, c.Flags.B)
	assert.True(t, c.Flags.Unused)
}

func TestJSRThenRTSReturnsToNextInstruction(t *testing.T) {
	// JSR $8005; BRK; ... ; RTS at $8005
	program := []byte{
		0x20, 0x05, 0x80, // JSR $8005
		0x00, // BRK (never reached before the call returns here)
		0xEA, // padding so $8005 is RTS
		0x60, // RTS
	}
	c := newTestCpu()
	if err := c.Load(program, 0x8000); err != nil {
		t.Fatalf("Load: %v", err)
	}
	c.Bus.Write16(0xfffc, 0x8000)
	c.Reset()

	assert.NoError(t, c.Step()) // JSR
	assert.Equal(t, uint16(0x8005), c.ProgramCounter)
	assert.NoError(t, c.Step()) // RTS
	assert.Equal(t, uint16(0x8003), c.ProgramCounter)
}

func TestStackPointerWrapsModulo256(t *testing.T) {
	c := newTestCpu()
	c.Stack = 0x00
	c.PHA() // push decrements past 0x00
	assert.Equal(t, byte(0xff), c.Stack)

	c.Stack = 0xff
	c.PLA() // pop increments past 0xff
	assert.Equal(t, byte(0x00), c.Stack)
}
