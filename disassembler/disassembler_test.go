package disassembler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gone6502/bus"
)

func TestStep(t *testing.T) {
	ram := bus.NewRAM()
	ram.Write(0x8000, 0xA9) // LDA #$0A
	ram.Write(0x8001, 0x0A)
	ram.Write(0x8002, 0x8D) // STA $0200
	ram.Write(0x8003, 0x00)
	ram.Write(0x8004, 0x02)
	ram.Write(0x8005, 0x00) // BRK

	text, n := Step(ram, 0x8000)
	assert.Equal(t, "LDA #$0a", text)
	assert.Equal(t, 2, n)

	text, n = Step(ram, 0x8002)
	assert.Equal(t, "STA $0200", text)
	assert.Equal(t, 3, n)

	text, n = Step(ram, 0x8005)
	assert.Equal(t, "BRK", text)
	assert.Equal(t, 1, n)
}

func TestStepIllegalOpcode(t *testing.T) {
	ram := bus.NewRAM()
	ram.Write(0x8000, 0x02) // not in the 151-entry table

	text, n := Step(ram, 0x8000)
	assert.Equal(t, ".byte $02", text)
	assert.Equal(t, 1, n)
}
