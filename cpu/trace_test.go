package cpu

import (
	"testing"

	"github.com/go-test/deep"

	"gone6502/bus"
)

// TestObserverTraceMatchesGoldenLog drives the countdown-loop program through
// Step while recording an Observer trace of every State, then diffs it
// against the expected sequence of register snapshots. This is the shape a
// golden trace comparison against another emulator's log would take.
func TestObserverTraceMatchesGoldenLog(t *testing.T) {
	var trace []State
	c := New(bus.NewRAM())
	c.Halt = HaltOnBRK
	c.Observer = func(s State) { trace = append(trace, s) }

	program := []byte{
		0xA2, 0x03, // LDX #$03
		0xCA,       // DEX
		0xD0, 0xFD, // BNE -3
		0x00, // BRK
	}
	if err := c.LoadAndRun(program, 0x8000); err != nil {
		t.Fatalf("LoadAndRun: %v", err)
	}

	want := []byte{3, 2, 2, 1, 1, 0, 0} // X after LDX, then after each DEX and BNE
	var gotX []byte
	for _, s := range trace {
		gotX = append(gotX, s.X)
	}

	// the trailing BRK doesn't touch X, so only compare the prefix that
	// corresponds to LDX followed by the three DEX/BNE iterations
	if len(gotX) < len(want) {
		t.Fatalf("trace too short: got %d entries", len(gotX))
	}
	if diff := deep.Equal(want, gotX[:len(want)]); diff != nil {
		t.Errorf("X trace diverged: %v", diff)
	}
}

func TestObserverReceivesValueNotPointer(t *testing.T) {
	c := New(bus.NewRAM())
	c.Halt = HaltOnBRK

	var captured State
	c.Observer = func(s State) {
		captured = s
		s.A = 0xff // mutating the snapshot must not affect the Cpu
	}

	if err := c.LoadAndRun([]byte{0xA9, 0x42, 0x00}, 0x8000); err != nil {
		t.Fatalf("LoadAndRun: %v", err)
	}

	if diff := deep.Equal(byte(0x42), captured.A); diff != nil {
		t.Errorf("captured.A diverged: %v", diff)
	}
	if c.Accumulator != 0x42 {
		t.Errorf("observer mutation leaked into Cpu: A = %#02x", c.Accumulator)
	}
}
