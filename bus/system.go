package bus

import (
	"log"

	"gone6502/ines"
)

// Address ranges of the NES memory map. The Cpu knows none of this; only
// System does.
const (
	ramStart    uint16 = 0x0000
	ramEnd      uint16 = 0x1FFF
	ramMirror   uint16 = 0x07FF // 2 KiB internal RAM, mirrored 4x

	ppuStart  uint16 = 0x2000
	ppuEnd    uint16 = 0x3FFF
	ppuMirror uint16 = 0x0007 // 8 registers, mirrored every 8 bytes

	apuStart uint16 = 0x4000
	apuEnd   uint16 = 0x401F

	cartStart uint16 = 0x4020
	cartEnd   uint16 = 0xFFFF
	prgStart  uint16 = 0x8000
)

// PPURegisters is the narrow capability System needs from the PPU. The PPU
// itself is out of scope for this module; System depends only on this
// interface so a real PPU (or a stub) can be plugged in.
type PPURegisters interface {
	ReadRegister(reg uint16) byte
	WriteRegister(reg uint16, data byte)
}

// nullPPU discards writes and returns zero, standing in until a real PPU is
// attached. It satisfies PPURegisters so System never needs a nil check.
type nullPPU struct{}

func (nullPPU) ReadRegister(uint16) byte        { return 0 }
func (nullPPU) WriteRegister(uint16, byte) {}

// System is the full NES memory map described in spec §6: 2 KiB of mirrored
// internal RAM, PPU registers mirrored every 8 bytes, APU/IO registers, and
// cartridge PRG-ROM mapped at 0x8000-0xFFFF (mirrored down from 16 KiB when
// the cartridge only supplies one bank).
type System struct {
	ram [2048]byte
	apu [apuEnd - apuStart + 1]byte
	ppu PPURegisters
	rom *ines.ROM
}

// NewSystem builds a System bus around a decoded cartridge. ppu may be nil,
// in which case PPU register reads/writes are silently discarded.
func NewSystem(rom *ines.ROM, ppu PPURegisters) *System {
	if ppu == nil {
		ppu = nullPPU{}
	}
	return &System{rom: rom, ppu: ppu}
}

func (s *System) Read(addr uint16) byte {
	switch {
	case addr <= ramEnd:
		return s.ram[addr&ramMirror]
	case addr >= ppuStart && addr <= ppuEnd:
		return s.ppu.ReadRegister(ppuStart + addr&ppuMirror)
	case addr >= apuStart && addr <= apuEnd:
		return s.apu[addr-apuStart]
	case addr >= prgStart && addr <= cartEnd:
		if s.rom == nil {
			return 0
		}
		return s.rom.ReadPRG(addr - prgStart)
	case addr >= cartStart && addr < prgStart:
		// cartridge expansion / SRAM: unimplemented for mapper 0
		return 0
	default:
		log.Printf("bus: ignoring read at %#04x", addr)
		return 0
	}
}

func (s *System) Write(addr uint16, data byte) {
	switch {
	case addr <= ramEnd:
		s.ram[addr&ramMirror] = data
	case addr >= ppuStart && addr <= ppuEnd:
		s.ppu.WriteRegister(ppuStart+addr&ppuMirror, data)
	case addr >= apuStart && addr <= apuEnd:
		s.apu[addr-apuStart] = data
	case addr >= prgStart && addr <= cartEnd:
		log.Printf("bus: ignoring write to PRG-ROM at %#04x", addr)
	case addr >= cartStart && addr < prgStart:
		// cartridge expansion / SRAM: unimplemented for mapper 0
	default:
		log.Printf("bus: ignoring write at %#04x", addr)
	}
}

func (s *System) Read16(addr uint16) uint16 { return Read16(s, addr) }

func (s *System) Write16(addr uint16, data uint16) { Write16(s, addr, data) }
