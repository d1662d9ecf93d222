package bus

// RAM is a flat 64 KiB address space with no mirroring or device mapping.
// It is the test-harness bus: every byte is plain, writable RAM, addresses
// 0x0000-0xFFFF included. This is the Go equivalent of the FakeRam used by
// small 6502 test programs before any cartridge or PPU is wired in.
type RAM struct {
	mem [64 * 1024]byte
}

// NewRAM returns a zeroed 64 KiB RAM.
func NewRAM() *RAM {
	return &RAM{}
}

func (r *RAM) Read(addr uint16) byte { return r.mem[addr] }

func (r *RAM) Write(addr uint16, data byte) { r.mem[addr] = data }

func (r *RAM) Read16(addr uint16) uint16 { return Read16(r, addr) }

func (r *RAM) Write16(addr uint16, data uint16) { Write16(r, addr, data) }
