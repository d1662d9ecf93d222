package ines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildImage(prgBanks, chrBanks int, flags6 byte) []byte {
	header := []byte{
		'N', 'E', 'S', 0x1A,
		byte(prgBanks), byte(chrBanks),
		flags6, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	data := append([]byte(nil), header...)
	data = append(data, make([]byte, prgBanks*prgBankSize)...)
	data = append(data, make([]byte, chrBanks*chrBankSize)...)
	return data
}

func TestLoadRejectsBadMagic(t *testing.T) {
	data := buildImage(1, 1, 0)
	data[0] = 'X'
	_, err := Load(data)
	assert.Error(t, err)
}

func TestLoadRejectsUnsupportedMapper(t *testing.T) {
	data := buildImage(1, 1, 0xf0) // mapper nibble in flags6 high bits
	_, err := Load(data)
	assert.Error(t, err)
}

func TestLoadDecodesMirroring(t *testing.T) {
	data := buildImage(1, 1, 0x01) // vertical mirroring bit set
	rom, err := Load(data)
	assert.NoError(t, err)
	assert.Equal(t, Vertical, rom.Mirroring)
	assert.Equal(t, byte(0), rom.Mapper)
}

func TestReadPRGMirrors16KiBImage(t *testing.T) {
	data := buildImage(1, 0, 0)
	data[headerSize] = 0xAB // first byte of the single 16 KiB bank
	rom, err := Load(data)
	assert.NoError(t, err)

	assert.Equal(t, byte(0xAB), rom.ReadPRG(0x0000))
	assert.Equal(t, byte(0xAB), rom.ReadPRG(0x4000)) // mirrored bank
}
