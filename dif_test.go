package mbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDIFSimple(t *testing.T) {
	// DIF 0x04: function Act, no storage extension, 4-byte uint.
	f, err := parseDIF([]byte{0x04, 0xAA})
	require.NoError(t, err)
	assert.Equal(t, FunctionAct, f.function)
	assert.Equal(t, uint64(0), f.storage)
	assert.Equal(t, 1, f.nbytes)
	assert.Equal(t, 4, f.entry.length)
	assert.Equal(t, decUintLE, f.entry.decoder)
}

func TestParseDIFExtendedStorage(t *testing.T) {
	// DIF 0xC9: extension bit set, storage bit0=1, function Act, 1-byte BCD.
	// DIFE 0x2B: storage nibble 0xB (shifted by 1), tariff bits = 2.
	f, err := parseDIF([]byte{0xC9, 0x2B})
	require.NoError(t, err)
	assert.Equal(t, FunctionAct, f.function)
	assert.Equal(t, 1, f.entry.length)
	assert.Equal(t, decBCD, f.entry.decoder)
	assert.Equal(t, 2, f.nbytes)
	assert.Equal(t, uint64(1|(0x0B<<1)), f.storage)
	assert.Equal(t, uint64(2), f.tariff)
}

func TestParseDIFTruncated(t *testing.T) {
	_, err := parseDIF(nil)
	require.Error(t, err)
}

func TestParseDIFTruncatedDIFEChain(t *testing.T) {
	_, err := parseDIF([]byte{0x80}) // extension bit set, no DIFE byte follows
	require.Error(t, err)
}

func TestDataFieldTableLvarRow(t *testing.T) {
	entry := dataFieldTable[0x0D]
	assert.True(t, entry.lvar)
	assert.Equal(t, decASCII, entry.decoder)
}
