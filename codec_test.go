package mbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUint(t *testing.T) {
	cases := []struct {
		data []byte
		n    int
		want uint32
	}{
		{[]byte{0x12}, 1, 0x12},
		{[]byte{0x34, 0x12}, 2, 0x1234},
		{[]byte{0x78, 0x56, 0x34, 0x12}, 4, 0x12345678},
	}
	for _, c := range cases {
		got, err := decodeUint(c.data, c.n)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}
}

func TestDecodeUintTruncated(t *testing.T) {
	_, err := decodeUint([]byte{0x01}, 2)
	require.Error(t, err)
}

func TestDecodeBCD(t *testing.T) {
	assert.Equal(t, "12345678", decodeBCD([]byte{0x78, 0x56, 0x34, 0x12}))
	assert.Equal(t, "00", decodeBCD([]byte{0x00}))
}

func TestDecodeBCDNonDecimalNibble(t *testing.T) {
	assert.Equal(t, "1A", decodeBCD([]byte{0x1A}))
}

func TestDecodeASCII(t *testing.T) {
	got, err := decodeASCII([]byte("HELLO"))
	require.NoError(t, err)
	assert.Equal(t, "HELLO", got)
}

func TestDecodeASCIIRejectsHighBit(t *testing.T) {
	_, err := decodeASCII([]byte{0x80})
	require.Error(t, err)
}

func TestDecodeTypeF(t *testing.T) {
	// minute=37 hour=13 day=4 month=3 year=2021
	data := []byte{0x25, 0x0D, 0xA4, 0x23}
	s, ok := decodeTypeF(data)
	require.True(t, ok)
	assert.Equal(t, "2021-03-04 13:37:00", s)
}

func TestDecodeTypeFInvalid(t *testing.T) {
	_, ok := decodeTypeF([]byte{0x80, 0, 0, 0})
	assert.False(t, ok)
}

func TestDecodeTypeG(t *testing.T) {
	// day=4 month=3 year=2021
	data := []byte{0xA4, 0x23}
	s, ok := decodeTypeG(data)
	require.True(t, ok)
	assert.Equal(t, "2021-03-04", s)
}

func TestDecodeTypeGInvalidMonth(t *testing.T) {
	_, ok := decodeTypeG([]byte{0x00, 0x0F})
	assert.False(t, ok)
}
