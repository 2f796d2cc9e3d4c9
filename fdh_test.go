package mbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFDH(t *testing.T) {
	data := []byte{
		0x78, 0x56, 0x34, 0x12, // identification BCD: 12345678
		0x93, 0x15, // manufacturer packed code (ELS)
		0x07,       // version
		byte(MediumWater),
		0x2A,       // access number
		0x00,       // status: NoError
		0xAB, 0xCD, // signature
	}
	fdh, err := decodeFDH(data)
	require.NoError(t, err)
	assert.Equal(t, "12345678", fdh.Identification)
	assert.Equal(t, byte(0x07), fdh.Version)
	assert.Equal(t, MediumWater, fdh.Medium)
	assert.Equal(t, byte(0x2A), fdh.AccessNumber)
	assert.Equal(t, StatusNoError, fdh.Status)
	assert.Equal(t, "ab cd", fdh.Signature)
}

func TestDecodeFDHTruncated(t *testing.T) {
	_, err := decodeFDH(make([]byte, 11))
	require.Error(t, err)
}

func TestDecodeManufacturer(t *testing.T) {
	// ELS: E=0x05, L=0x0C, S=0x13 -> code = (5<<10)|(12<<5)|19
	code := uint16(5<<10) | uint16(12<<5) | uint16(19)
	assert.Equal(t, "ELS", decodeManufacturer(code))
}
