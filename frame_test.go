package mbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildShortREQ_UD2(t *testing.T) {
	got := buildShort(controlREQ_UD2, 1)
	assert.Equal(t, []byte{0x10, 0x5B, 0x01, 0x5C, 0x16}, got)
}

func TestBuildShortSND_NKE(t *testing.T) {
	got := buildShort(controlSND_NKE, 0x00)
	assert.Equal(t, []byte{0x10, 0x40, 0x00, 0x40, 0x16}, got)
}

func TestParseLongFrameRoundTrip(t *testing.T) {
	body := []byte{controlRSP_UD, 0x01, 0x72, 0xAA, 0xBB}
	var sum byte
	for _, b := range body {
		sum += b
	}
	l := byte(len(body))
	frame := append([]byte{frameStartLong, l, l, frameStartLong}, body...)
	frame = append(frame, sum, frameStop)

	env, err := parseLongFrame(frame)
	require.NoError(t, err)
	assert.Equal(t, byte(controlRSP_UD), env.Control)
	assert.Equal(t, byte(0x01), env.Address)
	assert.Equal(t, byte(0x72), env.CI)
	assert.Equal(t, []byte{0xAA, 0xBB}, env.Payload)
}

func TestParseLongFrameBadChecksum(t *testing.T) {
	body := []byte{controlRSP_UD, 0x01, 0x72}
	l := byte(len(body))
	frame := append([]byte{frameStartLong, l, l, frameStartLong}, body...)
	frame = append(frame, 0x00, frameStop) // wrong checksum

	_, err := parseLongFrame(frame)
	require.Error(t, err)
	var fe *FrameError
	assert.ErrorAs(t, err, &fe)
}

func TestParseLongFrameMismatchedLength(t *testing.T) {
	frame := []byte{frameStartLong, 0x03, 0x04, frameStartLong, 0, 0, 0, 0, frameStop}
	_, err := parseLongFrame(frame)
	require.Error(t, err)
}

func TestParseLongFrameMissingStop(t *testing.T) {
	body := []byte{controlRSP_UD, 0x01, 0x72}
	var sum byte
	for _, b := range body {
		sum += b
	}
	l := byte(len(body))
	frame := append([]byte{frameStartLong, l, l, frameStartLong}, body...)
	frame = append(frame, sum, 0x00) // not a stop byte

	_, err := parseLongFrame(frame)
	require.Error(t, err)
}

func TestIsAck(t *testing.T) {
	assert.True(t, isAck(0xE5))
	assert.False(t, isAck(0x00))
}

func TestIsRspUD(t *testing.T) {
	for _, c := range []byte{0x08, 0x18, 0x28, 0x38} {
		assert.True(t, isRspUD(c), "0x%02X should be accepted", c)
	}
	for _, c := range []byte{0x00, 0x40, 0x5B, 0x09} {
		assert.False(t, isRspUD(c), "0x%02X should be rejected", c)
	}
}
