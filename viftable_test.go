package mbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVifKey(t *testing.T) {
	width, pattern := parseVifKey("00000nnn")
	assert.Equal(t, 3, width)
	assert.Equal(t, byte(0x00), pattern)

	width, pattern = parseVifKey("01101110")
	assert.Equal(t, 0, width)
	assert.Equal(t, byte(0b1101110), pattern)
}

func TestPrimaryVifResolveEnergyWh(t *testing.T) {
	entry, err := primaryVif.resolve(0x03) // 00000011: Energy, 10^0 Wh
	require.NoError(t, err)
	assert.Equal(t, "Energy", entry.descr(0x03))
	assert.Equal(t, "Wh", entry.unit(0x03))
	assert.Equal(t, 1.0, entry.scale(0x03))
}

func TestVifResolveExactBeatsWildcard(t *testing.T) {
	// Units_for_HCA (01101110) is an exact primary entry; the neighbouring
	// wildcarded Time_point pattern (0110110n) does not cover it.
	entry, err := primaryVif.resolve(0x6E)
	require.NoError(t, err)
	assert.Equal(t, "Units_for_HCA", entry.descr(0x6E))

	// Startdate of tariff (00110000) is an exact secondary entry that the
	// wildcarded Duration of tariff pattern (001100nn) also covers; the
	// exact match at shift 0 wins.
	entry, err = secondaryVif.resolve(0x30)
	require.NoError(t, err)
	assert.Equal(t, "Startdate of tariff", entry.descr(0x30))
}

func TestPrimaryVifResolveTimePointDecoderOverride(t *testing.T) {
	dateEntry, err := primaryVif.resolve(0x6C) // 01101100: Time_point, date
	require.NoError(t, err)
	assert.Equal(t, decTypeG, dateEntry.decoder(0x6C))

	dtEntry, err := primaryVif.resolve(0x6D) // 01101101: Time_point, datetime
	require.NoError(t, err)
	assert.Equal(t, decTypeF, dtEntry.decoder(0x6D))
}

func TestVifResolveUnknown(t *testing.T) {
	_, err := primaryVif.resolve(0x7F & 0x7F) // handled as a special case upstream, but the raw table has no entry
	require.Error(t, err)
	var ue *UnknownVifError
	require.ErrorAs(t, err, &ue)
}

func TestSecondaryVifVoltageScale(t *testing.T) {
	entry, err := secondaryVif.resolve(0x49) // 0100nnnn, n=1001=9: 10^(9-9)=1 V
	require.NoError(t, err)
	assert.Equal(t, "V", entry.unit(0x49))
	assert.InDelta(t, 1.0, entry.scale(0x49), 1e-9)
}
