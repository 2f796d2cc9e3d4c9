package mbus

import (
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMasterConfigValidAppliesDefaults(t *testing.T) {
	cfg := MasterConfig{Host: "10.0.0.1", Port: 10001}
	require.NoError(t, cfg.Valid())
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultMaxRetries, cfg.MaxRetries)
	require.NotNil(t, cfg.AutoConnect)
	assert.True(t, *cfg.AutoConnect)
	assert.NotNil(t, cfg.Logger)
	assert.NotNil(t, cfg.Clock)
}

func TestMasterConfigValidRejectsMissingHost(t *testing.T) {
	cfg := MasterConfig{Port: 10001}
	require.Error(t, cfg.Valid())
}

func TestMasterConfigValidRejectsBadPort(t *testing.T) {
	cfg := MasterConfig{Host: "10.0.0.1", Port: 70000}
	require.Error(t, cfg.Valid())
}

func TestMasterConfigValidRejectsNegativeTimeout(t *testing.T) {
	cfg := MasterConfig{Host: "10.0.0.1", Port: 502, Timeout: -1}
	require.Error(t, cfg.Valid())
}

func TestMasterConfigValidKeepsExplicitClock(t *testing.T) {
	fake := clockwork.NewFakeClock()
	cfg := MasterConfig{Host: "10.0.0.1", Port: 502, Clock: fake}
	require.NoError(t, cfg.Valid())
	assert.Equal(t, fake, cfg.Clock)
}

func TestCallOptionsScaleResultsDefault(t *testing.T) {
	var o CallOptions
	assert.True(t, o.scaleResults())
	o.ScaleResults = BoolPtr(false)
	assert.False(t, o.scaleResults())
}

func TestCallOptionsApplyScanDefaults(t *testing.T) {
	var o CallOptions
	o.applyScanDefaults()
	assert.Equal(t, DefaultScanTimeout, o.ScanTimeout)
	assert.Equal(t, DefaultScanStopAt, o.StopAt)
}
