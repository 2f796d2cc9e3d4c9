package mbus

import (
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
)

// Default values applied by MasterConfig.Valid, mirroring the keyword
// argument defaults of the original MbusTcpMaster (timeout=20, maxretries=3,
// auto_connect=True).
const (
	DefaultTimeout       = 20 * time.Second
	DefaultMaxRetries    = 3
	DefaultConnectGap    = 500 * time.Millisecond
	DefaultScanTimeout   = 1 * time.Second
	DefaultScanStopAt    = 250
	DefaultRecvBufferLen = 4096
)

// MasterConfig configures a Master. It is immutable after the Master is
// constructed (§3): callers fill it in, call Valid (or let New call it), and
// never mutate it concurrently with use.
type MasterConfig struct {
	// Host and Port identify the TCP gateway. Both are required.
	Host string
	Port int

	// Name is an optional display name used by Master.String and log lines.
	Name string

	// Timeout bounds every connect/send/recv call. Defaults to
	// DefaultTimeout.
	Timeout time.Duration

	// MaxRetries bounds connect attempts. A failed send is not retried.
	// Defaults to DefaultMaxRetries.
	MaxRetries int

	// AutoConnect, when true, causes New to connect immediately. Defaults
	// to true.
	AutoConnect *bool

	// Logger receives structured log output. Defaults to slog.Default().
	Logger *slog.Logger

	// Clock is the time source for the send/recv deadlines applied when a
	// call's context carries none, and for the connect backoff's elapsed-time
	// check. The waits between connect attempts and the scan timeout run on
	// real time. Defaults to clockwork.NewRealClock(). Tests may substitute a
	// clockwork.FakeClock.
	Clock clockwork.Clock
}

// Valid applies defaults for unspecified fields and rejects an invalid
// configuration, following the Config.Valid convention used throughout this
// module's reference corpus (e.g. cs104.Config.Valid).
func (c *MasterConfig) Valid() error {
	if c.Host == "" {
		return &invalidConfigError{"host is required"}
	}
	if c.Port <= 0 || c.Port > 65535 {
		return &invalidConfigError{"port must be in 1..65535"}
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Timeout < 0 {
		return &invalidConfigError{"timeout must be >= 0"}
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.MaxRetries < 1 {
		return &invalidConfigError{"maxretries must be >= 1"}
	}
	if c.AutoConnect == nil {
		t := true
		c.AutoConnect = &t
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Clock == nil {
		c.Clock = clockwork.NewRealClock()
	}
	return nil
}

type invalidConfigError struct{ reason string }

func (e *invalidConfigError) Error() string { return "mbus: invalid config: " + e.reason }
func (e *invalidConfigError) Unwrap() error { return ErrInvalidConfig }

// CallOptions controls the behavior of a single GetAllFields/ScanSlavesPrimary
// call (§6).
type CallOptions struct {
	// ExtensiveMode, when true, populates the extra debugging fields of
	// DataRecord (unscaled value, scale, VIF byte, raw bytes, resolved
	// decoder). Function, Storage and Tariff are set in every mode.
	ExtensiveMode bool

	// ScaleResults, when true (the default), multiplies each decoded value
	// by its cumulative VIF scaling factor. A nil pointer defaults to true;
	// use BoolPtr(false) to request unscaled values.
	ScaleResults *bool

	// HeaderOnly short-circuits GetAllFields after decoding the Fixed Data
	// Header, skipping the data-record loop.
	HeaderOnly bool

	// ScanTimeout is the per-address timeout used by ScanSlavesPrimary.
	// Defaults to DefaultScanTimeout.
	ScanTimeout time.Duration

	// StopAt ends ScanSlavesPrimary early once this many slaves have been
	// discovered. Defaults to DefaultScanStopAt.
	StopAt int
}

// scaleResults resolves the effective scale-results flag, defaulting to true
// per §6.
func (o CallOptions) scaleResults() bool {
	if o.ScaleResults == nil {
		return true
	}
	return *o.ScaleResults
}

func (o *CallOptions) applyScanDefaults() {
	if o.ScanTimeout == 0 {
		o.ScanTimeout = DefaultScanTimeout
	}
	if o.StopAt == 0 {
		o.StopAt = DefaultScanStopAt
	}
}

// BoolPtr returns a pointer to b, a convenience for setting the optional
// *bool fields of MasterConfig/CallOptions from a literal.
func BoolPtr(b bool) *bool { return &b }
