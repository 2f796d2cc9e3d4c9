package mbus

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Result is the decoded response to a single GetAllFields/scan call: the
// Fixed Data Header followed by the variable data block's records (§4).
type Result struct {
	Header  FixedDataHeader
	Records []DataRecord
}

// Master is an M-Bus TCP master: it owns one TCP connection to a gateway
// and issues REQ_UD2 requests one at a time (§3, §5). A Master is not safe
// for concurrent use; callers needing concurrent polling should use one
// Master per goroutine.
type Master struct {
	cfg   MasterConfig
	tr    *transport
	state ConnectionState
	bus   BusState
}

// New constructs a Master from cfg, validating and defaulting it first. If
// cfg.AutoConnect resolves to true (the default), New also connects before
// returning, surfacing any connect failure to the caller.
func New(cfg MasterConfig) (*Master, error) {
	if err := cfg.Valid(); err != nil {
		return nil, err
	}
	m := &Master{cfg: cfg, tr: newTransport(&cfg), state: Disconnected, bus: Idle}
	if *cfg.AutoConnect {
		if err := m.Connect(context.Background()); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// String renders a short identifying label, following the repr convention
// of the original BaseMbusMaster.
func (m *Master) String() string {
	name := m.cfg.Name
	if name == "" {
		name = fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	}
	return fmt.Sprintf("Master(%s, %s)", name, m.state)
}

// Connect establishes the TCP connection, retrying per MasterConfig.
func (m *Master) Connect(ctx context.Context) error {
	if m.state == Connected {
		return ErrAlreadyConnected
	}
	m.state = Connecting
	m.cfg.Logger.Info("mbus: connecting", "master", m.String())
	if err := m.tr.connect(ctx); err != nil {
		m.state = Disconnected
		return err
	}
	m.state = Connected
	return nil
}

// Disconnect closes the TCP connection. Calling Disconnect while already
// disconnected is a no-op.
func (m *Master) Disconnect() error {
	if m.state != Connected {
		return nil
	}
	m.state = Disconnecting
	err := m.tr.close()
	m.state = Disconnected
	return err
}

// IsConnected reports the live socket state.
func (m *Master) IsConnected() bool {
	return m.state == Connected && m.tr.isConnected()
}

// GetAllFields issues REQ_UD2 to slaveAddress and decodes the resulting
// RSP_UD into a Result (§4, §6).
func (m *Master) GetAllFields(ctx context.Context, slaveAddress byte, opts CallOptions) (*Result, error) {
	if m.state != Connected {
		return nil, &StateError{State: m.state, Op: "GetAllFields"}
	}
	m.bus = Sending
	defer func() { m.bus = Idle }()

	if err := m.tr.send(ctx, buildShort(controlREQ_UD2, slaveAddress)); err != nil {
		return nil, err
	}

	m.bus = Receiving
	frame, err := m.tr.recvLongFrame(ctx)
	if err != nil {
		return nil, err
	}
	env, err := parseLongFrame(frame)
	if err != nil {
		return nil, err
	}
	if !isRspUD(env.Control) {
		return nil, &ProtocolError{Reason: fmt.Sprintf("unexpected control field 0x%02X", env.Control)}
	}
	switch env.CI {
	case ciVDS1, ciVDS2:
		// Variable Data Structure: fall through to FDH/record decoding below.
	case ciApplicationError:
		return nil, &UnimplementedError{Feature: "RSP_UD application error response (CI 0x70)"}
	default:
		return nil, &ProtocolError{Reason: fmt.Sprintf("unsupported CI field 0x%02X", env.CI)}
	}

	if len(env.Payload) < 12 {
		return nil, &FrameError{Reason: "payload shorter than fixed data header"}
	}
	header, err := decodeFDH(env.Payload)
	if err != nil {
		return nil, err
	}
	result := &Result{Header: header}
	if opts.HeaderOnly {
		return result, nil
	}

	records, err := parseRecords(env.Payload[12:], opts)
	result.Records = records
	if err != nil {
		return result, err
	}
	return result, nil
}

// ScanSlavesPrimary probes every primary address (0..250) with a short
// timeout, collecting the addresses that answer (§6). The scan timeout is
// applied per attempt through a context deadline; the Master's configured
// timeout is never changed, so nothing needs restoring on any exit path.
func (m *Master) ScanSlavesPrimary(ctx context.Context, opts CallOptions) (map[byte]*Result, error) {
	if m.state != Connected {
		return nil, &StateError{State: m.state, Op: "ScanSlavesPrimary"}
	}
	opts.applyScanDefaults()

	found := make(map[byte]*Result)
	scanCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	for addr := byte(0); int(addr) <= DefaultScanStopAt; addr++ {
		attemptCtx, attemptCancel := context.WithTimeout(scanCtx, opts.ScanTimeout)
		res, err := m.GetAllFields(attemptCtx, addr, opts)
		attemptCancel()
		if err != nil {
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				// no reply within ScanTimeout: no slave at this address
				m.cfg.Logger.Debug("mbus: scan: no slave", "address", addr)
				continue
			}
			return found, err
		}
		m.cfg.Logger.Info("mbus: scan found slave", "address", addr, "manufacturer", res.Header.Manufacturer)
		found[addr] = res
		if len(found) >= opts.StopAt {
			break
		}
	}
	return found, nil
}
