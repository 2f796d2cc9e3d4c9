package mbus

import (
	"context"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// transport owns the TCP socket for a Master. Unlike the teacher's
// connection type, it serves exactly one request at a time (§5: a Master is
// not safe for concurrent use), so there is no listener-broadcast machinery
// here: a single blocking read is always for the call currently in flight.
type transport struct {
	cfg  *MasterConfig
	conn net.Conn
}

func newTransport(cfg *MasterConfig) *transport {
	return &transport{cfg: cfg}
}

// connect dials the configured host:port, making up to MaxRetries attempts
// separated by an exponential backoff (the Master's clock feeds only the
// backoff's elapsed-time check), mirroring the original's per-attempt
// warning log and final raised exception.
func (t *transport) connect(ctx context.Context) error {
	if t.conn != nil {
		return ErrAlreadyConnected
	}
	addr := net.JoinHostPort(t.cfg.Host, fmt.Sprintf("%d", t.cfg.Port))

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = DefaultConnectGap
	bo.Clock = clockAdapter{t.cfg.Clock}
	policy := backoff.WithMaxRetries(bo, uint64(t.cfg.MaxRetries-1))

	attempt := 0
	op := func() error {
		attempt++
		d := net.Dialer{Timeout: t.cfg.Timeout}
		conn, err := d.DialContext(ctx, "tcp", addr)
		if err != nil {
			t.cfg.Logger.Warn("mbus: connect attempt failed",
				"name", t.cfg.Name, "addr", addr, "attempt", attempt, "error", err)
			return err
		}
		t.conn = conn
		return nil
	}

	if err := backoff.Retry(op, backoff.WithContext(policy, ctx)); err != nil {
		return &TransportError{Op: "connect", Err: err}
	}
	return nil
}

// close shuts down the socket. Closing an already-closed transport is a
// no-op, matching the original's tolerant disconnect behavior.
func (t *transport) close() error {
	if t.conn == nil {
		return nil
	}
	err := t.conn.Close()
	t.conn = nil
	if err != nil {
		return &TransportError{Op: "close", Err: err}
	}
	return nil
}

// isConnected probes the live socket with a zero-byte write, the cheapest
// way to detect a peer-closed connection without consuming data (§4.6).
func (t *transport) isConnected() bool {
	if t.conn == nil {
		return false
	}
	if _, err := t.conn.Write(nil); err != nil {
		return false
	}
	return true
}

// send writes adu to the socket, applying the configured deadline.
func (t *transport) send(ctx context.Context, adu []byte) error {
	if t.conn == nil {
		return ErrNotConnected
	}
	deadline, _ := ctx.Deadline()
	if deadline.IsZero() {
		deadline = t.cfg.Clock.Now().Add(t.cfg.Timeout)
	}
	_ = t.conn.SetWriteDeadline(deadline)
	if _, err := t.conn.Write(adu); err != nil {
		return &TransportError{Op: "send", Err: err}
	}
	return nil
}

// recvAck reads the single-byte acknowledgement frame.
func (t *transport) recvAck(ctx context.Context) error {
	buf := make([]byte, 1)
	if err := t.readFull(ctx, buf); err != nil {
		return err
	}
	if !isAck(buf[0]) {
		return &ProtocolError{Reason: fmt.Sprintf("expected ack 0xE5, got 0x%02X", buf[0])}
	}
	return nil
}

// recvLongFrame reads one complete long frame: the fixed 4-byte header
// (START L L START), then the L-specified body plus its checksum and stop
// byte. Reading in two passes, rather than one opportunistic read, lets the
// transport satisfy the exact frame length even when the kernel delivers it
// across several TCP segments (§9: a robust rewrite must read until L is
// satisfied, not assume one read equals one frame).
func (t *transport) recvLongFrame(ctx context.Context) ([]byte, error) {
	header := make([]byte, 4)
	if err := t.readFull(ctx, header); err != nil {
		return nil, err
	}
	if header[0] != frameStartLong || header[3] != frameStartLong {
		return nil, &FrameError{Reason: "missing duplicated start byte"}
	}
	if header[1] != header[2] {
		return nil, &FrameError{Reason: "duplicated length fields disagree"}
	}
	length := int(header[1])
	rest := make([]byte, length+2) // body + checksum + stop
	if err := t.readFull(ctx, rest); err != nil {
		return nil, err
	}
	return append(header, rest...), nil
}

// readFull reads exactly len(buf) bytes, applying the configured deadline
// and translating io.EOF/io.ErrUnexpectedEOF into a TransportError.
func (t *transport) readFull(ctx context.Context, buf []byte) error {
	if t.conn == nil {
		return ErrNotConnected
	}
	deadline, _ := ctx.Deadline()
	if deadline.IsZero() {
		deadline = t.cfg.Clock.Now().Add(t.cfg.Timeout)
	}
	_ = t.conn.SetReadDeadline(deadline)
	if _, err := io.ReadFull(t.conn, buf); err != nil {
		return &TransportError{Op: "recv", Err: err}
	}
	return nil
}

// clockAdapter lets a clockwork.Clock (injectable for tests) stand in for
// backoff.Clock, which only needs Now.
type clockAdapter struct {
	clock interface{ Now() time.Time }
}

func (c clockAdapter) Now() time.Time { return c.clock.Now() }
