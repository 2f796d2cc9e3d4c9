// Command mbus-scan connects to an M-Bus TCP gateway and scans the primary
// address range, printing every slave it finds.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dvdberg/mbus"
	"github.com/lmittmann/tint"
	flag "github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	host := flag.String("host", "", "M-Bus TCP gateway host")
	port := flag.Int("port", 10001, "M-Bus TCP gateway port")
	timeout := flag.Duration("timeout", mbus.DefaultTimeout, "per-request timeout")
	scanTimeout := flag.Duration("scan-timeout", mbus.DefaultScanTimeout, "per-address scan timeout")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	if *host == "" {
		return fmt.Errorf("mbus-scan: -host is required")
	}

	log := newLogger(*verbose)

	m, err := mbus.New(mbus.MasterConfig{
		Host:    *host,
		Port:    *port,
		Timeout: *timeout,
		Logger:  log,
	})
	if err != nil {
		return err
	}
	defer m.Disconnect()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	found, err := m.ScanSlavesPrimary(ctx, mbus.CallOptions{ScanTimeout: *scanTimeout})
	if err != nil {
		return err
	}

	for addr, result := range found {
		fmt.Printf("address %d: %s %s (%d records)\n", addr, result.Header.Manufacturer, result.Header.Medium, len(result.Records))
	}
	log.Info("scan complete", "slaves_found", len(found))
	return nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339))
			}
			return a
		},
	}))
}
