package rng

import (
	"errors"
	"fmt"
	"time"

	"github.com/tarm/serial"
)

// SerialConfig describes the USB hardware RNG port.
type SerialConfig struct {
	Device      string
	Baud        int
	ReadTimeout time.Duration
}

// OpenSerial opens the hardware RNG and performs an initial health check.
// The returned Source is safe for concurrent use.
func OpenSerial(cfg SerialConfig) (Source, *Health, error) {
	if cfg.Device == "" {
		return nil, nil, errors.New("serial device name is required")
	}
	if cfg.Baud <= 0 {
		return nil, nil, fmt.Errorf("invalid serial baud rate: %d", cfg.Baud)
	}

	p, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		Size:        8,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("open serial port %q: %w", cfg.Device, err)
	}

	h := NewHealth()
	src := NewReaderSource(NewLockedReader(p), h)
	if err := Check(src, h); err != nil {
		_ = p.Close()
		return nil, h, err
	}

	return src, h, nil
}

// Check runs HealthCheck and records the outcome in h.
func Check(src Source, h *Health) error {
	if err := HealthCheck(src, h); err != nil {
		h.Set(false, err.Error())
		return err
	}
	h.Set(true, "")
	return nil
}
