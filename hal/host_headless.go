//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the windowless host runner.
type HeadlessConfig struct {
	// Enabled selects headless mode over the ebiten window.
	Enabled bool
	// Hz is the frame rate driving the tick clock; 0 means 60.
	Hz int
	// Ticks stops the run after that many frames; 0 runs forever.
	Ticks uint64
}

// RunHeadless boots the OS without a window, pumping the tick clock from a
// wall-clock ticker. Useful for CI and for exercising the system over a
// plain terminal.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	interval := time.Second / time.Duration(cfg.Hz)
	if interval <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := New().(*hostHAL)
	step := newApp(h)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var frames uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			h.t.step(1)
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			frames++
			if cfg.Ticks > 0 && frames >= cfg.Ticks {
				return nil
			}
		}
	}
}
