//go:build !tinygo && !cgo

package hal

import "errors"

// RunWindow needs the ebiten backend, which needs cgo. Headless mode still
// works on these builds.
func RunWindow(_ func(h HAL) func() error) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
