//go:build !cgo

package hal

import "github.com/pkg/errors"

func RunWindow(_ func(h HAL) func() error, _ WindowConfig) error {
	return errors.Wrap(ErrNotImplemented, "window mode requires cgo (build/run with CGO_ENABLED=1)")
}
