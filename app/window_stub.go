//go:build !cgo

package app

import "github.com/lixenwraith/backdrop/config"

func RunWindow(_ config.Config) error {
	return ErrWindowUnavailable
}
