// pkg/panel/errors.go
// Copyright(c) 2024-2026 fssk-panels contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package panel

import (
	"errors"
	"fmt"
)

var (
	// ErrDisconnected: the panel requested a reset (sent RST) or otherwise
	// tore down the protocol. Fatal for the link.
	ErrDisconnected = errors.New("panel disconnected")

	// ErrWrongDevice: the device on the port identified itself with an
	// unexpected banner. Fatal for the link.
	ErrWrongDevice = errors.New("connected device is not the expected panel")
)

// OpenError wraps a failure to acquire the serial port.
type OpenError struct {
	Port string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("Failed to connect with panel on serial port %q: %v", e.Port, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}
