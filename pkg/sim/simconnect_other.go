// pkg/sim/simconnect_other.go
// Copyright(c) 2024-2026 fssk-panels contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

//go:build !windows

package sim

import "errors"

// NewSimConnectHost returns a host whose connection attempts always fail:
// SimConnect only exists on Windows. The connector's retry loop logs the
// failure and keeps the panels usable for bench testing.
func NewSimConnectHost(dllPath string) Host {
	return unsupportedHost{}
}

type unsupportedHost struct{}

func (unsupportedHost) Connect(appName string) (Connection, error) {
	return nil, errors.New("SimConnect is only available on Windows")
}
