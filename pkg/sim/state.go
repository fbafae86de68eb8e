// pkg/sim/state.go
// Copyright(c) 2024-2026 fssk-panels contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import "log/slog"

type LandingGearStatus int

const (
	GearUnknown LandingGearStatus = iota
	GearUp
	GearDown
)

// GearStatusFromPosition maps the simulator's "percent over 100" gear
// position to a discrete status; anything in transit reads as unknown.
func GearStatusFromPosition(pos float64) LandingGearStatus {
	switch pos {
	case 0:
		return GearUp
	case 1:
		return GearDown
	default:
		return GearUnknown
	}
}

// Int returns the status encoded for the panel gear LEDs: 0 up, 1 down,
// 2 unknown.
func (s LandingGearStatus) Int() int {
	switch s {
	case GearUp:
		return 0
	case GearDown:
		return 1
	default:
		return 2
	}
}

func (s LandingGearStatus) String() string {
	switch s {
	case GearUp:
		return "up"
	case GearDown:
		return "down"
	default:
		return "unknown"
	}
}

// AircraftState is a snapshot of the simulator telemetry the panels care
// about. It is a plain value: constructed whole from one telemetry
// notification, compared with ==, never mutated. The panel links use that
// equality to decide whether anything needs to be retransmitted.
type AircraftState struct {
	ParkingBrake bool
	GearCenter   LandingGearStatus
	GearLeft     LandingGearStatus
	GearRight    LandingGearStatus
	Airspeed     float64 // knots
}

func (s AircraftState) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("parking_brake", s.ParkingBrake),
		slog.String("gear_center", s.GearCenter.String()),
		slog.String("gear_left", s.GearLeft.String()),
		slog.String("gear_right", s.GearRight.String()),
		slog.Float64("airspeed", s.Airspeed))
}
