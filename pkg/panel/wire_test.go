// pkg/panel/wire_test.go
// Copyright(c) 2024-2026 fssk-panels contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package panel

import (
	"testing"

	"github.com/fssk/panels/pkg/sim"
)

func TestDecodeCommand(t *testing.T) {
	for _, tc := range []struct {
		line string
		want sim.Command
	}{
		{"MISC1:0", sim.TaxiLightsOff},
		{"MISC1:1", sim.TaxiLightsOn},
		{"MISC2:0", sim.LandingLightsOff},
		{"MISC2:1", sim.LandingLightsOn},
		{"MISC3:0", sim.NavLightsOff},
		{"MISC3:1", sim.NavLightsOn},
		{"MISC4:0", sim.StrobeLightsOff},
		{"MISC4:1", sim.StrobeLightsOn},
		{"FLAPS_UP", sim.FlapsUp},
		{"FLAPS_DN", sim.FlapsDown},
		{"PARKING_BRAKE:0", sim.ParkingBrakeOff},
		{"PARKING_BRAKE:1", sim.ParkingBrakeOn},
		{"LANDING_GEAR:0", sim.LandingGearUp},
		{"LANDING_GEAR:1", sim.LandingGearDown},
	} {
		got, ok := DecodeCommand(tc.line)
		if !ok {
			t.Errorf("%q: not decoded", tc.line)
		} else if got != tc.want {
			t.Errorf("%q: got %s, expected %s", tc.line, got, tc.want)
		}
	}

	// Unrecognized tokens produce no command and no error; newer firmware
	// may send lines we don't know yet.
	for _, line := range []string{"", "MISC5:1", "PARKING_BRAKE:2", "garbage"} {
		if cmd, ok := DecodeCommand(line); ok {
			t.Errorf("%q: unexpectedly decoded to %s", line, cmd)
		}
	}
}

func TestEncodeState(t *testing.T) {
	st := sim.AircraftState{
		ParkingBrake: true,
		GearCenter:   sim.GearDown,
		GearLeft:     sim.GearUp,
		GearRight:    sim.GearUnknown,
	}

	want := []string{
		"PARKING_BRAKE:1",
		"FRONT_GEAR_LED:1",
		"LEFT_GEAR_LED:0",
		"RIGHT_GEAR_LED:2",
	}

	got := EncodeState(st)
	if len(got) != len(want) {
		t.Fatalf("got %d lines, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: got %q, expected %q", i, got[i], want[i])
		}
	}
}

// Encoding a state and feeding the parking brake line back through the
// command decoder must yield the matching command.
func TestParkingBrakeRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		brake bool
		want  sim.Command
	}{
		{true, sim.ParkingBrakeOn},
		{false, sim.ParkingBrakeOff},
	} {
		lines := EncodeState(sim.AircraftState{ParkingBrake: tc.brake})
		cmd, ok := DecodeCommand(lines[0])
		if !ok {
			t.Fatalf("%q: not decoded", lines[0])
		}
		if cmd != tc.want {
			t.Errorf("brake %v: got %s, expected %s", tc.brake, cmd, tc.want)
		}
	}
}

func TestEncodeAirspeed(t *testing.T) {
	st := sim.AircraftState{Airspeed: 142.7}
	want := "Type<I-A>::Target<Airspeed-Indicator>::Content<142>::Origin<Interface>;"
	if got := EncodeAirspeed(st); got != want {
		t.Errorf("got %q, expected %q", got, want)
	}
}
