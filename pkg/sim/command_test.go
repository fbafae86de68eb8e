// pkg/sim/command_test.go
// Copyright(c) 2024-2026 fssk-panels contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import "testing"

func TestCommandTable(t *testing.T) {
	// Every command must map to a host event; a hole in the table would
	// mean transmitting an empty event name to the simulator.
	for c := Command(0); c < NumCommands; c++ {
		if c.HostEvent() == "" {
			t.Errorf("%s: no host event name", c)
		}
		if c.String() == "UnknownCommand" {
			t.Errorf("command %d: missing String case", int(c))
		}
	}
}

func TestCommandPayloads(t *testing.T) {
	// The parking brake commands share one host event and differ only in
	// payload; everything else sends zero.
	if ParkingBrakeOn.HostEvent() != ParkingBrakeOff.HostEvent() {
		t.Errorf("parking brake on/off map to different events: %q vs %q",
			ParkingBrakeOn.HostEvent(), ParkingBrakeOff.HostEvent())
	}
	if ParkingBrakeOn.Data() != 1 {
		t.Errorf("ParkingBrakeOn payload: got %d, expected 1", ParkingBrakeOn.Data())
	}
	if ParkingBrakeOff.Data() != 0 {
		t.Errorf("ParkingBrakeOff payload: got %d, expected 0", ParkingBrakeOff.Data())
	}

	for c := Command(0); c < NumCommands; c++ {
		if c != ParkingBrakeOn && c.Data() != 0 {
			t.Errorf("%s: unexpected payload %d", c, c.Data())
		}
	}
}

func TestGearStatusFromPosition(t *testing.T) {
	for _, tc := range []struct {
		pos  float64
		want LandingGearStatus
	}{
		{0, GearUp},
		{1, GearDown},
		{0.5, GearUnknown},
		{0.01, GearUnknown},
	} {
		if got := GearStatusFromPosition(tc.pos); got != tc.want {
			t.Errorf("position %v: got %v, expected %v", tc.pos, got, tc.want)
		}
	}
}
