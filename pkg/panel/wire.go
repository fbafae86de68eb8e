// pkg/panel/wire.go
// Copyright(c) 2024-2026 fssk-panels contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package panel

import (
	"fmt"

	"github.com/fssk/panels/pkg/sim"
)

// Control lines shared by both directions of the wire protocol.
const (
	lineSyn    = "SYN"
	lineSynAck = "SYN|ACK"
	lineAck    = "ACK"
	lineRst    = "RST"
	linePing   = "PING"
	linePong   = "PONG"
)

// DecodeCommand maps one inbound wire token to its command. Unrecognized
// tokens return ok == false and are ignored by the caller; newer firmware
// may legitimately send lines an older bridge doesn't know.
func DecodeCommand(line string) (sim.Command, bool) {
	switch line {
	case "MISC1:0":
		return sim.TaxiLightsOff, true
	case "MISC1:1":
		return sim.TaxiLightsOn, true
	case "MISC2:0":
		return sim.LandingLightsOff, true
	case "MISC2:1":
		return sim.LandingLightsOn, true
	case "MISC3:0":
		return sim.NavLightsOff, true
	case "MISC3:1":
		return sim.NavLightsOn, true
	case "MISC4:0":
		return sim.StrobeLightsOff, true
	case "MISC4:1":
		return sim.StrobeLightsOn, true
	case "FLAPS_UP":
		return sim.FlapsUp, true
	case "FLAPS_DN":
		return sim.FlapsDown, true
	case "PARKING_BRAKE:0":
		return sim.ParkingBrakeOff, true
	case "PARKING_BRAKE:1":
		return sim.ParkingBrakeOn, true
	case "LANDING_GEAR:0":
		return sim.LandingGearUp, true
	case "LANDING_GEAR:1":
		return sim.LandingGearDown, true
	default:
		return 0, false
	}
}

// EncodeState serializes the full panel-relevant state as wire lines. The
// whole state goes out whenever any field changed; see the design notes
// for the bandwidth trade-off.
func EncodeState(st sim.AircraftState) []string {
	brake := 0
	if st.ParkingBrake {
		brake = 1
	}
	return []string{
		fmt.Sprintf("PARKING_BRAKE:%d", brake),
		fmt.Sprintf("FRONT_GEAR_LED:%d", st.GearCenter.Int()),
		fmt.Sprintf("LEFT_GEAR_LED:%d", st.GearLeft.Int()),
		fmt.Sprintf("RIGHT_GEAR_LED:%d", st.GearRight.Int()),
	}
}

// EncodeAirspeed serializes the airspeed-indicator line, integer knots.
func EncodeAirspeed(st sim.AircraftState) string {
	return fmt.Sprintf("Type<I-A>::Target<Airspeed-Indicator>::Content<%d>::Origin<Interface>;",
		int(st.Airspeed))
}
