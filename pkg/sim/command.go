// pkg/sim/command.go
// Copyright(c) 2024-2026 fssk-panels contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

// Command is a discrete event originating from panel hardware (or,
// symmetrically, injected on its behalf) that gets forwarded to the
// simulator. The set is closed; each command maps through the static
// table below to the simulator's native event name and payload.
type Command int

const (
	TaxiLightsOn Command = iota
	TaxiLightsOff
	LandingLightsOn
	LandingLightsOff
	NavLightsOn
	NavLightsOff
	StrobeLightsOn
	StrobeLightsOff
	FlapsUp
	FlapsDown
	ParkingBrakeOn
	ParkingBrakeOff
	LandingGearUp
	LandingGearDown
	NumCommands
)

type hostEvent struct {
	name string
	data uint32
}

// The parking brake events share one sim event, distinguished by payload.
var hostEvents = [NumCommands]hostEvent{
	TaxiLightsOn:     {name: "TAXI_LIGHTS_ON"},
	TaxiLightsOff:    {name: "TAXI_LIGHTS_OFF"},
	LandingLightsOn:  {name: "LANDING_LIGHTS_ON"},
	LandingLightsOff: {name: "LANDING_LIGHTS_OFF"},
	NavLightsOn:      {name: "NAV_LIGHTS_ON"},
	NavLightsOff:     {name: "NAV_LIGHTS_OFF"},
	StrobeLightsOn:   {name: "STROBES_ON"},
	StrobeLightsOff:  {name: "STROBES_OFF"},
	FlapsUp:          {name: "FLAPS_DECR"},
	FlapsDown:        {name: "FLAPS_INCR"},
	ParkingBrakeOn:   {name: "PARKING_BRAKE_SET", data: 1},
	ParkingBrakeOff:  {name: "PARKING_BRAKE_SET", data: 0},
	LandingGearUp:    {name: "GEAR_UP"},
	LandingGearDown:  {name: "GEAR_DOWN"},
}

// HostEvent returns the simulator's native event name for the command.
func (c Command) HostEvent() string {
	return hostEvents[c].name
}

// Data returns the payload transmitted alongside the event.
func (c Command) Data() uint32 {
	return hostEvents[c].data
}

func (c Command) String() string {
	switch c {
	case TaxiLightsOn:
		return "TaxiLightsOn"
	case TaxiLightsOff:
		return "TaxiLightsOff"
	case LandingLightsOn:
		return "LandingLightsOn"
	case LandingLightsOff:
		return "LandingLightsOff"
	case NavLightsOn:
		return "NavLightsOn"
	case NavLightsOff:
		return "NavLightsOff"
	case StrobeLightsOn:
		return "StrobeLightsOn"
	case StrobeLightsOff:
		return "StrobeLightsOff"
	case FlapsUp:
		return "FlapsUp"
	case FlapsDown:
		return "FlapsDown"
	case ParkingBrakeOn:
		return "ParkingBrakeOn"
	case ParkingBrakeOff:
		return "ParkingBrakeOff"
	case LandingGearUp:
		return "LandingGearUp"
	case LandingGearDown:
		return "LandingGearDown"
	default:
		return "UnknownCommand"
	}
}
