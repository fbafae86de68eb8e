// pkg/sim/simconnect_windows.go
// Copyright(c) 2024-2026 fssk-panels contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

//go:build windows

package sim

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/grumpypixel/msfs2020-simconnect-go/simconnect"
)

// simConnectHost implements Host on top of the SimConnect SDK.
type simConnectHost struct {
	dllPath string
}

// NewSimConnectHost returns the SimConnect-backed host. dllPath is an
// optional additional search path for SimConnect.dll.
func NewSimConnectHost(dllPath string) Host {
	return &simConnectHost{dllPath: dllPath}
}

var (
	scInitOnce sync.Once
	scInitErr  error
)

func (h *simConnectHost) Connect(appName string) (Connection, error) {
	// The DLL is located and loaded once per process.
	scInitOnce.Do(func() { scInitErr = simconnect.Initialize(h.dllPath) })
	if scInitErr != nil {
		return nil, scInitErr
	}

	sc := simconnect.NewSimConnect()
	if err := sc.Open(appName); err != nil {
		return nil, err
	}

	return &simConnection{
		sc:        sc,
		defineID:  simconnect.NewDefineID(),
		requestID: simconnect.NewRequestID(),
	}, nil
}

type simConnection struct {
	sc                  *simconnect.SimConnect
	defineID, requestID simconnect.DWord
	groupID             simconnect.DWord
	eventIDs            [NumCommands]simconnect.DWord
}

// aircraftVars lists the simulation variables subscribed for
// AircraftState, in the order their float64 values appear in a
// SIMOBJECT_DATA dispatch.
var aircraftVars = []struct {
	name, unit string
}{
	{"GEAR CENTER POSITION", "percent over 100"},
	{"GEAR LEFT POSITION", "percent over 100"},
	{"GEAR RIGHT POSITION", "percent over 100"},
	{"AIRSPEED INDICATED", "knots"},
	{"BRAKE PARKING INDICATOR", "bool"},
}

func (c *simConnection) RegisterAircraftData() error {
	for _, v := range aircraftVars {
		if err := c.sc.AddToDataDefinition(c.defineID, v.name, v.unit, simconnect.DataTypeFloat64); err != nil {
			return err
		}
	}

	// Sim-frame period with the changed flag: the simulator only sends a
	// dispatch when one of the values actually changed.
	return c.sc.RequestDataOnSimObject(c.requestID, c.defineID, simconnect.ObjectIDUser,
		simconnect.PeriodSimFrame, simconnect.DataRequestFlagChanged)
}

func (c *simConnection) MapCommandEvent(cmd Command) error {
	id := simconnect.NewEventID()
	if err := c.sc.MapClientEventToSimEvent(id, cmd.HostEvent()); err != nil {
		return err
	}
	c.eventIDs[cmd] = id
	return nil
}

func (c *simConnection) TransmitCommand(cmd Command) error {
	return c.sc.TransmitClientEvent(uint32(simconnect.ObjectIDUser), uint32(c.eventIDs[cmd]),
		simconnect.DWord(cmd.Data()), c.groupID, simconnect.EventFlagGroupIDIsPriority)
}

func (c *simConnection) PollNotification() (Notification, error) {
	ppData, r1, err := c.sc.GetNextDispatch()
	if r1 < 0 {
		if uint32(r1) != simconnect.EFail {
			return nil, fmt.Errorf("GetNextDispatch: %d: %v", r1, err)
		}
		// E_FAIL here just means no dispatch is pending.
		return nil, nil
	}
	if ppData == nil {
		return nil, nil
	}

	recv := *(*simconnect.Recv)(ppData)
	switch recv.ID {
	case simconnect.RecvIDOpen:
		return OpenNotification{}, nil

	case simconnect.RecvIDQuit:
		return QuitNotification{}, nil

	case simconnect.RecvIDException:
		e := *(*simconnect.RecvException)(ppData)
		return UnknownNotification{Kind: fmt.Sprintf("exception %d", e.Exception)}, nil

	case simconnect.RecvIDSimobjectData:
		data := *(*simconnect.RecvSimObjectData)(ppData)
		if data.DefineID != c.defineID {
			return nil, nil
		}

		// The payload is the float64 values in definition order,
		// immediately following the dispatch header.
		base := uintptr(ppData) + unsafe.Sizeof(data)
		at := func(i int) float64 {
			return *(*float64)(unsafe.Pointer(base + uintptr(i)*8))
		}
		return DataNotification{State: AircraftState{
			GearCenter:   GearStatusFromPosition(at(0)),
			GearLeft:     GearStatusFromPosition(at(1)),
			GearRight:    GearStatusFromPosition(at(2)),
			Airspeed:     at(3),
			ParkingBrake: at(4) != 0,
		}}, nil

	default:
		return UnknownNotification{Kind: fmt.Sprintf("dispatch %d", recv.ID)}, nil
	}
}

func (c *simConnection) Close() error {
	return c.sc.Close()
}
