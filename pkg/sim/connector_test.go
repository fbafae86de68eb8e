// pkg/sim/connector_test.go
// Copyright(c) 2024-2026 fssk-panels contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/fssk/panels/pkg/router"
)

// fakeConn scripts a sequence of notifications; when the script runs out
// it reports Quit so the event loop returns.
type fakeConn struct {
	script      []Notification
	registered  bool
	mapped      []Command
	transmitted []Command
	closed      bool
}

func (c *fakeConn) RegisterAircraftData() error {
	c.registered = true
	return nil
}

func (c *fakeConn) MapCommandEvent(cmd Command) error {
	c.mapped = append(c.mapped, cmd)
	return nil
}

func (c *fakeConn) TransmitCommand(cmd Command) error {
	c.transmitted = append(c.transmitted, cmd)
	return nil
}

func (c *fakeConn) PollNotification() (Notification, error) {
	if len(c.script) == 0 {
		return QuitNotification{}, nil
	}
	n := c.script[0]
	c.script = c.script[1:]
	return n, nil
}

func (c *fakeConn) Close() error {
	c.closed = true
	return nil
}

type fakeHost struct {
	connects atomic.Int32
	conn     func() *fakeConn
}

func (h *fakeHost) Connect(appName string) (Connection, error) {
	h.connects.Add(1)
	return h.conn(), nil
}

func makeConnector(host Host) (*Connector, *router.Router[AircraftState, Command]) {
	rt := router.New[AircraftState, Command](nil)
	c := NewConnector(host, rt, nil)
	c.PollInterval = 0
	c.RetryInterval = time.Millisecond
	return c, rt
}

func TestConnectorRegistersOnOpen(t *testing.T) {
	conn := &fakeConn{script: []Notification{OpenNotification{}}}
	c, _ := makeConnector(nil)

	if err := c.runEventLoop(conn); err != nil {
		t.Fatalf("runEventLoop: %v", err)
	}

	if !conn.registered {
		t.Errorf("aircraft data was not registered after Open")
	}
	if len(conn.mapped) != int(NumCommands) {
		t.Errorf("mapped %d command events, expected %d", len(conn.mapped), NumCommands)
	}
	if !c.connected {
		t.Errorf("connector not marked connected after registration")
	}
}

// Commands posted before the event mappings exist must not be
// transmitted until after Open completes registration.
func TestConnectorGatesCommands(t *testing.T) {
	conn := &fakeConn{script: []Notification{UnknownNotification{Kind: "x"}, OpenNotification{}}}
	c, rt := makeConnector(nil)

	rt.Commands.Post(LandingGearDown)

	if err := c.runEventLoop(conn); err != nil {
		t.Fatalf("runEventLoop: %v", err)
	}

	if len(conn.transmitted) != 1 || conn.transmitted[0] != LandingGearDown {
		t.Errorf("transmitted %v, expected [LandingGearDown]", conn.transmitted)
	}
}

func TestConnectorFanOut(t *testing.T) {
	a := AircraftState{ParkingBrake: true, GearCenter: GearDown, GearLeft: GearDown, GearRight: GearDown}
	b := AircraftState{GearCenter: GearUp, GearLeft: GearUp, GearRight: GearUp, Airspeed: 120}

	conn := &fakeConn{script: []Notification{
		OpenNotification{},
		DataNotification{State: a},
		DataNotification{State: b},
	}}
	c, rt := makeConnector(nil)

	subA := rt.States.Subscribe()
	subB := rt.States.Subscribe()

	// Panel A going away must not keep panel B from receiving.
	subA.Unsubscribe()

	if err := c.runEventLoop(conn); err != nil {
		t.Fatalf("runEventLoop: %v", err)
	}

	got := subB.Get()
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("subscriber got %v, expected [%v %v]", got, a, b)
	}
}

// After the simulator quits, the connector must come back and try again
// rather than giving up.
func TestConnectorReconnects(t *testing.T) {
	host := &fakeHost{conn: func() *fakeConn {
		return &fakeConn{script: []Notification{OpenNotification{}}}
	}}
	c, _ := makeConnector(host)

	go c.Run()

	deadline := time.Now().Add(5 * time.Second)
	for host.connects.Load() < 2 {
		if time.Now().After(deadline) {
			t.Fatalf("connector did not reconnect; %d connection attempts", host.connects.Load())
		}
		time.Sleep(time.Millisecond)
	}
}
