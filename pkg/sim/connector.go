// pkg/sim/connector.go
// Copyright(c) 2024-2026 fssk-panels contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"log/slog"
	"time"

	"github.com/fssk/panels/pkg/log"
	"github.com/fssk/panels/pkg/router"
)

// AppName is how the bridge identifies itself to the simulator.
const AppName = "FSSK Panels"

// Connector is the simulation side of the bridge. It owns the single
// connection to the simulator host, translates inbound telemetry into
// AircraftState values fanned out to every panel, and forwards panel
// commands to the simulator.
//
// Unlike the panel links, the connector never fails permanently: the
// simulator being unavailable is an everyday condition (the user hasn't
// started it, or just quit it), so every connection-level problem drops it
// back to disconnected and it retries after a fixed interval.
type Connector struct {
	host      Host
	states    *router.Stream[AircraftState]
	commands  *router.Subscription[Command]
	connected bool
	lg        *log.Logger

	// Both intervals exist as fields so tests can shrink them.
	RetryInterval time.Duration
	PollInterval  time.Duration
}

func NewConnector(host Host, rt *router.Router[AircraftState, Command], lg *log.Logger) *Connector {
	return &Connector{
		host:          host,
		states:        rt.States,
		commands:      rt.Commands.Subscribe(),
		lg:            lg,
		RetryInterval: 5 * time.Second,
		PollInterval:  10 * time.Millisecond,
	}
}

// Run connects to the simulator and processes traffic until the
// connection drops, then waits and reconnects. It never returns.
func (c *Connector) Run() {
	for {
		c.lg.Debug("attempting simulator connection")
		if conn, err := c.host.Connect(AppName); err != nil {
			c.lg.Warnf("Failed to connect to simulator: %v", err)
		} else {
			err := c.runEventLoop(conn)
			conn.Close()
			if err != nil {
				c.lg.Errorf("Simulator communication error: %v", err)
			} else {
				c.lg.Info("Disconnected from flight simulator")
			}
		}

		// We are now disconnected; wait before reconnecting.
		c.connected = false
		time.Sleep(c.RetryInterval)
	}
}

// runEventLoop services one established connection until the simulator
// quits (nil) or the connection errors out.
func (c *Connector) runEventLoop(conn Connection) error {
	for {
		// Forward one pending panel command, though only once the event
		// mappings exist; commands posted before that wait in the stream.
		if c.connected {
			if cmd, ok := c.commands.GetOne(); ok {
				c.lg.Debug("transmitting command", slog.String("command", cmd.String()))
				if err := conn.TransmitCommand(cmd); err != nil {
					return err
				}
			}
		}

		n, err := conn.PollNotification()
		if err != nil {
			return err
		}
		switch n := n.(type) {
		case OpenNotification:
			c.lg.Info("Connection with flight simulator established")
			// Register the telemetry subscription and the command event
			// mappings; only then may commands be transmitted.
			if err := conn.RegisterAircraftData(); err != nil {
				return err
			}
			for cmd := Command(0); cmd < NumCommands; cmd++ {
				if err := conn.MapCommandEvent(cmd); err != nil {
					return err
				}
			}
			c.connected = true

		case QuitNotification:
			return nil

		case DataNotification:
			c.lg.Debug("received aircraft state", slog.Any("state", n.State))
			// Each panel subscription sees its own copy, in order; a panel
			// that has unsubscribed simply no longer receives.
			c.states.Post(n.State)

		case UnknownNotification:
			c.lg.Debugf("ignoring simulator notification %q", n.Kind)

		case nil:
			// Nothing pending this tick.
		}

		// Sleep for about a frame to reduce CPU usage.
		time.Sleep(c.PollInterval)
	}
}
