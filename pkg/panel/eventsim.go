// pkg/panel/eventsim.go
// Copyright(c) 2024-2026 fssk-panels contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package panel

import (
	"errors"
	"log/slog"
	"time"

	"github.com/fssk/panels/pkg/log"
	"github.com/fssk/panels/pkg/router"
	"github.com/fssk/panels/pkg/sim"
)

// The baud rate of the EventSim panel's Arduino.
const eventSimBaud = 115200

// If nothing has been written for this long, the link probes the device
// with a PING so a silently dead transport gets noticed.
const defaultKeepalive = 500 * time.Millisecond

// EventSimPanel is the link to the EventSim main panel: the switch/LED
// unit carrying the light switches, flaps and gear levers, the parking
// brake, and the gear LEDs.
//
// The link is a one-way street through these states: open the port,
// handshake, then run connected until something fatal happens. A lost or
// misbehaving device terminates the link; whoever supervises it decides
// whether to start a new one.
type EventSimPanel struct {
	port      string
	tr        Transport
	states    *router.Subscription[sim.AircraftState]
	commands  *router.Stream[sim.Command]
	keepalive time.Duration
	lg        *log.Logger

	// The last state written to the device; states equal to it are not
	// retransmitted.
	lastSent sim.AircraftState
	haveSent bool

	lastWrite time.Time
}

func NewEventSim(port string, rt *router.Router[sim.AircraftState, sim.Command], lg *log.Logger) *EventSimPanel {
	return &EventSimPanel{
		port:      port,
		states:    rt.States.Subscribe(),
		commands:  rt.Commands,
		keepalive: defaultKeepalive,
		lg:        lg.With(slog.String("panel", "eventsim"), slog.String("port", port)),
	}
}

// Run connects to the panel and runs the link until a fatal error. It
// does not retry; the returned error describes why the link died.
func (p *EventSimPanel) Run() error {
	// Once this link is gone there is no consumer for its states.
	defer p.states.Unsubscribe()

	if p.tr == nil {
		p.lg.Debug("attempting to connect to panel")
		tr, err := OpenSerial(p.port, eventSimBaud)
		if err != nil {
			return &OpenError{Port: p.port, Err: err}
		}
		p.tr = tr
	}
	defer p.tr.Close()

	if err := p.tr.Reset(); err != nil {
		return err
	}

	if err := p.handshake(); err != nil {
		return err
	}

	for {
		if err := p.tick(); err != nil {
			return err
		}
	}
}

// handshake initiates SYN / SYN|ACK / ACK with the device. Anything else
// the device says while we wait is ignored; it isn't in a state to issue
// commands yet. Only RST is meaningful, and fatal.
func (p *EventSimPanel) handshake() error {
	if err := p.write(lineSyn); err != nil {
		return err
	}

	for {
		line, err := p.tr.ReadLine()
		if errors.Is(err, ErrNoLine) {
			continue
		} else if err != nil {
			return err
		}

		switch line {
		case lineSynAck:
			if err := p.write(lineAck); err != nil {
				return err
			}
			p.lg.Info("Connection with EventSim panel established")
			return nil
		case lineRst:
			return ErrDisconnected
		}
	}
}

// tick runs one iteration of the connected loop: decode at most one
// inbound line, push at most one state diff, keepalive. Each duty is
// non-blocking beyond the transport read timeout, so none can starve the
// others.
func (p *EventSimPanel) tick() error {
	// Inbound: commands and protocol control from the hardware.
	line, err := p.tr.ReadLine()
	if err == nil {
		switch line {
		case lineRst:
			return ErrDisconnected
		case linePing:
			if err := p.write(linePong); err != nil {
				return err
			}
		case linePong:
			// Reply to our own probe.
		default:
			if cmd, ok := DecodeCommand(line); ok {
				p.lg.Debug("received command", slog.String("command", cmd.String()))
				p.commands.Post(cmd)
			} else {
				p.lg.Debugf("ignoring unrecognized line %q", line)
			}
		}
	} else if !errors.Is(err, ErrNoLine) {
		return err
	}

	// Outbound: push the next state if it differs from the last one sent.
	// FIXME: this always retransmits the full state on any change.
	if st, ok := p.states.GetOne(); ok {
		if !p.haveSent || p.lastSent != st {
			for _, line := range EncodeState(st) {
				if err := p.write(line); err != nil {
					return err
				}
			}
		}
		p.lastSent, p.haveSent = st, true
	}

	// Keepalive.
	if time.Since(p.lastWrite) > p.keepalive {
		if err := p.write(linePing); err != nil {
			return err
		}
	}

	return nil
}

// write sends one line and remembers when, for keepalive accounting.
func (p *EventSimPanel) write(line string) error {
	if err := p.tr.WriteLine(line); err != nil {
		return err
	}
	p.lastWrite = time.Now()
	return nil
}
