// pkg/panel/airspeed.go
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

const airspeedBaud = 38400

// The banner the airspeed indicator prints after reset, ';'-terminated.
const airspeedBanner = "Name<Airspeed-Indicator>"

// AirspeedPanel is the link to the airspeed indicator: a gauge that only
// consumes state (no switches, so no commands and no SYN handshake). The
// device identifies itself with a banner after reset; a different banner
// means the configured port has some other device on it.
type AirspeedPanel struct {
	port   string
	tr     Transport
	states *router.Subscription[sim.AircraftState]
	lg     *log.Logger

	lastSent sim.AircraftState
	haveSent bool
}

func NewAirspeed(port string, rt *router.Router[sim.AircraftState, sim.Command], lg *log.Logger) *AirspeedPanel {
	return &AirspeedPanel{
		port:   port,
		states: rt.States.Subscribe(),
		lg:     lg.With(slog.String("panel", "airspeed"), slog.String("port", port)),
	}
}

// Run connects to the indicator and feeds it airspeed updates until a
// fatal error. Like all panel links, it does not retry on its own.
func (p *AirspeedPanel) Run() error {
	defer p.states.Unsubscribe()

	if p.tr == nil {
		p.lg.Debug("attempting to connect to panel")
		tr, err := OpenSerial(p.port, airspeedBaud)
		if err != nil {
			return &OpenError{Port: p.port, Err: err}
		}
		p.tr = tr
	}
	defer p.tr.Close()

	if err := p.tr.Reset(); err != nil {
		return err
	}

	// Verify that we are connected to the correct device.
	if err := p.identify(); err != nil {
		return err
	}

	for {
		if err := p.tick(); err != nil {
			return err
		}
		// No inbound traffic to pace the loop, so pace it here.
		time.Sleep(readTimeout)
	}
}

func (p *AirspeedPanel) identify() error {
	for {
		banner, err := p.tr.ReadUntil(';')
		if errors.Is(err, ErrNoLine) {
			continue
		} else if err != nil {
			return err
		}

		if banner != airspeedBanner {
			return ErrWrongDevice
		}
		p.lg.Info("Connection with airspeed indicator panel established")
		return nil
	}
}

func (p *AirspeedPanel) tick() error {
	if st, ok := p.states.GetOne(); ok {
		if !p.haveSent || p.lastSent != st {
			if err := p.tr.WriteLine(EncodeAirspeed(st)); err != nil {
				return err
			}
		}
		p.lastSent, p.haveSent = st, true
	}
	return nil
}
