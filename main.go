// main.go
// Copyright(c) 2024-2026 fssk-panels contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

// This file contains the implementation of the main() function, which
// initializes the system and then supervises the link goroutines until
// they exit.

import (
	"flag"
	"fmt"
	"os"

	"github.com/fssk/panels/pkg/log"
	"github.com/fssk/panels/pkg/panel"
	"github.com/fssk/panels/pkg/router"
	"github.com/fssk/panels/pkg/sim"
)

var (
	configFile    = flag.String("config", "panels.yaml", "YAML file mapping panels to serial ports")
	logLevel      = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir        = flag.String("logdir", "", "log file directory")
	listPorts     = flag.Bool("listports", false, "list available serial ports and exit")
	simConnectDLL = flag.String("simconnectdll", "", "additional search path for SimConnect.dll")
)

func main() {
	flag.Parse()

	if *listPorts {
		if err := printSerialPorts(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	// Initialize the logging system first and foremost.
	lg := log.New(*logLevel, *logDir)

	config, err := LoadConfig(*configFile)
	if err != nil {
		lg.Errorf("%s: %v", *configFile, err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", *configFile, err)
		os.Exit(1)
	}

	// A positional port argument overrides the configured EventSim port.
	if port := flag.Arg(0); port != "" {
		config.SetPanelPort("eventsim", port)
	}

	if len(config.Panels) == 0 {
		// Nothing to bridge; list the ports to help the user write a
		// config, and leave.
		if err := printSerialPorts(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	rt := router.New[sim.AircraftState, sim.Command](lg)

	// The simulation link runs forever, absorbing simulator restarts with
	// its own reconnect loop.
	connector := sim.NewConnector(sim.NewSimConnectHost(*simConnectDLL), rt, lg)
	go connector.Run()

	// One goroutine per panel link. A terminal failure takes down just
	// that panel; the rest of the bridge keeps going.
	type result struct {
		name string
		err  error
	}
	results := make(chan result)

	running := 0
	for name, pc := range config.Panels {
		var link interface{ Run() error }
		switch name {
		case "eventsim":
			link = panel.NewEventSim(pc.Port, rt, lg)
		case "airspeed":
			link = panel.NewAirspeed(pc.Port, rt, lg)
		default:
			lg.Warnf("%s: unknown panel type in config; skipping", name)
			continue
		}

		running++
		name := name
		go func() { results <- result{name, link.Run()} }()
	}

	// The process is useful as long as at least one panel link is alive;
	// exit once the last one is gone.
	status := 0
	for ; running > 0; running-- {
		r := <-results
		if r.err != nil {
			lg.Errorf("%s panel link failed: %v", r.name, r.err)
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.name, r.err)
			status = 1
		}
	}
	os.Exit(status)
}
