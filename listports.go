// listports.go
// Copyright(c) 2024-2026 fssk-panels contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	"io"

	"go.bug.st/serial/enumerator"
)

// printSerialPorts lists the serial ports present on the system along
// with enough USB detail to tell two Arduinos apart.
func printSerialPorts(w io.Writer) error {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return err
	}

	switch len(ports) {
	case 0:
		fmt.Fprintln(w, "No ports found.")
	case 1:
		fmt.Fprintln(w, "Found 1 port:")
	default:
		fmt.Fprintf(w, "Found %d ports:\n", len(ports))
	}

	for _, p := range ports {
		fmt.Fprintln(w, p.Name)
		if p.IsUSB {
			fmt.Fprintln(w, "    Type: USB")
			fmt.Fprintf(w, "    VID:%s PID:%s\n", p.VID, p.PID)
			fmt.Fprintf(w, "    Serial Number: %s\n", p.SerialNumber)
			fmt.Fprintf(w, "    Product: %s\n", p.Product)
		}
	}
	return nil
}
