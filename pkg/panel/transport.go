// pkg/panel/transport.go
// Copyright(c) 2024-2026 fssk-panels contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package panel

import (
	"bytes"
	"errors"
	"strings"
	"time"

	"go.bug.st/serial"
)

// ErrNoLine reports that no complete line arrived within the transport's
// read timeout. It is not a failure; it means "nothing this tick" and the
// link loop just moves on to its other duties.
var ErrNoLine = errors.New("no line available")

// Transport is the byte-stream side of a panel link: line-oriented reads
// bounded by a short timeout, line writes, and a device reset. A link owns
// its transport exclusively for its whole life.
type Transport interface {
	// ReadLine returns the next newline-terminated line, without the
	// terminator, or ErrNoLine if none is available within the read
	// timeout.
	ReadLine() (string, error)

	// ReadUntil is ReadLine for a different delimiter; some devices
	// terminate their identification banner with ';'.
	ReadUntil(delim byte) (string, error)

	WriteLine(line string) error

	// Reset forces the device through a reboot and discards any stale
	// buffered bytes, so the handshake starts from a clean slate.
	Reset() error

	Close() error
}

// The short read timeout bounds every loop iteration; the loops never
// block indefinitely on the device.
const readTimeout = 10 * time.Millisecond

// How long an Arduino takes to come back after a DTR-triggered reset.
const resetDelay = 2 * time.Second

// SerialTransport implements Transport over a real serial port.
type SerialTransport struct {
	port    serial.Port
	pending []byte
	buf     []byte
}

func OpenSerial(path string, baud int) (*SerialTransport, error) {
	port, err := serial.Open(path, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, err
	}
	if err := port.SetReadTimeout(readTimeout); err != nil {
		port.Close()
		return nil, err
	}
	return &SerialTransport{port: port, buf: make([]byte, 256)}, nil
}

func (t *SerialTransport) ReadUntil(delim byte) (string, error) {
	for {
		if i := bytes.IndexByte(t.pending, delim); i >= 0 {
			s := string(t.pending[:i])
			t.pending = t.pending[i+1:]
			return s, nil
		}

		n, err := t.port.Read(t.buf)
		if err != nil {
			return "", err
		}
		if n == 0 {
			// Read timeout; whatever partial input we have stays pending.
			return "", ErrNoLine
		}
		t.pending = append(t.pending, t.buf[:n]...)
	}
}

func (t *SerialTransport) ReadLine() (string, error) {
	s, err := t.ReadUntil('\n')
	if err != nil {
		return s, err
	}
	return strings.TrimSuffix(s, "\r"), nil
}

func (t *SerialTransport) WriteLine(line string) error {
	_, err := t.port.Write([]byte(line + "\n"))
	return err
}

func (t *SerialTransport) Reset() error {
	// Asserting DTR resets the device; give it time to finish rebooting
	// before we start talking to it.
	if err := t.port.SetDTR(true); err != nil {
		return err
	}
	if err := t.port.ResetInputBuffer(); err != nil {
		return err
	}
	if err := t.port.ResetOutputBuffer(); err != nil {
		return err
	}
	time.Sleep(resetDelay)
	return nil
}

func (t *SerialTransport) Close() error {
	return t.port.Close()
}
