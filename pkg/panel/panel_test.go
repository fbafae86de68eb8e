// pkg/panel/panel_test.go
// Copyright(c) 2024-2026 fssk-panels contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package panel

// fakeTransport scripts inbound traffic and records writes; once the
// script is exhausted, reads time out the way a quiet serial port does.
type fakeTransport struct {
	inbound []string
	written []string
	resets  int
	closed  bool
}

func (t *fakeTransport) next() (string, error) {
	if len(t.inbound) == 0 {
		return "", ErrNoLine
	}
	s := t.inbound[0]
	t.inbound = t.inbound[1:]
	return s, nil
}

func (t *fakeTransport) ReadLine() (string, error)            { return t.next() }
func (t *fakeTransport) ReadUntil(delim byte) (string, error) { return t.next() }

func (t *fakeTransport) WriteLine(line string) error {
	t.written = append(t.written, line)
	return nil
}

func (t *fakeTransport) Reset() error {
	t.resets++
	return nil
}

func (t *fakeTransport) Close() error {
	t.closed = true
	return nil
}
