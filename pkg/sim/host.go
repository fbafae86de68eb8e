// pkg/sim/host.go
// Copyright(c) 2024-2026 fssk-panels contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

// Host abstracts the simulator's client API down to what the bridge
// needs: connect, subscribe, map events, transmit events, poll. The real
// implementation sits on top of SimConnect (Windows only); tests supply
// their own.
type Host interface {
	Connect(appName string) (Connection, error)
}

// Connection is a single established connection to the simulator. It is
// owned exclusively by the Connector; none of its methods are called
// concurrently.
type Connection interface {
	// RegisterAircraftData subscribes the aircraft telemetry that gets
	// decoded into AircraftState notifications.
	RegisterAircraftData() error

	// MapCommandEvent registers the mapping from a Command to the
	// simulator's native event, which must happen before the command can
	// be transmitted.
	MapCommandEvent(c Command) error

	// TransmitCommand sends a previously mapped command to the simulator.
	TransmitCommand(c Command) error

	// PollNotification returns the next pending notification, or nil if
	// nothing is pending right now. It may block for up to roughly one
	// simulator frame.
	PollNotification() (Notification, error)

	Close() error
}

// Notification is the closed set of things the simulator tells us.
type Notification interface {
	isNotification()
}

// OpenNotification: the simulator accepted our connection; data and event
// registration can proceed.
type OpenNotification struct{}

// QuitNotification: the simulator shut down. This is a peaceful
// disconnect, not an error.
type QuitNotification struct{}

// DataNotification carries one decoded telemetry snapshot.
type DataNotification struct {
	State AircraftState
}

// UnknownNotification covers dispatches the bridge doesn't care about;
// they are logged and ignored.
type UnknownNotification struct {
	Kind string
}

func (OpenNotification) isNotification()    {}
func (QuitNotification) isNotification()    {}
func (DataNotification) isNotification()    {}
func (UnknownNotification) isNotification() {}
