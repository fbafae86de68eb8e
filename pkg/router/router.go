// pkg/router/router.go
// Copyright(c) 2024-2026 fssk-panels contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package router joins the simulation link to its panels. States flow one
// way (simulator to every panel, fan-out), commands flow the other
// (panels to the simulator, fan-in); the two sides share no state beyond
// these streams, so a dead link on one side never blocks the other.
package router

import "github.com/fssk/panels/pkg/log"

// Router bundles the two streams of the bridge: S values fan out from the
// simulation link to each panel subscriber, C values fan in from all
// panels to the single simulation-link subscriber.
type Router[S, C any] struct {
	States   *Stream[S]
	Commands *Stream[C]
}

func New[S, C any](lg *log.Logger) *Router[S, C] {
	return &Router[S, C]{
		States:   NewStream[S](lg),
		Commands: NewStream[C](lg),
	}
}
