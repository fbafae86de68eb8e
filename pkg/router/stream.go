// pkg/router/stream.go
// Copyright(c) 2024-2026 fssk-panels contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package router

import (
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/fssk/panels/pkg/log"
)

// Stream provides an ordered pub/sub interface that allows one part of
// the system to post values and others to subscribe and receive them. Each
// subscriber observes the posted values in post order, independently of
// how quickly other subscribers consume theirs; a subscriber that goes
// away unsubscribes itself rather than blocking or breaking the rest.
type Stream[T any] struct {
	mu            sync.Mutex
	values        []T
	lastCompact   time.Time
	subscriptions map[*Subscription[T]]interface{}
	lg            *log.Logger
}

type Subscription[T any] struct {
	stream *Stream[T]
	// offset is the offset in the Stream values array up to which the
	// subscriber has consumed values so far.
	offset int
	source string
}

func (s *Subscription[T]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("offset", s.offset),
		slog.String("source", s.source))
}

func NewStream[T any](lg *log.Logger) *Stream[T] {
	return &Stream[T]{
		subscriptions: make(map[*Subscription[T]]interface{}),
		lg:            lg,
	}
}

// Subscribe registers a new subscriber to the stream and returns a
// Subscription through which the subscriber consumes posted values.
func (s *Stream[T]) Subscribe() *Subscription[T] {
	// Record the subscriber's callsite, so that we can more easily debug
	// subscribers that aren't consuming values.
	_, fn, line, _ := runtime.Caller(1)
	source := fmt.Sprintf("%s:%d", fn, line)

	s.mu.Lock()
	defer s.mu.Unlock()

	sub := &Subscription[T]{
		stream: s,
		offset: len(s.values),
		source: source,
	}
	s.subscriptions[sub] = nil
	return sub
}

// NumSubscribers reports how many subscribers are currently registered;
// zero means that posted values have no one left to go to.
func (s *Stream[T]) NumSubscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subscriptions)
}

// Unsubscribe removes a subscriber from the subscriber list. It is the
// explicit "this consumer is gone" signal: the stream stops retaining
// values for it and the remaining subscribers are unaffected.
func (s *Subscription[T]) Unsubscribe() {
	s.stream.mu.Lock()
	defer s.stream.mu.Unlock()

	if _, ok := s.stream.subscriptions[s]; !ok {
		s.stream.lg.Errorf("Attempted to unsubscribe invalid subscription: %+v", s)
	}
	delete(s.stream.subscriptions, s)
	s.stream = nil
}

// Active reports whether the subscription is still registered with its
// stream.
func (s *Subscription[T]) Active() bool {
	return s.stream != nil
}

// Post adds a value to the stream for all current subscribers.
func (s *Stream[T]) Post(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Ignore the value if no one's paying attention.
	if len(s.subscriptions) > 0 {
		if len(s.values) > 65536 {
			s.lg.Warnf("Stream length %d; subscriber out to lunch?", len(s.values))
		}
		s.values = append(s.values, v)
	}
}

// Get returns all of the values from the stream since the last time Get or
// GetOne was called on the subscription. It never blocks; an empty slice
// means nothing is pending. Values posted before Subscribe are never
// reported.
func (s *Subscription[T]) Get() []T {
	s.stream.mu.Lock()
	defer s.stream.mu.Unlock()

	if _, ok := s.stream.subscriptions[s]; !ok {
		s.stream.lg.Errorf("Attempted to get with unregistered subscription: %+v", s)
		return nil
	}

	values := slices.Clone(s.stream.values[s.offset:])
	s.offset = len(s.stream.values)

	s.stream.maybeCompact()

	return values
}

// GetOne returns the next pending value, if any. It is the non-blocking
// single-value receive used inside the link hot loops so that one slow
// duty never starves the others.
func (s *Subscription[T]) GetOne() (T, bool) {
	s.stream.mu.Lock()
	defer s.stream.mu.Unlock()

	var zero T
	if _, ok := s.stream.subscriptions[s]; !ok {
		s.stream.lg.Errorf("Attempted to get with unregistered subscription: %+v", s)
		return zero, false
	}

	if s.offset == len(s.stream.values) {
		return zero, false
	}

	v := s.stream.values[s.offset]
	s.offset++

	s.stream.maybeCompact()

	return v, true
}

func (s *Stream[T]) maybeCompact() {
	if time.Since(s.lastCompact) > 1*time.Second {
		s.compact()
		s.lastCompact = time.Now()
	}
}

// compact reclaims storage for values that all subscribers have seen; it
// is called periodically so that Stream memory usage doesn't grow without
// bound.
func (s *Stream[T]) compact() {
	minOffset := len(s.values)
	for sub := range s.subscriptions {
		if sub.offset < minOffset {
			minOffset = sub.offset
		}
	}

	if minOffset > cap(s.values)/2 {
		n := len(s.values) - minOffset

		copy(s.values, s.values[minOffset:])
		s.values = s.values[:n]

		for sub := range s.subscriptions {
			sub.offset -= minOffset
		}
	}
}
