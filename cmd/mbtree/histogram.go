// Copyright 2018 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Inserts into an in-memory tree take nanoseconds, so the recorded range
// starts there.
const (
	minLatency = time.Nanosecond
	maxLatency = time.Second
)

func newHistogram() *hdrhistogram.Histogram {
	return hdrhistogram.New(minLatency.Nanoseconds(), maxLatency.Nanoseconds(), 2)
}

// namedHistogram records the latencies of one worker. Values outside
// [minLatency, maxLatency] are clamped.
type namedHistogram struct {
	name string
	mu   struct {
		sync.Mutex
		current *hdrhistogram.Histogram
	}
}

func (w *namedHistogram) Record(elapsed time.Duration) {
	elapsed = min(max(elapsed, minLatency), maxLatency)
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.mu.current.RecordValue(elapsed.Nanoseconds()); err != nil {
		panic(fmt.Sprintf("%s: recording %s: %s", w.name, elapsed, err))
	}
}

// swap replaces the current histogram with an empty one and returns it.
func (w *namedHistogram) swap() *hdrhistogram.Histogram {
	w.mu.Lock()
	defer w.mu.Unlock()
	h := w.mu.current
	w.mu.current = newHistogram()
	return h
}

type histogramTick struct {
	// Name is the name the merged histograms were registered under.
	Name string
	// Hist holds the values recorded since the previous tick.
	Hist *hdrhistogram.Histogram
	// Cumulative holds every value recorded so far.
	Cumulative *hdrhistogram.Histogram
	// Elapsed is the time since the previous tick.
	Elapsed time.Duration
}

// tickState is the per-name state carried between ticks.
type tickState struct {
	cumulative *hdrhistogram.Histogram
	last       time.Time
}

// histogramRegistry merges the histograms of concurrent workers by name.
type histogramRegistry struct {
	mu struct {
		sync.Mutex
		registered []*namedHistogram
	}

	start time.Time
	state map[string]*tickState
}

func newHistogramRegistry() *histogramRegistry {
	return &histogramRegistry{
		start: time.Now(),
		state: make(map[string]*tickState),
	}
}

// Register returns a new histogram. Histograms registered under the same name
// are merged on every tick.
func (w *histogramRegistry) Register(name string) *namedHistogram {
	hist := &namedHistogram{name: name}
	hist.mu.current = newHistogram()

	w.mu.Lock()
	defer w.mu.Unlock()
	w.mu.registered = append(w.mu.registered, hist)
	return hist
}

// Tick resets every registered histogram and calls fn once per name, in name
// order, with the values recorded since the previous tick.
func (w *histogramRegistry) Tick(fn func(histogramTick)) {
	w.mu.Lock()
	registered := slices.Clone(w.mu.registered)
	w.mu.Unlock()

	merged := make(map[string]*hdrhistogram.Histogram)
	for _, hist := range registered {
		h := hist.swap()
		if m, ok := merged[hist.name]; ok {
			m.Merge(h)
		} else {
			merged[hist.name] = h
		}
	}

	now := time.Now()
	for _, name := range slices.Sorted(maps.Keys(merged)) {
		st, ok := w.state[name]
		if !ok {
			st = &tickState{cumulative: newHistogram(), last: w.start}
			w.state[name] = st
		}
		st.cumulative.Merge(merged[name])
		fn(histogramTick{
			Name:       name,
			Hist:       merged[name],
			Cumulative: st.cumulative,
			Elapsed:    now.Sub(st.last),
		})
		st.last = now
	}
}

// micros converts a histogram value in nanoseconds to microseconds.
func micros(v int64) float64 {
	return time.Duration(v).Seconds() * 1e6
}
