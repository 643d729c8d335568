// Copyright 2019 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package mbtree

import (
	"github.com/cockroachdb/crlib/crhumanize"
	"github.com/cockroachdb/redact"
)

// Metrics holds counters describing the work done by a tree and gauges
// describing its current shape.
type Metrics struct {
	// Inserts is the number of keys successfully inserted.
	Inserts uint64
	// Duplicates is the number of insertions rejected because the key was
	// already present.
	Duplicates uint64
	// LeafSplits and InternalSplits count node splits by the kind of the node
	// that overflowed.
	LeafSplits     uint64
	InternalSplits uint64
	// RootSplits is the number of splits that reached the root and added a
	// level to the tree. It is included in LeafSplits or InternalSplits.
	RootSplits uint64

	// Height is the current number of levels.
	Height int
	// Nodes is the current number of nodes.
	Nodes int
	// Keys is the current number of keys.
	Keys int
}

// Splits returns the total number of node splits.
func (m Metrics) Splits() uint64 {
	return m.LeafSplits + m.InternalSplits
}

// Metrics returns a snapshot of the tree's metrics.
func (t *Tree[K]) Metrics() Metrics {
	return Metrics{
		Inserts:        t.metrics.inserts,
		Duplicates:     t.metrics.duplicates,
		LeafSplits:     t.metrics.leafSplits,
		InternalSplits: t.metrics.internalSplits,
		RootSplits:     t.metrics.rootSplits,
		Height:         t.Height(),
		Nodes:          t.arena.len(),
		Keys:           t.length,
	}
}

func (m Metrics) String() string {
	return redact.StringWithoutMarkers(m)
}

// SafeFormat implements redact.SafeFormatter.
func (m Metrics) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("keys: %s  nodes: %s  height: %d\n",
		crhumanize.Count(uint64(m.Keys), crhumanize.Compact),
		crhumanize.Count(uint64(m.Nodes), crhumanize.Compact),
		redact.Safe(m.Height))
	w.Printf("inserts: %s  duplicates: %s\n",
		crhumanize.Count(m.Inserts, crhumanize.Compact),
		crhumanize.Count(m.Duplicates, crhumanize.Compact))
	w.Printf("splits: %s (leaf %s, internal %s, root %s)",
		crhumanize.Count(m.Splits(), crhumanize.Compact),
		crhumanize.Count(m.LeafSplits, crhumanize.Compact),
		crhumanize.Count(m.InternalSplits, crhumanize.Compact),
		crhumanize.Count(m.RootSplits, crhumanize.Compact))
}
