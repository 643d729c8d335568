// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import "github.com/cockroachdb/redact"

// SplitInfo contains the info for a node split event.
type SplitInfo struct {
	// Leaf is true if the split node was a leaf.
	Leaf bool
	// Depth is the depth of the split node, with the root at depth 1.
	Depth int
	// LeftKeys and RightKeys are the key counts of the two halves after the
	// promoted key was removed.
	LeftKeys  int
	RightKeys int
	// Promoted is the key moved into the parent (or into a new root).
	Promoted interface{}
	// Root is true if the split node was the root, in which case the tree grew
	// by one level.
	Root bool
}

func (i SplitInfo) String() string {
	return redact.StringWithoutMarkers(i)
}

// SafeFormat implements redact.SafeFormatter.
func (i SplitInfo) SafeFormat(w redact.SafePrinter, _ rune) {
	kind := "internal"
	if i.Leaf {
		kind = "leaf"
	}
	w.Printf("split %s node at depth %d: %d | %v | %d",
		redact.SafeString(kind), redact.Safe(i.Depth), redact.Safe(i.LeftKeys), i.Promoted, redact.Safe(i.RightKeys))
	if i.Root {
		w.SafeString(" (root)")
	}
}

// HeightInfo contains the info for a tree height increase event.
type HeightInfo struct {
	// Height is the height of the tree after the root split.
	Height int
	// Root is the single key held by the new root.
	Root interface{}
}

func (i HeightInfo) String() string {
	return redact.StringWithoutMarkers(i)
}

// SafeFormat implements redact.SafeFormatter.
func (i HeightInfo) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("height increased to %d; new root [%v]", redact.Safe(i.Height), i.Root)
}

// DuplicateKeyInfo contains the info for a rejected insertion.
type DuplicateKeyInfo struct {
	Key interface{}
}

func (i DuplicateKeyInfo) String() string {
	return redact.StringWithoutMarkers(i)
}

// SafeFormat implements redact.SafeFormatter.
func (i DuplicateKeyInfo) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("%v already in tree", i.Key)
}

// EventListener contains a set of functions that will be invoked when various
// significant tree events occur. Note that the functions should not run for
// an excessive amount of time as they are invoked synchronously by the tree
// operation that triggered them.
type EventListener struct {
	// NodeSplit is invoked after an overfull node was split.
	NodeSplit func(SplitInfo)

	// HeightIncreased is invoked after a root split added a level to the
	// tree. It follows the NodeSplit event for the old root.
	HeightIncreased func(HeightInfo)

	// DuplicateKey is invoked when Insert is called with a key that is
	// already present. The tree is not modified.
	DuplicateKey func(DuplicateKeyInfo)
}

// EnsureDefaults ensures that nil callbacks are replaced with no-op
// functions.
func (l *EventListener) EnsureDefaults() {
	if l.NodeSplit == nil {
		l.NodeSplit = func(info SplitInfo) {}
	}
	if l.HeightIncreased == nil {
		l.HeightIncreased = func(info HeightInfo) {}
	}
	if l.DuplicateKey == nil {
		l.DuplicateKey = func(info DuplicateKeyInfo) {}
	}
}

// MakeLoggingEventListener creates an EventListener that logs all events to
// the specified logger.
func MakeLoggingEventListener(logger Logger) EventListener {
	if logger == nil {
		logger = DefaultLogger
	}

	return EventListener{
		NodeSplit: func(info SplitInfo) {
			logger.Infof("%s", info)
		},
		HeightIncreased: func(info HeightInfo) {
			logger.Infof("%s", info)
		},
		DuplicateKey: func(info DuplicateKeyInfo) {
			logger.Infof("%s", info)
		},
	}
}

// TeeEventListener wraps two EventListeners, forwarding all events to both.
func TeeEventListener(a, b EventListener) EventListener {
	a.EnsureDefaults()
	b.EnsureDefaults()
	return EventListener{
		NodeSplit: func(info SplitInfo) {
			a.NodeSplit(info)
			b.NodeSplit(info)
		},
		HeightIncreased: func(info HeightInfo) {
			a.HeightIncreased(info)
			b.HeightIncreased(info)
		},
		DuplicateKey: func(info DuplicateKeyInfo) {
			a.DuplicateKey(info)
			b.DuplicateKey(info)
		},
	}
}
