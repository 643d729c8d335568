// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package mbtree

import "github.com/cockroachdb/mbtree/internal/invariants"

// nodeID is a handle to a node stored in an arena. Links between nodes, in
// both directions, are expressed as handles.
type nodeID uint32

// noNode is the nil handle. Slot 0 of the arena is reserved so that the zero
// value of a nodeID never refers to a live node.
const noNode nodeID = 0

// arena is a growable table of nodes. Nodes are never freed individually;
// reset drops all of them at once.
//
// Pointers returned by get are only valid until the next call to alloc, which
// may move the underlying storage.
type arena[K any] struct {
	nodes []node[K]
}

func (a *arena[K]) alloc(leaf bool) nodeID {
	if len(a.nodes) == 0 {
		a.nodes = append(a.nodes, node[K]{})
	}
	a.nodes = append(a.nodes, node[K]{leaf: leaf})
	return nodeID(len(a.nodes) - 1)
}

func (a *arena[K]) get(id nodeID) *node[K] {
	invariants.CheckBounds(int(id), len(a.nodes))
	return &a.nodes[id]
}

// len returns the number of allocated nodes.
func (a *arena[K]) len() int {
	if len(a.nodes) == 0 {
		return 0
	}
	return len(a.nodes) - 1
}

// reset drops all nodes while retaining the table's capacity.
func (a *arena[K]) reset() {
	clear(a.nodes)
	a.nodes = a.nodes[:0]
}
