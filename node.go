// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package mbtree

import (
	"slices"
	"sort"

	"github.com/cockroachdb/errors"
)

// node is a leaf or internal node of the tree. An internal node always has
// exactly one more child than it has keys.
type node[K any] struct {
	leaf   bool
	parent nodeID
	// keys are sorted in ascending order. A node may transiently hold one key
	// more than the tree allows while an insertion is splitting it.
	keys     []K
	children []nodeID
}

// find returns the index where the given key should be inserted into this
// node's keys. 'found' is true if the key already exists at that index.
func (n *node[K]) find(cmp Compare[K], key K) (index int, found bool) {
	i := sort.Search(len(n.keys), func(i int) bool {
		return cmp(key, n.keys[i]) < 0
	})
	if i > 0 && cmp(n.keys[i-1], key) == 0 {
		return i - 1, true
	}
	return i, false
}

func (n *node[K]) contains(cmp Compare[K], key K) bool {
	_, found := n.find(cmp, key)
	return found
}

// childIndexFor returns the index of the child whose subtree key belongs to:
// the number of keys in n strictly less than key.
func (n *node[K]) childIndexFor(cmp Compare[K], key K) int {
	i, _ := n.find(cmp, key)
	return i
}

// insertSorted inserts key at its sorted position and returns that position.
// The key must not already be present.
func (n *node[K]) insertSorted(cmp Compare[K], key K) int {
	i, found := n.find(cmp, key)
	if found {
		panic(errors.AssertionFailedf("mbtree: key %v already present at %d", key, i))
	}
	n.keys = slices.Insert(n.keys, i, key)
	return i
}

// splitPoint returns the index of the key promoted when n is split. Keys
// before it stay in n; keys after it move to the new right sibling. When the
// remaining keys cannot be shared evenly, n keeps the extra one.
func (n *node[K]) splitPoint() int {
	return len(n.keys) / 2
}
