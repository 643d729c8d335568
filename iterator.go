// Copyright 2018 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package mbtree

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Iterator is a cursor over the keys of a tree in ascending order. It is
// positioned with First or Last and moved with Next and Prev; Valid reports
// whether it is positioned at a key.
//
// An Iterator is invalidated by any Insert into its tree. It is safe to copy
// an Iterator by value.
type Iterator[K any] struct {
	t   *Tree[K]
	n   nodeID
	pos int
}

// NewIter returns a new, unpositioned Iterator over the tree.
func (t *Tree[K]) NewIter() Iterator[K] {
	return Iterator[K]{t: t, pos: -1}
}

// First positions the iterator at the smallest key.
func (i *Iterator[K]) First() {
	i.n = i.t.root
	i.pos = 0
	if i.n == noNode {
		return
	}
	n := i.t.arena.get(i.n)
	for !n.leaf {
		i.n = n.children[0]
		n = i.t.arena.get(i.n)
	}
}

// Last positions the iterator at the largest key.
func (i *Iterator[K]) Last() {
	i.n = i.t.root
	i.pos = -1
	if i.n == noNode {
		return
	}
	n := i.t.arena.get(i.n)
	for !n.leaf {
		i.n = n.children[len(n.keys)]
		n = i.t.arena.get(i.n)
	}
	i.pos = len(n.keys) - 1
}

// Next moves the iterator to the next larger key. It is a no-op if the
// iterator is not valid.
func (i *Iterator[K]) Next() {
	if !i.Valid() {
		return
	}

	n := i.t.arena.get(i.n)
	if n.leaf {
		i.pos++
		if i.pos < len(n.keys) {
			return
		}
		for n.parent != noNode && i.pos >= len(n.keys) {
			i.pos = i.t.childPos(i.n)
			i.n = n.parent
			n = i.t.arena.get(i.n)
		}
		return
	}

	i.n = n.children[i.pos+1]
	n = i.t.arena.get(i.n)
	for !n.leaf {
		i.n = n.children[0]
		n = i.t.arena.get(i.n)
	}
	i.pos = 0
}

// Prev moves the iterator to the next smaller key. It is a no-op if the
// iterator is not valid.
func (i *Iterator[K]) Prev() {
	if !i.Valid() {
		return
	}

	n := i.t.arena.get(i.n)
	if n.leaf {
		i.pos--
		if i.pos >= 0 {
			return
		}
		for n.parent != noNode && i.pos < 0 {
			i.pos = i.t.childPos(i.n) - 1
			i.n = n.parent
			n = i.t.arena.get(i.n)
		}
		return
	}

	i.n = n.children[i.pos]
	n = i.t.arena.get(i.n)
	for !n.leaf {
		i.n = n.children[len(n.keys)]
		n = i.t.arena.get(i.n)
	}
	i.pos = len(n.keys) - 1
}

// Valid returns true if the iterator is positioned at a key.
func (i *Iterator[K]) Valid() bool {
	return i.n != noNode && i.pos >= 0 && i.pos < len(i.t.arena.get(i.n).keys)
}

// Cur returns the key at the iterator's position. It must only be called when
// Valid returns true.
func (i *Iterator[K]) Cur() K {
	return i.t.arena.get(i.n).keys[i.pos]
}

// childPos returns the index of the non-root node id within its parent's
// children.
func (t *Tree[K]) childPos(id nodeID) int {
	n := t.arena.get(id)
	return t.arena.get(n.parent).childIndexFor(t.cmp, n.keys[0])
}

// InOrderKeys returns the keys of the tree in ascending order. The sequence
// is computed lazily from the current structure of the tree, so it may be
// iterated any number of times. The tree must not be modified while the
// sequence is being iterated.
func (t *Tree[K]) InOrderKeys() iter.Seq[K] {
	return func(yield func(K) bool) {
		it := t.NewIter()
		for it.First(); it.Valid(); it.Next() {
			if !yield(it.Cur()) {
				return
			}
		}
	}
}

// Keys returns a new slice holding the keys of the tree in ascending order.
func (t *Tree[K]) Keys() []K {
	return slices.AppendSeq(make([]K, 0, t.length), t.InOrderKeys())
}

// List returns the keys of the tree in ascending order, separated by ", ".
func (t *Tree[K]) List() string {
	var buf strings.Builder
	for k := range t.InOrderKeys() {
		if buf.Len() > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprint(&buf, k)
	}
	return buf.String()
}
