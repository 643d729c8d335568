// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package mbtree

import (
	stdcmp "cmp"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/mbtree/internal/invariants"
)

// Tree is an in-memory B-tree of a fixed order.
//
// Tree stores distinct keys in an ordered structure, allowing point lookups,
// insertion and in-order iteration. It is not safe for concurrent use: any
// Insert must be serialized with all other operations, including iteration.
type Tree[K any] struct {
	cmp    Compare[K]
	opts   *Options
	arena  arena[K]
	root   nodeID
	length int

	metrics struct {
		inserts        uint64
		duplicates     uint64
		leafSplits     uint64
		internalSplits uint64
		rootSplits     uint64
	}
}

// New returns an empty tree ordered by cmp. A nil opts is equivalent to the
// zero Options. An error marked with ErrInvalidOrder is returned if the
// configured order is below MinOrder.
func New[K any](cmp Compare[K], opts *Options) (*Tree[K], error) {
	if cmp == nil {
		return nil, errors.New("mbtree: nil Compare")
	}
	opts = opts.Clone().EnsureDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Tree[K]{cmp: cmp, opts: opts}, nil
}

// NewOrdered returns an empty tree of the given order whose keys use their
// natural ordering.
func NewOrdered[K stdcmp.Ordered](order int) (*Tree[K], error) {
	if order < MinOrder {
		return nil, invalidOrderError(order)
	}
	return New[K](stdcmp.Compare[K], &Options{Order: order})
}

// Order returns the maximum number of children of a node.
func (t *Tree[K]) Order() int {
	return t.opts.Order
}

// MaxKeys returns the maximum number of keys held by a node.
func (t *Tree[K]) MaxKeys() int {
	return t.opts.Order - 1
}

// MinChildren returns the minimum number of children of a non-root internal
// node in a B-tree of this order.
func (t *Tree[K]) MinChildren() int {
	return (t.opts.Order + 1) / 2
}

// MinKeys returns the minimum number of keys of a non-root node in a B-tree
// of this order.
//
// Without deletion the bound is always met by splitting alone, so it is
// reported rather than enforced.
func (t *Tree[K]) MinKeys() int {
	return t.MinChildren() - 1
}

// IsEmpty returns true if the tree holds no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t.root == noNode
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	return t.length
}

// Height returns the number of levels of the tree, 0 if it is empty.
func (t *Tree[K]) Height() int {
	if t.root == noNode {
		return 0
	}
	h := 1
	n := t.arena.get(t.root)
	for !n.leaf {
		n = t.arena.get(n.children[0])
		h++
	}
	return h
}

// Reset removes all keys from the tree. The tree's options and metrics are
// retained.
func (t *Tree[K]) Reset() {
	t.arena.reset()
	t.root = noNode
	t.length = 0
}

// Exists returns true if key is in the tree.
func (t *Tree[K]) Exists(key K) bool {
	for id := t.root; id != noNode; {
		n := t.arena.get(id)
		i, found := n.find(t.cmp, key)
		if found {
			return true
		}
		if n.leaf {
			return false
		}
		id = n.children[i]
	}
	return false
}

// findInsertionNode descends from the root and returns the first node that
// either contains key or is a leaf. The tree must not be empty.
func (t *Tree[K]) findInsertionNode(key K) nodeID {
	id := t.root
	for {
		n := t.arena.get(id)
		i, found := n.find(t.cmp, key)
		if found || n.leaf {
			return id
		}
		id = n.children[i]
	}
}

// Insert adds key to the tree. It returns false, leaving the tree unchanged,
// if an equal key is already present.
func (t *Tree[K]) Insert(key K) bool {
	if t.root == noNode {
		t.root = t.arena.alloc(true /* leaf */)
		r := t.arena.get(t.root)
		r.keys = append(r.keys, key)
		t.length++
		t.metrics.inserts++
		t.maybeVerify()
		return true
	}

	id := t.findInsertionNode(key)
	n := t.arena.get(id)
	if n.contains(t.cmp, key) {
		t.metrics.duplicates++
		t.opts.EventListener.DuplicateKey(DuplicateKeyInfo{Key: key})
		return false
	}
	n.insertSorted(t.cmp, key)
	t.length++
	t.metrics.inserts++
	t.rebalance(id)
	t.maybeVerify()
	return true
}

// rebalance splits overfull nodes starting at id and moving up towards the
// root. Each split adds one key to the parent, which may in turn overflow.
func (t *Tree[K]) rebalance(id nodeID) {
	for len(t.arena.get(id).keys) > t.MaxKeys() {
		id = t.split(id)
	}
}

// split splits the overfull node id around its split point and returns the
// node that received the promoted key: the parent, or a new root.
func (t *Tree[K]) split(id nodeID) nodeID {
	leaf := t.arena.get(id).leaf
	rightID := t.arena.alloc(leaf)
	// Both pointers are fetched after alloc, which may move the arena.
	n, right := t.arena.get(id), t.arena.get(rightID)

	mid := n.splitPoint()
	promoted := n.keys[mid]
	right.keys = append(right.keys, n.keys[mid+1:]...)
	clear(n.keys[mid:])
	n.keys = n.keys[:mid]
	if !leaf {
		right.children = append(right.children, n.children[mid+1:]...)
		clear(n.children[mid+1:])
		n.children = n.children[:mid+1]
		for _, c := range right.children {
			t.arena.get(c).parent = rightID
		}
		t.metrics.internalSplits++
	} else {
		t.metrics.leafSplits++
	}

	parentID := n.parent
	info := SplitInfo{
		Leaf:      leaf,
		Depth:     t.depth(id),
		LeftKeys:  len(n.keys),
		RightKeys: len(right.keys),
		Promoted:  promoted,
		Root:      parentID == noNode,
	}
	t.opts.EventListener.NodeSplit(info)

	if parentID == noNode {
		return t.increaseHeight(id, rightID, promoted)
	}

	right.parent = parentID
	p := t.arena.get(parentID)
	pos := p.insertSorted(t.cmp, promoted)
	if invariants.Enabled && p.children[pos] != id {
		panic(errors.AssertionFailedf("mbtree: split node %d is not child %d of %d", id, pos, parentID))
	}
	p.children = slices.Insert(p.children, pos+1, rightID)
	return parentID
}

// increaseHeight installs a new root holding key, with left and right as its
// only children.
func (t *Tree[K]) increaseHeight(left, right nodeID, key K) nodeID {
	id := t.arena.alloc(false /* leaf */)
	root := t.arena.get(id)
	root.keys = append(root.keys, key)
	root.children = append(root.children, left, right)
	t.arena.get(left).parent = id
	t.arena.get(right).parent = id
	t.root = id
	t.metrics.rootSplits++
	t.opts.EventListener.HeightIncreased(HeightInfo{Height: t.Height(), Root: key})
	return id
}

// depth returns the depth of node id, with the root at depth 1.
func (t *Tree[K]) depth(id nodeID) int {
	d := 1
	for p := t.arena.get(id).parent; p != noNode; p = t.arena.get(p).parent {
		d++
	}
	return d
}

func (t *Tree[K]) maybeVerify() {
	if invariants.Enabled || t.opts.VerifyInvariants {
		if err := t.CheckInvariants(); err != nil {
			t.opts.Logger.Errorf("%v\n%s", err, t.Pretty())
			panic(err)
		}
	}
}
