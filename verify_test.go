// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package mbtree

import (
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

// nodeWithKey returns the id of the node holding key.
func nodeWithKey(t *testing.T, tree *Tree[int], key int) nodeID {
	for id := nodeID(1); int(id) <= tree.arena.len(); id++ {
		if slices.Contains(tree.arena.get(id).keys, key) {
			return id
		}
	}
	t.Fatalf("key %d not found", key)
	return noNode
}

func TestCheckInvariants(t *testing.T) {
	// Each case corrupts the order-3 tree
	//
	//	[4]
	//	  [2]
	//	    [1]
	//	    [3]
	//	  [6 8]
	//	    [5]
	//	    [7]
	//	    [9 10]
	testCases := []struct {
		name    string
		corrupt func(t *testing.T, tree *Tree[int])
		err     string
	}{
		{
			name:    "none",
			corrupt: func(*testing.T, *Tree[int]) {},
		},
		{
			name: "unsorted",
			corrupt: func(t *testing.T, tree *Tree[int]) {
				n := tree.arena.get(nodeWithKey(t, tree, 6))
				n.keys[0], n.keys[1] = n.keys[1], n.keys[0]
			},
			err: "keys are not sorted @ 1: 8 >= 6",
		},
		{
			name: "overfull",
			corrupt: func(t *testing.T, tree *Tree[int]) {
				n := tree.arena.get(nodeWithKey(t, tree, 10))
				n.keys = append(n.keys, 11)
				tree.length++
			},
			err: "has 3 keys, must be in [1, 2]",
		},
		{
			name: "empty",
			corrupt: func(t *testing.T, tree *Tree[int]) {
				tree.arena.get(nodeWithKey(t, tree, 5)).keys = nil
				tree.length--
			},
			err: "has 0 keys, must be in [1, 2]",
		},
		{
			name: "ancestor-bound",
			corrupt: func(t *testing.T, tree *Tree[int]) {
				tree.arena.get(nodeWithKey(t, tree, 3)).keys[0] = 5
			},
			err: "key 5 >= ancestor key 4",
		},
		{
			name: "lower-bound",
			corrupt: func(t *testing.T, tree *Tree[int]) {
				tree.arena.get(nodeWithKey(t, tree, 7)).keys[0] = 6
			},
			err: "key 6 <= ancestor key 6",
		},
		{
			name: "parent",
			corrupt: func(t *testing.T, tree *Tree[int]) {
				tree.arena.get(nodeWithKey(t, tree, 1)).parent = nodeWithKey(t, tree, 6)
			},
			err: "linked from",
		},
		{
			name: "missing-children",
			corrupt: func(t *testing.T, tree *Tree[int]) {
				n := tree.arena.get(nodeWithKey(t, tree, 6))
				n.children = n.children[:2]
			},
			err: "has 2 keys and 2 children",
		},
		{
			name: "leaf-with-children",
			corrupt: func(t *testing.T, tree *Tree[int]) {
				tree.arena.get(nodeWithKey(t, tree, 2)).leaf = true
			},
			err: "has 2 children",
		},
		{
			name: "invalid-child",
			corrupt: func(t *testing.T, tree *Tree[int]) {
				tree.arena.get(nodeWithKey(t, tree, 2)).children[1] = 99
			},
			err: "invalid handle 99",
		},
		{
			name: "shared-child",
			corrupt: func(t *testing.T, tree *Tree[int]) {
				n := tree.arena.get(nodeWithKey(t, tree, 2))
				n.children[0] = n.children[1]
			},
			err: "reachable more than once",
		},
		{
			name: "unreachable",
			corrupt: func(t *testing.T, tree *Tree[int]) {
				id := tree.arena.alloc(true /* leaf */)
				tree.arena.get(id).keys = []int{100}
			},
			err: "8 of 9 nodes reachable from the root",
		},
		{
			name: "length",
			corrupt: func(t *testing.T, tree *Tree[int]) {
				tree.length++
			},
			err: "found 10 keys, expected 11",
		},
		{
			name: "leaf-depth",
			corrupt: func(t *testing.T, tree *Tree[int]) {
				// Replace the subtree [2] with the single leaf [1 2].
				id := tree.arena.alloc(true /* leaf */)
				leaf := tree.arena.get(id)
				leaf.keys = []int{1, 2}
				leaf.parent = tree.root
				tree.arena.get(tree.root).children[0] = id
			},
			err: "at depth 2, expected 3",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree, err := NewOrdered[int](3)
			require.NoError(t, err)
			for i := 1; i <= 10; i++ {
				tree.Insert(i)
			}
			tc.corrupt(t, tree)
			err = tree.CheckInvariants()
			if tc.err == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.True(t, errors.HasAssertionFailure(err))
			require.Contains(t, err.Error(), tc.err)
		})
	}
}

func TestCheckInvariantsEmpty(t *testing.T) {
	tree, err := NewOrdered[int](3)
	require.NoError(t, err)
	require.NoError(t, tree.CheckInvariants())
	tree.length = 1
	require.Error(t, tree.CheckInvariants())
}

func TestVerifyInvariantsPanics(t *testing.T) {
	tree, err := New[int](compareInts, &Options{Order: 3, Logger: NoopLogger{}, VerifyInvariants: true})
	require.NoError(t, err)
	for i := 1; i <= 10; i++ {
		tree.Insert(i)
	}
	// The next insert touches only the right half of the tree.
	tree.arena.get(nodeWithKey(t, tree, 1)).keys[0] = 100

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		require.True(t, errors.HasAssertionFailure(err))
		require.Contains(t, err.Error(), "key 100 >= ancestor key 2")
	}()
	tree.Insert(11)
	t.Fatal("expected Insert to panic")
}
