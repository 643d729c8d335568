// Copyright 2018 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package mbtree

import (
	"testing"

	"github.com/cockroachdb/mbtree/internal/testutils"
	"github.com/stretchr/testify/require"
)

func TestEventListener(t *testing.T) {
	var log testutils.CaptureLogger
	var splits []SplitInfo
	var heights []int
	counting := EventListener{
		NodeSplit:       func(info SplitInfo) { splits = append(splits, info) },
		HeightIncreased: func(info HeightInfo) { heights = append(heights, info.Height) },
	}
	tee := TeeEventListener(MakeLoggingEventListener(&log), counting)
	tree, err := New[int](compareInts, &Options{Order: 3, EventListener: &tee})
	require.NoError(t, err)

	for i := 1; i <= 10; i++ {
		tree.Insert(i)
	}
	tree.Insert(5)

	require.Equal(t, `split leaf node at depth 1: 1 | 2 | 1 (root)
height increased to 2; new root [2]
split leaf node at depth 2: 1 | 4 | 1
split leaf node at depth 2: 1 | 6 | 1
split internal node at depth 1: 1 | 4 | 1 (root)
height increased to 3; new root [4]
split leaf node at depth 3: 1 | 8 | 1
5 already in tree
`, log.String())
	require.Len(t, splits, 5)
	require.Equal(t, []int{2, 3}, heights)

	m := tree.Metrics()
	require.EqualValues(t, len(splits), m.Splits())
	require.EqualValues(t, len(heights), m.RootSplits)
}

func TestEventListenerVerifyFailureLogged(t *testing.T) {
	var log testutils.CaptureLogger
	tree, err := New[int](compareInts, &Options{Order: 3, Logger: &log, VerifyInvariants: true})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		tree.Insert(i)
	}
	// Corrupt a leaf so that the next verification fails.
	leaf := tree.arena.get(tree.arena.get(tree.root).children[0])
	leaf.keys[0] = 100
	require.Panics(t, func() { tree.Insert(50) })
	require.Contains(t, log.String(), "key 100 >= ancestor key 1")
}
