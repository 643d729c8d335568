// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package mbtree

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/redact"
	"github.com/stretchr/testify/require"
)

func TestFormatRedaction(t *testing.T) {
	tree, err := NewOrdered[string](3)
	require.NoError(t, err)
	for _, k := range []string{"c", "b", "a"} {
		tree.Insert(k)
	}
	require.Equal(t, "{keys:[b] children:[{keys:[a]} {keys:[c]}]}", tree.String())
	require.Equal(t, redact.RedactableString("{keys:[‹b›] children:[{keys:[‹a›]} {keys:[‹c›]}]}"),
		redact.Sprint(tree))
	require.Equal(t, redact.RedactableString("{keys:[‹×›] children:[{keys:[‹×›]} {keys:[‹×›]}]}"),
		redact.Sprint(tree).Redact())
	require.Equal(t, "{keys:[b] children:[{keys:[a]} {keys:[c]}]}", fmt.Sprint(tree))
}

func TestWalk(t *testing.T) {
	tree, err := NewOrdered[int](4)
	require.NoError(t, err)
	tree.Walk(func(int, []int, bool) { t.Fatal("walked an empty tree") })

	for _, k := range []int{5, 3, 21, 9, 1, 13, 2} {
		tree.Insert(k)
	}
	var buf strings.Builder
	tree.Walk(func(depth int, keys []int, leaf bool) {
		fmt.Fprintf(&buf, "%d %v %t\n", depth, keys, leaf)
	})
	require.Equal(t, `1 [3 9] false
2 [1 2] true
2 [5] true
2 [13 21] true
`, buf.String())
	require.Equal(t, "[3 9]\n  [1 2]\n  [5]\n  [13 21]\n", tree.Pretty())
}

func TestDiagram(t *testing.T) {
	build := func(order int, keys ...int) *Tree[int] {
		tree, err := NewOrdered[int](order)
		require.NoError(t, err)
		for _, k := range keys {
			tree.Insert(k)
		}
		return tree
	}

	require.Equal(t, "<empty>\n", build(3).Diagram())
	require.Equal(t, "[1 2]\n", build(3, 2, 1).Diagram())
	require.Equal(t, `  [4]
 +-+-+
[2] [7]
`, build(3, 7, 4, 2).Diagram())
	require.Equal(t, `      [3 9]
  +----++----+
[1 2] [5] [13 21]
`, build(4, 5, 3, 21, 9, 1, 13, 2).Diagram())
	require.Equal(t, `         [4]
   +------+---+
  [2]       [6 8]
 +-+-+   +---++----+
[1] [3] [5] [7] [9 10]
`, build(3, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10).Diagram())
}
