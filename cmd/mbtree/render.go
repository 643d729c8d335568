// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/mbtree"
	"github.com/fatih/color"
)

var (
	leafColor     = color.New(color.FgGreen)
	internalColor = color.New(color.FgCyan, color.Bold)
)

// render draws the tree one node per line, like Tree.Pretty, with leaves and
// internal nodes in different colors.
func render(t *mbtree.Tree[int], colored bool) string {
	if t.IsEmpty() {
		return "<empty>\n"
	}
	var buf strings.Builder
	t.Walk(func(depth int, keys []int, leaf bool) {
		c := internalColor
		if leaf {
			c = leafColor
		}
		node := fmt.Sprint(keys)
		if colored {
			node = c.Sprint(node)
		}
		fmt.Fprintf(&buf, "%s%s\n", strings.Repeat("  ", depth-1), node)
	})
	return buf.String()
}
