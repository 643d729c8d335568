// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/mbtree"
	"github.com/stretchr/testify/require"
)

func TestREPL(t *testing.T) {
	var r *repl
	datadriven.RunTest(t, "testdata/repl", func(t *testing.T, td *datadriven.TestData) string {
		switch td.Cmd {
		case "new":
			var order int
			td.ScanArgs(t, "order", &order)
			tree, err := mbtree.NewOrdered[int](order)
			require.NoError(t, err)
			r = newREPL(tree, nil, nil)
			return ""

		case "repl":
			var buf strings.Builder
			r.out = &buf
			for _, line := range strings.Split(td.Input, "\n") {
				fields := strings.Fields(line)
				if len(fields) == 0 {
					continue
				}
				if r.exec(strings.ToUpper(fields[0]), fields[1:]) {
					buf.WriteString("bye\n")
				}
			}
			return buf.String()

		default:
			return "unknown command: " + td.Cmd
		}
	})
}

func TestREPLSession(t *testing.T) {
	tree, err := mbtree.NewOrdered[int](3)
	require.NoError(t, err)
	in := strings.NewReader("insert 7 4 2\n\nexists 4\nexit\ninsert 9\n")
	var out strings.Builder
	require.NoError(t, newREPL(tree, in, &out).run())
	require.Equal(t, "order-3 B-tree; type HELP for a list of commands\n"+
		"> inserted 7\ninserted 4\ninserted 2\n> > true\n> ", out.String())
	// Input after EXIT is not consumed.
	require.False(t, tree.Exists(9))
}
