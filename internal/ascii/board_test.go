// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package ascii

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
)

func TestBoardDatadriven(t *testing.T) {
	var board Board
	datadriven.RunTest(t, "testdata/board", func(t *testing.T, td *datadriven.TestData) string {
		switch td.Cmd {
		case "reset":
			board.Reset()
			return board.String()
		case "write":
			for _, line := range strings.Split(td.Input, "\n") {
				fields := strings.SplitN(line, " ", 3)
				require.Len(t, fields, 3)
				r, err := strconv.Atoi(fields[0])
				require.NoError(t, err)
				c, err := strconv.Atoi(fields[1])
				require.NoError(t, err)
				board.Write(r, c, fields[2])
			}
			return board.String()
		case "repeat":
			var r, c, n int
			var ch string
			td.ScanArgs(t, "r", &r)
			td.ScanArgs(t, "c", &c)
			td.ScanArgs(t, "n", &n)
			td.ScanArgs(t, "ch", &ch)
			board.Repeat(r, c, n, []rune(ch)[0])
			return board.String()
		case "render":
			var indent string
			td.ScanArgs(t, "indent", &indent)
			return board.Render(indent)
		default:
			return fmt.Sprintf("unknown command: %s", td.Cmd)
		}
	})
}

func TestBoardSet(t *testing.T) {
	var b Board
	require.Equal(t, 0, b.Lines())
	b.Set(2, 3, '+')
	require.Equal(t, 3, b.Lines())
	require.Equal(t, "\n\n   +", b.String())
	b.Set(2, 0, '+')
	b.Set(0, 1, 'é')
	require.Equal(t, " é\n\n+  +", b.String())
}
