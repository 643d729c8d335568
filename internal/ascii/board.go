// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package ascii draws text diagrams on a grid of runes.
package ascii

import (
	"strings"
	"unicode/utf8"
)

// Board is a grid of runes that grows as it is written to. Cells that were
// never written hold spaces. The zero value is an empty board.
type Board struct {
	rows [][]rune
}

// Write writes s on row r starting at column c.
func (b *Board) Write(r, c int, s string) {
	row := b.row(r, c+utf8.RuneCountInString(s))
	for _, ch := range s {
		row[c] = ch
		c++
	}
}

// Repeat writes n copies of ch on row r starting at column c.
func (b *Board) Repeat(r, c, n int, ch rune) {
	row := b.row(r, c+n)
	for i := 0; i < n; i++ {
		row[c+i] = ch
	}
}

// Set writes ch at row r, column c.
func (b *Board) Set(r, c int, ch rune) {
	b.row(r, c+1)[c] = ch
}

// Lines returns the number of rows on the board.
func (b *Board) Lines() int {
	return len(b.rows)
}

// row returns row r, first growing the board so that the row exists and is
// at least width runes wide.
func (b *Board) row(r, width int) []rune {
	for len(b.rows) <= r {
		b.rows = append(b.rows, nil)
	}
	row := b.rows[r]
	for len(row) < width {
		row = append(row, ' ')
	}
	b.rows[r] = row
	return row
}

// String returns the board as a string.
func (b *Board) String() string {
	return b.Render("")
}

// Render returns the board as a string, with every line prefixed by indent
// and trailing spaces removed. Lines are separated, not terminated, by
// newlines.
func (b *Board) Render(indent string) string {
	var buf strings.Builder
	for r, row := range b.rows {
		if r > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(indent)
		buf.WriteString(strings.TrimRight(string(row), " "))
	}
	return buf.String()
}

// Reset clears the board.
func (b *Board) Reset() {
	b.rows = b.rows[:0]
}
