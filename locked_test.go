// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package mbtree

import (
	"testing"

	"github.com/cockroachdb/crlib/testutils/leaktest"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestLocked(t *testing.T) {
	defer leaktest.AfterTest(t)()

	tree, err := NewOrdered[int](5)
	require.NoError(t, err)
	l := NewLocked(tree)
	require.True(t, l.IsEmpty())

	const writers = 8
	const perWriter = 1000
	var g errgroup.Group
	for w := 0; w < writers; w++ {
		g.Go(func() error {
			for i := 0; i < perWriter; i++ {
				// Writers overlap on half of their keys.
				k := w*perWriter/2 + i
				l.Insert(k)
				if !l.Exists(k) {
					return errors.Newf("key %d missing after insert", k)
				}
			}
			return nil
		})
	}
	for r := 0; r < 2; r++ {
		g.Go(func() error {
			for i := 0; i < 100; i++ {
				keys := l.Keys()
				for j := 1; j < len(keys); j++ {
					if keys[j-1] >= keys[j] {
						return errors.Newf("keys out of order at %d", j)
					}
				}
				_ = l.Height()
				_ = l.Len()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	const distinct = (writers + 1) * perWriter / 2
	require.Equal(t, distinct, l.Len())
	require.False(t, l.IsEmpty())
	require.NoError(t, l.CheckInvariants())
	m := l.Metrics()
	require.EqualValues(t, distinct, m.Inserts)
	require.EqualValues(t, writers*perWriter-distinct, m.Duplicates)
	require.Equal(t, m.Height, l.Height())
}
