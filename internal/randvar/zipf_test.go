// Copyright 2017 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package randvar

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestZipfErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := NewZipf(rng, 10, 5, DefaultTheta)
	require.EqualError(t, err, "min 10 > max 5")
	_, err = NewZipf(rng, 0, 5, 1)
	require.EqualError(t, err, "theta 1 must be positive and not 1")
	_, err = NewZipf(rng, 0, 5, 0)
	require.Error(t, err)
}

func TestZipf(t *testing.T) {
	const min, max = 20, 1000
	z, err := NewZipf(rand.New(rand.NewSource(1)), min, max, DefaultTheta)
	require.NoError(t, err)

	counts := make(map[uint64]int)
	const draws = 100000
	for i := 0; i < draws; i++ {
		v := z.Uint64()
		require.GreaterOrEqual(t, v, uint64(min))
		require.LessOrEqual(t, v, uint64(max))
		counts[v]++
	}
	// Smaller values are drawn more often, and the smallest far more often
	// than a uniform distribution would draw it.
	require.Greater(t, counts[min], counts[min+1])
	require.Greater(t, counts[min+1], counts[min+10])
	require.Greater(t, counts[min], 10*draws/(max-min+1))
}

func TestUniform(t *testing.T) {
	g := NewUniform(rand.New(rand.NewSource(1)), 5, 9)
	seen := make(map[uint64]bool)
	for i := 0; i < 1000; i++ {
		v := g.Uint64()
		require.GreaterOrEqual(t, v, uint64(5))
		require.LessOrEqual(t, v, uint64(9))
		seen[v] = true
	}
	require.Len(t, seen, 5)
}
