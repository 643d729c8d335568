// Copyright 2018 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package randvar

import "golang.org/x/exp/rand"

// Uniform draws values from a uniform distribution over [min, max].
type Uniform struct {
	rng      *rand.Rand
	min, max uint64
}

var _ Static = (*Uniform)(nil)

// NewUniform constructs a new Uniform generator over [min, max].
func NewUniform(rng *rand.Rand, min, max uint64) *Uniform {
	return &Uniform{rng: rng, min: min, max: max}
}

// Uint64 returns a random value between min and max.
func (g *Uniform) Uint64() uint64 {
	return g.rng.Uint64n(g.max-g.min+1) + g.min
}
