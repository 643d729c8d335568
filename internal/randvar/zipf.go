// Copyright 2017 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package randvar

import (
	"math"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/rand"
)

// DefaultTheta is the skew used by YCSB's zipfian workloads.
const DefaultTheta = 0.99

// Zipf draws values from a Zipf distribution over [min, max], so that min is
// the most likely value, min+1 the next most likely and so on. It implements
// the generator from "Quickly Generating Billion-Record Synthetic Databases"
// by Gray, Sundaresan, Englert, Baclawski and Weinberger, SIGMOD 1994, which
// unlike rand.Zipf supports theta < 1.
type Zipf struct {
	rng      *rand.Rand
	min, max uint64
	theta    float64

	alpha, eta, zetaN float64
}

var _ Static = (*Zipf)(nil)

// NewZipf constructs a new Zipf generator. Theta must be positive and not 1.
func NewZipf(rng *rand.Rand, min, max uint64, theta float64) (*Zipf, error) {
	if min > max {
		return nil, errors.Errorf("min %d > max %d", min, max)
	}
	if theta <= 0.0 || theta == 1.0 {
		return nil, errors.Errorf("theta %g must be positive and not 1", theta)
	}

	n := max + 1 - min
	z := &Zipf{
		rng:   rng,
		min:   min,
		max:   max,
		theta: theta,
		alpha: 1.0 / (1.0 - theta),
		zetaN: zeta(n, theta),
	}
	z.eta = (1 - math.Pow(2.0/float64(n), 1.0-theta)) / (1.0 - zeta(2, theta)/z.zetaN)
	return z, nil
}

// zeta computes (1/1)^theta + (1/2)^theta + ... + (1/n)^theta.
func zeta(n uint64, theta float64) float64 {
	var sum float64
	for i := uint64(1); i <= n; i++ {
		sum += 1.0 / math.Pow(float64(i), theta)
	}
	return sum
}

// Uint64 draws a new value between min and max.
func (z *Zipf) Uint64() uint64 {
	u := z.rng.Float64()
	uz := u * z.zetaN
	switch {
	case uz < 1.0:
		return z.min
	case uz < 1.0+math.Pow(0.5, z.theta):
		return z.min + 1
	default:
		spread := float64(z.max + 1 - z.min)
		return min(z.min+uint64(spread*math.Pow(z.eta*u-z.eta+1.0, z.alpha)), z.max)
	}
}
