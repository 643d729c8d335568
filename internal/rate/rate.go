// Copyright 2023 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package rate paces operations with a token bucket.
package rate // import "github.com/cockroachdb/mbtree/internal/rate"

import (
	"sync"
	"time"

	"github.com/cockroachdb/tokenbucket"
)

// A Limiter paces operations to at most r per second, with bursts of at most
// b operations. The bucket starts full.
//
// Limiter is safe for concurrent use; workers sharing a Limiter share its
// budget.
type Limiter struct {
	mu struct {
		sync.Mutex
		tb   tokenbucket.TokenBucket
		rate float64
	}
	sleepFn func(d time.Duration)
}

// NewLimiter returns a Limiter allowing r operations per second with bursts
// of at most b.
func NewLimiter(r float64, b float64) *Limiter {
	l := &Limiter{sleepFn: time.Sleep}
	l.mu.tb.Init(tokenbucket.TokensPerSecond(r), tokenbucket.Tokens(b))
	l.mu.rate = r
	return l
}

// NewLimiterWithCustomTime is like NewLimiter but reads the current time from
// nowFn and waits with sleepFn.
func NewLimiterWithCustomTime(
	r float64, b float64, nowFn func() time.Time, sleepFn func(d time.Duration),
) *Limiter {
	l := &Limiter{sleepFn: sleepFn}
	l.mu.tb.InitWithNowFn(tokenbucket.TokensPerSecond(r), tokenbucket.Tokens(b), nowFn)
	l.mu.rate = r
	return l
}

// Wait blocks until n operations may proceed.
func (l *Limiter) Wait(n float64) {
	for {
		l.mu.Lock()
		ok, d := l.mu.tb.TryToFulfill(tokenbucket.Tokens(n))
		l.mu.Unlock()
		if ok {
			return
		}
		l.sleepFn(d)
	}
}

// Rate returns the configured operations per second.
func (l *Limiter) Rate() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mu.rate
}
