// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package mbtree

import "sync"

// Locked wraps a Tree with a reader-writer lock so that it can be shared
// between goroutines. Insert is exclusive; all other operations may run
// concurrently with each other.
type Locked[K any] struct {
	mu struct {
		sync.RWMutex
		tree *Tree[K]
	}
}

// NewLocked returns a Locked that takes ownership of t. The caller must not
// use t directly afterwards.
func NewLocked[K any](t *Tree[K]) *Locked[K] {
	l := &Locked[K]{}
	l.mu.tree = t
	return l
}

// Insert is the locked equivalent of Tree.Insert.
func (l *Locked[K]) Insert(key K) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mu.tree.Insert(key)
}

// Exists is the locked equivalent of Tree.Exists.
func (l *Locked[K]) Exists(key K) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.mu.tree.Exists(key)
}

// IsEmpty is the locked equivalent of Tree.IsEmpty.
func (l *Locked[K]) IsEmpty() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.mu.tree.IsEmpty()
}

// Len is the locked equivalent of Tree.Len.
func (l *Locked[K]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.mu.tree.Len()
}

// Height is the locked equivalent of Tree.Height.
func (l *Locked[K]) Height() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.mu.tree.Height()
}

// Keys returns the keys of the tree in ascending order. The slice is built
// while holding the read lock.
func (l *Locked[K]) Keys() []K {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.mu.tree.Keys()
}

// Metrics is the locked equivalent of Tree.Metrics.
func (l *Locked[K]) Metrics() Metrics {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.mu.tree.Metrics()
}

// CheckInvariants is the locked equivalent of Tree.CheckInvariants.
func (l *Locked[K]) CheckInvariants() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.mu.tree.CheckInvariants()
}
