// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package mbtree

// Compare returns -1, 0, or +1 depending on whether a is 'less than', 'equal
// to' or 'greater than' b.
//
// Compare must define a total order: it is the only source of both ordering
// and equality within the tree, and two keys for which it returns 0 are the
// same key. A Compare that is inconsistent (for example, not transitive)
// results in undefined behavior; the tree does not attempt to detect it.
type Compare[K any] func(a, b K) int
