// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package mbtree implements an in-memory B-tree of configurable order.
//
// A tree of order m holds at most m children and m-1 keys per node. Keys are
// distinct and ordered by a caller-supplied Compare function. Insertion
// descends to a leaf, adds the key there and splits overfull nodes on the way
// back up, promoting the middle key into the parent. When a split reaches the
// root the tree grows by one level. A node that cannot be split evenly keeps
// the extra key in its left half.
//
// There is no deletion. Inserting a key that is already present is a no-op
// reported through the boolean result of Insert.
//
// A Tree is not safe for concurrent use. Wrap it in a Locked to share it
// between goroutines.
package mbtree // import "github.com/cockroachdb/mbtree"
