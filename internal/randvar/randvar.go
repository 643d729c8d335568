// Copyright 2019 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package randvar provides random variables used to generate benchmark keys.
// Generators are not safe for concurrent use; give each goroutine its own.
package randvar

// Static is a random variable with a fixed distribution.
type Static interface {
	Uint64() uint64
}
