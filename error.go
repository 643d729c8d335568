// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package mbtree

import "github.com/cockroachdb/errors"

// ErrInvalidOrder is returned (possibly wrapped) when a tree is constructed
// with an order below MinOrder.
var ErrInvalidOrder = errors.New("mbtree: invalid order")

func invalidOrderError(order int) error {
	return errors.Mark(
		errors.Newf("mbtree: order %d must be >= %d", order, MinOrder), ErrInvalidOrder)
}
