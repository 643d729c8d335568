// Copyright 2018 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package mbtree

import "github.com/cockroachdb/mbtree/internal/base"

// SplitInfo exports the base.SplitInfo type.
type SplitInfo = base.SplitInfo

// HeightInfo exports the base.HeightInfo type.
type HeightInfo = base.HeightInfo

// DuplicateKeyInfo exports the base.DuplicateKeyInfo type.
type DuplicateKeyInfo = base.DuplicateKeyInfo

// EventListener exports the base.EventListener type.
type EventListener = base.EventListener

// MakeLoggingEventListener exports the base.MakeLoggingEventListener function.
func MakeLoggingEventListener(logger Logger) EventListener {
	return base.MakeLoggingEventListener(logger)
}

// TeeEventListener exports the base.TeeEventListener function.
func TeeEventListener(a, b EventListener) EventListener {
	return base.TeeEventListener(a, b)
}
