// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

//go:build !race && !slowbuild

// Package buildtags exposes build tags that tests consult to size their
// workloads.
package buildtags

// SlowBuild is false in regular builds. See slow_build_on.go.
const SlowBuild = false
