// Copyright 2018 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package mbtree

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestOptionsString(t *testing.T) {
	const expected = `[Version]
  mbtree_version=0.1

[Options]
  order=32
  verify_invariants=false
`

	var opts *Options
	opts = opts.EnsureDefaults()
	if v := opts.String(); expected != v {
		t.Fatalf("expected\n%s\nbut found\n%s", expected, v)
	}
}

func TestOptionsEnsureDefaults(t *testing.T) {
	opts := &Options{Order: 7}
	opts.EnsureDefaults()
	require.Equal(t, 7, opts.Order)
	require.NotNil(t, opts.Logger)
	require.NotNil(t, opts.EventListener)
	require.NotNil(t, opts.EventListener.NodeSplit)
	require.NotNil(t, opts.EventListener.HeightIncreased)
	require.NotNil(t, opts.EventListener.DuplicateKey)
}

func TestOptionsClone(t *testing.T) {
	var splits int
	l := &EventListener{NodeSplit: func(SplitInfo) { splits++ }}
	opts := &Options{Order: 4, EventListener: l}
	clone := opts.Clone().EnsureDefaults()

	// Filling in the clone's defaults leaves the caller's listener alone.
	require.Nil(t, l.DuplicateKey)
	require.Nil(t, opts.Logger)
	require.Equal(t, 4, clone.Order)
	clone.EventListener.NodeSplit(SplitInfo{})
	require.Equal(t, 1, splits)

	require.Equal(t, &Options{}, (*Options)(nil).Clone())
}

func TestOptionsParse(t *testing.T) {
	testCases := []struct {
		name string
		opts *Options
	}{
		{name: "defaults", opts: (&Options{}).EnsureDefaults()},
		{name: "custom", opts: (&Options{Order: 5, VerifyInvariants: true}).EnsureDefaults()},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var parsed Options
			require.NoError(t, parsed.Parse(tc.opts.String()))
			parsed.EnsureDefaults()
			require.Equal(t, tc.opts.String(), parsed.String())
			require.Equal(t, tc.opts.Order, parsed.Order)
			require.Equal(t, tc.opts.VerifyInvariants, parsed.VerifyInvariants)
		})
	}

	// Unmentioned options are left unchanged; comments and blank lines are
	// skipped.
	opts := Options{Order: 9, VerifyInvariants: true}
	require.NoError(t, opts.Parse(`
# only the order
[Options]
  ; the number of children
  order=12
`))
	require.Equal(t, Options{Order: 12, VerifyInvariants: true}, opts)
}

func TestOptionsParseErrors(t *testing.T) {
	testCases := []struct {
		in  string
		err string
	}{
		{"[Options]\n  order\n", `mbtree: invalid key=value syntax: "order"`},
		{"[Options]\n  order=many\n", `mbtree: option order: strconv.Atoi: parsing "many": invalid syntax`},
		{"[Options]\n  verify_invariants=maybe\n", `mbtree: option verify_invariants: strconv.ParseBool: parsing "maybe": invalid syntax`},
		{"[Options]\n  fanout=3\n", `mbtree: unknown option: Options.fanout`},
		{"[Version]\n  pebble_version=0.1\n", `mbtree: unknown option: Version.pebble_version`},
		{"[Tree]\n  order=3\n", `mbtree: unknown section: Tree`},
		{"order=3\n", `mbtree: unknown section: `},
	}
	for _, tc := range testCases {
		t.Run("", func(t *testing.T) {
			var opts Options
			require.EqualError(t, opts.Parse(tc.in), tc.err)
		})
	}
}

func TestOptionsValidate(t *testing.T) {
	opts := (&Options{Order: MinOrder}).EnsureDefaults()
	require.NoError(t, opts.Validate())

	opts.Order = MinOrder - 1
	err := opts.Validate()
	require.EqualError(t, err, "mbtree: invalid options:\nOrder (2) must be >= 3\n")
	require.True(t, errors.Is(err, ErrInvalidOrder))
}
