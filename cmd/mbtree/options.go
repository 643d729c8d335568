// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"cmp"
	"log"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/mbtree"
	"github.com/spf13/cobra"
)

// loadOptions builds the tree options from the --options file, if any, and
// the --order and --verbose flags.
func loadOptions(cmd *cobra.Command) (*mbtree.Options, error) {
	opts := &mbtree.Options{Order: order}
	if optionsPath != "" {
		data, err := os.ReadFile(optionsPath)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", optionsPath)
		}
		if err := opts.Parse(string(data)); err != nil {
			return nil, err
		}
		if cmd.Flags().Changed("order") {
			opts.Order = order
		}
	}
	if verbose {
		l := mbtree.MakeLoggingEventListener(mbtree.DefaultLogger)
		opts.EventListener = &l
	}
	return opts, nil
}

func newTree(cmd *cobra.Command) (*mbtree.Tree[int], error) {
	opts, err := loadOptions(cmd)
	if err != nil {
		return nil, err
	}
	if verbose {
		log.Printf("%s", opts)
	}
	return mbtree.New[int](cmp.Compare[int], opts)
}
