// Copyright 2018 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	order       int
	optionsPath string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "mbtree [command] (flags)",
	Short: "order-m B-tree exploration and benchmarking tool",
	Long:  ``,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		buildCmd,
		benchCmd,
		replCmd,
	)

	rootCmd.PersistentFlags().IntVarP(
		&order, "order", "m", 4, "maximum number of children per node")
	rootCmd.PersistentFlags().StringVar(
		&optionsPath, "options", "", "path to an options file; --order overrides its order")
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "log node splits and duplicate keys")

	buildCmd.Flags().StringVar(
		&buildFormat, "format", "shape", "output format: shape, pretty or diagram")
	buildCmd.Flags().BoolVar(
		&buildNoColor, "no-color", false, "disable colored output")

	benchCmd.Flags().IntVarP(
		&benchConfig.concurrency, "concurrency", "c", 1, "number of independent trees filled concurrently")
	benchCmd.Flags().IntVarP(
		&benchConfig.count, "count", "n", 100000, "number of keys inserted into each tree")
	benchCmd.Flags().StringVar(
		&benchConfig.keys, "keys", "random", "key distribution: sequential, reverse, random, zipf or hashed")
	benchCmd.Flags().Uint64Var(
		&benchConfig.seed, "seed", 1, "random seed for the random key distribution")
	benchCmd.Flags().Float64Var(
		&benchConfig.rate, "rate", 0, "maximum inserts per second across all trees (0 means unlimited)")
	benchCmd.Flags().BoolVar(
		&benchConfig.verify, "verify", false, "check tree invariants when each tree is full")

	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
