// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/mbtree"
	"github.com/spf13/cobra"
)

var (
	buildFormat  string
	buildNoColor bool
)

var buildCmd = &cobra.Command{
	Use:   "build [keys...]",
	Short: "build a tree from integer keys and print it",
	Long: `
Inserts the given integer keys, in order, into an empty tree and prints the
resulting shape, the keys in order and the tree metrics. When no keys are
given on the command line they are read from stdin, separated by white space.
`,
	RunE: runBuild,
}

var buildFormats = []string{"shape", "pretty", "diagram"}

func runBuild(cmd *cobra.Command, args []string) error {
	if !slices.Contains(buildFormats, buildFormat) {
		return errors.Errorf("unknown format %q: must be one of %s", buildFormat, strings.Join(buildFormats, ", "))
	}
	keys, err := parseKeys(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	t, err := newTree(cmd)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	for _, k := range keys {
		if !t.Insert(k) {
			fmt.Fprintf(w, "duplicate key %d ignored\n", k)
		}
	}
	printTree(w, t, buildFormat, !buildNoColor)
	return nil
}

// parseKeys parses integer keys from args, or from r when args is empty.
func parseKeys(args []string, r io.Reader) ([]int, error) {
	if len(args) == 0 {
		s := bufio.NewScanner(r)
		s.Split(bufio.ScanWords)
		for s.Scan() {
			args = append(args, s.Text())
		}
		if err := s.Err(); err != nil {
			return nil, errors.Wrap(err, "reading keys")
		}
	}
	keys := make([]int, 0, len(args))
	for _, arg := range args {
		k, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.Errorf("invalid key %q: must be an integer", arg)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// printTree prints the tree in the given format: "shape" for the single-line
// form, "pretty" for one node per line or "diagram" for one level per line.
func printTree(w io.Writer, t *mbtree.Tree[int], format string, colored bool) {
	fmt.Fprintf(w, "order: %d\n", t.Order())
	switch format {
	case "pretty":
		fmt.Fprint(w, render(t, colored))
	case "diagram":
		fmt.Fprint(w, t.Diagram())
	default:
		fmt.Fprintf(w, "%s\n", t)
	}
	fmt.Fprintf(w, "list: %s\n", t.List())
	fmt.Fprintf(w, "%s\n", t.Metrics())
}
