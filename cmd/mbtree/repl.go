// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/mbtree"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "interactively insert keys into a tree and inspect it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		t, err := newTree(cmd)
		if err != nil {
			return err
		}
		return newREPL(t, cmd.InOrStdin(), cmd.OutOrStdout()).run()
	},
}

const replHelp = `commands:
  INSERT <key>...   insert integer keys
  EXISTS <key>      report whether a key is present
  LIST              print the keys in order
  SHOW              print the tree, one node per line
  SHAPE             print the tree on a single line
  DIAGRAM           print the tree, one level per line
  STATS             print the tree metrics
  METRICS           print the tree metrics in Prometheus form
  CHECK             verify the tree invariants
  RESET             remove all keys
  HELP              print this message
  EXIT              leave
`

type repl struct {
	tree *mbtree.Tree[int]
	in   *bufio.Scanner
	out  io.Writer
}

func newREPL(t *mbtree.Tree[int], in io.Reader, out io.Writer) *repl {
	return &repl{tree: t, in: bufio.NewScanner(in), out: out}
}

func (r *repl) run() error {
	fmt.Fprintf(r.out, "order-%d B-tree; type HELP for a list of commands\n", r.tree.Order())
	for {
		fmt.Fprint(r.out, "> ")
		if !r.in.Scan() {
			fmt.Fprintln(r.out)
			return r.in.Err()
		}
		fields := strings.Fields(r.in.Text())
		if len(fields) == 0 {
			continue
		}
		if exit := r.exec(strings.ToUpper(fields[0]), fields[1:]); exit {
			return nil
		}
	}
}

// exec runs a single command and returns true if the session should end.
func (r *repl) exec(cmd string, args []string) (exit bool) {
	switch cmd {
	case "INSERT":
		if len(args) == 0 {
			r.fail(errors.New("INSERT requires at least one key"))
			return false
		}
		keys, err := parseKeys(args, nil)
		if err != nil {
			r.fail(err)
			return false
		}
		for _, k := range keys {
			if r.tree.Insert(k) {
				fmt.Fprintf(r.out, "inserted %d\n", k)
			} else {
				fmt.Fprintf(r.out, "duplicate key %d ignored\n", k)
			}
		}
	case "EXISTS":
		if len(args) != 1 {
			r.fail(errors.New("EXISTS requires exactly one key"))
			return false
		}
		k, err := strconv.Atoi(args[0])
		if err != nil {
			r.fail(errors.Errorf("invalid key %q: must be an integer", args[0]))
			return false
		}
		fmt.Fprintf(r.out, "%t\n", r.tree.Exists(k))
	case "LIST":
		fmt.Fprintf(r.out, "[%s]\n", r.tree.List())
	case "SHOW":
		fmt.Fprint(r.out, render(r.tree, false /* colored */))
	case "DIAGRAM":
		fmt.Fprint(r.out, r.tree.Diagram())
	case "SHAPE":
		fmt.Fprintf(r.out, "%s\n", r.tree)
	case "STATS":
		fmt.Fprintf(r.out, "%s\n", r.tree.Metrics())
	case "METRICS":
		if err := writePrometheus(r.out, r.tree); err != nil {
			r.fail(err)
		}
	case "CHECK":
		if err := r.tree.CheckInvariants(); err != nil {
			r.fail(err)
			return false
		}
		fmt.Fprintln(r.out, "ok")
	case "RESET":
		r.tree.Reset()
		fmt.Fprintln(r.out, "ok")
	case "HELP":
		fmt.Fprint(r.out, replHelp)
	case "EXIT", "QUIT":
		return true
	default:
		r.fail(errors.Errorf("unknown command %q", cmd))
	}
	return false
}

func (r *repl) fail(err error) {
	fmt.Fprintf(r.out, "error: %v\n", err)
}
