// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package mbtree

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	// MinOrder is the smallest supported order. An order-2 tree would split a
	// two-key node into a one-key left half and an empty right half.
	MinOrder = 3
	// DefaultOrder is the order used when Options.Order is zero.
	DefaultOrder = 32
)

// Options holds the optional parameters for configuring a tree. These options
// apply to the tree at construction time and cannot be changed afterwards.
type Options struct {
	// Order is the maximum number of children of a node; a node holds at most
	// Order-1 keys. The default value is DefaultOrder.
	Order int

	// Logger used to write log messages.
	//
	// The default logger uses the Go standard library log package.
	Logger Logger

	// EventListener provides hooks to listening to significant tree events
	// such as node splits. The default is a listener that ignores all events.
	EventListener *EventListener

	// VerifyInvariants causes every Insert to check the structural invariants
	// of the whole tree and panic if one is violated. This is expensive and is
	// intended for testing. Builds with the "invariants" tag always verify.
	VerifyInvariants bool
}

// EnsureDefaults ensures that the default values for all options are set if a
// valid value was not already specified. Returns the new options.
func (o *Options) EnsureDefaults() *Options {
	if o == nil {
		o = &Options{}
	}
	if o.Order == 0 {
		o.Order = DefaultOrder
	}
	if o.Logger == nil {
		o.Logger = DefaultLogger
	}
	if o.EventListener == nil {
		o.EventListener = &EventListener{}
	}
	o.EventListener.EnsureDefaults()
	return o
}

// Clone creates a shallow-copy of the supplied options. The EventListener is
// copied by value so that filling in its defaults does not modify the
// caller's listener.
func (o *Options) Clone() *Options {
	n := &Options{}
	if o != nil {
		*n = *o
		if o.EventListener != nil {
			l := *o.EventListener
			n.EventListener = &l
		}
	}
	return n
}

func (o *Options) String() string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "[Version]\n")
	fmt.Fprintf(&buf, "  mbtree_version=0.1\n")
	fmt.Fprintf(&buf, "\n")
	fmt.Fprintf(&buf, "[Options]\n")
	fmt.Fprintf(&buf, "  order=%d\n", o.Order)
	fmt.Fprintf(&buf, "  verify_invariants=%t\n", o.VerifyInvariants)
	return buf.String()
}

type parseOptionsFuncs struct {
	visitNewSection func(i, j int, section string) error
	visitKeyValue   func(i, j int, section, key, value string) error
}

// parseOptions takes options serialized by Options.String() and parses them
// into keys and values. It calls fns.visitNewSection for the beginning of each
// new section and fns.visitKeyValue for each key-value pair. Blank lines and
// lines starting with ';' or '#' are skipped.
func parseOptions(s string, fns parseOptionsFuncs) error {
	var section string
	i := 0
	for i < len(s) {
		rem := s[i:]
		j := strings.IndexByte(rem, '\n')
		if j < 0 {
			j = len(rem)
		} else {
			j += 1 // Include the newline.
		}
		line := strings.TrimSpace(s[i : i+j])
		startOff, endOff := i, i+j
		i += j

		if len(line) == 0 || line[0] == ';' || line[0] == '#' {
			continue
		}
		n := len(line)
		if line[0] == '[' && line[n-1] == ']' {
			section = line[1 : n-1]
			if fns.visitNewSection != nil {
				if err := fns.visitNewSection(startOff, endOff, section); err != nil {
					return err
				}
			}
			continue
		}

		pos := strings.Index(line, "=")
		if pos < 0 {
			const maxLen = 50
			if len(line) > maxLen {
				line = line[:maxLen-3] + "..."
			}
			return errors.Errorf("mbtree: invalid key=value syntax: %q", errors.Safe(line))
		}

		key := strings.TrimSpace(line[:pos])
		value := strings.TrimSpace(line[pos+1:])
		if fns.visitKeyValue != nil {
			if err := fns.visitKeyValue(startOff, endOff, section, key, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// Parse parses the options from the specified string, in the format produced
// by Options.String. Options that are not mentioned are left unchanged.
// Logger and EventListener cannot be parsed.
func (o *Options) Parse(s string) error {
	visitKeyValue := func(i, j int, section, key, value string) error {
		switch section {
		case "Version":
			switch key {
			case "mbtree_version":
			default:
				return errors.Errorf("mbtree: unknown option: %s.%s",
					errors.Safe(section), errors.Safe(key))
			}
			return nil

		case "Options":
			var err error
			switch key {
			case "order":
				o.Order, err = strconv.Atoi(value)
			case "verify_invariants":
				o.VerifyInvariants, err = strconv.ParseBool(value)
			default:
				return errors.Errorf("mbtree: unknown option: %s.%s",
					errors.Safe(section), errors.Safe(key))
			}
			return errors.Wrapf(err, "mbtree: option %s", errors.Safe(key))

		default:
			return errors.Errorf("mbtree: unknown section: %s", errors.Safe(section))
		}
	}
	return parseOptions(s, parseOptionsFuncs{
		visitKeyValue: visitKeyValue,
	})
}

// Validate verifies that the options are usable. It presumes EnsureDefaults
// has been called, so zero values are not checked.
func (o *Options) Validate() error {
	var buf strings.Builder
	if o.Order < MinOrder {
		fmt.Fprintf(&buf, "Order (%d) must be >= %d\n", o.Order, MinOrder)
	}
	if buf.Len() == 0 {
		return nil
	}
	return errors.Mark(errors.Errorf("mbtree: invalid options:\n%s", buf.String()), ErrInvalidOrder)
}
