// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/mbtree"
	"github.com/cockroachdb/mbtree/internal/randvar"
	"github.com/cockroachdb/mbtree/internal/rate"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

var benchConfig struct {
	concurrency int
	count       int
	keys        string
	seed        uint64
	rate        float64
	verify      bool
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "measure insertion into independent trees",
	Long: `
Fills --concurrency independent trees with --count keys each and reports the
insert latency every second, followed by a per-tree summary and a plot of how
the height of the first tree grew.
`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

// keyGenerator returns the i'th key inserted by worker w.
type keyGenerator func(i int) int

func makeKeyGenerator(kind string, count int, seed uint64, worker int) (keyGenerator, error) {
	switch kind {
	case "sequential":
		return func(i int) int { return i }, nil
	case "reverse":
		return func(i int) int { return count - i }, nil
	case "random", "zipf":
		rng := rand.New(rand.NewSource(seed + uint64(worker)))
		hi := uint64(4*max(count, 1) - 1)
		var g randvar.Static = randvar.NewUniform(rng, 0, hi)
		if kind == "zipf" {
			z, err := randvar.NewZipf(rng, 0, hi, randvar.DefaultTheta)
			if err != nil {
				return nil, err
			}
			g = z
		}
		return func(int) int { return int(g.Uint64()) }, nil
	case "hashed":
		var buf [8]byte
		return func(i int) int {
			binary.LittleEndian.PutUint64(buf[:], uint64(i))
			return int(xxhash.Sum64(buf[:]) >> 1)
		}, nil
	default:
		return nil, errors.Errorf("unknown key distribution %q", kind)
	}
}

type benchResult struct {
	metrics mbtree.Metrics
	height  sampledMetric
}

// plotWidth is the number of points along the x-axis of the height plot.
const plotWidth = 60

func runBench(cmd *cobra.Command, _ []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	if benchConfig.concurrency < 1 || benchConfig.count < 1 {
		return errors.New("--concurrency and --count must be positive")
	}
	gens := make([]keyGenerator, benchConfig.concurrency)
	for w := range gens {
		if gens[w], err = makeKeyGenerator(benchConfig.keys, benchConfig.count, benchConfig.seed, w); err != nil {
			return err
		}
	}
	var limiter *rate.Limiter
	if benchConfig.rate > 0 {
		limiter = rate.NewLimiter(benchConfig.rate, benchConfig.rate)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "order %d\nconcurrency %d\nkeys %s x %d\n",
		opts.EnsureDefaults().Order, benchConfig.concurrency, benchConfig.keys, benchConfig.count)

	reg := newHistogramRegistry()
	results := make([]benchResult, benchConfig.concurrency)
	sampleEvery := max(benchConfig.count/plotWidth, 1)

	var g errgroup.Group
	for w := range results {
		latency := reg.Register("insert")
		g.Go(func() error {
			t, err := mbtree.New[int](cmp.Compare[int], opts)
			if err != nil {
				return err
			}
			res := &results[w]
			gen := gens[w]
			for i := 0; i < benchConfig.count; i++ {
				if limiter != nil {
					limiter.Wait(1)
				}
				k := gen(i)
				start := time.Now()
				t.Insert(k)
				latency.Record(time.Since(start))
				if i%sampleEvery == 0 || i == benchConfig.count-1 {
					res.height.record(i, int64(t.Height()))
				}
			}
			if benchConfig.verify {
				if err := t.CheckInvariants(); err != nil {
					return errors.Wrapf(err, "tree %d", w)
				}
			}
			res.metrics = t.Metrics()
			return nil
		})
	}

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	start := time.Now()
	for i := 0; ; i++ {
		select {
		case <-ticker.C:
			printTick(out, reg, time.Since(start), i)
		case err := <-done:
			if err != nil {
				return err
			}
			printDone(out, reg, time.Since(start))
			printSummary(out, results)
			return nil
		}
	}
}

func printTick(w io.Writer, reg *histogramRegistry, elapsed time.Duration, i int) {
	if i%20 == 0 {
		fmt.Fprintln(w, "_elapsed____ops/sec__p50(us)__p95(us)__p99(us)_pMax(us)")
	}
	reg.Tick(func(tick histogramTick) {
		h := tick.Hist
		fmt.Fprintf(w, "%8s %10.1f %8.2f %8.2f %8.2f %8.2f\n",
			time.Duration(elapsed.Seconds()+0.5)*time.Second,
			float64(h.TotalCount())/tick.Elapsed.Seconds(),
			micros(h.ValueAtQuantile(50)),
			micros(h.ValueAtQuantile(95)),
			micros(h.ValueAtQuantile(99)),
			micros(h.ValueAtQuantile(100)),
		)
	})
}

func printDone(w io.Writer, reg *histogramRegistry, elapsed time.Duration) {
	fmt.Fprintln(w, "\n_elapsed_____ops(total)___ops/sec(cum)__avg(us)__p50(us)__p95(us)__p99(us)_pMax(us)")
	reg.Tick(func(tick histogramTick) {
		h := tick.Cumulative
		fmt.Fprintf(w, "%7.1fs %14d %14.1f %8.2f %8.2f %8.2f %8.2f %8.2f\n\n",
			elapsed.Seconds(), h.TotalCount(),
			float64(h.TotalCount())/elapsed.Seconds(),
			h.Mean()/1e3,
			micros(h.ValueAtQuantile(50)),
			micros(h.ValueAtQuantile(95)),
			micros(h.ValueAtQuantile(99)),
			micros(h.ValueAtQuantile(100)))
	})
}

func printSummary(w io.Writer, results []benchResult) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"tree", "keys", "duplicates", "nodes", "height", "leaf splits", "internal splits"})
	for i, r := range results {
		m := r.metrics
		tbl.Append([]string{
			strconv.Itoa(i),
			strconv.Itoa(m.Keys),
			strconv.FormatUint(m.Duplicates, 10),
			strconv.Itoa(m.Nodes),
			strconv.Itoa(m.Height),
			strconv.FormatUint(m.LeafSplits, 10),
			strconv.FormatUint(m.InternalSplits, 10),
		})
	}
	tbl.Render()

	h := &results[0].height
	fmt.Fprintf(w, "\n%s\n", h.Plot(plotWidth, int(max(h.Max(), 1)), "height of tree 0 by keys inserted"))
}
