// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package metrics exports tree metrics to Prometheus.
package metrics

import (
	"github.com/cockroachdb/mbtree"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector is a prometheus.Collector that reports the metrics of a tree.
// The source function is called once per scrape; it must be safe to call
// concurrently with the tree's users (for example, Locked.Metrics).
type Collector struct {
	source func() mbtree.Metrics

	inserts    *prometheus.Desc
	duplicates *prometheus.Desc
	splits     *prometheus.Desc
	rootSplits *prometheus.Desc
	height     *prometheus.Desc
	nodes      *prometheus.Desc
	keys       *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector returns a Collector whose metric names are prefixed with
// namespace.
func NewCollector(namespace string, source func() mbtree.Metrics) *Collector {
	desc := func(name, help string, labels ...string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "", name), help, labels, nil)
	}
	return &Collector{
		source:     source,
		inserts:    desc("inserts_total", "Number of keys inserted."),
		duplicates: desc("duplicates_total", "Number of insertions rejected as duplicates."),
		splits:     desc("splits_total", "Number of node splits.", "kind"),
		rootSplits: desc("root_splits_total", "Number of root splits."),
		height:     desc("height", "Number of levels in the tree."),
		nodes:      desc("nodes", "Number of nodes in the tree."),
		keys:       desc("keys", "Number of keys in the tree."),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.inserts
	ch <- c.duplicates
	ch <- c.splits
	ch <- c.rootSplits
	ch <- c.height
	ch <- c.nodes
	ch <- c.keys
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	m := c.source()
	ch <- prometheus.MustNewConstMetric(c.inserts, prometheus.CounterValue, float64(m.Inserts))
	ch <- prometheus.MustNewConstMetric(c.duplicates, prometheus.CounterValue, float64(m.Duplicates))
	ch <- prometheus.MustNewConstMetric(c.splits, prometheus.CounterValue, float64(m.LeafSplits), "leaf")
	ch <- prometheus.MustNewConstMetric(c.splits, prometheus.CounterValue, float64(m.InternalSplits), "internal")
	ch <- prometheus.MustNewConstMetric(c.rootSplits, prometheus.CounterValue, float64(m.RootSplits))
	ch <- prometheus.MustNewConstMetric(c.height, prometheus.GaugeValue, float64(m.Height))
	ch <- prometheus.MustNewConstMetric(c.nodes, prometheus.GaugeValue, float64(m.Nodes))
	ch <- prometheus.MustNewConstMetric(c.keys, prometheus.GaugeValue, float64(m.Keys))
}
