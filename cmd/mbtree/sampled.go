// Copyright 2023 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import "github.com/guptarohit/asciigraph"

// sampledMetric holds a tree metric sampled as keys are inserted. Each
// sample is taken at a position in the insertion sequence, which is the
// x-axis of the plot.
type sampledMetric struct {
	samples []sample
}

type sample struct {
	at    int
	value int64
}

func (m *sampledMetric) record(at int, v int64) {
	m.samples = append(m.samples, sample{at: at, value: v})
}

// Plot returns an ASCII graph of the metric, with the provided width and
// height determining the number of representable discrete x and y points.
func (m *sampledMetric) Plot(width, height int, caption string) string {
	values := m.Values(width)
	if len(values) == 0 {
		return ""
	}
	return asciigraph.Plot(values, asciigraph.Height(height), asciigraph.Caption(caption))
}

// Max returns the largest sampled value.
func (m *sampledMetric) Max() int64 {
	var max int64
	for _, s := range m.samples {
		if max < s.value {
			max = s.value
		}
	}
	return max
}

// Values returns the values of the metric, distributed across n discrete
// buckets that are equally spaced over the insertion sequence. If multiple
// values fall within a bucket, the latest recorded value is used. If no
// values fall within a bucket, the next recorded value is used.
func (m *sampledMetric) Values(buckets int) []float64 {
	if len(m.samples) == 0 || buckets < 1 {
		return nil
	}

	values := make([]float64, buckets)
	total := m.samples[len(m.samples)-1].at + 1
	b := 0
	for i := range m.samples {
		bi := m.samples[i].at * buckets / total
		if bi >= buckets {
			bi = buckets - 1
		}
		// Fill any buckets that precede this value with this value.
		if b < bi {
			b++
			for ; b < bi; b++ {
				values[b] = float64(m.samples[i].value)
			}
		}
		values[bi] = float64(m.samples[i].value)
		b = bi
	}
	last := values[b]
	for b++; b < buckets; b++ {
		values[b] = last
	}
	return values
}
