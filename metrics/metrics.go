/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package metrics holds the prometheus collectors updated by the tree
// package.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// KindAdvance labels violations raised by next, prev, conversion
	// and deletion through an unusable cursor.
	KindAdvance = "advance"
	// KindDereference labels violations raised while reading a value.
	KindDereference = "dereference"
)

var (

	// TREE

	BintreeSubtreeDeletionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bintree_subtree_deletions_total",
			Help: "Number of subtree deletions.",
		},
	)
	BintreeNodesReleasedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bintree_nodes_released_total",
			Help: "Number of nodes released by subtree deletions.",
		},
	)
	BintreeDeletedSubtreeSize = prometheus.NewSummary(
		prometheus.SummaryOpts{
			Name: "bintree_deleted_subtree_size",
			Help: "Number of nodes of each deleted subtree.",
		},
	)

	// CURSORS

	BintreeTrackedCursors = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "bintree_tracked_cursors",
			Help: "Number of tracked cursors currently registered.",
		},
	)
	BintreeCursorsInvalidatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bintree_cursors_invalidated_total",
			Help: "Number of tracked cursors invalidated by subtree deletions.",
		},
	)
	BintreeContractViolationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bintree_cursor_contract_violations_total",
			Help: "Number of operations refused because the cursor was unusable.",
		},
		[]string{"kind"},
	)

	// PROMETHEUS

	DefaultMetrics = []prometheus.Collector{
		BintreeSubtreeDeletionsTotal,
		BintreeNodesReleasedTotal,
		BintreeDeletedSubtreeSize,
		BintreeTrackedCursors,
		BintreeCursorsInvalidatedTotal,
		BintreeContractViolationsTotal,
	}

	registerMetrics sync.Once
)

// Register all metrics.
func Register(r prometheus.Registerer) {
	registerMetrics.Do(
		func() {
			for _, metric := range DefaultMetrics {
				r.MustRegister(metric)
			}
		},
	)
}
