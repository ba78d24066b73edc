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

package tree

import (
	"github.com/google/btree"

	"github.com/bbva/bintree/metrics"
)

// registration is the index entry of a tracked cursor positioned at a
// node. Entries are ordered by node first, so all the cursors of a node
// are contiguous in the index.
type registration struct {
	node, cursor uint64
	tracked      *TrackedCursor
}

func (r registration) Less(b btree.Item) bool {
	o := b.(registration)
	if r.node != o.node {
		return r.node < o.node
	}
	return r.cursor < o.cursor
}

// registry maps every node holding tracked cursors to those cursors.
// A node is present only while at least one tracked cursor is
// positioned at it.
type registry struct {
	index  *btree.BTree
	lastID uint64
}

func newRegistry() *registry {
	return &registry{index: btree.New(2)}
}

func (r *registry) nextID() uint64 {
	r.lastID++
	return r.lastID
}

// register indexes c under its current node. Cursors sitting at a
// sentinel are not indexed.
func (r *registry) register(c *TrackedCursor) {
	if !c.cursor.Valid() {
		return
	}
	if r.index.ReplaceOrInsert(registration{c.cursor.node.id, c.id, c}) == nil {
		metrics.BintreeTrackedCursors.Inc()
	}
}

func (r *registry) deregister(c *TrackedCursor) {
	if !c.cursor.Valid() {
		return
	}
	if r.index.Delete(registration{node: c.cursor.node.id, cursor: c.id}) != nil {
		metrics.BintreeTrackedCursors.Dec()
	}
}

// drain removes and returns every cursor registered under n.
func (r *registry) drain(n *Node) []*TrackedCursor {
	var drained []*TrackedCursor
	r.index.AscendRange(
		registration{node: n.id},
		registration{node: n.id + 1},
		func(i btree.Item) bool {
			drained = append(drained, i.(registration).tracked)
			return true
		},
	)
	for _, c := range drained {
		r.index.Delete(registration{node: n.id, cursor: c.id})
	}
	metrics.BintreeTrackedCursors.Sub(float64(len(drained)))
	return drained
}

// at returns the number of cursors registered under n.
func (r *registry) at(n *Node) int {
	count := 0
	r.index.AscendRange(
		registration{node: n.id},
		registration{node: n.id + 1},
		func(i btree.Item) bool {
			count++
			return true
		},
	)
	return count
}

func (r *registry) len() int {
	return r.index.Len()
}
