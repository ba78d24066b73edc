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
	"fmt"
	"strings"

	"github.com/bbva/bintree/log"
	"github.com/bbva/bintree/metrics"
)

// Tree owns a root node and the registry of its tracked cursors.
type Tree struct {
	root     *Node
	registry *registry
	log      log.Logger
}

// NewTree returns a tree owning root, which may be nil for an empty
// tree. A nil logger falls back to the default one.
//
// root must not be owned by a node or by another tree: it panics
// otherwise.
func NewTree(root *Node, logger log.Logger) *Tree {
	if root != nil {
		root.claim()
	}
	if logger == nil {
		logger = log.L()
	}
	return &Tree{
		root:     root,
		registry: newRegistry(),
		log:      logger.Named("tree"),
	}
}

// Root returns the root node, or nil if the tree is empty.
func (t *Tree) Root() *Node {
	return t.root
}

// Front returns a cursor to the first element. On an empty tree it is
// the past-the-end cursor.
func (t *Tree) Front() Cursor {
	if t.root == nil {
		return Cursor{pos: pastLast}
	}
	return cursorAt(t.root.first())
}

// Back returns a cursor to the last element. On an empty tree it is the
// before-first cursor.
func (t *Tree) Back() Cursor {
	if t.root == nil {
		return Cursor{pos: beforeFirst}
	}
	return cursorAt(t.root.last())
}

// SafeFront returns a tracked cursor to the first element.
func (t *Tree) SafeFront() *TrackedCursor {
	return t.track(t.Front())
}

// SafeBack returns a tracked cursor to the last element.
func (t *Tree) SafeBack() *TrackedCursor {
	return t.track(t.Back())
}

func (t *Tree) track(c Cursor) *TrackedCursor {
	tracked := &TrackedCursor{
		tree:   t,
		id:     t.registry.nextID(),
		cursor: c,
	}
	t.registry.register(tracked)
	t.log.Tracef("Tracking %v", tracked)
	return tracked
}

// DeleteSubtree removes the node c is positioned at together with all
// its descendants. Every tracked cursor positioned inside the subtree is
// invalidated; tracked cursors elsewhere keep their position.
//
// It fails with ErrInvalidCursorAdvance, leaving the tree untouched, if c
// is not positioned at a node of this tree.
func (t *Tree) DeleteSubtree(c Cursor) error {
	if !c.Valid() {
		return t.violation(errAdvance("deletion", c))
	}
	n := c.node
	if t.root == nil || n.topmost() != t.root {
		return t.violation(errAdvancef("deletion on %v outside the tree", c))
	}

	var invalidated int
	n.PreOrder(VisitorFunc(func(m *Node, _ int) {
		for _, tracked := range t.registry.drain(m) {
			tracked.invalidate()
			invalidated++
		}
	}))

	if n == t.root {
		t.root = nil
	} else {
		n.detach()
	}

	var released int
	n.PostOrder(VisitorFunc(func(m *Node, _ int) {
		m.left, m.right, m.parent = nil, nil, nil
		m.owned = false
		released++
	}))

	metrics.BintreeSubtreeDeletionsTotal.Inc()
	metrics.BintreeNodesReleasedTotal.Add(float64(released))
	metrics.BintreeDeletedSubtreeSize.Observe(float64(released))
	metrics.BintreeCursorsInvalidatedTotal.Add(float64(invalidated))

	t.log.Debugf("Deleted subtree rooted at %d: %d nodes released, %d tracked cursors invalidated",
		n.value, released, invalidated)

	return nil
}

// DeleteTrackedSubtree is DeleteSubtree driven by a tracked cursor. It
// fails with ErrInvalidCursorAdvance if the cursor was invalidated.
func (t *Tree) DeleteTrackedSubtree(c *TrackedCursor) error {
	unsafe, err := c.ToUnsafe()
	if err != nil {
		return err
	}
	return t.DeleteSubtree(unsafe)
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	if t.root == nil {
		return 0
	}
	var count int
	t.root.PreOrder(VisitorFunc(func(*Node, int) { count++ }))
	return count
}

// Values returns the in-order sequence of values.
func (t *Tree) Values() []int {
	values := make([]int, 0)
	for c := t.Front(); c.Valid(); c, _ = c.Next() {
		values = append(values, c.node.value)
	}
	return values
}

// Tracked returns the number of tracked cursors currently registered
// at a node of the tree.
func (t *Tree) Tracked() int {
	return t.registry.len()
}

// TrackedAt returns the number of tracked cursors registered at n.
func (t *Tree) TrackedAt(n *Node) int {
	return t.registry.at(n)
}

// Print renders the tree one node per line.
func (t *Tree) Print() string {
	if t.root == nil {
		return ""
	}
	v := NewPrintVisitor()
	t.root.PreOrder(v)
	return v.Result()
}

func (t *Tree) String() string {
	values := t.Values()
	tokens := make([]string, len(values))
	for i, v := range values {
		tokens[i] = fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("Tree[%s]", strings.Join(tokens, " "))
}

// violation logs a refused operation and hands the error back.
func (t *Tree) violation(err error) error {
	t.log.Debugf("Refused cursor operation: %v", err)
	return err
}
