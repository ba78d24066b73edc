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

/*
Package tree implements a caller-shaped binary tree traversed in order
through cursors.

Two kinds of cursors are provided. A Cursor is a plain position that
walks the parent and child links on demand and carries no bookkeeping:
it is only valid until the next subtree deletion. A TrackedCursor
registers itself with its Tree, so that deleting a subtree invalidates
exactly the tracked cursors positioned inside it.

A Tree is not safe for concurrent use.
*/
package tree

import (
	"fmt"
	"sync/atomic"
)

var lastNodeID uint64

// Node is a tree vertex. A node exclusively owns its children, while
// the parent link is a back-reference that never keeps a node alive.
type Node struct {
	id          uint64
	value       int
	left, right *Node
	parent      *Node

	// owned is set once a parent node or a Tree holds the node.
	owned bool
}

// NewLeaf returns a node without children.
func NewLeaf(value int) *Node {
	return &Node{
		id:    atomic.AddUint64(&lastNodeID, 1),
		value: value,
	}
}

// New returns a node that takes ownership of the given subtrees. Any of
// them may be nil. The children parent links are stamped before
// returning.
//
// A subtree that already has a parent or is the root of a Tree cannot be
// owned twice: passing one panics.
func New(value int, left, right *Node) *Node {
	n := NewLeaf(value)
	n.adopt(&n.left, left)
	n.adopt(&n.right, right)
	return n
}

func (n *Node) adopt(slot **Node, child *Node) {
	if child == nil {
		return
	}
	child.claim()
	*slot = child
	child.parent = n
}

// claim marks n as owned, panicking if it already has an owner.
func (n *Node) claim() {
	if n.parent != nil {
		panic(fmt.Sprintf("tree: node %d is already owned by node %d", n.value, n.parent.value))
	}
	if n.owned {
		panic(fmt.Sprintf("tree: node %d is already the root of a tree", n.value))
	}
	n.owned = true
}

// Value returns the payload of the node.
func (n *Node) Value() int { return n.value }

// Left returns the left child, or nil.
func (n *Node) Left() *Node { return n.left }

// Right returns the right child, or nil.
func (n *Node) Right() *Node { return n.right }

// Parent returns the parent of the node, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return n.left == nil && n.right == nil }

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool { return n.parent == nil }

func (n *Node) String() string {
	return fmt.Sprintf("Node(%d)", n.value)
}

// first returns the leftmost node of the subtree rooted at n.
func (n *Node) first() *Node {
	for n.left != nil {
		n = n.left
	}
	return n
}

// last returns the rightmost node of the subtree rooted at n.
func (n *Node) last() *Node {
	for n.right != nil {
		n = n.right
	}
	return n
}

// successor returns the in-order successor of n, or nil if n is the
// last node of its tree.
func (n *Node) successor() *Node {
	if n.right != nil {
		return n.right.first()
	}
	for n.parent != nil && n.parent.right == n {
		n = n.parent
	}
	return n.parent
}

// predecessor returns the in-order predecessor of n, or nil if n is the
// first node of its tree.
func (n *Node) predecessor() *Node {
	if n.left != nil {
		return n.left.last()
	}
	for n.parent != nil && n.parent.left == n {
		n = n.parent
	}
	return n.parent
}

// detach unlinks n from its parent, leaving n as the root of its own
// subtree.
func (n *Node) detach() {
	p := n.parent
	if p == nil {
		return
	}
	switch n {
	case p.left:
		p.left = nil
	case p.right:
		p.right = nil
	}
	n.parent = nil
}

// topmost returns the root of the tree n currently belongs to.
func (n *Node) topmost() *Node {
	for n.parent != nil {
		n = n.parent
	}
	return n
}
