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
)

// Visitor is called once per node by the traversal methods of Node.
// depth is relative to the node the traversal started at.
type Visitor interface {
	VisitNode(n *Node, depth int)
}

// VisitorFunc adapts a function to the Visitor interface.
type VisitorFunc func(n *Node, depth int)

func (f VisitorFunc) VisitNode(n *Node, depth int) {
	f(n, depth)
}

// PreOrder visits n before its left and right subtrees.
func (n *Node) PreOrder(visitor Visitor) {
	n.preOrder(visitor, 0)
}

func (n *Node) preOrder(visitor Visitor, depth int) {
	visitor.VisitNode(n, depth)
	if n.left != nil {
		n.left.preOrder(visitor, depth+1)
	}
	if n.right != nil {
		n.right.preOrder(visitor, depth+1)
	}
}

// PostOrder visits the left and right subtrees of n before n. The
// visitor may unlink the node it is given.
func (n *Node) PostOrder(visitor Visitor) {
	n.postOrder(visitor, 0)
}

func (n *Node) postOrder(visitor Visitor, depth int) {
	left, right := n.left, n.right
	if left != nil {
		left.postOrder(visitor, depth+1)
	}
	if right != nil {
		right.postOrder(visitor, depth+1)
	}
	visitor.VisitNode(n, depth)
}

// PrintVisitor renders a subtree one node per line, indented by depth,
// marking each child with its side.
type PrintVisitor struct {
	tokens []string
}

// NewPrintVisitor returns an empty PrintVisitor.
func NewPrintVisitor() *PrintVisitor {
	return &PrintVisitor{tokens: make([]string, 0)}
}

// VisitNode renders n at the indentation of its depth.
func (v *PrintVisitor) VisitNode(n *Node, depth int) {
	side := ""
	if p := n.parent; p != nil && depth > 0 {
		if p.left == n {
			side = "L "
		} else {
			side = "R "
		}
	}
	v.tokens = append(v.tokens, fmt.Sprintf("%s%s%d", strings.Repeat("\t", depth), side, n.value))
}

// Result returns the rendered lines joined by newlines.
func (v *PrintVisitor) Result() string {
	return strings.Join(v.tokens, "\n")
}
