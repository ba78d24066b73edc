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

import "fmt"

type position uint8

const (
	pastLast position = iota
	beforeFirst
	atNode
)

// Cursor is a position in the in-order sequence of a tree: before the
// first element, at a node, or past the last element.
//
// A Cursor reads the node links every time it moves and keeps no
// registration anywhere, so it costs nothing to create or copy. It is
// only valid until the next subtree deletion on its tree: using a Cursor
// whose node has been deleted yields undefined positions. Use a
// TrackedCursor when cursors must survive deletions.
//
// The zero Cursor is past the end.
type Cursor struct {
	node *Node
	pos  position
}

func cursorAt(n *Node) Cursor {
	return Cursor{node: n, pos: atNode}
}

// Next returns a cursor to the in-order successor. Moving past the last
// element yields the past-the-end cursor; moving again from there fails
// with ErrInvalidCursorAdvance.
func (c Cursor) Next() (Cursor, error) {
	if !c.Valid() {
		return c, errAdvance("next", c)
	}
	if s := c.node.successor(); s != nil {
		return cursorAt(s), nil
	}
	return Cursor{pos: pastLast}, nil
}

// Prev returns a cursor to the in-order predecessor. Moving before the
// first element yields the before-first cursor; moving again from there
// fails with ErrInvalidCursorAdvance.
func (c Cursor) Prev() (Cursor, error) {
	if !c.Valid() {
		return c, errAdvance("prev", c)
	}
	if p := c.node.predecessor(); p != nil {
		return cursorAt(p), nil
	}
	return Cursor{pos: beforeFirst}, nil
}

// Valid reports whether the cursor is positioned at a node.
func (c Cursor) Valid() bool {
	return c.pos == atNode && c.node != nil
}

// BeforeFirst reports whether the cursor moved before the first element.
func (c Cursor) BeforeFirst() bool {
	return c.pos == beforeFirst
}

// PastLast reports whether the cursor moved past the last element.
func (c Cursor) PastLast() bool {
	return c.pos == pastLast
}

// Value returns a reference to the value of the node the cursor is
// positioned at. Writes through it change the node payload.
func (c Cursor) Value() (*int, error) {
	if !c.Valid() {
		return nil, errDereference(c)
	}
	return &c.node.value, nil
}

// Same reports whether both cursors denote the same position.
func (c Cursor) Same(other Cursor) bool {
	return c.pos == other.pos && c.node == other.node
}

func (c Cursor) String() string {
	switch {
	case c.pos == beforeFirst:
		return "Cursor(before-first)"
	case c.pos == pastLast:
		return "Cursor(past-the-end)"
	case c.node == nil:
		return "Cursor(nil)"
	default:
		return fmt.Sprintf("Cursor(%d)", c.node.value)
	}
}
