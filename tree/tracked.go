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

// TrackedCursor is a cursor registered with its Tree. Deleting a subtree
// that contains the node a tracked cursor is positioned at invalidates
// the cursor; any other tracked cursor is left untouched.
//
// Invalidation is terminal: an invalidated cursor refuses every further
// operation. A cursor that is no longer needed should be released so
// that the tree stops tracking it.
type TrackedCursor struct {
	tree        *Tree
	id          uint64
	cursor      Cursor
	invalidated bool
}

// Next returns a new tracked cursor to the in-order successor. The
// receiver stays registered at its own position.
func (c *TrackedCursor) Next() (*TrackedCursor, error) {
	return c.spawn("next", Cursor.Next)
}

// Prev returns a new tracked cursor to the in-order predecessor. The
// receiver stays registered at its own position.
func (c *TrackedCursor) Prev() (*TrackedCursor, error) {
	return c.spawn("prev", Cursor.Prev)
}

func (c *TrackedCursor) spawn(op string, step func(Cursor) (Cursor, error)) (*TrackedCursor, error) {
	if c.invalidated {
		return nil, c.tree.violation(errAdvance(op, c))
	}
	to, err := step(c.cursor)
	if err != nil {
		return nil, c.tree.violation(err)
	}
	return c.tree.track(to), nil
}

// MoveNext advances the cursor in place to the in-order successor,
// moving its registration along.
func (c *TrackedCursor) MoveNext() error {
	return c.move("next", Cursor.Next)
}

// MovePrev moves the cursor in place to the in-order predecessor,
// moving its registration along.
func (c *TrackedCursor) MovePrev() error {
	return c.move("prev", Cursor.Prev)
}

func (c *TrackedCursor) move(op string, step func(Cursor) (Cursor, error)) error {
	if c.invalidated {
		return c.tree.violation(errAdvance(op, c))
	}
	to, err := step(c.cursor)
	if err != nil {
		return c.tree.violation(err)
	}
	c.tree.registry.deregister(c)
	c.cursor = to
	c.tree.registry.register(c)
	return nil
}

// Release stops tracking the cursor and invalidates it. Releasing an
// invalidated cursor does nothing.
func (c *TrackedCursor) Release() {
	if c.invalidated {
		return
	}
	c.tree.registry.deregister(c)
	c.invalidate()
}

// invalidate is called once the registration is gone.
func (c *TrackedCursor) invalidate() {
	c.invalidated = true
	c.cursor = Cursor{}
}

// Valid reports whether the cursor is alive and positioned at a node.
func (c *TrackedCursor) Valid() bool {
	return !c.invalidated && c.cursor.Valid()
}

// Invalidated reports whether a deletion or a release invalidated the
// cursor.
func (c *TrackedCursor) Invalidated() bool {
	return c.invalidated
}

// BeforeFirst reports whether the cursor is alive and moved before the
// first element.
func (c *TrackedCursor) BeforeFirst() bool {
	return !c.invalidated && c.cursor.BeforeFirst()
}

// PastLast reports whether the cursor is alive and moved past the last
// element.
func (c *TrackedCursor) PastLast() bool {
	return !c.invalidated && c.cursor.PastLast()
}

// Value returns a reference to the value of the node the cursor is
// positioned at.
func (c *TrackedCursor) Value() (*int, error) {
	if c.invalidated {
		return nil, c.tree.violation(errDereference(c))
	}
	v, err := c.cursor.Value()
	if err != nil {
		return nil, c.tree.violation(err)
	}
	return v, nil
}

// ToUnsafe returns the plain cursor at the same position. The result is
// subject to the Cursor contract: it must not be used after the next
// deletion.
func (c *TrackedCursor) ToUnsafe() (Cursor, error) {
	if c.invalidated {
		return Cursor{}, c.tree.violation(errAdvance("conversion", c))
	}
	return c.cursor, nil
}

func (c *TrackedCursor) String() string {
	if c.invalidated {
		return fmt.Sprintf("TrackedCursor#%d(invalidated)", c.id)
	}
	return fmt.Sprintf("TrackedCursor#%d%s", c.id, c.cursor.String()[len("Cursor"):])
}
