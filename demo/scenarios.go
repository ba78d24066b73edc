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

package demo

import (
	"github.com/bbva/bintree/log"
	"github.com/bbva/bintree/shape"
	"github.com/bbva/bintree/tree"
)

// Sample shapes, in the notation of the shape package.
const (
	EmptyShape          = "_"
	InvalidationShape   = "3(1(0,2),4)"
	forwardBambooLeft   = "4(3(2(1(0))))"
	forwardBambooRight  = "0(_,1(_,2(_,3(_,4))))"
	forwardFull         = "3(1(0,2),5(4,6))"
	backwardBambooLeft  = "0(1(2(3(4))))"
	backwardBambooRight = "4(_,3(_,2(_,1(_,0))))"
	backwardFull        = "3(5(6,4),1(2,0))"
)

// Suites returns the suites by name, in the order they run.
func Suites() []Suite {
	return []Suite{Forward(), Backward(), Invalidation()}
}

// Lookup returns the suite with the given name.
func Lookup(name string) (Suite, bool) {
	for _, s := range Suites() {
		if s.Name == name {
			return s, true
		}
	}
	return Suite{}, false
}

func build(expr string, logger log.Logger) *tree.Tree {
	return tree.NewTree(shape.MustParse(expr), logger)
}

// Forward walks sample trees from the front.
func Forward() Suite {
	forward := func(expr string, seq ...int) func(log.Logger) bool {
		return func(logger log.Logger) bool {
			return AssertForward(build(expr, logger).Front(), seq)
		}
	}
	return Suite{
		Name: "forward_tests",
		Tests: []Test{
			{Name: "test_empty", Run: forward(EmptyShape)},
			{Name: "test_bamboo_left", Run: forward(forwardBambooLeft, 0, 1, 2, 3, 4)},
			{Name: "test_bamboo_right", Run: forward(forwardBambooRight, 0, 1, 2, 3, 4)},
			{Name: "test_full", Run: forward(forwardFull, 0, 1, 2, 3, 4, 5, 6)},
		},
	}
}

// Backward walks sample trees from the back.
func Backward() Suite {
	backward := func(expr string, seq ...int) func(log.Logger) bool {
		return func(logger log.Logger) bool {
			return AssertBackward(build(expr, logger).Back(), seq)
		}
	}
	return Suite{
		Name: "backward_tests",
		Tests: []Test{
			{Name: "test_empty", Run: backward(EmptyShape)},
			{Name: "test_bamboo_left", Run: backward(backwardBambooLeft, 0, 1, 2, 3, 4)},
			{Name: "test_bamboo_right", Run: backward(backwardBambooRight, 0, 1, 2, 3, 4)},
			{Name: "test_full", Run: backward(backwardFull, 0, 1, 2, 3, 4, 5, 6)},
		},
	}
}

// Invalidation deletes subtrees while tracked cursors are open at every
// position. The invalidate-all policy is the alternative to the one
// implemented and stays disabled.
func Invalidation() Suite {
	return Suite{
		Name: "invalidation_tests",
		Tests: []Test{
			{Name: "test_delete_root", Run: invalidation(3, false, false, false, false, false)},
			{Name: "test_invalidate_all", Run: invalidation(1, false, false, false, false, false), Disabled: true},
			{Name: "test_invalidate_affected", Run: invalidation(1, false, false, false, true, true)},
		},
	}
}

func invalidation(at int, expected ...bool) func(log.Logger) bool {
	return func(logger log.Logger) bool {
		t := build(InvalidationShape, logger)
		its, err := TrackAll(t)
		if err != nil || len(its) != len(expected) {
			return false
		}
		if err := t.DeleteTrackedSubtree(its[at]); err != nil {
			return false
		}
		for i, it := range its {
			if it.Valid() != expected[i] {
				return false
			}
		}
		return true
	}
}

// AssertForward reports whether stepping forward from c yields exactly
// seq and then runs past the end.
func AssertForward(c tree.Cursor, seq []int) bool {
	return assertSequence(c, seq, tree.Cursor.Next)
}

// AssertBackward reports whether stepping backward from c yields
// exactly seq and then runs before the beginning.
func AssertBackward(c tree.Cursor, seq []int) bool {
	return assertSequence(c, seq, tree.Cursor.Prev)
}

func assertSequence(c tree.Cursor, seq []int, step func(tree.Cursor) (tree.Cursor, error)) bool {
	for _, expected := range seq {
		v, err := c.Value()
		if err != nil || *v != expected {
			return false
		}
		if c, err = step(c); err != nil {
			return false
		}
	}
	return !c.Valid()
}

// TrackAll opens a tracked cursor at every position of t, in order.
func TrackAll(t *tree.Tree) ([]*tree.TrackedCursor, error) {
	var its []*tree.TrackedCursor
	for it := t.SafeFront(); it.Valid(); {
		its = append(its, it)
		next, err := it.Next()
		if err != nil {
			return nil, err
		}
		it = next
	}
	return its, nil
}
