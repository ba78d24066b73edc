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
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/bbva/bintree/log"
	"github.com/bbva/bintree/metrics"
)

// scenarioTree is {3:{1:{0,2}},{4}}.
func scenarioTree() *Tree {
	return NewTree(
		New(3,
			New(1, NewLeaf(0), NewLeaf(2)),
			NewLeaf(4),
		),
		nil,
	)
}

func trackAll(t *testing.T, tree *Tree) []*TrackedCursor {
	t.Helper()
	var cursors []*TrackedCursor
	for it := tree.SafeFront(); it.Valid(); {
		cursors = append(cursors, it)
		next, err := it.Next()
		require.NoError(t, err)
		it = next
	}
	return cursors
}

func validity(cursors []*TrackedCursor) []bool {
	result := make([]bool, len(cursors))
	for i, c := range cursors {
		result[i] = c.Valid()
	}
	return result
}

func TestDeleteInvalidatesAffected(t *testing.T) {

	testCases := []struct {
		name          string
		at            int
		expectedValid []bool
		expectedLeft  []int
	}{
		{"leaf", 0, []bool{false, true, true, true, true}, []int{1, 2, 3, 4}},
		{"inner node", 1, []bool{false, false, false, true, true}, []int{3, 4}},
		{"right leaf", 4, []bool{true, true, true, true, false}, []int{0, 1, 2, 3}},
		{"root", 3, []bool{false, false, false, false, false}, []int{}},
	}

	for _, c := range testCases {
		t.Run(c.name, func(t *testing.T) {
			tree := scenarioTree()
			its := trackAll(t, tree)
			require.Len(t, its, 5)

			err := tree.DeleteTrackedSubtree(its[c.at])
			require.NoError(t, err)

			require.Equal(t, c.expectedValid, validity(its))
			require.Equal(t, c.expectedLeft, tree.Values())
			for i, it := range its {
				require.Equalf(t, !c.expectedValid[i], it.Invalidated(), "cursor %d state", i)
			}
		})
	}
}

func TestDeleteRootInvalidatesAll(t *testing.T) {
	tree := scenarioTree()
	its := trackAll(t, tree)

	require.NoError(t, tree.DeleteTrackedSubtree(its[3]))

	require.Nil(t, tree.Root())
	require.Equal(t, 0, tree.Len())
	require.Equal(t, 0, tree.Tracked())
	require.False(t, tree.Front().Valid())
	for i, it := range its {
		require.Truef(t, it.Invalidated(), "cursor %d should be invalidated", i)
	}
}

func TestSurvivorsKeepTraversing(t *testing.T) {
	tree := scenarioTree()
	its := trackAll(t, tree)

	require.NoError(t, tree.DeleteTrackedSubtree(its[1]))

	// it3 sits at the root, an ancestor of the deleted subtree: it stays
	// valid and its moves are computed against the new shape
	prev, err := its[3].Prev()
	require.NoError(t, err)
	require.True(t, prev.BeforeFirst(), "the root is now the first element")

	next, err := its[3].Next()
	require.NoError(t, err)
	v, err := next.Value()
	require.NoError(t, err)
	require.Equal(t, 4, *v)

	back, err := its[4].Prev()
	require.NoError(t, err)
	v, err = back.Value()
	require.NoError(t, err)
	require.Equal(t, 3, *v)

	require.Equal(t, 2, tree.TrackedAt(tree.Root()), "it3 and the cursor spawned by it4 sit at the root")
}

func TestDeleteThroughUnsafeCursor(t *testing.T) {
	tree := scenarioTree()
	its := trackAll(t, tree)

	c, err := its[1].ToUnsafe()
	require.NoError(t, err)
	require.NoError(t, tree.DeleteSubtree(c))

	require.Equal(t, []bool{false, false, false, true, true}, validity(its))
	require.Equal(t, 2, tree.Len())

	// c now references a released node
	err = tree.DeleteSubtree(c)
	require.Equal(t, ErrInvalidCursorAdvance, errors.Cause(err))
	require.Equal(t, []int{3, 4}, tree.Values(), "a stale cursor must not alter the tree")
}

func TestDeleteOnSentinelFails(t *testing.T) {
	tree := scenarioTree()

	err := tree.DeleteSubtree(Cursor{})
	require.Equal(t, ErrInvalidCursorAdvance, errors.Cause(err))

	end := tree.SafeBack()
	require.NoError(t, end.MoveNext())
	err = tree.DeleteTrackedSubtree(end)
	require.Equal(t, ErrInvalidCursorAdvance, errors.Cause(err))

	require.Equal(t, 5, tree.Len())
}

func TestDeleteForeignNodeFails(t *testing.T) {
	violations := testutil.ToFloat64(metrics.BintreeContractViolationsTotal.WithLabelValues(metrics.KindAdvance))
	tree, other := scenarioTree(), scenarioTree()

	err := tree.DeleteSubtree(other.Front())
	require.Equal(t, ErrInvalidCursorAdvance, errors.Cause(err))
	require.Equal(t, 5, tree.Len())
	require.Equal(t, 5, other.Len())

	empty := NewTree(nil, nil)
	err = empty.DeleteSubtree(tree.Front())
	require.Equal(t, ErrInvalidCursorAdvance, errors.Cause(err))
	require.EqualError(t, err, "deletion on Cursor(0) outside the tree: invalid cursor advance")

	require.Equal(t, violations+2, testutil.ToFloat64(metrics.BintreeContractViolationsTotal.WithLabelValues(metrics.KindAdvance)))
}

func TestDeleteReleasesNodes(t *testing.T) {
	tree := scenarioTree()
	n1 := tree.Root().Left()
	n0 := n1.Left()

	require.NoError(t, tree.DeleteSubtree(cursorAt(n1)))

	require.Nil(t, tree.Root().Left(), "the parent slot must be cleared")
	require.NotNil(t, tree.Root().Right())
	require.Nil(t, n1.Parent())
	require.Nil(t, n1.Left())
	require.Nil(t, n1.Right())
	require.Nil(t, n0.Parent())
}

func TestDeleteMetrics(t *testing.T) {
	deletions := testutil.ToFloat64(metrics.BintreeSubtreeDeletionsTotal)
	released := testutil.ToFloat64(metrics.BintreeNodesReleasedTotal)
	invalidated := testutil.ToFloat64(metrics.BintreeCursorsInvalidatedTotal)
	violations := testutil.ToFloat64(metrics.BintreeContractViolationsTotal.WithLabelValues(metrics.KindAdvance))

	tree := scenarioTree()
	its := trackAll(t, tree)
	require.NoError(t, tree.DeleteTrackedSubtree(its[1]))
	require.Error(t, tree.DeleteTrackedSubtree(its[1]))

	require.Equal(t, deletions+1, testutil.ToFloat64(metrics.BintreeSubtreeDeletionsTotal))
	require.Equal(t, released+3, testutil.ToFloat64(metrics.BintreeNodesReleasedTotal))
	require.Equal(t, invalidated+3, testutil.ToFloat64(metrics.BintreeCursorsInvalidatedTotal))
	require.Equal(t, violations+1, testutil.ToFloat64(metrics.BintreeContractViolationsTotal.WithLabelValues(metrics.KindAdvance)))
}

func TestDeleteLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&log.LoggerOptions{Level: log.Debug, Output: &buf})
	tree := NewTree(New(1, NewLeaf(0), NewLeaf(2)), logger)

	require.NoError(t, tree.DeleteSubtree(tree.Front()))

	require.Contains(t, buf.String(), "tree: Deleted subtree rooted at 0: 1 nodes released, 0 tracked cursors invalidated")
}

func TestNewTreeRejectsOwnedRoot(t *testing.T) {
	child := NewLeaf(0)
	New(1, child, nil)

	require.Panics(t, func() { NewTree(child, nil) })
}

func TestNewTreeRejectsSharedRoot(t *testing.T) {
	root := New(1, NewLeaf(0), NewLeaf(2))
	tree := NewTree(root, nil)

	require.Panics(t, func() { NewTree(root, nil) }, "two trees cannot own the same root")

	it := tree.SafeFront()
	require.NoError(t, tree.DeleteSubtree(tree.Front()))
	require.True(t, it.Invalidated())

	require.NoError(t, tree.DeleteSubtree(tree.Front()))
	require.Zero(t, tree.Len())
	require.NotPanics(t, func() { NewTree(root, nil) }, "a released node can be owned again")
}

func TestInspection(t *testing.T) {
	tree := scenarioTree()

	require.Equal(t, 5, tree.Len())
	require.Equal(t, []int{0, 1, 2, 3, 4}, tree.Values())
	require.Equal(t, "Tree[0 1 2 3 4]", tree.String())
	require.Equal(t, "3\n\tL 1\n\t\tL 0\n\t\tR 2\n\tR 4", tree.Print())
	require.Equal(t, "", NewTree(nil, nil).Print())
	require.Equal(t, "Tree[]", NewTree(nil, nil).String())
}
