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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTraversalOrder(t *testing.T) {

	testCases := []struct {
		walk     func(*Node, Visitor)
		expected []int
	}{
		{(*Node).PreOrder, []int{3, 1, 0, 2, 5, 4, 6}},
		{(*Node).PostOrder, []int{0, 2, 1, 4, 6, 5, 3}},
	}

	for i, c := range testCases {
		var visited []int
		c.walk(fullTree(), VisitorFunc(func(n *Node, _ int) {
			visited = append(visited, n.Value())
		}))
		require.Equalf(t, c.expected, visited, "in test case %d", i)
	}
}

func TestPrintVisitor(t *testing.T) {
	var v Visitor = NewPrintVisitor()
	rightChain(0, 1, 2).PreOrder(v)

	require.Equal(t, "0\n\tR 1\n\t\tR 2", v.(*PrintVisitor).Result())
	require.Equal(t, "", NewPrintVisitor().Result())
}
