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

// Package shape builds trees from a compact textual notation and renders
// them back.
//
// A value alone is a leaf, "v(l,r)" is a node owning the subtrees l and
// r, "v(l)" a node with only a left child and "_" an absent subtree:
//
//	3(1(0,2),4)     root 3, left child 1 with leaves 0 and 2, right leaf 4
//	0(_,1(_,2))     right-leaning chain
package shape

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/bbva/bintree/tree"
)

// ErrMalformedShape is the cause of every parsing error.
var ErrMalformedShape = errors.New("malformed shape")

type parser struct {
	input string
	pos   int
}

// Parse builds the subtree described by expr. "_" yields a nil node,
// which is the root of an empty tree.
func Parse(expr string) (*tree.Node, error) {
	p := &parser{input: expr}
	n, err := p.subtree()
	if err != nil {
		return nil, err
	}
	p.skipSpaces()
	if p.pos != len(p.input) {
		return nil, p.fail("unexpected %q", p.input[p.pos])
	}
	return n, nil
}

// MustParse is like Parse but panics on malformed input. It is meant
// for fixtures.
func MustParse(expr string) *tree.Node {
	n, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return n
}

func (p *parser) subtree() (*tree.Node, error) {
	p.skipSpaces()
	if p.consume('_') {
		return nil, nil
	}
	value, err := p.value()
	if err != nil {
		return nil, err
	}
	p.skipSpaces()
	if !p.consume('(') {
		return tree.NewLeaf(value), nil
	}

	left, err := p.subtree()
	if err != nil {
		return nil, err
	}
	var right *tree.Node
	p.skipSpaces()
	if p.consume(',') {
		if right, err = p.subtree(); err != nil {
			return nil, err
		}
		p.skipSpaces()
	}
	if !p.consume(')') {
		return nil, p.fail("expected ')'")
	}
	return tree.New(value, left, right), nil
}

func (p *parser) value() (int, error) {
	start := p.pos
	if p.pos < len(p.input) && p.input[p.pos] == '-' {
		p.pos++
	}
	for p.pos < len(p.input) && '0' <= p.input[p.pos] && p.input[p.pos] <= '9' {
		p.pos++
	}
	if start == p.pos {
		return 0, p.fail("expected a value")
	}
	text := p.input[start:p.pos]
	v, err := strconv.Atoi(text)
	if err != nil {
		p.pos = start
		return 0, p.fail("bad value %q", text)
	}
	return v, nil
}

func (p *parser) consume(b byte) bool {
	if p.pos < len(p.input) && p.input[p.pos] == b {
		p.pos++
		return true
	}
	return false
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.input) && unicode.IsSpace(rune(p.input[p.pos])) {
		p.pos++
	}
}

func (p *parser) fail(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedShape, "offset %d: "+format, append([]interface{}{p.pos}, args...)...)
}

// Format renders the subtree rooted at n in the notation read by Parse.
func Format(n *tree.Node) string {
	var b strings.Builder
	format(&b, n)
	return b.String()
}

func format(b *strings.Builder, n *tree.Node) {
	if n == nil {
		b.WriteByte('_')
		return
	}
	b.WriteString(strconv.Itoa(n.Value()))
	if n.IsLeaf() {
		return
	}
	b.WriteByte('(')
	format(b, n.Left())
	if n.Right() != nil {
		b.WriteByte(',')
		format(b, n.Right())
	}
	b.WriteByte(')')
}
