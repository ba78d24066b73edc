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

package cmd

import (
	"fmt"

	"github.com/bbva/bintree/demo"
	"github.com/bbva/bintree/log"
	"github.com/bbva/bintree/shape"
	"github.com/bbva/bintree/tree"
	"github.com/pkg/errors"
)

const (
	errUnknownLevel = "unknown log level"
	errUnknownSuite = "unknown suite"
	errMissingShape = "missing tree shape"
)

// levelParse checks that the given string names a log level.
func levelParse(level string) error {
	if log.LevelFromString(level) == log.NotSet {
		return fmt.Errorf("%s %q", errUnknownLevel, level)
	}
	return nil
}

// suiteParse returns the demo suites to run: all of them when no name is
// given, or the named ones in the given order.
func suiteParse(names ...string) ([]demo.Suite, error) {
	if len(names) == 0 {
		return demo.Suites(), nil
	}
	suites := make([]demo.Suite, 0, len(names))
	for _, name := range names {
		s, ok := demo.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%s %q", errUnknownSuite, name)
		}
		suites = append(suites, s)
	}
	return suites, nil
}

// shapeParse builds a tree from its shape expression.
func shapeParse(expr string, logger log.Logger) (*tree.Tree, error) {
	if expr == "" {
		return nil, errors.New(errMissingShape)
	}
	root, err := shape.Parse(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "shape %q", expr)
	}
	return tree.NewTree(root, logger), nil
}
