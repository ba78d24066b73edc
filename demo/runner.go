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

// Package demo holds the showcase scenarios run by `bintree demo`: they
// build sample trees, walk them and delete subtrees, reporting pass or
// failure per scenario.
package demo

import (
	"fmt"
	"io"

	"github.com/bbva/bintree/log"
)

// Test is a named scenario. Run returns whether it passed.
type Test struct {
	Name     string
	Run      func(logger log.Logger) bool
	Disabled bool
}

// Suite groups scenarios under a name.
type Suite struct {
	Name  string
	Tests []Test
}

// Report counts the outcome of a run.
type Report struct {
	Passed, Failed, Skipped int
}

func (r Report) String() string {
	return fmt.Sprintf("%d passed, %d failed, %d skipped", r.Passed, r.Failed, r.Skipped)
}

// Runner prints one line per scenario to its output.
type Runner struct {
	out   io.Writer
	color bool
	log   log.Logger
}

func NewRunner(out io.Writer, color bool, logger log.Logger) *Runner {
	if logger == nil {
		logger = log.L()
	}
	return &Runner{out: out, color: color, log: logger.Named("demo")}
}

// Run executes the given suites in order.
func (r *Runner) Run(suites ...Suite) Report {
	var report Report
	for _, suite := range suites {
		fmt.Fprintf(r.out, "Running `%s`:\n", suite.Name)
		for _, test := range suite.Tests {
			if test.Disabled {
				r.log.Debugf("Skipping disabled scenario %s", test.Name)
				report.Skipped++
				continue
			}
			pass := test.Run(r.log)
			r.print(pass, test.Name)
			if pass {
				report.Passed++
			} else {
				report.Failed++
			}
		}
		fmt.Fprintln(r.out)
	}
	r.log.Infof("Demo finished: %v", report)
	return report
}

func (r *Runner) print(pass bool, name string) {
	switch {
	case pass && r.color:
		fmt.Fprintf(r.out, "\x1b[32m`%s` pass\x1b[0m\n", name)
	case pass:
		fmt.Fprintf(r.out, "`%s` pass\n", name)
	case r.color:
		fmt.Fprintf(r.out, "\x1b[31m`%s` didn't pass\x1b[0m\n", name)
	default:
		fmt.Fprintf(r.out, "`%s` didn't pass\n", name)
	}
}
