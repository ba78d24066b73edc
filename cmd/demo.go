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
	"github.com/octago/sflags/gen/gpflag"
	"github.com/spf13/cobra"
)

type demoConfig struct {
	// Suites to run, all of them when empty.
	Suite []string `desc:"Suite to run (forward_tests, backward_tests or invalidation_tests); repeat to run several"`

	// Print results in color.
	Color bool `desc:"Print pass and fail results in ANSI colors"`
}

func newDemoCommand(ctx *cmdContext) *cobra.Command {
	conf := &demoConfig{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the cursor scenario suites",
		Long: `Runs the forward, backward and invalidation scenarios over sample trees
and reports every test as passed or not.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			suites, err := suiteParse(conf.Suite...)
			if err != nil {
				return err
			}
			runner := demo.NewRunner(cmd.OutOrStdout(), conf.Color, ctx.logger)
			report := runner.Run(suites...)
			if report.Failed > 0 {
				return fmt.Errorf("%d demo tests didn't pass", report.Failed)
			}
			return nil
		},
	}

	if err := gpflag.ParseTo(conf, cmd.Flags()); err != nil {
		panic(fmt.Sprintf("Unable to parse demo config: %v", err))
	}

	return cmd
}
