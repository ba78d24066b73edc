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

// Package cmd implements the bintree command line tool.
package cmd

import (
	"fmt"

	"github.com/bbva/bintree/log"
	"github.com/bbva/bintree/metrics"
	"github.com/octago/sflags/gen/gpflag"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Root is the bintree command, with every subcommand attached.
var Root *cobra.Command = newRootCommand()

// registry collects the tree metrics of every command run by this process.
var registry = prometheus.NewRegistry()

func init() {
	metrics.Register(registry)
}

type cmdContext struct {
	config *Config
	logger log.Logger
	viper  *viper.Viper
}

func newRootCommand() *cobra.Command {
	ctx := &cmdContext{
		config: DefaultConfig(),
		logger: log.L(),
		viper:  viper.New(),
	}

	cmd := &cobra.Command{
		Use:   "bintree",
		Short: "Binary tree cursors with selective invalidation",
		Long: `bintree walks binary trees in order with plain and tracked cursors.
Deleting a subtree invalidates only the tracked cursors that pointed into it;
every other cursor keeps traversing the remaining tree.`,
		// SilenceUsage is set to true -> https://github.com/spf13/cobra/issues/340
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.load(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !ctx.config.Metrics {
				return nil
			}
			return writeMetrics(cmd.OutOrStdout(), registry)
		},
	}

	f := cmd.PersistentFlags()
	if err := gpflag.ParseTo(ctx.config, f); err != nil {
		panic(fmt.Sprintf("Unable to parse bintree config: %v", err))
	}
	for _, name := range []string{"log", "config", "metrics"} {
		_ = ctx.viper.BindPFlag(name, f.Lookup(name))
	}

	cmd.AddCommand(
		newDemoCommand(ctx),
		newWalkCommand(ctx),
		newDeleteCommand(ctx),
		newVersionCommand(),
	)

	return cmd
}
