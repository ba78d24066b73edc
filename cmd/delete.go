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
	"strconv"
	"strings"

	"github.com/bbva/bintree/demo"
	"github.com/bbva/bintree/tree"
	"github.com/octago/sflags/gen/gpflag"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type deleteConfig struct {
	// Tree shape, e.g. 3(1(0,2),4).
	Shape string `desc:"Tree shape expression, e.g. '3(1(0,2),4)'"`

	// Value of the subtree root to delete.
	At int `desc:"Delete the subtree rooted at the first node (in order) holding this value"`
}

func newDeleteCommand(ctx *cmdContext) *cobra.Command {
	conf := &deleteConfig{}

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a subtree and report which tracked cursors survived",
		Long: `Opens a tracked cursor at every node of the tree, deletes the subtree
rooted at the first node holding the given value and prints, for every
cursor, whether it is still valid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := shapeParse(conf.Shape, ctx.logger)
			if err != nil {
				return err
			}

			its, err := demo.TrackAll(t)
			if err != nil {
				return err
			}
			values := make([]int, len(its))
			var target *tree.TrackedCursor
			for i, it := range its {
				v, err := it.Value()
				if err != nil {
					return err
				}
				values[i] = *v
				if target == nil && *v == conf.At {
					target = it
				}
			}
			if target == nil {
				return errors.Errorf("no node holds value %d", conf.At)
			}

			if err := t.DeleteTrackedSubtree(target); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, it := range its {
				state := "valid"
				if it.Invalidated() {
					state = "invalidated"
				}
				fmt.Fprintf(out, "it%d %d %s\n", i, values[i], state)
			}
			fmt.Fprintf(out, "remaining: %s\n", join(t.Values()))
			return nil
		},
	}

	if err := gpflag.ParseTo(conf, cmd.Flags()); err != nil {
		panic(fmt.Sprintf("Unable to parse delete config: %v", err))
	}

	return cmd
}

func join(values []int) string {
	tokens := make([]string, len(values))
	for i, v := range values {
		tokens[i] = strconv.Itoa(v)
	}
	return strings.Join(tokens, " ")
}
