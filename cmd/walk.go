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

	"github.com/bbva/bintree/tree"
	"github.com/octago/sflags/gen/gpflag"
	"github.com/spf13/cobra"
)

type walkConfig struct {
	// Tree shape, e.g. 3(1(0,2),4).
	Shape string `desc:"Tree shape expression, e.g. '3(1(0,2),4)'"`

	// Walk from the back.
	Backward bool `desc:"Walk from the last node to the first one"`

	// Print the tree structure after the walk.
	Print bool `desc:"Print the tree structure after the walk"`
}

func newWalkCommand(ctx *cmdContext) *cobra.Command {
	conf := &walkConfig{}

	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Walk a tree in order and print its values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := shapeParse(conf.Shape, ctx.logger)
			if err != nil {
				return err
			}

			start, step := t.Front(), tree.Cursor.Next
			if conf.Backward {
				start, step = t.Back(), tree.Cursor.Prev
			}
			values, err := walk(start, step)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, strings.Join(values, " "))
			if conf.Print && t.Root() != nil {
				fmt.Fprintln(out, t.Print())
			}
			return nil
		},
	}

	if err := gpflag.ParseTo(conf, cmd.Flags()); err != nil {
		panic(fmt.Sprintf("Unable to parse walk config: %v", err))
	}

	return cmd
}

func walk(c tree.Cursor, step func(tree.Cursor) (tree.Cursor, error)) ([]string, error) {
	var values []string
	for c.Valid() {
		v, err := c.Value()
		if err != nil {
			return nil, err
		}
		values = append(values, strconv.Itoa(*v))
		if c, err = step(c); err != nil {
			return nil, err
		}
	}
	return values, nil
}
