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

// This binary walks binary trees with plain and tracked cursors and
// shows which tracked cursors a subtree deletion invalidates.
package main

import (
	"os"

	"github.com/bbva/bintree/cmd"
)

var (
	version = "dev"
	commit  = "none"
	date    = ""
)

func main() {
	cmd.SetReleaseInfo(version, commit, date)
	if err := cmd.Root.Execute(); err != nil {
		os.Exit(-1)
	}
}
