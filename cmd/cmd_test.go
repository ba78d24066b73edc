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
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/require"
)

func execute(args ...string) (string, error) {
	root := newRootCommand()
	var out, stderr bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestWalk(t *testing.T) {

	testCases := []struct {
		args     []string
		expected string
	}{
		{
			args:     []string{"walk", "--shape", "_"},
			expected: "\n",
		},
		{
			args:     []string{"walk", "--shape", "3(1(0,2),4)"},
			expected: "0 1 2 3 4\n",
		},
		{
			args:     []string{"walk", "--shape", "3(1(0,2),4)", "--backward"},
			expected: "4 3 2 1 0\n",
		},
		{
			args:     []string{"walk", "--shape", "0(_,1(_,2))", "--print"},
			expected: "0 1 2\n0\n\tR 1\n\t\tR 2\n",
		},
	}

	for i, c := range testCases {
		out, err := execute(c.args...)
		require.NoErrorf(t, err, "in test case %d", i)
		require.Equalf(t, c.expected, out, "in test case %d", i)
	}
}

func TestWalkErrors(t *testing.T) {

	testCases := []struct {
		args     []string
		expected string
	}{
		{
			args:     []string{"walk"},
			expected: errMissingShape,
		},
		{
			args:     []string{"walk", "--shape", "3(1"},
			expected: `shape "3(1": offset 3: expected ')': malformed shape`,
		},
		{
			args:     []string{"walk", "--shape", "1", "extra"},
			expected: `unknown command "extra" for "bintree walk"`,
		},
	}

	for i, c := range testCases {
		_, err := execute(c.args...)
		require.Errorf(t, err, "in test case %d", i)
		require.Equalf(t, c.expected, err.Error(), "in test case %d", i)
	}
}

func TestDelete(t *testing.T) {

	testCases := []struct {
		at       string
		expected string
	}{
		{
			at: "1",
			expected: "it0 0 invalidated\n" +
				"it1 1 invalidated\n" +
				"it2 2 invalidated\n" +
				"it3 3 valid\n" +
				"it4 4 valid\n" +
				"remaining: 3 4\n",
		},
		{
			at: "3",
			expected: "it0 0 invalidated\n" +
				"it1 1 invalidated\n" +
				"it2 2 invalidated\n" +
				"it3 3 invalidated\n" +
				"it4 4 invalidated\n" +
				"remaining: \n",
		},
		{
			at: "2",
			expected: "it0 0 valid\n" +
				"it1 1 valid\n" +
				"it2 2 invalidated\n" +
				"it3 3 valid\n" +
				"it4 4 valid\n" +
				"remaining: 0 1 3 4\n",
		},
	}

	for i, c := range testCases {
		out, err := execute("delete", "--shape", "3(1(0,2),4)", "--at", c.at)
		require.NoErrorf(t, err, "in test case %d", i)
		require.Equalf(t, c.expected, out, "in test case %d", i)
	}
}

func TestDeleteMissingValue(t *testing.T) {
	_, err := execute("delete", "--shape", "3(1(0,2),4)", "--at", "9")
	require.EqualError(t, err, "no node holds value 9")
}

func TestDemo(t *testing.T) {
	out, err := execute("demo", "--suite", "forward_tests")
	require.NoError(t, err)
	require.Equal(t, "Running `forward_tests`:\n"+
		"`test_empty` pass\n"+
		"`test_bamboo_left` pass\n"+
		"`test_bamboo_right` pass\n"+
		"`test_full` pass\n\n", out)

	out, err = execute("demo")
	require.NoError(t, err)
	require.Contains(t, out, "Running `backward_tests`:")
	require.Contains(t, out, "`test_invalidate_affected` pass")
	require.NotContains(t, out, "test_invalidate_all")
	require.NotContains(t, out, "didn't pass")

	_, err = execute("demo", "--suite", "sideways")
	require.EqualError(t, err, `unknown suite "sideways"`)
}

func TestVersion(t *testing.T) {
	out, err := execute("version")
	require.NoError(t, err)
	require.Regexp(t, `^bintree \S+ \(.+, rev \S+, built .+\)\n$`, out)
}

func TestLogLevelSources(t *testing.T) {
	dir, err := ioutil.TempDir("", "bintree-cmd")
	require.NoError(t, err)
	defer func() { require.NoError(t, os.RemoveAll(dir)) }()

	file := filepath.Join(dir, "bintree.yaml")
	require.NoError(t, ioutil.WriteFile(file, []byte("log: verbose\n"), 0644))

	_, err = execute("--log", "loud", "version")
	require.EqualError(t, err, `unknown log level "loud"`)

	_, err = execute("--config", file, "version")
	require.EqualError(t, err, `unknown log level "verbose"`)

	// flags take precedence over the config file
	_, err = execute("--config", file, "--log", "debug", "version")
	require.NoError(t, err)

	t.Setenv("BINTREE_LOG", "chatty")
	_, err = execute("version")
	require.EqualError(t, err, `unknown log level "chatty"`)
}

func TestConfigFileInHome(t *testing.T) {
	dir, err := ioutil.TempDir("", "bintree-home")
	require.NoError(t, err)
	defer func() { require.NoError(t, os.RemoveAll(dir)) }()

	homedir.DisableCache = true
	defer func() { homedir.DisableCache = false }()
	t.Setenv("HOME", dir)

	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "bintree.yaml"), []byte("metrics: true\n"), 0644))

	out, err := execute("--config", "~/bintree.yaml", "delete", "--shape", "1(0,2)", "--at", "0")
	require.NoError(t, err)
	require.Contains(t, out, "remaining: 1 2\n")
	require.Contains(t, out, "# TYPE bintree_subtree_deletions_total counter")
	require.Contains(t, out, "bintree_tracked_cursors")

	_, err = execute("--config", "~/missing.yaml", "version")
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading config file")
}

func TestParameters(t *testing.T) {

	require.NoError(t, levelParse("TRACE"))
	require.NoError(t, levelParse("silent"))
	require.EqualError(t, levelParse(""), `unknown log level ""`)

	suites, err := suiteParse()
	require.NoError(t, err)
	require.Len(t, suites, 3)

	suites, err = suiteParse("invalidation_tests", "forward_tests")
	require.NoError(t, err)
	require.Equal(t, "invalidation_tests", suites[0].Name)
	require.Equal(t, "forward_tests", suites[1].Name)

	tr, err := shapeParse("_", nil)
	require.NoError(t, err)
	require.Zero(t, tr.Len())
}
