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
	"github.com/bbva/bintree/log"
	"github.com/imdario/mergo"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Config holds the options shared by every bintree command.
type Config struct {
	// Log level.
	Log string `desc:"Set log level to off, fatal, error, warn, info, debug or trace"`

	// Path to a YAML, TOML or JSON file with default values.
	File string `flag:"config" desc:"Path to a config file (YAML, TOML or JSON)"`

	// Dump the collected metrics after the command finishes.
	Metrics bool `desc:"Print the tree metrics in Prometheus text format on exit"`
}

// DefaultConfig returns the configuration used when neither flags,
// environment nor config file say otherwise.
func DefaultConfig() *Config {
	return &Config{
		Log: "error",
	}
}

// load resolves the configuration with precedence flag > BINTREE_* env
// > config file > default, and builds the command logger from it.
func (ctx *cmdContext) load(cmd *cobra.Command) error {
	v := ctx.viper
	v.SetEnvPrefix("bintree")
	for _, key := range []string{"log", "config", "metrics"} {
		_ = v.BindEnv(key)
	}

	file := v.GetString("config")
	if file != "" {
		path, err := homedir.Expand(file)
		if err != nil {
			return errors.Wrapf(err, "expanding config path %q", file)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config file %s", path)
		}
		file = path
	}

	resolved := &Config{
		Log:     v.GetString("log"),
		File:    file,
		Metrics: v.GetBool("metrics"),
	}
	if err := mergo.Merge(resolved, DefaultConfig()); err != nil {
		return errors.Wrap(err, "merging default config")
	}
	if err := levelParse(resolved.Log); err != nil {
		return err
	}
	*ctx.config = *resolved

	ctx.logger = log.New(&log.LoggerOptions{
		Name:            "bintree",
		IncludeLocation: true,
		Level:           log.LevelFromString(resolved.Log),
		Output:          cmd.ErrOrStderr(),
		TimeFormat:      log.DefaultTimeFormat,
	})
	ctx.logger.Debugf("Loaded config: log=%s config=%q metrics=%t", resolved.Log, resolved.File, resolved.Metrics)

	return nil
}
