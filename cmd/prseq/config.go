// Copyright 2026 The prseq Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"

	json "github.com/goccy/go-json"
	"github.com/mitchellh/mapstructure"
	"github.com/mohae/deepcopy"
	"github.com/pkg/errors"
	ucli "gopkg.in/urfave/cli.v2"
)

type (
	// options are the stat settings: built from defaults, overwritten
	// by the config file, overwritten by command-line flags.
	options struct {
		Format      string `mapstructure:"format"`
		Json        bool   `mapstructure:"json"`
		SeqSizeHint int    `mapstructure:"seqSizeHint"`
		BufSize     int    `mapstructure:"bufSize"`
	}
)

var defaultOptions = &options{}

// loadOptions layers the configuration sources. The config file is a
// JSON object decoded through a generic map, so unknown keys fail fast
// instead of being silently dropped.
func loadOptions(c *ucli.Context) (*options, error) {
	opts := deepcopy.Copy(defaultOptions).(*options)

	if cfgFile := c.String(argCfgFile); cfgFile != "" {
		buf, err := os.ReadFile(cfgFile)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read config file %s", cfgFile)
		}

		var params map[string]interface{}
		if err := json.Unmarshal(buf, &params); err != nil {
			return nil, errors.Wrapf(err, "could not parse config file %s", cfgFile)
		}

		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			ErrorUnused: true,
			Result:      opts,
		})
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(params); err != nil {
			return nil, errors.Wrapf(err, "invalid config file %s", cfgFile)
		}
	}

	if f := c.String(argStatFormat); f != "" {
		opts.Format = f
	}
	if c.Bool(argStatJson) {
		opts.Json = true
	}
	if v := c.Int(argStatSeqHint); v > 0 {
		opts.SeqSizeHint = v
	}
	if v := c.Int(argStatBufSize); v > 0 {
		opts.BufSize = v
	}
	return opts, nil
}
