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
	"fmt"
	"os"
	"sort"

	"github.com/jrivets/log4g"
	ucli "gopkg.in/urfave/cli.v2"
)

const (
	argCfgFile    = "config-file"
	argLogCfgFile = "log-config-file"

	argStatFormat  = "format"
	argStatJson    = "json"
	argStatSeqHint = "seq-hint"
	argStatBufSize = "buf-size"
)

var logger = log4g.GetLogger("prseq")

// main is the entry point for the 'prseq' command, a consumer of the
// reader packages' public API. Commands:
//
//	stat - stream a FASTA/FASTQ input and print record statistics
func main() {
	defer log4g.Shutdown()

	app := &ucli.App{
		Name:    "prseq",
		Usage:   "FASTA/FASTQ parsing utility",
		Version: "0.1.0",
		Flags: []ucli.Flag{
			&ucli.StringFlag{
				Name:  argCfgFile,
				Usage: "configuration file path (JSON)",
			},
			&ucli.StringFlag{
				Name:  argLogCfgFile,
				Usage: "log4g configuration file path",
			},
		},
		Before: before,
		Commands: []*ucli.Command{
			&ucli.Command{
				Name:      "stat",
				Usage:     "print record statistics for a FASTA/FASTQ input",
				ArgsUsage: "[FILE|-]",
				Flags: []ucli.Flag{
					&ucli.StringFlag{
						Name:  argStatFormat,
						Usage: "input format: fasta or fastq (default: guessed from the file name)",
					},
					&ucli.BoolFlag{
						Name:  argStatJson,
						Usage: "print the statistics as JSON",
					},
					&ucli.IntFlag{
						Name:  argStatSeqHint,
						Usage: "expected sequence length, pre-sizes buffers",
					},
					&ucli.IntFlag{
						Name:  argStatBufSize,
						Usage: "read buffer size in bytes",
					},
				},
				Action: runStat,
			},
		},
	}

	sort.Sort(ucli.FlagsByName(app.Flags))
	sort.Sort(ucli.FlagsByName(app.Commands[0].Flags))
	sort.Sort(ucli.CommandsByName(app.Commands))

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func before(c *ucli.Context) error {
	logCfgFile := c.String(argLogCfgFile)
	if logCfgFile != "" {
		if _, err := os.Stat(logCfgFile); os.IsNotExist(err) {
			logger.Warn("No file ", logCfgFile, " will use default log4g configuration")
		} else if err := log4g.ConfigF(logCfgFile); err != nil {
			return err
		}
	}
	return nil
}
