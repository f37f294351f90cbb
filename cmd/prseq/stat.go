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
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/prseq/prseq/pkg/fasta"
	"github.com/prseq/prseq/pkg/fastq"
	ucli "gopkg.in/urfave/cli.v2"
)

type (
	statResult struct {
		File    string  `json:"file"`
		Format  string  `json:"format"`
		Records int64   `json:"records"`
		Bases   int64   `json:"bases"`
		MinLen  int64   `json:"minLen"`
		MaxLen  int64   `json:"maxLen"`
		AvgLen  float64 `json:"avgLen"`
	}
)

func runStat(c *ucli.Context) error {
	opts, err := loadOptions(c)
	if err != nil {
		return err
	}

	file := c.Args().First()
	format := opts.Format
	if format == "" {
		format = guessFormat(file)
	}

	res := &statResult{File: file, Format: format}
	if res.File == "" || res.File == "-" {
		res.File = "stdin"
	}

	switch format {
	case "fasta":
		err = statFasta(file, opts, res)
	case "fastq":
		err = statFastq(file, opts, res)
	case "":
		return errors.Errorf("could not guess the format of %q, use --%s", file, argStatFormat)
	default:
		return errors.Errorf("unknown format %q, must be fasta or fastq", format)
	}
	if err != nil {
		return err
	}

	if opts.Json {
		buf, err := json.Marshal(res)
		if err != nil {
			return err
		}
		fmt.Println(string(buf))
		return nil
	}

	fmt.Printf("file:    %s", res.File)
	if sz, ok := fileSize(file); ok {
		fmt.Printf(" (%s)", humanize.Bytes(uint64(sz)))
	}
	fmt.Printf("\nformat:  %s\n", res.Format)
	fmt.Printf("records: %s\n", humanize.Comma(res.Records))
	fmt.Printf("bases:   %s\n", humanize.Comma(res.Bases))
	if res.Records > 0 {
		fmt.Printf("seq len: min=%s max=%s avg=%.1f\n",
			humanize.Comma(res.MinLen), humanize.Comma(res.MaxLen), res.AvgLen)
	}
	return nil
}

func statFasta(file string, opts *options, res *statResult) error {
	cfg := &fasta.Config{SeqSizeHint: opts.SeqSizeHint, BufSize: opts.BufSize}
	cfg.Path, cfg.Stdin = inputSelector(file)

	r, err := fasta.NewStreamReader(cfg)
	if err != nil {
		return err
	}
	defer r.Close()

	for {
		v, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		res.add(int64(v.TotalLen))
	}
	res.finish()
	return nil
}

func statFastq(file string, opts *options, res *statResult) error {
	cfg := &fastq.Config{SeqSizeHint: opts.SeqSizeHint, BufSize: opts.BufSize}
	cfg.Path, cfg.Stdin = inputSelector(file)

	r, err := fastq.NewStreamReader(cfg)
	if err != nil {
		return err
	}
	defer r.Close()

	for {
		v, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		res.add(int64(v.TotalLen))
	}
	res.finish()
	return nil
}

func inputSelector(file string) (path string, stdin bool) {
	if file == "" {
		return "", true
	}
	return file, false
}

// guessFormat maps the file extension (compression suffixes stripped)
// onto a format name. Empty result means the caller must be explicit.
func guessFormat(file string) string {
	f := strings.ToLower(file)
	for _, ext := range []string{".gz", ".bz2", ".zst"} {
		f = strings.TrimSuffix(f, ext)
	}
	switch {
	case hasAnySuffix(f, ".fa", ".fasta", ".fna", ".ffn", ".faa"):
		return "fasta"
	case hasAnySuffix(f, ".fq", ".fastq"):
		return "fastq"
	}
	return ""
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, sf := range suffixes {
		if strings.HasSuffix(s, sf) {
			return true
		}
	}
	return false
}

func fileSize(file string) (int64, bool) {
	if file == "" || file == "-" {
		return 0, false
	}
	fi, err := os.Stat(file)
	if err != nil {
		return 0, false
	}
	return fi.Size(), true
}

func (r *statResult) add(seqLen int64) {
	if r.Records == 0 || seqLen < r.MinLen {
		r.MinLen = seqLen
	}
	if seqLen > r.MaxLen {
		r.MaxLen = seqLen
	}
	r.Records++
	r.Bases += seqLen
}

func (r *statResult) finish() {
	if r.Records > 0 {
		r.AvgLen = float64(r.Bases) / float64(r.Records)
	}
}
