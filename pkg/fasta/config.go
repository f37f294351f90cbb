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

package fasta

import (
	"io"

	"github.com/prseq/prseq/pkg/source"
)

type (
	// Config selects the input and carries the buffer hints. Exactly
	// one of Path, Reader and Stdin must be set ("-" as Path selects
	// stdin as well). The hints pre-size buffers and never change what
	// is parsed.
	Config struct {
		// Path is a filesystem path, "-" for stdin.
		Path string

		// Reader is an already-open byte stream, never closed by the reader.
		Reader io.Reader

		// Stdin selects the process' standard input.
		Stdin bool

		// SeqSizeHint is the expected sequence length in bytes. It
		// pre-sizes the per-record accumulators of Reader and
		// StreamReader.
		SeqSizeHint int

		// BufSize pre-sizes the cursor buffer: the working buffer of
		// the streaming cursor, or the initial capacity of the
		// whole-input buffer for ViewReader.
		BufSize int
	}
)

func (c *Config) Check() error {
	return c.source().Check()
}

func (c *Config) source() *source.Config {
	return &source.Config{Path: c.Path, Reader: c.Reader, Stdin: c.Stdin}
}
