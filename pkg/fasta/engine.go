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

	"github.com/pkg/errors"
	"github.com/prseq/prseq/pkg/lines"
)

type (
	// sink is the memory strategy behind the engine: it decides whether
	// the line spans handed to it are copied, retained or accumulated.
	// start opens a new record, addSeq appends one sequence line.
	sink interface {
		start(id []byte)
		addSeq(line []byte)
	}

	// engine is the FASTA state machine: expect-header, then accumulate
	// sequence lines until the next header or end of input. A record is
	// emitted when its successor's header (or EOF) is seen, so the
	// header that closed it is kept pending for the next call.
	engine struct {
		cur     lines.Cursor
		pending []byte
		open    bool
	}
)

// next assembles exactly one record into b. It returns io.EOF when the
// input is exhausted with no record pending; empty input is therefore
// plain exhaustion, not an error.
//
// pending is read before the cursor is pulled again, which keeps it
// inside the one-pull validity window of the streaming cursor.
func (e *engine) next(b sink) error {
	if e.pending != nil {
		b.start(e.pending)
		e.pending = nil
		e.open = true
	}

	for {
		line, err := e.cur.Next()
		if err == io.EOF {
			if e.open {
				e.open = false
				return nil
			}
			return io.EOF
		}
		if err != nil {
			return err
		}
		if blank(line) {
			continue
		}

		if line[0] == '>' {
			if e.open {
				e.pending = line[1:]
				e.open = false
				return nil
			}
			b.start(line[1:])
			e.open = true
			continue
		}

		if !e.open {
			return errors.Wrapf(ErrFormat, "sequence data before the first '>' header: %q", clip(line))
		}
		b.addSeq(line)
	}
}

func blank(line []byte) bool {
	for _, c := range line {
		if c != ' ' && c != '\t' {
			return false
		}
	}
	return true
}

// clip bounds the quoted input in error messages.
func clip(line []byte) string {
	const max = 32
	if len(line) > max {
		return string(line[:max]) + "..."
	}
	return string(line)
}
