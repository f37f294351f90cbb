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

package fastq

import (
	"io"

	"github.com/pkg/errors"
	"github.com/prseq/prseq/pkg/lines"
)

type (
	// sink is the memory strategy behind the engine. The engine drives
	// it through one record: start, addSeq for every sequence line,
	// addQual for every quality line. seqLen and qualLen report the
	// accumulated lengths the quality phase steers by.
	sink interface {
		start(id []byte)
		addSeq(line []byte)
		seqLen() int
		addQual(line []byte)
		qualLen() int
	}

	// engine is the FASTQ state machine: expect '@' header, accumulate
	// sequence until the '+' separator, then accumulate quality until
	// its length reaches the sequence length exactly. Unlike FASTA no
	// lookahead is needed, the quality length decides where the record
	// ends.
	engine struct {
		cur lines.Cursor
	}
)

// next assembles exactly one record into b. It returns io.EOF when the
// input is exhausted at a record boundary; end of input anywhere inside
// a record is a malformed-record error.
func (e *engine) next(b sink) error {
	var hdr []byte
	for {
		line, err := e.cur.Next()
		if err != nil {
			return err // io.EOF here is clean exhaustion
		}
		if blank(line) {
			continue
		}
		hdr = line
		break
	}
	if hdr[0] != '@' {
		return errors.Wrapf(ErrFormat, "record must start with '@', got %q", clip(hdr))
	}
	b.start(hdr[1:])

	// sequence lines until the '+' separator; text after '+' is read
	// and discarded, it is not validated against the id
	for {
		line, err := e.cur.Next()
		if err == io.EOF {
			return errors.Wrap(ErrFormat, "input ended before the '+' separator")
		}
		if err != nil {
			return err
		}
		if blank(line) {
			continue
		}
		if line[0] == '+' {
			break
		}
		b.addSeq(line)
	}

	need := b.seqLen()
	for b.qualLen() < need {
		line, err := e.cur.Next()
		if err == io.EOF {
			return errors.Wrapf(ErrFormat,
				"input ended with %d of %d quality bytes", b.qualLen(), need)
		}
		if err != nil {
			return err
		}
		if blank(line) {
			continue
		}
		if b.qualLen()+len(line) > need {
			// a quality line may end exactly at the needed length, but
			// never run past it into the next record
			return errors.Wrapf(ErrFormat,
				"quality overruns sequence length %d by %d bytes", need, b.qualLen()+len(line)-need)
		}
		b.addQual(line)
	}
	return nil
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
