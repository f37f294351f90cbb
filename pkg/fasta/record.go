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

// Package fasta parses FASTA records (header + wrapped sequence lines)
// from files, open streams or stdin, with transparent decompression.
// Three readers share one parsing engine and differ only in how field
// bytes are materialized: Reader copies fields into caller-owned
// strings, ViewReader hands out spans into the fully loaded input,
// StreamReader reuses a bounded set of buffers across pulls.
package fasta

import "github.com/pkg/errors"

type (
	// Record is an independently owned FASTA record. The ID is the full
	// header content after '>', embedded spaces included; Sequence is
	// the concatenation of all sequence lines, terminators stripped.
	Record struct {
		ID       string
		Sequence string
	}

	// View is a zero-copy record over the whole loaded input. ID and
	// every element of SeqLines index into the load buffer and stay
	// valid for the lifetime of the ViewReader that produced them.
	// TotalLen is the summed length of SeqLines, precomputed so callers
	// need not re-scan.
	View struct {
		ID       []byte
		SeqLines [][]byte
		TotalLen int
	}

	// StreamView is a zero-copy record over reused buffers. ID and
	// Sequence are overwritten by the next pull; callers that keep a
	// record past that point must Materialize it first.
	StreamView struct {
		ID       []byte
		Sequence []byte
		TotalLen int
	}
)

// ErrFormat is the kind of every malformed-input error produced by this
// package. Callers classify with errors.Is.
var ErrFormat = errors.New("malformed FASTA input")

// Sequence concatenates SeqLines into one newly allocated slice.
func (v View) Sequence() []byte {
	seq := make([]byte, 0, v.TotalLen)
	for _, l := range v.SeqLines {
		seq = append(seq, l...)
	}
	return seq
}

// Materialize copies the view into an independently owned Record.
func (v View) Materialize() Record {
	return Record{ID: string(v.ID), Sequence: string(v.Sequence())}
}

// Materialize copies the view out of the reused buffers, making it safe
// to keep past the next pull.
func (v StreamView) Materialize() Record {
	return Record{ID: string(v.ID), Sequence: string(v.Sequence)}
}
