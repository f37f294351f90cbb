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

// Package fastq parses FASTQ records (header, wrapped sequence, '+'
// separator, wrapped quality) from files, open streams or stdin, with
// transparent decompression. Quality is accumulated until its length
// equals the sequence length, so every emitted record satisfies
// len(Quality) == len(Sequence); anything else is a malformed-record
// error, never a silently truncated record. The three readers mirror
// package fasta: copying, whole-file zero-copy, streaming buffer-reuse.
package fastq

import "github.com/pkg/errors"

type (
	// Record is an independently owned FASTQ record. ID is the header
	// content after '@'; Sequence and Quality are the concatenations of
	// their wrapped lines and always have equal length.
	Record struct {
		ID       string
		Sequence string
		Quality  string
	}

	// View is a zero-copy record over the whole loaded input. All spans
	// index into the load buffer and stay valid for the lifetime of the
	// ViewReader. TotalLen is the summed length of SeqLines (and, by
	// the format invariant, of QualLines).
	View struct {
		ID        []byte
		SeqLines  [][]byte
		QualLines [][]byte
		TotalLen  int
	}

	// StreamView is a zero-copy record over reused buffers, overwritten
	// by the next pull. Materialize copies it out.
	StreamView struct {
		ID       []byte
		Sequence []byte
		Quality  []byte
		TotalLen int
	}
)

// ErrFormat is the kind of every malformed-input error produced by this
// package: a missing '@' at a record boundary, a missing '+' separator,
// a quality block that overruns or never reaches the sequence length.
// Callers classify with errors.Is.
var ErrFormat = errors.New("malformed FASTQ input")

// Sequence concatenates SeqLines into one newly allocated slice.
func (v View) Sequence() []byte {
	return concat(v.SeqLines, v.TotalLen)
}

// Quality concatenates QualLines into one newly allocated slice.
func (v View) Quality() []byte {
	return concat(v.QualLines, v.TotalLen)
}

// Materialize copies the view into an independently owned Record.
func (v View) Materialize() Record {
	return Record{ID: string(v.ID), Sequence: string(v.Sequence()), Quality: string(v.Quality())}
}

// Materialize copies the view out of the reused buffers, making it safe
// to keep past the next pull.
func (v StreamView) Materialize() Record {
	return Record{ID: string(v.ID), Sequence: string(v.Sequence), Quality: string(v.Quality)}
}

func concat(ll [][]byte, total int) []byte {
	b := make([]byte, 0, total)
	for _, l := range ll {
		b = append(b, l...)
	}
	return b
}
