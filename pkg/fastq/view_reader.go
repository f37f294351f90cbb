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
	"github.com/prseq/prseq/pkg/lines"
	"github.com/prseq/prseq/pkg/source"
)

type (
	// ViewReader is the whole-file zero-copy strategy: the input is
	// loaded into one buffer up front and every View it returns indexes
	// into that buffer, staying valid until the reader is discarded.
	// Suited to inputs that comfortably fit in memory.
	ViewReader struct {
		cur       *lines.Buffered
		eng       engine
		id        []byte
		seqLines  [][]byte
		qualLines [][]byte
		seqTotal  int
		qualTotal int
		err       error
	}
)

// NewViewReader loads the input selected by cfg and returns a zero-copy
// reader over it. BufSize, when set, should approximate the input size.
func NewViewReader(cfg *Config) (*ViewReader, error) {
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	src, err := source.Open(cfg.source())
	if err != nil {
		return nil, err
	}
	cur, err := lines.NewBuffered(src, cfg.BufSize)
	if err != nil {
		return nil, err
	}

	r := &ViewReader{cur: cur, eng: engine{cur: cur}}
	logger.Debug("New view reader, codec=", src.Codec())
	return r, nil
}

// Next returns the next record view or io.EOF once the input is
// exhausted. Exhaustion and errors are sticky.
func (r *ViewReader) Next() (View, error) {
	if r.err != nil {
		return View{}, r.err
	}
	if err := r.eng.next(r); err != nil {
		r.err = err
		return View{}, err
	}
	return View{ID: r.id, SeqLines: r.seqLines, QualLines: r.qualLines, TotalLen: r.seqTotal}, nil
}

// Close drops the reader's reference to the load buffer. Views already
// handed out keep their bytes alive for as long as the caller holds them.
func (r *ViewReader) Close() error {
	if r.err == nil {
		r.err = lines.ErrClosed
	}
	return r.cur.Close()
}

func (r *ViewReader) start(id []byte) {
	r.id = id
	// fresh slices per record, the spans inside previously returned
	// Views must not be overwritten
	r.seqLines = nil
	r.qualLines = nil
	r.seqTotal, r.qualTotal = 0, 0
}

func (r *ViewReader) addSeq(line []byte) {
	r.seqLines = append(r.seqLines, line)
	r.seqTotal += len(line)
}

func (r *ViewReader) seqLen() int { return r.seqTotal }

func (r *ViewReader) addQual(line []byte) {
	r.qualLines = append(r.qualLines, line)
	r.qualTotal += len(line)
}

func (r *ViewReader) qualLen() int { return r.qualTotal }
