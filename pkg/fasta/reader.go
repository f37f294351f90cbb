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

	"github.com/jrivets/log4g"
	"github.com/prseq/prseq/pkg/lines"
	"github.com/prseq/prseq/pkg/source"
)

type (
	// Reader is the copying strategy: every record it returns owns its
	// fields and stays valid for an arbitrary caller lifetime. It runs
	// over the streaming cursor, so memory stays bounded regardless of
	// input size.
	Reader struct {
		cur *lines.Streaming
		eng engine
		id  []byte
		seq []byte
		err error
	}
)

var logger = log4g.GetLogger("prseq.fasta")

// NewReader opens the input selected by cfg and returns a copying
// reader over it.
func NewReader(cfg *Config) (*Reader, error) {
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	src, err := source.Open(cfg.source())
	if err != nil {
		return nil, err
	}

	r := new(Reader)
	r.cur = lines.NewStreaming(src, cfg.BufSize)
	r.eng = engine{cur: r.cur}
	if cfg.SeqSizeHint > 0 {
		r.seq = make([]byte, 0, cfg.SeqSizeHint)
	}
	logger.Debug("New copying reader, codec=", src.Codec())
	return r, nil
}

// Next returns the next record or io.EOF once the input is exhausted.
// Exhaustion and errors are sticky: every later call repeats them.
func (r *Reader) Next() (Record, error) {
	if r.err != nil {
		return Record{}, r.err
	}
	if err := r.eng.next(r); err != nil {
		r.err = err
		return Record{}, err
	}
	return Record{ID: string(r.id), Sequence: string(r.seq)}, nil
}

// Close releases the reader's buffers and the underlying source. It is
// always safe to stop iterating early.
func (r *Reader) Close() error {
	if r.err == nil {
		r.err = lines.ErrClosed
	}
	return r.cur.Close()
}

func (r *Reader) start(id []byte) {
	r.id = append(r.id[:0], id...)
	r.seq = r.seq[:0]
}

func (r *Reader) addSeq(line []byte) {
	r.seq = append(r.seq, line...)
}

// ReadAll reads every record of the selected input into a slice. It is
// a convenience for inputs known to fit in memory; iterate a Reader for
// anything large.
func ReadAll(cfg *Config) ([]Record, error) {
	r, err := NewReader(cfg)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var recs []Record
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
}
