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
	"github.com/prseq/prseq/pkg/lines"
	"github.com/prseq/prseq/pkg/source"
)

type (
	// StreamReader is the streaming zero-copy strategy: each pull
	// overwrites the reader's two reusable accumulators and the
	// returned StreamView borrows them until the next pull. This is the
	// only strategy with O(1) memory relative to input size and the one
	// to use for inputs larger than available memory.
	StreamReader struct {
		cur *lines.Streaming
		eng engine
		id  []byte
		seq []byte
		err error
	}
)

// NewStreamReader opens the input selected by cfg and returns a
// buffer-reusing reader over it.
func NewStreamReader(cfg *Config) (*StreamReader, error) {
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	src, err := source.Open(cfg.source())
	if err != nil {
		return nil, err
	}

	r := new(StreamReader)
	r.cur = lines.NewStreaming(src, cfg.BufSize)
	r.eng = engine{cur: r.cur}
	if cfg.SeqSizeHint > 0 {
		r.seq = make([]byte, 0, cfg.SeqSizeHint)
	}
	logger.Debug("New stream reader, codec=", src.Codec())
	return r, nil
}

// Next returns the next record view or io.EOF once the input is
// exhausted. The view is valid only until the following Next or Close
// call; use Materialize to keep it longer. Exhaustion and errors are
// sticky.
func (r *StreamReader) Next() (StreamView, error) {
	if r.err != nil {
		return StreamView{}, r.err
	}
	if err := r.eng.next(r); err != nil {
		r.err = err
		return StreamView{}, err
	}
	return StreamView{ID: r.id, Sequence: r.seq, TotalLen: len(r.seq)}, nil
}

// Close releases the reader's buffers and the underlying source.
func (r *StreamReader) Close() error {
	if r.err == nil {
		r.err = lines.ErrClosed
	}
	return r.cur.Close()
}

func (r *StreamReader) start(id []byte) {
	r.id = append(r.id[:0], id...)
	r.seq = r.seq[:0]
}

func (r *StreamReader) addSeq(line []byte) {
	r.seq = append(r.seq, line...)
}
