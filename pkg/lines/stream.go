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

package lines

import (
	"bytes"
	"io"
)

type (
	// Streaming is a Cursor over one reused working buffer. Memory
	// stays bounded by the longest single line, independent of the
	// input size: consumed bytes are reclaimed by compaction before the
	// buffer is ever grown, and the buffer grows only when one line is
	// longer than the current capacity. Spans returned by Next are
	// valid until the following Next or Close call.
	Streaming struct {
		src io.ReadCloser
		buf []byte
		r   int // start of unconsumed bytes
		w   int // end of unconsumed bytes
		err error
	}
)

const minBufSize = 64

// NewStreaming wraps src with a cursor whose working buffer starts at
// bufSize bytes (a non-positive value selects DefaultBufSize). The size
// is a ceiling only for well-formed inputs: an oversized line grows the
// buffer instead of being truncated or split.
func NewStreaming(src io.ReadCloser, bufSize int) *Streaming {
	if bufSize <= 0 {
		bufSize = DefaultBufSize
	}
	if bufSize < minBufSize {
		bufSize = minBufSize
	}
	return &Streaming{src: src, buf: make([]byte, bufSize)}
}

func (s *Streaming) Next() ([]byte, error) {
	scanned := 0
	for {
		if i := bytes.IndexByte(s.buf[s.r+scanned:s.w], '\n'); i >= 0 {
			end := s.r + scanned + i
			line := s.buf[s.r:end]
			s.r = end + 1
			return dropCR(line), nil
		}
		scanned = s.w - s.r

		if s.err != nil {
			if scanned == 0 {
				return nil, s.err
			}
			if s.err != io.EOF {
				return nil, s.err
			}
			// last line without a terminator
			line := s.buf[s.r:s.w]
			s.r = s.w
			return dropCR(line), nil
		}
		s.fill()
	}
}

// fill reads more bytes behind the unconsumed region, compacting first
// and growing the buffer only when a single line exceeds its capacity.
func (s *Streaming) fill() {
	if s.r > 0 {
		copy(s.buf, s.buf[s.r:s.w])
		s.w -= s.r
		s.r = 0
	}
	if s.w == len(s.buf) {
		nb := make([]byte, 2*len(s.buf))
		copy(nb, s.buf[:s.w])
		s.buf = nb
	}

	n, err := s.src.Read(s.buf[s.w:])
	s.w += n
	if err != nil {
		s.err = err
	}
}

// Close releases the working buffer and closes the underlying source.
func (s *Streaming) Close() error {
	s.buf = nil
	s.r, s.w = 0, 0
	s.err = ErrClosed
	return s.src.Close()
}
