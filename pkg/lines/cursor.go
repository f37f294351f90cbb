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

// Package lines turns a byte stream into successive logical lines. Two
// cursors implement the same contract with different buffer ownership:
// Buffered loads the whole stream once and hands out spans that stay
// valid until Close, Streaming reuses a bounded working buffer whose
// spans are valid only until the next call.
package lines

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

type (
	// Cursor produces logical lines: content up to a '\n' with the
	// terminator (and a preceding '\r', if any) stripped. A final line
	// without a terminator is still a line. io.EOF is returned after
	// the last line and on every call thereafter.
	//
	// The validity window of the returned span is defined by the
	// implementation, see Buffered and Streaming.
	Cursor interface {
		io.Closer

		Next() ([]byte, error)
	}

	// Buffered is a Cursor over the fully loaded input. Returned spans
	// index into the single load buffer and remain valid until Close.
	Buffered struct {
		buf    []byte
		pos    int
		closed bool
	}
)

// DefaultBufSize is used when a caller provides no size hint.
const DefaultBufSize = 64 * 1024

// ErrClosed is returned by cursors and readers used after Close.
var ErrClosed = errors.New("cursor is closed")

//===================== Buffered =====================

// NewBuffered drains src into one growable buffer and closes src. The
// sizeHint, when positive, pre-sizes the buffer; it never affects the
// produced lines.
func NewBuffered(src io.ReadCloser, sizeHint int) (*Buffered, error) {
	if sizeHint <= 0 {
		sizeHint = DefaultBufSize
	}

	bb := bytes.NewBuffer(make([]byte, 0, sizeHint))
	_, err := bb.ReadFrom(src)
	if cerr := src.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not load input")
	}
	return &Buffered{buf: bb.Bytes()}, nil
}

func (b *Buffered) Next() ([]byte, error) {
	if b.closed {
		return nil, ErrClosed
	}
	if b.pos >= len(b.buf) {
		return nil, io.EOF
	}

	line := b.buf[b.pos:]
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
		b.pos += i + 1
	} else {
		b.pos = len(b.buf)
	}
	return dropCR(line), nil
}

// Close drops the cursor's reference to the load buffer. Spans handed
// out earlier keep the underlying array alive for as long as the caller
// holds them.
func (b *Buffered) Close() error {
	b.buf = nil
	b.closed = true
	return nil
}

func dropCR(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\r' {
		return line[:n-1]
	}
	return line
}
