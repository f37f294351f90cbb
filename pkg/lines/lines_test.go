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
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, c Cursor) []string {
	var ll []string
	for {
		line, err := c.Next()
		if err == io.EOF {
			return ll
		}
		require.NoError(t, err)
		ll = append(ll, string(line))
	}
}

func cursors(in string, bufSize int) map[string]func() Cursor {
	return map[string]func() Cursor{
		"buffered": func() Cursor {
			b, err := NewBuffered(io.NopCloser(strings.NewReader(in)), bufSize)
			if err != nil {
				panic(err)
			}
			return b
		},
		"streaming": func() Cursor {
			return NewStreaming(io.NopCloser(strings.NewReader(in)), bufSize)
		},
		// one byte per Read, lines always straddle refills
		"streaming-1b": func() Cursor {
			return NewStreaming(io.NopCloser(iotest.OneByteReader(strings.NewReader(in))), bufSize)
		},
	}
}

func TestNextLines(t *testing.T) {
	cases := []struct {
		in  string
		exp []string
	}{
		{"", nil},
		{"\n", []string{""}},
		{"abc", []string{"abc"}},
		{"abc\n", []string{"abc"}},
		{"abc\ndef", []string{"abc", "def"}},
		{"abc\r\ndef\r\n", []string{"abc", "def"}},
		{"a\n\nb\n", []string{"a", "", "b"}},
		{">s1 d\nAC\nGT\n>s2\nTT\n", []string{">s1 d", "AC", "GT", ">s2", "TT"}},
	}

	for _, tc := range cases {
		for name, mk := range cursors(tc.in, 0) {
			c := mk()
			assert.Equal(t, tc.exp, drain(t, c), "input=%q cursor=%s", tc.in, name)
			assert.NoError(t, c.Close())
		}
	}
}

func TestLongLineGrowsBuffer(t *testing.T) {
	long := strings.Repeat("A", 10*1024)
	in := "short\n" + long + "\nend\n"

	for name, mk := range cursors(in, 64) {
		c := mk()
		got := drain(t, c)
		require.Len(t, got, 3, "cursor=%s", name)
		assert.Equal(t, "short", got[0])
		assert.Equal(t, long, got[1])
		assert.Equal(t, "end", got[2])
		assert.NoError(t, c.Close())
	}
}

func TestEOFIsSticky(t *testing.T) {
	for name, mk := range cursors("a\n", 0) {
		c := mk()
		_, err := c.Next()
		require.NoError(t, err, "cursor=%s", name)
		for i := 0; i < 3; i++ {
			_, err = c.Next()
			assert.Equal(t, io.EOF, err, "cursor=%s", name)
		}
	}
}

func TestNextAfterClose(t *testing.T) {
	for name, mk := range cursors("a\nb\n", 0) {
		c := mk()
		_, err := c.Next()
		require.NoError(t, err)
		require.NoError(t, c.Close())

		_, err = c.Next()
		assert.Equal(t, ErrClosed, err, "cursor=%s", name)
	}
}

func TestStreamingSpanValidUntilNextCall(t *testing.T) {
	c := NewStreaming(io.NopCloser(strings.NewReader("first\nsecond\n")), 0)
	defer c.Close()

	l1, err := c.Next()
	require.NoError(t, err)
	first := string(l1) // copy before the next pull
	_, err = c.Next()
	require.NoError(t, err)
	assert.Equal(t, "first", first)
}

func TestBufferedSpansStayValid(t *testing.T) {
	b, err := NewBuffered(io.NopCloser(strings.NewReader("one\ntwo\nthree\n")), 0)
	require.NoError(t, err)
	defer b.Close()

	var spans [][]byte
	for {
		l, err := b.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		spans = append(spans, l)
	}

	require.Len(t, spans, 3)
	assert.Equal(t, "one", string(spans[0]))
	assert.Equal(t, "two", string(spans[1]))
	assert.Equal(t, "three", string(spans[2]))
}

type failReader struct{ err error }

func (f failReader) Read([]byte) (int, error) { return 0, f.err }
func (f failReader) Close() error             { return nil }

func TestReadErrorSurfaces(t *testing.T) {
	boom := io.ErrUnexpectedEOF

	_, err := NewBuffered(failReader{boom}, 0)
	require.Error(t, err)

	c := NewStreaming(failReader{boom}, 0)
	_, err = c.Next()
	assert.Equal(t, boom, err)
}
