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

package source

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCheck(t *testing.T) {
	assert.NoError(t, (&Config{Path: "some.fa"}).Check())
	assert.NoError(t, (&Config{Stdin: true}).Check())
	assert.NoError(t, (&Config{Reader: strings.NewReader("x")}).Check())

	err := (&Config{}).Check()
	assert.True(t, stderrors.Is(err, ErrInvalidConfig))

	err = (&Config{Path: "some.fa", Stdin: true}).Check()
	assert.True(t, stderrors.Is(err, ErrInvalidConfig))

	err = (&Config{Path: "some.fa", Reader: strings.NewReader("x")}).Check()
	assert.True(t, stderrors.Is(err, ErrInvalidConfig))
}

func TestOpenPlainPassthrough(t *testing.T) {
	s, err := Open(&Config{Reader: strings.NewReader(">a\nACGT\n")})
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, Plain, s.Codec())
	buf, err := io.ReadAll(s)
	require.NoError(t, err)
	assert.Equal(t, ">a\nACGT\n", string(buf))
}

func TestOpenShortPlainInput(t *testing.T) {
	// shorter than the magic window, must still pass through intact
	for _, in := range []string{"", ">", ">a\n"} {
		s, err := Open(&Config{Reader: strings.NewReader(in)})
		require.NoError(t, err)

		buf, err := io.ReadAll(s)
		require.NoError(t, err)
		assert.Equal(t, in, string(buf))
		assert.Equal(t, Plain, s.Codec())
		assert.NoError(t, s.Close())
	}
}

func TestOpenGzip(t *testing.T) {
	content := ">seq1 compressed\nATCG\n>seq2 compressed\nGGCC\n"

	var bb bytes.Buffer
	zw := gzip.NewWriter(&bb)
	_, err := zw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	s, err := Open(&Config{Reader: &bb})
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, Gzip, s.Codec())
	buf, err := io.ReadAll(s)
	require.NoError(t, err)
	assert.Equal(t, content, string(buf))
}

func TestOpenZstd(t *testing.T) {
	content := "@r1\nACGT\n+\nIIII\n"

	var bb bytes.Buffer
	zw, err := zstd.NewWriter(&bb)
	require.NoError(t, err)
	_, err = zw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	s, err := Open(&Config{Reader: &bb})
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, Zstd, s.Codec())
	buf, err := io.ReadAll(s)
	require.NoError(t, err)
	assert.Equal(t, content, string(buf))
}

// bzip2 of ">seq1 bz2\nACGT\nTTAA\n>seq2 bz2\nGGCC\n", the stdlib can
// only decode, so the envelope is pre-built.
var bz2Fasta = []byte{
	0x42, 0x5a, 0x68, 0x39, 0x31, 0x41, 0x59, 0x26, 0x53, 0x59, 0x2a, 0xb1, 0x5a, 0x2d,
	0x00, 0x00, 0x05, 0xdf, 0x80, 0x00, 0x10, 0x40, 0x00, 0x30, 0x01, 0x28, 0x80, 0x04,
	0x00, 0x12, 0x00, 0x28, 0x10, 0x20, 0x00, 0x21, 0x2a, 0x61, 0x3d, 0x20, 0x68, 0x40,
	0x00, 0x04, 0xb2, 0x69, 0x3f, 0x6c, 0x6a, 0x12, 0x7a, 0xe4, 0xb4, 0x43, 0xcc, 0x6c,
	0xb2, 0xcf, 0x16, 0x7c, 0x5d, 0xc9, 0x14, 0xe1, 0x42, 0x40, 0xaa, 0xc5, 0x68, 0xb4,
}

func TestOpenBzip2(t *testing.T) {
	s, err := Open(&Config{Reader: bytes.NewReader(bz2Fasta)})
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, Bzip2, s.Codec())
	buf, err := io.ReadAll(s)
	require.NoError(t, err)
	assert.Equal(t, ">seq1 bz2\nACGT\nTTAA\n>seq2 bz2\nGGCC\n", string(buf))
}

func TestOpenCorruptGzip(t *testing.T) {
	// gzip magic followed by garbage
	in := append([]byte{0x1f, 0x8b}, []byte("definitely not a gzip stream")...)
	_, err := Open(&Config{Reader: bytes.NewReader(in)})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, ErrCorrupt))
}

func TestReadTruncatedGzip(t *testing.T) {
	content := strings.Repeat(">s\nACGTACGTACGT\n", 100)

	var bb bytes.Buffer
	zw := gzip.NewWriter(&bb)
	_, err := zw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	// cut the envelope in half, the failure must surface on Read as an
	// ErrCorrupt kind
	s, err := Open(&Config{Reader: bytes.NewReader(bb.Bytes()[:bb.Len()/2])})
	require.NoError(t, err)
	defer s.Close()

	_, err = io.ReadAll(s)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, ErrCorrupt))
}

func TestOpenFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "in.fa")
	require.NoError(t, os.WriteFile(fn, []byte(">a\nAC\n"), 0644))

	s, err := Open(&Config{Path: fn})
	require.NoError(t, err)

	buf, err := io.ReadAll(s)
	require.NoError(t, err)
	assert.Equal(t, ">a\nAC\n", string(buf))
	assert.NoError(t, s.Close())
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(&Config{Path: filepath.Join(t.TempDir(), "nope.fa")})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, os.ErrNotExist))
}

type closeCounter struct {
	io.Reader
	closed int
}

func (c *closeCounter) Close() error { c.closed++; return nil }

func TestCallerReaderNotClosed(t *testing.T) {
	cc := &closeCounter{Reader: strings.NewReader(">a\nAC\n")}
	s, err := Open(&Config{Reader: cc})
	require.NoError(t, err)

	_, err = io.ReadAll(s)
	require.NoError(t, err)
	require.NoError(t, s.Close())
	assert.Equal(t, 0, cc.closed)
}
