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

// Package source unifies the input selectors (filesystem path, open
// stream, stdin) into one decoded byte stream. Compression is detected
// once, by magic bytes, when the source is opened; the rest of the
// pipeline never knows whether the input was compressed.
package source

import (
	"bytes"
	"compress/bzip2"
	"io"
	"os"

	"github.com/jrivets/log4g"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

type (
	// Codec names the compression envelope detected on a Source.
	Codec string

	// Source is the decoded byte stream produced from a Config. It is
	// owned by exactly one reader; Close releases the decompressor and
	// the file handle (when the Source opened one itself).
	Source struct {
		rd      io.Reader
		codec   Codec
		closers []io.Closer
	}

	// decodeReader marks read failures coming out of a decompressor as
	// ErrCorrupt, so callers can tell a broken envelope from plain I/O
	// trouble on an uncompressed stream.
	decodeReader struct {
		rd io.Reader
	}
)

const (
	Plain Codec = "plain"
	Gzip  Codec = "gzip"
	Bzip2 Codec = "bzip2"
	Zstd  Codec = "zstd"
)

// ErrCorrupt is returned (wrapped) when a compressed stream turns out to
// be truncated or damaged.
var ErrCorrupt = errors.New("corrupt compressed stream")

var logger = log4g.GetLogger("prseq.source")

// magicLen covers the longest magic we sniff (zstd, 4 bytes).
const magicLen = 4

//===================== Source =====================

// Open resolves the selector in cfg, sniffs the leading magic bytes and
// wraps the matching decompressor around the raw stream. A stream whose
// head matches no known magic passes through unmodified.
func Open(cfg *Config) (*Source, error) {
	if err := cfg.Check(); err != nil {
		return nil, err
	}

	var (
		raw   io.Reader
		fc    io.Closer
		descr string
	)

	switch {
	case cfg.Stdin || cfg.Path == "-":
		raw, descr = os.Stdin, "stdin"
	case cfg.Reader != nil:
		raw, descr = cfg.Reader, "stream"
	default:
		f, err := os.Open(cfg.Path)
		if err != nil {
			return nil, errors.Wrapf(err, "could not open %s", cfg.Path)
		}
		raw, fc, descr = f, f, cfg.Path
	}

	rd, codec, dc, err := sniff(raw)
	if err != nil {
		if fc != nil {
			fc.Close()
		}
		return nil, errors.Wrapf(err, "could not read %s", descr)
	}

	s := &Source{rd: rd, codec: codec}
	if dc != nil {
		s.closers = append(s.closers, dc)
	}
	if fc != nil {
		s.closers = append(s.closers, fc)
	}
	logger.Debug("Opened ", descr, ", codec=", codec)
	return s, nil
}

func (s *Source) Read(p []byte) (int, error) {
	return s.rd.Read(p)
}

// Codec reports the compression envelope detected at open time.
func (s *Source) Codec() Codec {
	return s.codec
}

// Close releases the decompressor and the underlying file handle, if
// any. A caller-supplied Reader is left open.
func (s *Source) Close() error {
	var err error
	for _, c := range s.closers {
		if e := c.Close(); e != nil && err == nil {
			err = e
		}
	}
	s.closers = nil
	return err
}

//===================== codec sniffing =====================

// sniff reads up to magicLen bytes from r, chains them back in front of
// the remainder and returns the decoded stream together with the codec
// it matched. The returned io.Closer, when not nil, must be closed to
// release decoder state.
func sniff(r io.Reader) (io.Reader, Codec, io.Closer, error) {
	magic := make([]byte, magicLen)
	n, err := io.ReadFull(r, magic)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, Plain, nil, err
	}

	chained := io.MultiReader(bytes.NewReader(magic[:n]), r)
	switch {
	case n >= 2 && magic[0] == 0x1f && magic[1] == 0x8b:
		zr, err := gzip.NewReader(chained)
		if err != nil {
			return nil, Gzip, nil, errors.Wrap(ErrCorrupt, err.Error())
		}
		return &decodeReader{zr}, Gzip, zr, nil

	case n >= 3 && magic[0] == 'B' && magic[1] == 'Z' && magic[2] == 'h':
		return &decodeReader{bzip2.NewReader(chained)}, Bzip2, nil, nil

	case n >= 4 && magic[0] == 0x28 && magic[1] == 0xb5 && magic[2] == 0x2f && magic[3] == 0xfd:
		zr, err := zstd.NewReader(chained)
		if err != nil {
			return nil, Zstd, nil, errors.Wrap(ErrCorrupt, err.Error())
		}
		rc := zr.IOReadCloser()
		return &decodeReader{rc}, Zstd, rc, nil
	}

	return chained, Plain, nil, nil
}

func (d *decodeReader) Read(p []byte) (int, error) {
	n, err := d.rd.Read(p)
	if err != nil && err != io.EOF {
		err = errors.Wrap(ErrCorrupt, err.Error())
	}
	return n, err
}
