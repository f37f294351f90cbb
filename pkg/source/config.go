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
	"io"

	"github.com/pkg/errors"
)

type (
	// Config selects exactly one byte source. Setting more than one of
	// the selectors is a configuration error reported by Check().
	Config struct {
		// Path is a filesystem path to be opened. The special value "-"
		// selects the process' standard input.
		Path string

		// Reader is an already-open byte stream. The stream is never
		// closed by the Source, its lifetime belongs to the caller.
		Reader io.Reader

		// Stdin selects the process' standard input.
		Stdin bool
	}
)

// ErrInvalidConfig is returned when the input selectors contradict each
// other or none is provided. Callers classify with errors.Is.
var ErrInvalidConfig = errors.New("invalid source config")

func (c *Config) Check() error {
	cnt := 0
	if c.Path != "" {
		cnt++
	}
	if c.Reader != nil {
		cnt++
	}
	if c.Stdin {
		cnt++
	}

	if cnt == 0 {
		return errors.Wrap(ErrInvalidConfig, "no input selected, set one of Path, Reader or Stdin")
	}
	if cnt > 1 {
		return errors.Wrapf(ErrInvalidConfig,
			"ambiguous input: Path=%q, Reader set=%t, Stdin=%t, exactly one must be set",
			c.Path, c.Reader != nil, c.Stdin)
	}
	return nil
}
