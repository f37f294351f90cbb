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

package fasta_test

import (
	"fmt"
	"io"
	"strings"

	"github.com/prseq/prseq/pkg/fasta"
)

func ExampleReader() {
	r, err := fasta.NewReader(&fasta.Config{
		Reader: strings.NewReader(">s1 first\nAC\nGT\n>s2 second\nTT\n"),
	})
	if err != nil {
		panic(err)
	}
	defer r.Close()

	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			panic(err)
		}
		fmt.Printf("%s: %s\n", rec.ID, rec.Sequence)
	}

	// Output:
	// s1 first: ACGT
	// s2 second: TT
}

func ExampleStreamReader() {
	r, err := fasta.NewStreamReader(&fasta.Config{
		Reader:  strings.NewReader(">s1\nACGTACGT\n>s2\nTTAA\n"),
		BufSize: 64 * 1024,
	})
	if err != nil {
		panic(err)
	}
	defer r.Close()

	for {
		v, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			panic(err)
		}
		// v borrows reused buffers, copy what must outlive the pull
		fmt.Printf("%s: %d bases\n", v.ID, v.TotalLen)
	}

	// Output:
	// s1: 8 bases
	// s2: 4 bases
}
