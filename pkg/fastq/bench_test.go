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
	"io"
	"strings"
	"testing"
)

func BenchmarkReader(b *testing.B) {
	in := genFastq(2000, 80)
	b.SetBytes(int64(len(in)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		r, err := NewReader(&Config{Reader: strings.NewReader(in)})
		if err != nil {
			b.Fatal(err)
		}
		for {
			_, err := r.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				b.Fatal(err)
			}
		}
		r.Close()
	}
}

func BenchmarkStreamReader(b *testing.B) {
	in := genFastq(2000, 80)
	b.SetBytes(int64(len(in)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		r, err := NewStreamReader(&Config{Reader: strings.NewReader(in)})
		if err != nil {
			b.Fatal(err)
		}
		for {
			_, err := r.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				b.Fatal(err)
			}
		}
		r.Close()
	}
}
