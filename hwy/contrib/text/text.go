// Copyright 2025 go-highway Authors
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

package text

import (
	"slices"
	"unicode"
	"unicode/utf8"
)

// Reverse returns s with its runes in reverse order. Multi-byte runes are
// kept intact, so Reverse(Reverse(s)) == s for valid UTF-8.
func Reverse(s string) string {
	if len(s) <= 1 {
		return s
	}
	r := []rune(s)
	slices.Reverse(r)
	return string(r)
}

// WordCount returns the number of maximal runs of non-space runes in s.
// Space is defined by unicode.IsSpace.
func WordCount(s string) uint32 {
	var count uint32
	inWord := false
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		if unicode.IsSpace(r) {
			inWord = false
			continue
		}
		if !inWord {
			count++
			inWord = true
		}
	}
	return count
}
