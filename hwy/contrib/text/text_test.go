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
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"golang.org/x/tools/txtar"
)

// fixtures loads NAME.in / NAME.want pairs from a txtar archive.
func fixtures(t *testing.T, path string) map[string][2]string {
	t.Helper()
	ar, err := txtar.ParseFile(path)
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	pairs := make(map[string][2]string)
	for _, f := range ar.Files {
		value := strings.TrimSuffix(string(f.Data), "\n")
		switch {
		case strings.HasSuffix(f.Name, ".in"):
			name := strings.TrimSuffix(f.Name, ".in")
			p := pairs[name]
			p[0] = value
			pairs[name] = p
		case strings.HasSuffix(f.Name, ".want"):
			name := strings.TrimSuffix(f.Name, ".want")
			p := pairs[name]
			p[1] = value
			pairs[name] = p
		default:
			t.Fatalf("%s: unexpected file %q", path, f.Name)
		}
	}
	if len(pairs) == 0 {
		t.Fatalf("%s: no fixtures", path)
	}
	return pairs
}

func TestReverseFixtures(t *testing.T) {
	for name, p := range fixtures(t, "testdata/reverse.txtar") {
		t.Run(name, func(t *testing.T) {
			if got := Reverse(p[0]); got != p[1] {
				t.Errorf("Reverse(%q) = %q, want %q", p[0], got, p[1])
			}
		})
	}
}

func TestReverseTwiceIsIdentity(t *testing.T) {
	inputs := []string{
		"", "x", "hello", "héllo wörld", "日本語テキスト", "👍🏽 thumbs", "é́", "tab\tand\nnewline",
	}
	for _, s := range inputs {
		if got := Reverse(Reverse(s)); got != s {
			t.Errorf("Reverse(Reverse(%q)) = %q", s, got)
		}
		if got, want := utf8.RuneCountInString(Reverse(s)), utf8.RuneCountInString(s); got != want {
			t.Errorf("Reverse(%q) has %d runes, want %d", s, got, want)
		}
	}
}

func TestReverseInvalidUTF8(t *testing.T) {
	got := Reverse("a\xffb")
	if got != "b�a" {
		t.Errorf("Reverse(invalid) = %q, want %q", got, "b�a")
	}
	if !utf8.ValidString(got) {
		t.Errorf("Reverse(invalid) = %q is not valid UTF-8", got)
	}
}

func TestWordCountFixtures(t *testing.T) {
	for name, p := range fixtures(t, "testdata/wordcount.txtar") {
		t.Run(name, func(t *testing.T) {
			want, err := strconv.Atoi(p[1])
			if err != nil {
				t.Fatalf("bad want %q: %v", p[1], err)
			}
			if got := WordCount(p[0]); got != uint32(want) {
				t.Errorf("WordCount(%q) = %d, want %d", p[0], got, want)
			}
		})
	}
}

func TestWordCountMatchesFields(t *testing.T) {
	inputs := []string{
		"", " ", "a", " a ", "a b", "a\t\tb\n\nc", " x y　", "one,two three",
		strings.Repeat("w ", 1000),
	}
	for _, s := range inputs {
		if got, want := WordCount(s), uint32(len(strings.Fields(s))); got != want {
			t.Errorf("WordCount(%q) = %d, want %d", s, got, want)
		}
	}
}

func BenchmarkWordCount(b *testing.B) {
	s := strings.Repeat("the quick brown fox jumps over the lazy dog ", 256)
	b.SetBytes(int64(len(s)))
	for b.Loop() {
		WordCount(s)
	}
}

func BenchmarkReverse(b *testing.B) {
	s := strings.Repeat("héllo wörld 日本 ", 256)
	b.SetBytes(int64(len(s)))
	for b.Loop() {
		Reverse(s)
	}
}
