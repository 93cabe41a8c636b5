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

package abi

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"unicode/utf8"
	"unsafe"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-kernels/hwy"
)

func TestArenaAllocFree(t *testing.T) {
	var a Arena
	if got := a.Alloc(0); got != nil {
		t.Errorf("Alloc(0) = %p, want nil", got)
	}

	p := a.Alloc(16)
	q := a.Alloc(8)
	if p == nil || q == nil {
		t.Fatal("Alloc returned nil for non-zero size")
	}
	if a.Len() != 2 {
		t.Fatalf("Len = %d, want 2", a.Len())
	}
	for i, b := range Bytes(p, 16) {
		if b != 0 {
			t.Fatalf("byte %d = %d, want zeroed memory", i, b)
		}
	}

	if !a.Free(p) {
		t.Error("Free(p) = false, want true")
	}
	if a.Free(p) {
		t.Error("second Free(p) = true, want false")
	}
	if a.Free(nil) {
		t.Error("Free(nil) = true, want false")
	}
	if a.Len() != 1 {
		t.Errorf("Len = %d after free, want 1", a.Len())
	}
}

func TestArenaFreeUnknownLogs(t *testing.T) {
	var buf bytes.Buffer
	hwy.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer hwy.SetLogger(nil)

	var a Arena
	x := 1
	a.Free(unsafe.Pointer(&x))
	if !strings.Contains(buf.String(), "free of unknown pointer") {
		t.Errorf("log output %q missing warning", buf.String())
	}
}

func TestBorrowedSlicesAlias(t *testing.T) {
	var a Arena
	p := a.Alloc(4 * 4)
	ints := Int32s(p, 4)
	copy(ints, []int32{3, -1, 2, 0})
	ints[1] = 7

	again := Int32s(p, 4)
	if diff := cmp.Diff([]int32{3, 7, 2, 0}, again); diff != "" {
		t.Errorf("Int32s did not alias memory (-want +got):\n%s", diff)
	}
	if Bytes(nil, 4) != nil || Int32s(p, 0) != nil {
		t.Error("empty borrows should be nil")
	}
}

func TestArenaString(t *testing.T) {
	var a Arena
	packed := a.String("héllo")
	_, n := unpackPtrLen(packed)
	if n != uint32(len("héllo")) {
		t.Errorf("packed length = %d, want %d", n, len("héllo"))
	}
	if a.Len() != 1 {
		t.Errorf("Len = %d, want 1 pinned string", a.Len())
	}
	if packed := a.String(""); packed != 0 {
		t.Errorf("String(\"\") = %#x, want 0", packed)
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		in   []byte
		want string
	}{
		{[]byte("hello"), "hello"},
		{[]byte("日本"), "日本"},
		{[]byte("a\xffb"), "a�b"},
		{[]byte("\xc3"), "�"},
		{nil, ""},
	}
	for _, tt := range tests {
		var ptr unsafe.Pointer
		if len(tt.in) > 0 {
			ptr = unsafe.Pointer(&tt.in[0])
		}
		got := Text(ptr, uint32(len(tt.in)))
		if got != tt.want {
			t.Errorf("Text(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("Text(%q) = %q is not valid UTF-8", tt.in, got)
		}
	}
}

func TestTextCopies(t *testing.T) {
	src := []byte("abc")
	s := Text(unsafe.Pointer(&src[0]), 3)
	src[0] = 'z'
	if s != "abc" {
		t.Errorf("Text aliased caller memory: %q", s)
	}
}

func TestPackPtrLen(t *testing.T) {
	if got := PackPtrLen(nil, 42); got != 42 {
		t.Errorf("PackPtrLen(nil, 42) = %#x, want 42", got)
	}
	p, n := unpackPtrLen(0x1000<<32 | 42)
	if p != 0x1000 || n != 42 {
		t.Errorf("unpackPtrLen = (%#x, %d), want (0x1000, 42)", p, n)
	}
}

// unpackPtrLen splits a value produced by PackPtrLen, as the host does.
func unpackPtrLen(packed uint64) (ptr uint32, n uint32) {
	return uint32(packed >> 32), uint32(packed)
}
