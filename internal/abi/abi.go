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

// Package abi marshals kernel arguments and results across the WebAssembly
// linear-memory boundary.
//
// The host passes buffers as a pointer and a length into linear memory and
// receives string results as a single uint64 holding the pointer in the high
// 32 bits and the byte length in the low 32 bits. Addresses are 32-bit on
// wasm, which is the only target where packed pointers are dereferenced.
package abi

import (
	"strings"
	"unsafe"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/ajroetker/go-kernels/hwy"
)

// Arena keeps host-visible allocations reachable until the host frees them.
// The zero value is ready to use. An Arena is not safe for concurrent use.
type Arena struct {
	live map[uintptr][]byte
}

// Alloc returns a pointer to size zeroed bytes that stay valid until Free.
// A zero size returns nil.
func (a *Arena) Alloc(size uint32) unsafe.Pointer {
	if size == 0 {
		return nil
	}
	buf := make([]byte, size)
	ptr := unsafe.Pointer(unsafe.SliceData(buf))
	if a.live == nil {
		a.live = make(map[uintptr][]byte)
	}
	a.live[uintptr(ptr)] = buf
	return ptr
}

// Free releases an allocation returned by Alloc or String.
// It reports whether ptr was live.
func (a *Arena) Free(ptr unsafe.Pointer) bool {
	if ptr == nil {
		return false
	}
	if _, ok := a.live[uintptr(ptr)]; !ok {
		hwy.Logger().Warn("abi: free of unknown pointer", "ptr", uintptr(ptr))
		return false
	}
	delete(a.live, uintptr(ptr))
	return true
}

// Len returns the number of live allocations.
func (a *Arena) Len() int {
	return len(a.live)
}

// String copies s into a pinned allocation and returns the packed
// pointer/length pair. The host frees it with Free once it has read it.
func (a *Arena) String(s string) uint64 {
	ptr := a.Alloc(uint32(len(s)))
	if ptr != nil {
		copy(unsafe.Slice((*byte)(ptr), len(s)), s)
	}
	return PackPtrLen(ptr, uint32(len(s)))
}

// Bytes borrows n bytes of caller memory at ptr. No copy is made.
func Bytes(ptr unsafe.Pointer, n uint32) []byte {
	if ptr == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(ptr), n)
}

// Int32s borrows n int32 elements of caller memory at ptr.
func Int32s(ptr unsafe.Pointer, n uint32) []int32 {
	if ptr == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*int32)(ptr), n)
}

// Text copies n bytes at ptr into a Go string. Ill-formed UTF-8 sequences
// are replaced with U+FFFD so the result is always valid text.
func Text(ptr unsafe.Pointer, n uint32) string {
	return sanitize(string(Bytes(ptr, n)))
}

func sanitize(raw string) string {
	s, _, err := transform.String(runes.ReplaceIllFormed(), raw)
	if err != nil {
		return strings.ToValidUTF8(raw, "\uFFFD")
	}
	return s
}

// PackPtrLen packs a 32-bit address and a length into one uint64.
func PackPtrLen(ptr unsafe.Pointer, n uint32) uint64 {
	return uint64(uint32(uintptr(ptr)))<<32 | uint64(n)
}
