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

//go:build wasip1

// Command computewasm is the WebAssembly module a host loads to run the
// kernels. Build it as a reactor:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o compute.wasm ./cmd/computewasm
//
// Buffers cross the boundary as a pointer and a length into linear memory
// obtained from alloc, and are mutated in place. String results come back as
// a packed uint64 (pointer << 32 | length) that the host releases with
// dealloc after reading.
package main

import (
	"log/slog"
	"os"
	"unsafe"

	"github.com/ajroetker/go-kernels/hwy"
	"github.com/ajroetker/go-kernels/hwy/contrib/algo"
	"github.com/ajroetker/go-kernels/hwy/contrib/image"
	"github.com/ajroetker/go-kernels/hwy/contrib/math"
	"github.com/ajroetker/go-kernels/hwy/contrib/sort"
	"github.com/ajroetker/go-kernels/hwy/contrib/text"
	"github.com/ajroetker/go-kernels/internal/abi"
)

var arena abi.Arena

func init() {
	hwy.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
	hwy.InstallPanicHook()
}

//go:wasmexport alloc
func alloc(size uint32) unsafe.Pointer {
	return arena.Alloc(size)
}

//go:wasmexport dealloc
func dealloc(ptr unsafe.Pointer) {
	arena.Free(ptr)
}

//go:wasmexport fibonacci_recursive
func fibonacciRecursive(n uint32) uint64 {
	defer hwy.ReportPanic("fibonacci_recursive")
	return math.FibonacciRecursive(n)
}

//go:wasmexport fibonacci_iterative
func fibonacciIterative(n uint32) uint64 {
	defer hwy.ReportPanic("fibonacci_iterative")
	return math.FibonacciIterative(n)
}

//go:wasmexport count_primes
func countPrimes(limit uint32) uint32 {
	defer hwy.ReportPanic("count_primes")
	return math.CountPrimes(limit)
}

//go:wasmexport get_nth_prime
func getNthPrime(n uint32) uint32 {
	defer hwy.ReportPanic("get_nth_prime")
	return math.NthPrime(n)
}

//go:wasmexport grayscale
func grayscale(ptr unsafe.Pointer, n uint32) {
	defer hwy.ReportPanic("grayscale")
	image.Grayscale(abi.Bytes(ptr, n))
}

//go:wasmexport invert
func invert(ptr unsafe.Pointer, n uint32) {
	defer hwy.ReportPanic("invert")
	image.Invert(abi.Bytes(ptr, n))
}

//go:wasmexport adjust_brightness
func adjustBrightness(ptr unsafe.Pointer, n uint32, factor float32) {
	defer hwy.ReportPanic("adjust_brightness")
	image.AdjustBrightness(abi.Bytes(ptr, n), factor)
}

//go:wasmexport blur
func blur(ptr unsafe.Pointer, n, width, height uint32) {
	defer hwy.ReportPanic("blur")
	image.Blur(abi.Bytes(ptr, n), width, height)
}

//go:wasmexport sum_array
func sumArray(ptr unsafe.Pointer, n uint32) int64 {
	defer hwy.ReportPanic("sum_array")
	return algo.SumArray(abi.Int32s(ptr, n))
}

//go:wasmexport quick_sort
func quickSort(ptr unsafe.Pointer, n uint32) {
	defer hwy.ReportPanic("quick_sort")
	sort.QuickSort(abi.Int32s(ptr, n))
}

//go:wasmexport reverse_string
func reverseString(ptr unsafe.Pointer, n uint32) uint64 {
	defer hwy.ReportPanic("reverse_string")
	return arena.String(text.Reverse(abi.Text(ptr, n)))
}

//go:wasmexport word_count
func wordCount(ptr unsafe.Pointer, n uint32) uint32 {
	defer hwy.ReportPanic("word_count")
	return text.WordCount(abi.Text(ptr, n))
}

//go:wasmexport factorial
func factorial(n uint32) uint64 {
	defer hwy.ReportPanic("factorial")
	return math.Factorial(n)
}

//go:wasmexport gcd
func gcd(a, b uint64) uint64 {
	defer hwy.ReportPanic("gcd")
	return math.GCD(a, b)
}

func main() {}
