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

// Package contrib groups the kernels built on the hwy lane primitives.
//
// # Subpackages
//
//   - algo: reductions over integer slices (SumArray)
//   - image: in-place RGBA pixel kernels (Grayscale, Invert, AdjustBrightness, Blur)
//   - math: Fibonacci, primes, factorial and GCD
//   - matmul: dense float64 matrix multiplication
//   - sort: in-place introsort (QuickSort, VQSort)
//   - text: Unicode-aware Reverse and WordCount
//
// Every kernel runs to completion on the calling goroutine, borrows its
// arguments for the duration of the call and keeps no state between calls.
//
//	import "github.com/ajroetker/go-kernels/hwy/contrib/image"
//
//	pix := img.Pix()
//	image.Grayscale(pix)
//	image.Blur(pix, uint32(img.Width()), uint32(img.Height()))
package contrib
