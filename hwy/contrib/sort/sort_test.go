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

package sort

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"modernc.org/sortutil"
)

// checkSorted verifies that got is the sorted permutation of input.
func checkSorted(t *testing.T, input, got []int32) {
	t.Helper()
	if !IsSorted(got) {
		t.Fatalf("result is not sorted: %v", got)
	}
	want := slices.Clone(input)
	sortutil.Int32Slice(want).Sort()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("result is not a permutation of the input (-want +got):\n%s", diff)
	}
}

// TestQuickSortEmpty tests sorting empty slices
func TestQuickSortEmpty(t *testing.T) {
	var empty []int32
	QuickSort(empty)
	if len(empty) != 0 {
		t.Errorf("QuickSort(empty) should not modify empty slice")
	}
	QuickSort([]int32{})
}

// TestQuickSortSingle tests sorting single element slices
func TestQuickSortSingle(t *testing.T) {
	data := []int32{42}
	QuickSort(data)
	if data[0] != 42 {
		t.Errorf("QuickSort([42]) = %v, want [42]", data)
	}
}

func TestQuickSortPatterns(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	patterns := map[string]func(n int) []int32{
		"ascending": func(n int) []int32 {
			d := make([]int32, n)
			for i := range d {
				d[i] = int32(i)
			}
			return d
		},
		"descending": func(n int) []int32 {
			d := make([]int32, n)
			for i := range d {
				d[i] = int32(n - i)
			}
			return d
		},
		"all_same": func(n int) []int32 {
			d := make([]int32, n)
			for i := range d {
				d[i] = 5
			}
			return d
		},
		"few_distinct": func(n int) []int32 {
			d := make([]int32, n)
			for i := range d {
				d[i] = int32(rng.Intn(3))
			}
			return d
		},
		"random": func(n int) []int32 {
			d := make([]int32, n)
			for i := range d {
				d[i] = int32(rng.Uint32())
			}
			return d
		},
		"organ_pipe": func(n int) []int32 {
			d := make([]int32, n)
			for i := range d {
				d[i] = int32(min(i, n-i))
			}
			return d
		},
		"extremes": func(n int) []int32 {
			d := make([]int32, n)
			for i := range d {
				if i%2 == 0 {
					d[i] = math.MaxInt32
				} else {
					d[i] = math.MinInt32
				}
			}
			return d
		},
	}

	for name, gen := range patterns {
		for _, n := range []int{2, 3, 8, 24, 25, 100, 1000, 10000} {
			input := gen(n)
			got := slices.Clone(input)
			QuickSort(got)
			t.Run(fmt.Sprintf("%s/%d", name, n), func(t *testing.T) {
				checkSorted(t, input, got)
			})
		}
	}
}

func TestVQSortFloat64(t *testing.T) {
	data := []float64{3.5, -1, 0, 2.25, -7.5, 3.5, 100, -0.5}
	VQSort(data)
	want := []float64{-7.5, -1, -0.5, 0, 2.25, 3.5, 3.5, 100}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("VQSort float64 (-want +got):\n%s", diff)
	}
}

func TestSortHeapDirect(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	input := make([]int32, 500)
	for i := range input {
		input[i] = rng.Int31n(100) - 50
	}
	got := slices.Clone(input)
	sortHeap(got)
	checkSorted(t, input, got)
}

func TestDepthLimitFallsBackToHeapsort(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	input := make([]int32, 2000)
	for i := range input {
		input[i] = rng.Int31()
	}
	got := slices.Clone(input)
	sortImpl(got, 0)
	checkSorted(t, input, got)
}

func TestPartition3Way(t *testing.T) {
	data := []int32{5, 1, 5, 9, 3, 5, 7, 0}
	lt, gt := partition3Way(data, 5)
	for i, v := range data {
		switch {
		case i < lt && v >= 5:
			t.Errorf("data[%d]=%d in < region", i, v)
		case i >= lt && i < gt && v != 5:
			t.Errorf("data[%d]=%d in == region", i, v)
		case i >= gt && v <= 5:
			t.Errorf("data[%d]=%d in > region", i, v)
		}
	}
	if gt-lt != 3 {
		t.Errorf("pivot run length = %d, want 3", gt-lt)
	}
}

func TestPivotSampled(t *testing.T) {
	if got := PivotMedianOf3([]int32{9, 1, 5}); got != 5 {
		t.Errorf("PivotMedianOf3 = %d, want 5", got)
	}
	data := []int32{50, 1, 2, 3, 40, 5, 6, 7, 30, 9, 10, 11, 20, 13, 14, 15}
	got := PivotSampled(data)
	if !slices.Contains(data, got) {
		t.Errorf("PivotSampled returned %d, not an element of the input", got)
	}
}
