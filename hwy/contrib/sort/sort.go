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

import "github.com/ajroetker/go-kernels/hwy"

// sortInsertionThreshold: use insertion sort for arrays this size or smaller.
const sortInsertionThreshold = 24

// QuickSort sorts data in place in ascending order.
// The sort is not stable.
func QuickSort(data []int32) {
	VQSort(data)
}

// VQSort sorts data in place using an introsort:
//   - Insertion sort for small ranges
//   - Quicksort with a sampled pivot and 3-way partition
//   - Heapsort fallback once recursion gets too deep
//
// Average and worst case are O(n log n). NaN float values are not ordered.
func VQSort[T hwy.Lanes](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}

	// Calculate max recursion depth: 2 * floor(log2(n))
	maxDepth := 0
	for tmp := n; tmp > 0; tmp >>= 1 {
		maxDepth++
	}
	maxDepth *= 2

	sortImpl(data, maxDepth)
}

// sortImpl is the recursive implementation of VQSort. It recurses into the
// smaller partition and loops on the larger one to bound stack depth.
func sortImpl[T hwy.Lanes](data []T, depthLimit int) {
	for {
		n := len(data)

		if n <= sortInsertionThreshold {
			sortInsertion(data)
			return
		}

		// Fallback to heapsort if recursion too deep
		if depthLimit == 0 {
			sortHeap(data)
			return
		}
		depthLimit--

		pivot := PivotSampled(data)
		lt, gt := partition3Way(data, pivot)

		// data[lt:gt] equals the pivot and is already in place.
		if lt < n-gt {
			sortImpl(data[:lt], depthLimit)
			data = data[gt:]
		} else {
			sortImpl(data[gt:], depthLimit)
			data = data[:lt]
		}
	}
}

// sortInsertion is insertion sort for small arrays.
func sortInsertion[T hwy.Lanes](data []T) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && data[j] > key {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

// sortHeap is heapsort for O(n log n) worst-case guarantee.
func sortHeap[T hwy.Lanes](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}

	// Build max-heap
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n)
	}

	// Extract elements
	for i := n - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		siftDown(data, 0, i)
	}
}

func siftDown[T hwy.Lanes](data []T, i, n int) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && data[left] > data[largest] {
			largest = left
		}
		if right < n && data[right] > data[largest] {
			largest = right
		}

		if largest == i {
			break
		}

		data[i], data[largest] = data[largest], data[i]
		i = largest
	}
}

// IsSorted reports whether data is in ascending order.
func IsSorted[T hwy.Lanes](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}
