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

package algo

import "github.com/ajroetker/go-kernels/hwy"

// SumArray returns the sum of data with an int64 accumulator.
// An empty slice sums to 0.
func SumArray(data []int32) int64 {
	lanes := hwy.MaxLanes[int64]()
	wide := make([]int64, lanes)
	acc := hwy.Zero[int64]()

	widen := func(offset, count int) {
		for i := range count {
			wide[i] = int64(data[offset+i])
		}
		acc = hwy.Add(acc, hwy.Load(wide[:count]))
	}

	hwy.ProcessWithTail[int64](len(data),
		func(offset int) { widen(offset, lanes) },
		widen,
	)
	return hwy.ReduceSum(acc)
}
