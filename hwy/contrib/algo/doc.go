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

// Package algo provides reductions over integer slices.
//
//	total := algo.SumArray([]int32{1, 2, 3, 4, 5}) // 15
//
// SumArray widens every element to int64 before accumulating, so the sum of
// up to 2^32 int32 values cannot overflow.
package algo
