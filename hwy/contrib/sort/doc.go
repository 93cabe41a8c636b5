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

// Package sort provides in-place comparison sorting.
//
// QuickSort is the int32 kernel exported across the host boundary. It is a
// thin wrapper over the generic VQSort introsort, which works for every
// hwy.Lanes element type:
//
//	data := []int32{5, 2, 9, 1}
//	sort.QuickSort(data) // [1 2 5 9]
//
// Neither sort is stable.
package sort
