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

package hwy

// ConvertTo converts every lane of v to U with Go conversion rules: integer
// narrowing wraps and float to integer truncates toward zero. Out-of-range
// float to integer conversions are implementation-defined, so clamp first.
//
// The result keeps v's lane count, which may differ from MaxLanes[U]().
// Binary ops on mixed widths use the shorter operand.
func ConvertTo[U, T Lanes](v Vec[T]) Vec[U] {
	result := make([]U, len(v.data))
	for i, x := range v.data {
		result[i] = U(x)
	}
	return Vec[U]{data: result}
}
