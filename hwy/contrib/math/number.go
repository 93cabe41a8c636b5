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

package math

// MaxExactFactorial is the largest n for which n! fits in a uint64.
const MaxExactFactorial = 20

// factorialZeroFrom is the smallest n whose factorial contains 2^64,
// so every product from here on wraps to exactly 0.
const factorialZeroFrom = 66

// Factorial returns n! modulo 2^64, with 0! = 1! = 1.
// Results for n > MaxExactFactorial have wrapped.
func Factorial(n uint32) uint64 {
	if n <= 1 {
		return 1
	}
	if n >= factorialZeroFrom {
		return 0
	}

	result := uint64(1)
	for i := uint64(2); i <= uint64(n); i++ {
		result *= i
	}
	return result
}

// GCD returns the greatest common divisor of a and b.
// GCD(a, 0) == a and GCD(0, b) == b.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
