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

// MaxExactFibonacci is the largest n for which F(n) fits in a uint64.
const MaxExactFibonacci = 93

// FibonacciRecursive returns F(n) with F(0)=0 and F(1)=1 using naive double
// recursion. Running time is exponential in n.
func FibonacciRecursive(n uint32) uint64 {
	if n <= 1 {
		return uint64(n)
	}
	return FibonacciRecursive(n-1) + FibonacciRecursive(n-2)
}

// FibonacciIterative returns F(n) in O(n) time.
func FibonacciIterative(n uint32) uint64 {
	if n <= 1 {
		return uint64(n)
	}

	var a, b uint64 = 0, 1
	for i := uint64(2); i <= uint64(n); i++ {
		a, b = b, a+b
	}
	return b
}
