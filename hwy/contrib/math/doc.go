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

// Package math provides scalar integer kernels: Fibonacci numbers,
// trial-division primality and basic number theory.
//
// # Sequences
//
//   - FibonacciRecursive(n) - naive double recursion, exponential time
//   - FibonacciIterative(n) - linear time, two accumulators
//
// FibonacciRecursive is deliberately unmemoized: it exists as a worst-case
// CPU-bound benchmark and must agree with FibonacciIterative.
//
// # Primes
//
//   - CountPrimes(limit) - number of primes in [2, limit]
//   - NthPrime(n)        - the nth prime, 1-indexed; NthPrime(0) == 0
//
// # Number Theory
//
//   - Factorial(n) - n! modulo 2^64
//   - GCD(a, b)    - Euclid's algorithm
//
// # Overflow
//
// Results are uint64 (uint32 for the prime kernels). Values that do not fit
// wrap silently, matching unsigned Go arithmetic. F(93) is the largest
// Fibonacci number and 20! the largest factorial that fit exactly.
package math
