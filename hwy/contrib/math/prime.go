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

import stdmath "math"

// isPrime reports whether n is prime by trial division with odd divisors
// up to floor(sqrt(n)).
func isPrime(n uint32) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}

	root := uint32(stdmath.Sqrt(float64(n)))
	for i := uint32(3); i <= root; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// CountPrimes returns the number of primes in the inclusive range [2, limit].
func CountPrimes(limit uint32) uint32 {
	var count uint32
	// uint64 counter so limit == MaxUint32 terminates.
	for i := uint64(2); i <= uint64(limit); i++ {
		if isPrime(uint32(i)) {
			count++
		}
	}
	return count
}

// NthPrime returns the nth prime, counting from NthPrime(1) == 2.
// NthPrime(0) returns 0.
//
// There are 203280221 primes below 2^32; beyond that the candidate wraps
// around and the scan continues from 0.
func NthPrime(n uint32) uint32 {
	if n == 0 {
		return 0
	}

	var count uint32
	num := uint32(2)
	for {
		if isPrime(num) {
			count++
			if count == n {
				return num
			}
		}
		num++
	}
}
