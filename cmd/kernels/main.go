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

// Command kernels runs the compute kernels from the command line.
//
// Usage:
//
//	kernels fib 35
//	kernels primes count 1000000
//	kernels image --op blur -o out.png in.jpg
//	kernels text "hello world"
//	kernels math gcd 48 18
//	kernels task serve < requests.jsonl
//	kernels bench --chart bench.html
//	kernels info
//
// The log level comes from --log-level or the KERNELS_LOG_LEVEL environment
// variable (debug, info, warn, error). Logs go to stderr.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
