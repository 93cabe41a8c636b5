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

// Package task runs kernels from JSON requests, one at a time.
//
// A request names a kernel and carries its arguments as a JSON payload:
//
//	{"id": "1", "type": "nthPrime", "payload": 100}
//
// and yields a result with the same id and type, the kernel's return value,
// and the wall time it took in milliseconds:
//
//	{"id": "1", "type": "nthPrime", "success": true, "result": 541, "duration": 0.012}
//
// Bad payloads and unknown types are reported in the result rather than as
// errors, so a stream keeps going after a rejected request. Runner.Serve reads
// a stream of requests and writes one result per request.
package task
