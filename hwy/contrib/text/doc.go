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

// Package text provides Unicode-aware string kernels.
//
// Both kernels operate on Unicode scalar values rather than bytes:
//
//	text.Reverse("a😀b")          // "b😀a"
//	text.WordCount("  a  b   c ") // 3
//
// Invalid UTF-8 is decoded as U+FFFD, one replacement per bad byte.
package text
