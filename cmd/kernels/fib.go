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

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-kernels/hwy/contrib/math"
)

func newFibCmd() *cobra.Command {
	var recursiveLimit uint32
	cmd := &cobra.Command{
		Use:   "fib N",
		Short: "Compute F(N) recursively and iteratively and compare timings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseUint32("N", args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			start := time.Now()
			iter := math.FibonacciIterative(n)
			fmt.Fprintf(out, "iterative  F(%d) = %d  (%v)\n", n, iter, time.Since(start))

			if n > recursiveLimit {
				fmt.Fprintf(out, "recursive  skipped, N > %d\n", recursiveLimit)
				return nil
			}
			start = time.Now()
			rec := math.FibonacciRecursive(n)
			fmt.Fprintf(out, "recursive  F(%d) = %d  (%v)\n", n, rec, time.Since(start))
			if n > math.MaxExactFibonacci {
				fmt.Fprintf(out, "note: F(%d) exceeds 64 bits, values wrapped\n", n)
			}
			return nil
		},
	}
	cmd.Flags().Uint32Var(&recursiveLimit, "recursive-limit", 40, "largest N to run the exponential recursive form for")
	return cmd
}
