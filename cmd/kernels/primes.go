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

func newPrimesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "primes",
		Short: "Count primes or find the nth prime",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "count MAX",
		Short: "Count the primes in [2, MAX]",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := parseUint32("MAX", args[0])
			if err != nil {
				return err
			}
			start := time.Now()
			count := math.CountPrimes(limit)
			fmt.Fprintf(cmd.OutOrStdout(), "%d primes <= %d  (%v)\n", count, limit, time.Since(start))
			return nil
		},
	}, &cobra.Command{
		Use:   "nth N",
		Short: "Print the Nth prime (1-indexed)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseUint32("N", args[0])
			if err != nil {
				return err
			}
			start := time.Now()
			p := math.NthPrime(n)
			fmt.Fprintf(cmd.OutOrStdout(), "prime #%d = %d  (%v)\n", n, p, time.Since(start))
			return nil
		},
	})
	return cmd
}
