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
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-kernels/hwy/contrib/algo"
	"github.com/ajroetker/go-kernels/hwy/contrib/math"
	"github.com/ajroetker/go-kernels/hwy/contrib/sort"
)

func newMathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "math",
		Short: "Number theory and array kernels",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "factorial N",
		Short: "Print N! (wraps modulo 2^64 past 20!)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseUint32("N", args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d! = %d\n", n, math.Factorial(n))
			if n > math.MaxExactFactorial {
				fmt.Fprintf(cmd.OutOrStdout(), "note: %d! exceeds 64 bits, value wrapped\n", n)
			}
			return nil
		},
	}, &cobra.Command{
		Use:   "gcd A B",
		Short: "Print the greatest common divisor of A and B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("A: %w", err)
			}
			b, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("B: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "gcd(%d, %d) = %d\n", a, b, math.GCD(a, b))
			return nil
		},
	})
	cmd.AddCommand(
		newValuesCmd("sum VALUES...", "Sum 32-bit integers with a 64-bit accumulator",
			func(out io.Writer, data []int32) {
				fmt.Fprintf(out, "sum = %d\n", algo.SumArray(data))
			}),
		newValuesCmd("sort VALUES...", "Sort 32-bit integers in ascending order",
			func(out io.Writer, data []int32) {
				sort.QuickSort(data)
				fmt.Fprintln(out, formatInt32s(data))
			}),
	)
	return cmd
}

// newValuesCmd builds a command whose arguments are signed 32-bit integers.
// Flag parsing is disabled so that a value such as -1 is not read as a
// shorthand flag; a "--" argument is ignored.
func newValuesCmd(use, short string, fn func(out io.Writer, data []int32)) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              short,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if lo.Contains(args, "-h") || lo.Contains(args, "--help") {
				return cmd.Help()
			}
			data, err := parseInt32s(lo.Without(args, "--"))
			if err != nil {
				return err
			}
			fn(cmd.OutOrStdout(), data)
			return nil
		},
	}
}

func formatInt32s(data []int32) string {
	return strings.Join(lo.Map(data, func(v int32, _ int) string {
		return strconv.FormatInt(int64(v), 10)
	}), " ")
}
