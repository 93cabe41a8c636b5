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
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-kernels/hwy"
	"github.com/ajroetker/go-kernels/hwy/contrib/algo"
	"github.com/ajroetker/go-kernels/hwy/contrib/image"
	"github.com/ajroetker/go-kernels/hwy/contrib/math"
	"github.com/ajroetker/go-kernels/hwy/contrib/sort"
	"github.com/ajroetker/go-kernels/hwy/contrib/text"
)

// benchConfig sizes the workloads of one bench run.
type benchConfig struct {
	Fib     uint32
	Primes  uint32
	Elems   int
	Side    int
	Words   int
	Repeats int
}

func (c *benchConfig) bind(fs *pflag.FlagSet) {
	fs.Uint32Var(&c.Fib, "fib", 30, "fibonacci N")
	fs.Uint32Var(&c.Primes, "primes", 200_000, "count_primes bound")
	fs.IntVar(&c.Elems, "elems", 1_000_000, "sum/sort array length")
	fs.IntVar(&c.Side, "side", 512, "image side in pixels")
	fs.IntVar(&c.Words, "words", 100_000, "words in the text input")
	fs.IntVar(&c.Repeats, "repeats", 3, "runs per kernel, best is reported")
}

// benchResult is the best of Repeats runs of one kernel.
type benchResult struct {
	Name string
	Best time.Duration
}

func (r benchResult) millis() float64 {
	return float64(r.Best) / float64(time.Millisecond)
}

// runBench times each kernel on fresh inputs and keeps the fastest run.
func runBench(cfg benchConfig) []benchResult {
	rng := rand.New(rand.NewSource(1))
	ints := make([]int32, cfg.Elems)
	for i := range ints {
		ints[i] = rng.Int31() - 1<<30
	}
	pixels := make([]byte, cfg.Side*cfg.Side*image.Channels)
	rng.Read(pixels)
	words := make([]byte, 0, cfg.Words*6)
	for range cfg.Words {
		words = append(words, "héllo "...)
	}
	s := string(words)
	side := uint32(cfg.Side)

	kernels := []struct {
		name  string
		setup func()
		run   func()
	}{
		{"fibonacci_recursive", nil, func() { math.FibonacciRecursive(cfg.Fib) }},
		{"fibonacci_iterative", nil, func() { math.FibonacciIterative(cfg.Fib) }},
		{"count_primes", nil, func() { math.CountPrimes(cfg.Primes) }},
		{"get_nth_prime", nil, func() { math.NthPrime(cfg.Primes / 10) }},
		{"sum_array", nil, func() { algo.SumArray(ints) }},
		{"quick_sort", func() { rng.Shuffle(len(ints), func(i, j int) { ints[i], ints[j] = ints[j], ints[i] }) },
			func() { sort.QuickSort(ints) }},
		{"grayscale", nil, func() { image.Grayscale(pixels) }},
		{"invert", nil, func() { image.Invert(pixels) }},
		{"adjust_brightness", nil, func() { image.AdjustBrightness(pixels, 1.1) }},
		{"blur", nil, func() { image.Blur(pixels, side, side) }},
		{"reverse_string", nil, func() { text.Reverse(s) }},
		{"word_count", nil, func() { text.WordCount(s) }},
	}

	results := make([]benchResult, 0, len(kernels))
	for _, k := range kernels {
		best := time.Duration(1<<63 - 1)
		for range max(cfg.Repeats, 1) {
			if k.setup != nil {
				k.setup()
			}
			start := time.Now()
			k.run()
			best = min(best, time.Since(start))
		}
		hwy.Logger().Debug("bench", "kernel", k.name, "best", best)
		results = append(results, benchResult{Name: k.name, Best: best})
	}
	return results
}

// renderChart writes a bar chart of the results as a standalone HTML page.
func renderChart(w io.Writer, results []benchResult) error {
	names := make([]string, len(results))
	items := make([]opts.BarData, len(results))
	for i, r := range results {
		names[i] = r.Name
		items[i] = opts.BarData{Value: r.millis()}
	}

	title := "Kernel timings"
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "best run in ms, dispatch " + hwy.CurrentName()}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(names).
		AddSeries("ms", items).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}))
	return bar.Render(w)
}

func newBenchCmd() *cobra.Command {
	cfg := benchConfig{}
	var chart string
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time every kernel and optionally chart the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := runBench(cfg)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KERNEL\tBEST")
			for _, r := range results {
				fmt.Fprintf(tw, "%s\t%v\n", r.Name, r.Best)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if chart == "" {
				return nil
			}
			f, err := os.Create(chart)
			if err != nil {
				return err
			}
			if err := renderChart(f, results); err != nil {
				f.Close()
				return fmt.Errorf("render %s: %w", chart, err)
			}
			return f.Close()
		},
	}
	cfg.bind(cmd.Flags())
	cmd.Flags().StringVar(&chart, "chart", "", "write an HTML bar chart to this path")
	return cmd
}
