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
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-kernels/task"
)

var errShellUsage = errors.New("usage: TYPE ARGS...")

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Run kernels through the JSON task protocol",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Read JSON requests from stdin and write JSON results to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			var r task.Runner
			return r.Serve(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}, &cobra.Command{
		Use:   "shell",
		Short: "Run tasks typed as shell-style lines, e.g. nthPrime 100",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	})
	return cmd
}

// runShell executes one request per non-empty input line until EOF.
func runShell(in io.Reader, out io.Writer) error {
	var r task.Runner
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16<<20)
	id := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		id++
		req, err := parseShellLine(strconv.Itoa(id), line)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		res := r.Run(req)
		if !res.Success {
			fmt.Fprintf(out, "%s: error: %s\n", res.Type, res.Error)
			continue
		}
		value, err := json.Marshal(res.Result)
		if err != nil {
			fmt.Fprintf(out, "%s: error: %v: %v\n", res.Type, task.ErrResult, err)
			continue
		}
		fmt.Fprintf(out, "%s: %s  (%.3fms)\n", res.Type, value, res.Duration)
	}
	return scanner.Err()
}

// parseShellLine turns "TYPE ARGS..." into a request. Arguments are split
// with shell quoting rules and mapped to the payload shape of TYPE:
//
//	sort 3 1 2            -> [3, 1, 2]
//	gcd 48 18             -> {"a": 48, "b": 18}
//	reverse "hello world" -> "hello world"
//	nthPrime 100          -> 100
func parseShellLine(id, line string) (task.Request, error) {
	fields, err := shlex.Split(line)
	if err != nil {
		return task.Request{}, fmt.Errorf("parse %q: %w", line, err)
	}
	if len(fields) == 0 {
		return task.Request{}, errShellUsage
	}
	typ, args := task.Type(fields[0]), fields[1:]

	var payload any
	switch typ {
	case task.Sort, task.Sum:
		data, err := parseInt32s(args)
		if err != nil {
			return task.Request{}, err
		}
		payload = data
	case task.GCD:
		if len(args) != 2 {
			return task.Request{}, fmt.Errorf("gcd: want 2 arguments, got %d", len(args))
		}
		a, errA := strconv.ParseUint(args[0], 10, 64)
		b, errB := strconv.ParseUint(args[1], 10, 64)
		if err := errors.Join(errA, errB); err != nil {
			return task.Request{}, fmt.Errorf("gcd: %w", err)
		}
		payload = task.GCDPayload{A: a, B: b}
	case task.Reverse, task.WordCount:
		payload = strings.Join(args, " ")
	default:
		// Scalar kernels and JSON-shaped payloads are passed through as
		// written; the task layer validates them.
		if len(args) != 1 {
			return task.Request{ID: id, Type: typ}, nil
		}
		if !json.Valid([]byte(args[0])) {
			return task.Request{}, fmt.Errorf("%s: argument %q is not JSON", typ, args[0])
		}
		return task.Request{ID: id, Type: typ, Payload: json.RawMessage(args[0])}, nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return task.Request{}, err
	}
	return task.Request{ID: id, Type: typ, Payload: raw}, nil
}
