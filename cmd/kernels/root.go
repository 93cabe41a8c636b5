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
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-kernels/hwy"
)

// LogLevelEnv selects the default log level.
const LogLevelEnv = "KERNELS_LOG_LEVEL"

func newRootCmd() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:          "kernels",
		Short:        "Run compute kernels from the command line",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(logLevel)); err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			hwy.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
			hwy.InstallPanicHook()
			return nil
		},
	}

	defaultLevel := os.Getenv(LogLevelEnv)
	if defaultLevel == "" {
		defaultLevel = "warn"
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", defaultLevel,
		"log level: debug, info, warn or error (env "+LogLevelEnv+")")

	root.AddCommand(
		newFibCmd(),
		newPrimesCmd(),
		newImageCmd(),
		newTextCmd(),
		newMathCmd(),
		newTaskCmd(),
		newBenchCmd(),
		newInfoCmd(),
	)
	return root
}

// parseUint32 parses a decimal argument that must fit in 32 bits.
func parseUint32(name, s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return uint32(v), nil
}

// parseInt32s parses every argument as a signed 32-bit integer.
func parseInt32s(args []string) ([]int32, error) {
	out := make([]int32, len(args))
	for i, s := range args {
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = int32(v)
	}
	return out, nil
}
