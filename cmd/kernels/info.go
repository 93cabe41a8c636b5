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
	"runtime"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-kernels/hwy"
	"github.com/ajroetker/go-kernels/task"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the dispatch level and available task types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(out, "dispatch: %s (%d-byte vectors)\n", hwy.CurrentName(), hwy.CurrentWidth())
			if hwy.NoSimdEnv() {
				fmt.Fprintln(out, "HWY_NO_SIMD is set, lanes run at scalar width")
			}
			fmt.Fprintf(out, "panic hook: %t\n", hwy.PanicHookInstalled())
			types := lo.Map(task.Types(), func(t task.Type, _ int) string { return string(t) })
			fmt.Fprintf(out, "tasks:    %s\n", strings.Join(types, ", "))
			return nil
		},
	}
}
