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
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-kernels/hwy/contrib/text"
)

func newTextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "text WORDS...",
		Short: "Reverse a string and count its words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := strings.Join(args, " ")
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "reversed: %s\n", text.Reverse(s))
			fmt.Fprintf(out, "words:    %d\n", text.WordCount(s))
			return nil
		},
	}
}
