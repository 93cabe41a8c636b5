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
	stdimage "image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"time"

	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/ajroetker/go-kernels/hwy"
	"github.com/ajroetker/go-kernels/hwy/contrib/image"
	"github.com/ajroetker/go-kernels/task"
)

func newImageCmd() *cobra.Command {
	var (
		op     string
		factor float32
		output string
	)
	cmd := &cobra.Command{
		Use:   "image INPUT",
		Short: "Apply a pixel kernel to an image and write a PNG",
		Long:  "Decodes PNG, JPEG, GIF, BMP, TIFF or WebP input, applies one kernel and writes the result as PNG.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()
			src, format, err := stdimage.Decode(in)
			if err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}

			img := image.FromImage(src)
			hwy.Logger().Debug("image decoded", "format", format, "width", img.Width(), "height", img.Height())

			start := time.Now()
			if err := task.ApplyImageOp(img, op, factor); err != nil {
				return err
			}
			elapsed := time.Since(start)

			out, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := png.Encode(out, img.ToImage()); err != nil {
				out.Close()
				return fmt.Errorf("encode %s: %w", output, err)
			}
			if err := out.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %dx%d %s -> %s  (%v)\n",
				op, img.Width(), img.Height(), format, output, elapsed)
			return nil
		},
	}
	cmd.Flags().StringVar(&op, "op", task.OpGrayscale, "kernel: grayscale, invert, brightness or blur")
	cmd.Flags().Float32Var(&factor, "factor", 1.2, "brightness factor")
	cmd.Flags().StringVarP(&output, "output", "o", "out.png", "output PNG path")
	return cmd
}
