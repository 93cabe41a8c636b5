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

// Package image provides in-place kernels over interleaved RGBA byte buffers.
//
// A buffer holds 4-byte pixels (R, G, B, A) in row-major order. The kernels
// borrow the caller's slice, rewrite it and keep no reference after return.
//
// # Point Operations
//
// Point operations transform each pixel independently and never touch alpha:
//
//	Grayscale(data)                // R = G = B = (299R + 587G + 114B) / 1000
//	Invert(data)                   // v = 255 - v
//	AdjustBrightness(data, factor) // v = clamp(v * factor, 0, 255)
//
// Only len(data)/4 whole pixels are processed.
//
// # Convolution
//
//	Blur(data, width, height) // 3x3 Gaussian on interior pixels
//
// The one-pixel border is never written.
//
// # Usage Example
//
//	img := image.FromImage(decoded) // any image.Image
//	image.Grayscale(img.Pix())
//	image.Blur(img.Pix(), uint32(img.Width()), uint32(img.Height()))
//	png.Encode(w, img.ToImage())
package image
