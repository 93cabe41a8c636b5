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

package image

import "slices"

// blurKernel is the normalized 3x3 Gaussian approximation, row-major.
var blurKernel = [3][3]float32{
	{1.0 / 16, 2.0 / 16, 1.0 / 16},
	{2.0 / 16, 4.0 / 16, 2.0 / 16},
	{1.0 / 16, 2.0 / 16, 1.0 / 16},
}

// Blur convolves R, G and B of every interior pixel (1 <= x < width-1,
// 1 <= y < height-1) with a 3x3 Gaussian kernel. Reads come from the input as
// it was before the call; results go to a separate buffer that is copied back
// at the end. Border pixels and all alpha bytes are left unchanged.
//
// data must hold width*height*4 bytes. Blur does not check this: a buffer
// shorter than the geometry makes the indexing panic. Use CheckGeometry
// first when the geometry comes from an untrusted source.
//
// When width or height is below 3 there is no interior and Blur returns
// without reading data, so a mismatched buffer is not detected either.
func Blur(data []byte, width, height uint32) {
	w, h := int(width), int(height)
	if w < 3 || h < 3 {
		return
	}
	stride := w * Channels

	out := slices.Clone(data)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			var r, g, b float32
			for ky := range 3 {
				row := (y + ky - 1) * stride
				for kx := range 3 {
					idx := row + (x+kx-1)*Channels
					k := blurKernel[ky][kx]
					r += float32(data[idx]) * k
					g += float32(data[idx+1]) * k
					b += float32(data[idx+2]) * k
				}
			}

			idx := y*stride + x*Channels
			out[idx] = clampByte(r)
			out[idx+1] = clampByte(g)
			out[idx+2] = clampByte(b)
		}
	}
	copy(data, out)
}
