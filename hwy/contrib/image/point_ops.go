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

import "github.com/ajroetker/go-kernels/hwy"

// Luma weights in thousandths (ITU-R BT.601).
const (
	lumaR     = 299
	lumaG     = 587
	lumaB     = 114
	lumaScale = 1000
)

// clampByte clamps v to [0, 255] and truncates toward zero.
// NaN maps to 0.
func clampByte(v float32) byte {
	switch {
	case v >= 255:
		return 255
	case v > 0:
		return byte(v)
	default:
		return 0
	}
}

// Grayscale replaces R, G and B of every whole pixel with
// (299*R + 587*G + 114*B) / 1000, rounded down. Alpha is not modified and
// trailing bytes that do not form a pixel are ignored.
func Grayscale(data []byte) {
	pixels := len(data) / Channels
	lanes := hwy.MaxLanes[uint32]()

	luma := make([]uint32, lanes)
	gray := make([]uint8, lanes)
	wr := hwy.Set[uint32](lumaR)
	wg := hwy.Set[uint32](lumaG)
	wb := hwy.Set[uint32](lumaB)

	process := func(first, count int) {
		px := data[first*Channels : (first+count)*Channels]
		r, g, b, a := hwy.LoadInterleaved4(px)
		sum := hwy.Add(
			hwy.Add(hwy.Mul(hwy.ConvertTo[uint32](r), wr), hwy.Mul(hwy.ConvertTo[uint32](g), wg)),
			hwy.Mul(hwy.ConvertTo[uint32](b), wb),
		)
		hwy.Store(sum, luma)
		for i := range count {
			gray[i] = uint8(luma[i] / lumaScale)
		}
		y := hwy.Load(gray[:count])
		hwy.StoreInterleaved4(y, y, y, a, px)
	}

	hwy.ProcessWithTail[uint32](pixels,
		func(first int) { process(first, lanes) },
		process,
	)
}

// Invert replaces R, G and B of every whole pixel with 255 - value.
// Alpha is not modified. Applying Invert twice restores the input.
func Invert(data []byte) {
	pixels := len(data) / Channels
	lanes := hwy.MaxLanes[uint8]()
	maxVec := hwy.Set[uint8](255)

	process := func(first, count int) {
		px := data[first*Channels : (first+count)*Channels]
		r, g, b, a := hwy.LoadInterleaved4(px)
		hwy.StoreInterleaved4(hwy.Sub(maxVec, r), hwy.Sub(maxVec, g), hwy.Sub(maxVec, b), a, px)
	}

	hwy.ProcessWithTail[uint8](pixels,
		func(first int) { process(first, lanes) },
		process,
	)
}

// AdjustBrightness multiplies R, G and B of every whole pixel by factor in
// float32, clamps the product to [0, 255] and truncates it. Alpha is not
// modified.
//
// Any factor is accepted: 1 is the identity, values below 0 clamp to black
// and large values saturate. A NaN product becomes 0.
func AdjustBrightness(data []byte, factor float32) {
	pixels := len(data) / Channels
	lanes := hwy.MaxLanes[float32]()

	scaleVec := hwy.Set(factor)
	lo := hwy.Zero[float32]()
	hi := hwy.Set[float32](255)
	scale := func(c hwy.Vec[uint8]) hwy.Vec[uint8] {
		v := hwy.Mul(hwy.ConvertTo[float32](c), scaleVec)
		return hwy.ConvertTo[uint8](hwy.Clamp(v, lo, hi))
	}

	process := func(first, count int) {
		px := data[first*Channels : (first+count)*Channels]
		r, g, b, a := hwy.LoadInterleaved4(px)
		hwy.StoreInterleaved4(scale(r), scale(g), scale(b), a, px)
	}

	hwy.ProcessWithTail[float32](pixels,
		func(first int) { process(first, lanes) },
		process,
	)
}
