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

package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/samber/lo"

	"github.com/ajroetker/go-kernels/hwy"
	"github.com/ajroetker/go-kernels/hwy/contrib/algo"
	"github.com/ajroetker/go-kernels/hwy/contrib/image"
	"github.com/ajroetker/go-kernels/hwy/contrib/math"
	"github.com/ajroetker/go-kernels/hwy/contrib/matmul"
	"github.com/ajroetker/go-kernels/hwy/contrib/sort"
	"github.com/ajroetker/go-kernels/hwy/contrib/text"
)

// Type names a kernel reachable through a Request.
type Type string

const (
	Fibonacci          Type = "fibonacci"
	FibonacciIterative Type = "fibonacciIterative"
	PrimeCount         Type = "primeCount"
	NthPrime           Type = "nthPrime"
	Sort               Type = "sort"
	MatrixMultiply     Type = "matrixMultiply"
	Sum                Type = "sum"
	Factorial          Type = "factorial"
	GCD                Type = "gcd"
	Reverse            Type = "reverse"
	WordCount          Type = "wordCount"
	Image              Type = "image"
)

var (
	// ErrUnknownType is reported for a request whose type has no kernel.
	ErrUnknownType = errors.New("task: unknown type")

	// ErrPayload is reported when a payload does not decode into the
	// arguments of its kernel.
	ErrPayload = errors.New("task: invalid payload")

	// ErrKernel is reported when a kernel panics.
	ErrKernel = errors.New("task: kernel failed")

	// ErrResult is reported when a kernel's result cannot be encoded as
	// JSON, for example an infinite product from matrixMultiply.
	ErrResult = errors.New("task: result not representable")
)

// Request asks for one kernel invocation.
type Request struct {
	ID      string          `json:"id"`
	Type    Type            `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Result reports the outcome of a Request.
type Result struct {
	ID      string `json:"id"`
	Type    Type   `json:"type"`
	Success bool   `json:"success"`
	Result  any    `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`

	// Duration is the kernel's wall time in milliseconds.
	Duration float64 `json:"duration"`
}

// MatrixPayload is the payload of a MatrixMultiply request.
type MatrixPayload struct {
	A [][]float64 `json:"a"`
	B [][]float64 `json:"b"`
}

// GCDPayload is the payload of a GCD request.
type GCDPayload struct {
	A uint64 `json:"a"`
	B uint64 `json:"b"`
}

// ImagePayload is the payload of an Image request. Pixels is interleaved
// RGBA, base64 encoded in JSON, and is returned transformed.
type ImagePayload struct {
	Op     string  `json:"op"`
	Width  uint32  `json:"width"`
	Height uint32  `json:"height"`
	Factor float32 `json:"factor,omitempty"`
	Pixels []byte  `json:"pixels"`
}

// Image ops accepted in ImagePayload.Op.
const (
	OpGrayscale  = "grayscale"
	OpInvert     = "invert"
	OpBrightness = "brightness"
	OpBlur       = "blur"
)

type handler func(payload json.RawMessage) (any, error)

var handlers = map[Type]handler{
	Fibonacci:          scalar(math.FibonacciRecursive),
	FibonacciIterative: scalar(math.FibonacciIterative),
	PrimeCount:         scalar(math.CountPrimes),
	NthPrime:           scalar(math.NthPrime),
	Factorial:          scalar(math.Factorial),
	Sort: func(p json.RawMessage) (any, error) {
		var data []int32
		if err := decode(p, &data); err != nil {
			return nil, err
		}
		if data == nil {
			data = []int32{}
		}
		if !sort.IsSorted(data) {
			sort.QuickSort(data)
		}
		return data, nil
	},
	Sum: func(p json.RawMessage) (any, error) {
		var data []int32
		if err := decode(p, &data); err != nil {
			return nil, err
		}
		return algo.SumArray(data), nil
	},
	MatrixMultiply: func(p json.RawMessage) (any, error) {
		var m MatrixPayload
		if err := decode(p, &m); err != nil {
			return nil, err
		}
		return matmul.Multiply(m.A, m.B)
	},
	GCD: func(p json.RawMessage) (any, error) {
		var g GCDPayload
		if err := decode(p, &g); err != nil {
			return nil, err
		}
		return math.GCD(g.A, g.B), nil
	},
	Reverse: func(p json.RawMessage) (any, error) {
		var s string
		if err := decode(p, &s); err != nil {
			return nil, err
		}
		return text.Reverse(s), nil
	},
	WordCount: func(p json.RawMessage) (any, error) {
		var s string
		if err := decode(p, &s); err != nil {
			return nil, err
		}
		return text.WordCount(s), nil
	},
	Image: runImage,
}

// Types returns the request types Execute understands, sorted.
func Types() []Type {
	out := lo.Keys(handlers)
	slices.Sort(out)
	return out
}

// scalar adapts a kernel taking one unsigned 32-bit argument.
func scalar[R any](kernel func(uint32) R) handler {
	return func(p json.RawMessage) (any, error) {
		var n uint32
		if err := decode(p, &n); err != nil {
			return nil, err
		}
		return kernel(n), nil
	}
}

func decode(p json.RawMessage, v any) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: missing payload", ErrPayload)
	}
	if err := json.Unmarshal(p, v); err != nil {
		return fmt.Errorf("%w: %v", ErrPayload, err)
	}
	return nil
}

func runImage(p json.RawMessage) (any, error) {
	var payload ImagePayload
	if err := decode(p, &payload); err != nil {
		return nil, err
	}
	img, err := image.WrapRGBA(payload.Pixels, int(payload.Width), int(payload.Height))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPayload, err)
	}
	if err := ApplyImageOp(img, payload.Op, payload.Factor); err != nil {
		return nil, err
	}
	return img.Pix(), nil
}

// ApplyImageOp runs the pixel kernel named by op over img in place. factor
// is used by OpBrightness only. An image without an interior is left as is
// by OpBlur.
func ApplyImageOp(img *image.RGBA, op string, factor float32) error {
	switch op {
	case OpGrayscale:
		image.Grayscale(img.Pix())
	case OpInvert:
		image.Invert(img.Pix())
	case OpBrightness:
		image.AdjustBrightness(img.Pix(), factor)
	case OpBlur:
		if img.Interior().IsEmpty() {
			hwy.Logger().Debug("blur skipped, no interior", "width", img.Width(), "height", img.Height())
			return nil
		}
		image.Blur(img.Pix(), uint32(img.Width()), uint32(img.Height()))
	default:
		return fmt.Errorf("%w: unknown image op %q", ErrPayload, op)
	}
	return nil
}

// Execute runs req synchronously. It never returns an error: failures are
// described by Result.Success and Result.Error.
func Execute(req Request) Result {
	res := Result{ID: req.ID, Type: req.Type}
	h, ok := handlers[req.Type]
	if !ok {
		res.Error = fmt.Errorf("%w: %q", ErrUnknownType, req.Type).Error()
		return res
	}

	start := time.Now()
	value, err := invoke(h, req)
	res.Duration = float64(time.Since(start)) / float64(time.Millisecond)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Success = true
	res.Result = value
	return res
}

// invoke calls h, turning a kernel panic into ErrKernel.
func invoke(h handler, req Request) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			hwy.Logger().Error("kernel aborted", "kernel", string(req.Type), "id", req.ID, "panic", r)
			value, err = nil, fmt.Errorf("%w: %v", ErrKernel, r)
		}
	}()
	return h(req.Payload)
}
