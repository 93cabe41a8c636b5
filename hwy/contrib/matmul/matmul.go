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

package matmul

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-kernels/hwy"
)

// ErrShape is returned by Multiply when the operands cannot be multiplied.
var ErrShape = errors.New("matmul: incompatible shapes")

// MatMul computes C = A * B for row-major A (MxK), B (KxN) and C (MxN).
// C is overwritten. Slices shorter than their dimensions panic.
func MatMul(a, b, c []float64, m, n, k int) {
	clear(c[:m*n])
	lanes := hwy.MaxLanes[float64]()

	for i := range m {
		cRow := c[i*n : (i+1)*n]
		for p := range k {
			aip := hwy.Set(a[i*k+p])
			bRow := b[p*n : (p+1)*n]
			axpy := func(offset, count int) {
				vc := hwy.Load(cRow[offset : offset+count])
				vb := hwy.Load(bRow[offset : offset+count])
				hwy.Add(vc, hwy.Mul(aip, vb)).Store(cRow[offset : offset+count])
			}
			hwy.ProcessWithTail[float64](n,
				func(offset int) { axpy(offset, lanes) },
				axpy,
			)
		}
	}
}

// Multiply returns the product of a and b given as rows. Every row of a must
// have len(b) columns and every row of b the same non-zero length.
func Multiply(a, b [][]float64) ([][]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, fmt.Errorf("%w: empty operand", ErrShape)
	}
	m, k, n := len(a), len(b), len(b[0])
	if n == 0 {
		return nil, fmt.Errorf("%w: b has no columns", ErrShape)
	}

	flatA := make([]float64, 0, m*k)
	for i, row := range a {
		if len(row) != k {
			return nil, fmt.Errorf("%w: a row %d has %d columns, want %d", ErrShape, i, len(row), k)
		}
		flatA = append(flatA, row...)
	}
	flatB := make([]float64, 0, k*n)
	for i, row := range b {
		if len(row) != n {
			return nil, fmt.Errorf("%w: b row %d has %d columns, want %d", ErrShape, i, len(row), n)
		}
		flatB = append(flatB, row...)
	}

	flatC := make([]float64, m*n)
	MatMul(flatA, flatB, flatC, m, n, k)

	out := make([][]float64, m)
	for i := range out {
		out[i] = flatC[i*n : (i+1)*n : (i+1)*n]
	}
	return out, nil
}
