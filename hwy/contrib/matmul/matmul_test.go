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
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// matmulReference computes C = A * B using naive triple loop.
func matmulReference(a, b, c []float64, m, n, k int) {
	for i := range m {
		for j := range n {
			var sum float64
			for p := range k {
				sum += a[i*k+p] * b[p*n+j]
			}
			c[i*n+j] = sum
		}
	}
}

func TestMatMulSmall(t *testing.T) {
	// 2x3 * 3x2 = 2x2
	a := []float64{1, 2, 3, 4, 5, 6}
	b := []float64{7, 8, 9, 10, 11, 12}
	c := []float64{-1, -1, -1, -1}

	MatMul(a, b, c, 2, 2, 3)

	want := []float64{58, 64, 139, 154}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("MatMul (-want +got):\n%s", diff)
	}
}

func TestMatMulIdentity(t *testing.T) {
	n := 5
	rng := rand.New(rand.NewSource(1))
	a := make([]float64, n*n)
	identity := make([]float64, n*n)
	c := make([]float64, n*n)
	for i := range a {
		a[i] = rng.Float64()
	}
	for i := range n {
		identity[i*n+i] = 1
	}

	MatMul(a, identity, c, n, n, n)

	if diff := cmp.Diff(a, c); diff != "" {
		t.Errorf("A * I != A (-want +got):\n%s", diff)
	}
}

func TestMatMulSizes(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	sizes := [][3]int{{1, 1, 1}, {3, 7, 5}, {8, 8, 8}, {17, 33, 9}, {64, 3, 100}}
	for _, s := range sizes {
		m, n, k := s[0], s[1], s[2]
		a := make([]float64, m*k)
		b := make([]float64, k*n)
		for i := range a {
			a[i] = rng.NormFloat64()
		}
		for i := range b {
			b[i] = rng.NormFloat64()
		}
		got := make([]float64, m*n)
		want := make([]float64, m*n)
		MatMul(a, b, got, m, n, k)
		matmulReference(a, b, want, m, n, k)
		for i := range got {
			if math.Abs(got[i]-want[i]) > 1e-9 {
				t.Fatalf("%dx%dx%d: c[%d] = %g, want %g", m, n, k, i, got[i], want[i])
			}
		}
	}
}

func TestMultiply(t *testing.T) {
	a := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	b := [][]float64{{1, 0, 2}, {0, 1, 3}}
	got, err := Multiply(a, b)
	if err != nil {
		t.Fatalf("Multiply: %v", err)
	}
	want := [][]float64{{1, 2, 8}, {3, 4, 18}, {5, 6, 28}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Multiply (-want +got):\n%s", diff)
	}
}

func TestMultiplyShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		a, b [][]float64
	}{
		{"empty a", nil, [][]float64{{1}}},
		{"empty b", [][]float64{{1}}, nil},
		{"no columns", [][]float64{{}}, [][]float64{{}}},
		{"inner mismatch", [][]float64{{1, 2}}, [][]float64{{1}}},
		{"ragged a", [][]float64{{1}, {1, 2}}, [][]float64{{1}}},
		{"ragged b", [][]float64{{1, 2}}, [][]float64{{1, 2}, {3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Multiply(tt.a, tt.b)
			if !errors.Is(err, ErrShape) {
				t.Errorf("Multiply error = %v, want ErrShape", err)
			}
		})
	}
}

func BenchmarkMatMul(b *testing.B) {
	const n = 128
	a := make([]float64, n*n)
	bm := make([]float64, n*n)
	c := make([]float64, n*n)
	for i := range a {
		a[i] = float64(i % 7)
		bm[i] = float64(i % 5)
	}
	for b.Loop() {
		MatMul(a, bm, c, n, n, n)
	}
}
