package algo

import (
	"math"
	"math/rand"
	"testing"

	"github.com/samber/lo"
)

func TestSumArray(t *testing.T) {
	tests := []struct {
		name string
		data []int32
		want int64
	}{
		{"empty", []int32{}, 0},
		{"nil", nil, 0},
		{"single", []int32{-7}, -7},
		{"one_to_five", []int32{1, 2, 3, 4, 5}, 15},
		{"mixed_signs", []int32{10, -20, 30, -40}, -20},
		{"max_values", []int32{math.MaxInt32, math.MaxInt32, math.MaxInt32}, 3 * math.MaxInt32},
		{"min_values", []int32{math.MinInt32, math.MinInt32}, 2 * math.MinInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SumArray(tt.data); got != tt.want {
				t.Errorf("SumArray(%v) = %d, want %d", tt.data, got, tt.want)
			}
		})
	}
}

func TestSumArrayDoesNotOverflowInt32(t *testing.T) {
	data := make([]int32, 1000)
	for i := range data {
		data[i] = math.MaxInt32
	}
	if got, want := SumArray(data), int64(1000)*math.MaxInt32; got != want {
		t.Errorf("SumArray = %d, want %d", got, want)
	}
}

func TestSumArrayAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	// Sizes straddle every lane width so both full vectors and tails run.
	for _, size := range []int{1, 2, 3, 4, 7, 8, 9, 15, 16, 17, 100, 1023} {
		data := make([]int32, size)
		for i := range data {
			data[i] = rng.Int31() - math.MaxInt32/2
		}
		want := lo.Sum(lo.Map(data, func(v int32, _ int) int64 { return int64(v) }))
		if got := SumArray(data); got != want {
			t.Errorf("size %d: SumArray = %d, want %d", size, got, want)
		}
	}
}

var sinkI64 int64

func BenchmarkSumArray(b *testing.B) {
	data := make([]int32, 1<<16)
	for i := range data {
		data[i] = int32(i)
	}
	b.SetBytes(int64(len(data) * 4))
	for b.Loop() {
		sinkI64 = SumArray(data)
	}
}
