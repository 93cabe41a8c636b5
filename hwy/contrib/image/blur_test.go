package image

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// naiveBlur is an independent integer formulation of the same kernel:
// the weights are powers of two over 16, so the float sum is exact.
func naiveBlur(src []byte, w, h int) []byte {
	weights := [3][3]uint32{{1, 2, 1}, {2, 4, 2}, {1, 2, 1}}
	out := slices.Clone(src)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			for c := range 3 {
				var sum uint32
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						sum += weights[dy+1][dx+1] * uint32(src[((y+dy)*w+(x+dx))*Channels+c])
					}
				}
				out[(y*w+x)*Channels+c] = byte(sum / 16)
			}
		}
	}
	return out
}

func TestBlurMatchesReference(t *testing.T) {
	sizes := []struct{ w, h int }{
		{3, 3}, {4, 3}, {3, 4}, {5, 5}, {16, 9}, {31, 17},
	}
	for _, size := range sizes {
		data := randomPixels(size.w*size.h, int64(size.w*100+size.h))
		want := naiveBlur(data, size.w, size.h)
		Blur(data, uint32(size.w), uint32(size.h))
		if diff := cmp.Diff(want, data); diff != "" {
			t.Errorf("%dx%d: Blur mismatch (-want +got):\n%s", size.w, size.h, diff)
		}
	}
}

func TestBlurPreservesBorderAndAlpha(t *testing.T) {
	const w, h = 12, 7
	img, err := WrapRGBA(randomPixels(w*h, 42), w, h)
	if err != nil {
		t.Fatal(err)
	}
	orig := img.Clone()

	Blur(img.Pix(), w, h)

	interior := img.Interior()
	for y := range h {
		for x := range w {
			got, was := img.At(x, y), orig.At(x, y)
			if got[3] != was[3] {
				t.Fatalf("alpha changed at (%d,%d)", x, y)
			}
			if !interior.Contains(x, y) && got != was {
				t.Fatalf("border pixel (%d,%d) changed: %v -> %v", x, y, was, got)
			}
		}
	}
}

func TestBlurReadsOriginalSnapshot(t *testing.T) {
	// A single bright pixel in the middle of a 5x5 black image. If Blur read
	// its own output, values would smear further than the 3x3 neighborhood.
	const w, h = 5, 5
	img := NewRGBA(w, h)
	img.Set(2, 2, [Channels]byte{160, 160, 160, 255})

	Blur(img.Pix(), w, h)

	want := map[[2]int]byte{
		{1, 1}: 10, {2, 1}: 20, {3, 1}: 10,
		{1, 2}: 20, {2, 2}: 40, {3, 2}: 20,
		{1, 3}: 10, {2, 3}: 20, {3, 3}: 10,
	}
	for y := range h {
		for x := range w {
			got := img.At(x, y)[0]
			if got != want[[2]int{x, y}] {
				t.Errorf("(%d,%d): got %d, want %d", x, y, got, want[[2]int{x, y}])
			}
		}
	}
}

func TestBlurUniformImageUnchanged(t *testing.T) {
	const w, h = 8, 8
	img := NewRGBA(w, h)
	for y := range h {
		for x := range w {
			img.Set(x, y, [Channels]byte{255, 128, 3, 200})
		}
	}
	orig := img.Clone()
	Blur(img.Pix(), w, h)
	if diff := cmp.Diff(orig.Pix(), img.Pix()); diff != "" {
		t.Errorf("uniform image changed (-want +got):\n%s", diff)
	}
}

func TestBlurDegenerateSizes(t *testing.T) {
	for _, size := range []struct{ w, h int }{{0, 0}, {1, 1}, {2, 5}, {5, 2}} {
		data := randomPixels(size.w*size.h, 3)
		orig := slices.Clone(data)
		Blur(data, uint32(size.w), uint32(size.h))
		if diff := cmp.Diff(orig, data); diff != "" {
			t.Errorf("%dx%d: no interior but buffer changed", size.w, size.h)
		}
	}
}

func TestBlurNoInteriorIgnoresGeometry(t *testing.T) {
	for _, size := range []struct{ w, h uint32 }{{0, 0}, {0, 4}, {4, 0}, {2, 9}} {
		data := randomPixels(16, 5)
		orig := slices.Clone(data)
		Blur(data, size.w, size.h)
		if diff := cmp.Diff(orig, data); diff != "" {
			t.Errorf("%dx%d with %d bytes: buffer changed (-want +got):\n%s", size.w, size.h, len(data), diff)
		}
	}
}

func TestBlurShortBufferPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Blur with a short buffer should fault")
		}
	}()
	Blur(make([]byte, 3*4*Channels), 4, 4)
}
