//go:build !amd64 && !arm64

package hwy

import "runtime"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// The wasm module is the main consumer on this path. Its lane width
	// matches SIMD128; everything else runs scalar with 16-byte vectors.
	if runtime.GOARCH == "wasm" {
		currentLevel = DispatchWASM
		currentWidth = 16
		return
	}
	setScalarMode()
}
