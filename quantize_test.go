package spritecache

import (
	"image"
	"image/color"
	"testing"
)

// solidImage returns a side x side image filled with the given color.
func solidImage(side int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, side, side))
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestQuantizeOpaqueBlackNeverTransparent(t *testing.T) {
	grid := Quantize(solidImage(8, color.NRGBA{A: 0xff}), 8)
	for i, level := range grid {
		if level != 1 {
			t.Fatalf("opaque black at %d: got level %d, want 1", i, level)
		}
	}
}

func TestQuantizeWhiteIsMaxLevel(t *testing.T) {
	grid := Quantize(solidImage(8, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}), 8)
	for i, level := range grid {
		if level != 15 {
			t.Fatalf("opaque white at %d: got level %d, want 15", i, level)
		}
	}
}

func TestQuantizeLowAlphaIsTransparent(t *testing.T) {
	// Alpha just below 50% of max must yield 0 regardless of color.
	grid := Quantize(solidImage(8, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x7f}), 8)
	for i, level := range grid {
		if level != 0 {
			t.Fatalf("49%%-alpha white at %d: got level %d, want 0", i, level)
		}
	}
}

func TestQuantizeHalfAlphaIsOpaque(t *testing.T) {
	// Alpha at exactly 50% is on the opaque side of the cutoff.
	grid := Quantize(solidImage(4, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80}), 4)
	if grid[0] == 0 {
		t.Error("50%-alpha pixel quantized to transparent")
	}
}

func TestQuantizeResamplesToSide(t *testing.T) {
	src := solidImage(64, color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff})
	grid := Quantize(src, 16)
	if len(grid) != 16*16 {
		t.Fatalf("grid length %d, want %d", len(grid), 16*16)
	}
	for i, level := range grid {
		if level == 0 {
			t.Fatalf("resampled opaque pixel at %d became transparent", i)
		}
	}
}

func TestQuantizeLuminanceWeights(t *testing.T) {
	// Pure green is brighter than pure red is brighter than pure blue.
	red := Quantize(solidImage(1, color.NRGBA{R: 0xff, A: 0xff}), 1)[0]
	green := Quantize(solidImage(1, color.NRGBA{G: 0xff, A: 0xff}), 1)[0]
	blue := Quantize(solidImage(1, color.NRGBA{B: 0xff, A: 0xff}), 1)[0]
	if !(green > red && red > blue) {
		t.Errorf("luminance ordering wrong: green=%d red=%d blue=%d", green, red, blue)
	}
	if blue < 1 {
		t.Errorf("opaque blue clamped below 1: %d", blue)
	}
}
