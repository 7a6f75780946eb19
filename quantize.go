package spritecache

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Luminance weights (ITU-R BT.601).
const (
	lumR = 0.299
	lumG = 0.587
	lumB = 0.114
)

// Quantize converts a decoded raster image into an indexed brightness grid of
// length side*side. The conversion is intentionally lossy: it exists for
// indexed-sprite compatibility, not for the image object path.
//
// Pixels with alpha below 50% become level 0 (transparent) regardless of
// color. Opaque pixels map their luminance to [1, 15] — the floor of 1 keeps
// an opaque black pixel distinct from transparency.
//
// The source is resampled to side x side first when its bounds differ.
func Quantize(src image.Image, side int) []uint8 {
	b := src.Bounds()
	if b.Dx() != side || b.Dy() != side {
		dst := image.NewNRGBA(image.Rect(0, 0, side, side))
		xdraw.BiLinear.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
		src = dst
		b = dst.Bounds()
	}

	grid := make([]uint8, side*side)
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			r, g, bl, a := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a < 0x8000 {
				continue // level 0: transparent
			}
			lum := lumR*float64(r) + lumG*float64(g) + lumB*float64(bl)
			level := uint8(lum*15/0xffff + 0.5)
			if level < 1 {
				level = 1
			}
			grid[y*side+x] = level
		}
	}
	return grid
}
