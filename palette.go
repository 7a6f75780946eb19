package spritecache

import "image/color"

// Palette maps the 16 brightness levels of the sprite format to colors.
// Index 0 is never consulted: level 0 means transparent and the rasterizer
// skips it entirely.
type Palette [brightnessLevels]color.NRGBA

// fallbackColor is used when a stored brightness level is somehow outside the
// palette. A bad level degrades to a visible pixel, never a failed draw.
var fallbackColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// DefaultPalette returns the standard grayscale ramp: level 1 is near-black,
// level 15 is white, evenly spaced.
func DefaultPalette() Palette {
	var p Palette
	for i := 1; i < brightnessLevels; i++ {
		v := uint8(i * 255 / (brightnessLevels - 1))
		p[i] = color.NRGBA{R: v, G: v, B: v, A: 0xff}
	}
	return p
}

// colorFor resolves a brightness level to a palette color, falling back to
// fallbackColor for out-of-range levels.
func (p *Palette) colorFor(level uint8) color.NRGBA {
	if int(level) >= len(p) {
		return fallbackColor
	}
	return p[level]
}
