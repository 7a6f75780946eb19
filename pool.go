package spritecache

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// canvasPool manages reusable offscreen scratch images keyed by exact
// dimensions. Acquire pops, release pushes, so two images held at the same
// time are always distinct. The pool never shrinks; after warmup a render
// pass allocates no new surfaces.
//
// The pool is owned exclusively by the render pass — acquire and release
// happen strictly within one synchronous pass, so no locking is needed.
type canvasPool struct {
	buckets map[uint64][]*ebiten.Image
}

// poolKey packs width and height into a single map key.
func poolKey(w, h int) uint64 {
	return uint64(uint32(w))<<32 | uint64(uint32(h))
}

// acquire returns a cleared scratch image of exactly (w, h) pixels, reusing a
// pooled one when available.
func (p *canvasPool) acquire(w, h int) *ebiten.Image {
	key := poolKey(w, h)
	if stack := p.buckets[key]; len(stack) > 0 {
		img := stack[len(stack)-1]
		p.buckets[key] = stack[:len(stack)-1]
		img.Clear()
		return img
	}
	return ebiten.NewImageWithOptions(
		image.Rect(0, 0, w, h),
		&ebiten.NewImageOptions{Unmanaged: true},
	)
}

// release returns an image to the pool. Clearing happens on the next acquire,
// not here, to avoid redundant GPU work when a surface is released and
// immediately re-acquired.
func (p *canvasPool) release(img *ebiten.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	key := poolKey(b.Dx(), b.Dy())
	if p.buckets == nil {
		p.buckets = make(map[uint64][]*ebiten.Image)
	}
	p.buckets[key] = append(p.buckets[key], img)
}
