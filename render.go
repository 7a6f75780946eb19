package spritecache

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// RenderSprites repaints the sprite layer onto target. It is a no-op while
// the sprite dirty flag is clear; when dirty it clears the (width, height)
// region, draws every renderable instance, and clears the flag.
//
// Instances are grouped by definition so each definition is rasterized at
// most once per frame regardless of how many instances reference it. Each
// group paints its cached raster onto one pooled scratch surface and stamps
// that surface per instance. Instances that are hidden, reference an absent
// definition, or reference a composition are skipped silently.
func (s *Stage) RenderSprites(target *ebiten.Image, width, height int) {
	if !s.spritesDirty {
		return
	}

	region := target.SubImage(image.Rect(0, 0, width, height)).(*ebiten.Image)
	region.Clear()

	// Group renderable instances by definition id, preserving store order
	// within each group. Cross-group order carries no guarantee.
	groups := make(map[int][]*Instance)
	var groupOrder []int
	for _, id := range s.instOrder {
		inst := s.instances[id]
		if inst == nil || !inst.Visible {
			continue
		}
		def, ok := s.defs[inst.DefinitionID]
		if !ok || len(def.grid) == 0 {
			continue
		}
		if _, seen := groups[inst.DefinitionID]; !seen {
			groupOrder = append(groupOrder, inst.DefinitionID)
		}
		groups[inst.DefinitionID] = append(groups[inst.DefinitionID], inst)
	}

	var op ebiten.DrawImageOptions
	half := float64(s.side) / 2
	drawn := 0

	for _, defID := range groupOrder {
		raster := s.rasterOf(s.defs[defID])

		scratch := s.pool.acquire(s.side, s.side)
		op.GeoM.Reset()
		scratch.DrawImage(raster, &op)

		for _, inst := range groups[defID] {
			drawn++
			op.GeoM.Reset()
			op.GeoM.Translate(-half, -half)
			op.GeoM.Rotate(inst.Rotation * math.Pi / 180)
			op.GeoM.Translate(inst.X*s.posScale, inst.Y*s.posScale)
			region.DrawImage(scratch, &op)
		}

		s.pool.release(scratch)
	}

	// Cleared only after every group is drawn.
	s.spritesDirty = false

	if s.debug {
		s.debugLogSpritePass(len(groupOrder), drawn)
	}
}

// RenderImages draws every visible, fully loaded image object onto target.
// Unlike the sprite pass this is not dirty-gated — it is idempotent and may
// be called unconditionally — but it does clear the image dirty flag for
// consumers that gate on it.
func (s *Stage) RenderImages(target *ebiten.Image, width, height int) {
	region := target.SubImage(image.Rect(0, 0, width, height)).(*ebiten.Image)
	var op ebiten.DrawImageOptions

	for _, handle := range s.imgOrder {
		obj := s.images[handle]
		if obj == nil || !obj.Visible || obj.img == nil {
			continue
		}

		f := ScaleFactor(obj.Scale)
		b := obj.img.Bounds()
		dw, dh := float64(b.Dx()), float64(b.Dy())
		if dw == 0 || dh == 0 {
			continue
		}
		// Base scale maps the decoded bounds to the object's natural size;
		// f then applies the discrete scale parameter on top.
		sx := f * float64(obj.width) / dw
		sy := f * float64(obj.height) / dh

		op.GeoM.Reset()
		op.GeoM.Translate(-dw/2, -dh/2)
		op.GeoM.Scale(sx, sy)
		op.GeoM.Rotate(obj.Rotation)
		op.GeoM.Translate(obj.X+float64(obj.width)*f/2, obj.Y+float64(obj.height)*f/2)
		region.DrawImage(obj.img, &op)
	}

	s.imagesDirty = false
}
