package spritecache

import (
	"fmt"
	"image"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// definition is one sprite type: its canonical indexed grid plus a lazily
// built rasterized surface. raster is nil until the first render pass needs
// it, and is dropped whenever the grid is replaced.
type definition struct {
	grid   []uint8
	raster *ebiten.Image
}

// VirtualLayout enumerates the supported composition tile arrangements.
type VirtualLayout uint8

const (
	Layout2x2 VirtualLayout = iota // four base sprites in a 2x2 arrangement
	Layout4x4                      // sixteen base sprites in a 4x4 arrangement
)

// Tiles returns the number of base sprites the layout holds, or 0 for an
// unrecognized layout.
func (l VirtualLayout) Tiles() int {
	switch l {
	case Layout2x2:
		return 4
	case Layout4x4:
		return 16
	}
	return 0
}

func (l VirtualLayout) String() string {
	switch l {
	case Layout2x2:
		return "2x2"
	case Layout4x4:
		return "4x4"
	}
	return fmt.Sprintf("VirtualLayout(%d)", uint8(l))
}

// composition is a virtual sprite: a layout tag plus the ordered base
// definition ids. Compositions share the definition id namespace but the
// renderer never decomposes them; resolution is a consumer concern.
type composition struct {
	layout  VirtualLayout
	baseIDs []int
}

// DefineSprite creates or wholesale-replaces the definition under id from a
// raw brightness grid. The grid must have exactly Side*Side entries, each in
// [0, 15]. On failure the store is unchanged and a *ValidationError is
// returned.
//
// A successful define resolves every pending instance update that was waiting
// on this definition id.
func (s *Stage) DefineSprite(id int, grid []int) error {
	if len(grid) != s.gridLen {
		return &ValidationError{
			Field:  "pixelData",
			Reason: fmt.Sprintf("grid has %d entries, want %d", len(grid), s.gridLen),
		}
	}
	compact := make([]uint8, len(grid))
	for i, v := range grid {
		if v < 0 || v >= brightnessLevels {
			return &ValidationError{
				Field:  "pixelData",
				Reason: fmt.Sprintf("value %d at index %d outside [0, %d]", v, i, brightnessLevels-1),
			}
		}
		compact[i] = uint8(v)
	}
	s.putDefinition(id, compact)
	return nil
}

// DefineSpriteImage creates or replaces the definition under id from an
// already-decoded raster image, routed through the quantizer.
func (s *Stage) DefineSpriteImage(id int, img image.Image) error {
	if img == nil {
		return &ValidationError{Field: "spriteData", Reason: "nil image"}
	}
	s.putDefinition(id, Quantize(img, s.side))
	return nil
}

// putDefinition commits a validated grid, invalidating any cached raster,
// marking the sprite category dirty, and resolving the pending queue.
func (s *Stage) putDefinition(id int, grid []uint8) {
	if def, ok := s.defs[id]; ok {
		if def.raster != nil {
			def.raster.Deallocate()
			def.raster = nil
		}
		def.grid = grid
	} else {
		s.defs[id] = &definition{grid: grid}
	}
	s.spritesDirty = true
	s.resolvePending(id)
}

// DefineVirtualSprite creates or replaces the composition under id. The
// number of base ids must match the layout's tile count. Base ids need not be
// defined yet; a composition is a pure reference.
func (s *Stage) DefineVirtualSprite(id int, layout VirtualLayout, baseIDs []int) error {
	tiles := layout.Tiles()
	if tiles == 0 {
		return &ValidationError{Field: "layout", Reason: layout.String()}
	}
	if len(baseIDs) != tiles {
		return &ValidationError{
			Field:  "baseSpriteIds",
			Reason: fmt.Sprintf("layout %s needs %d base sprites, got %d", layout, tiles, len(baseIDs)),
		}
	}
	s.comps[id] = &composition{layout: layout, baseIDs: slices.Clone(baseIDs)}
	s.spritesDirty = true
	s.resolvePending(id)
	return nil
}

// definitionKnown reports whether id resolves in the definition id namespace,
// which grids and compositions share.
func (s *Stage) definitionKnown(id int) bool {
	if _, ok := s.defs[id]; ok {
		return true
	}
	_, ok := s.comps[id]
	return ok
}

// rasterizeGrid expands an indexed grid into pixels through the palette.
// Deterministic: same grid and palette always produce the same image. Level 0
// cells stay fully transparent.
func rasterizeGrid(grid []uint8, side int, pal *Palette) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, side, side))
	for i, level := range grid {
		if level == 0 {
			continue
		}
		img.SetNRGBA(i%side, i/side, pal.colorFor(level))
	}
	return img
}

// rasterOf returns the definition's cached rasterized surface, building and
// caching it on first use.
func (s *Stage) rasterOf(def *definition) *ebiten.Image {
	if def.raster == nil {
		def.raster = ebiten.NewImageFromImage(rasterizeGrid(def.grid, s.side, &s.palette))
	}
	return def.raster
}
