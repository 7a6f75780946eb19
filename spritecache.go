package spritecache

import (
	"image"
	"io"
)

const (
	// DefaultSide is the default edge length of an indexed sprite in pixels.
	DefaultSide = 32

	// brightnessLevels is the number of brightness indices in the sprite
	// format. Level 0 is transparent; levels 1-15 map through the palette.
	brightnessLevels = 16
)

const defaultCompletionCap = 64

// Decoder turns encoded image bytes into a decoded image. The default is
// [image.Decode]; format registration (png, jpeg, ...) is the caller's
// concern, via blank imports in the host program.
type Decoder func(r io.Reader) (image.Image, string, error)

// LoadErrorFunc receives asynchronous decode failures. Called on the command
// thread during [Stage.Update].
type LoadErrorFunc func(handle int, filename string, err error)

// StageConfig configures a Stage. The zero value is usable: 32-pixel sprites,
// the default grayscale palette, positions in surface units, stdlib decoding.
type StageConfig struct {
	// Side is the sprite edge length in pixels. Grids must have exactly
	// Side*Side entries. Default 32.
	Side int

	// Palette maps brightness levels to colors. Nil selects DefaultPalette.
	Palette *Palette

	// PositionScale multiplies instance positions at draw time, for hosts
	// whose command stream speaks a different unit than the surface.
	// Default 1.
	PositionScale float64

	// Decoder decodes image bytes for LoadImage and encoded sprite defines.
	// Default image.Decode.
	Decoder Decoder

	// OnLoadError, when set, receives asynchronous decode failures instead
	// of the debug log.
	OnLoadError LoadErrorFunc
}

// Stage owns the definition, instance, and image stores, their dirty flags,
// and the scratch-surface pool. All methods except the decode goroutines it
// spawns internally must be called from one goroutine; see Update.
type Stage struct {
	side     int
	gridLen  int
	palette  Palette
	posScale float64
	decoder  Decoder
	onLoadError LoadErrorFunc

	// Sprite state
	defs      map[int]*definition
	comps     map[int]*composition
	instances map[int]*Instance
	instOrder []int // instance ids in first-update order
	pending   []InstanceUpdate

	// Image state
	images   map[int]*ImageObject
	imgOrder []int // handles in first-load order

	// Async decode plumbing. Decode goroutines only ever send on
	// completions; Update drains it on the command thread.
	completions chan decodeJob
	loadSeq     uint64
	imageEpoch  uint64
	spriteEpoch uint64
	appliedImg  map[int]uint64 // highest applied load sequence per handle
	appliedDef  map[int]uint64 // highest applied define sequence per definition id

	spritesDirty bool
	imagesDirty  bool

	pool  canvasPool
	debug bool
}

// NewStage creates a Stage with the given configuration.
func NewStage(cfg StageConfig) *Stage {
	side := cfg.Side
	if side <= 0 {
		side = DefaultSide
	}
	pal := DefaultPalette()
	if cfg.Palette != nil {
		pal = *cfg.Palette
	}
	posScale := cfg.PositionScale
	if posScale == 0 {
		posScale = 1
	}
	decoder := cfg.Decoder
	if decoder == nil {
		decoder = image.Decode
	}
	return &Stage{
		side:        side,
		gridLen:     side * side,
		palette:     pal,
		posScale:    posScale,
		decoder:     decoder,
		onLoadError: cfg.OnLoadError,
		defs:        make(map[int]*definition),
		comps:       make(map[int]*composition),
		instances:   make(map[int]*Instance),
		images:      make(map[int]*ImageObject),
		completions: make(chan decodeJob, defaultCompletionCap),
		appliedImg:  make(map[int]uint64),
		appliedDef:  make(map[int]uint64),
	}
}

// Side returns the configured sprite edge length in pixels.
func (s *Stage) Side() int {
	return s.side
}

// SpritesDirty reports whether sprite state changed since the last completed
// sprite render pass.
func (s *Stage) SpritesDirty() bool {
	return s.spritesDirty
}

// ImagesDirty reports whether image state changed since the last image render
// pass. RenderImages itself does not gate on this flag; it is exposed for
// consumers that want to skip full-frame redraws.
func (s *Stage) ImagesDirty() bool {
	return s.imagesDirty
}

// Update drains completed asynchronous decodes and applies them to the
// stores. Call once per tick on the same goroutine that issues commands and
// render passes. Never blocks.
func (s *Stage) Update() {
	for {
		select {
		case job := <-s.completions:
			s.applyDecode(job)
		default:
			return
		}
	}
}

// ClearSprites empties definitions, compositions, instances, and the pending
// update queue. In-flight encoded sprite defines are invalidated.
func (s *Stage) ClearSprites() {
	s.defs = make(map[int]*definition)
	s.comps = make(map[int]*composition)
	s.instances = make(map[int]*Instance)
	s.instOrder = s.instOrder[:0]
	s.pending = s.pending[:0]
	s.appliedDef = make(map[int]uint64)
	s.spriteEpoch++
	s.spritesDirty = true
}

// ClearImages empties the image object store. Loads still in flight are
// invalidated: their completions will be dropped, so a handle reused after
// the clear can never be overwritten by a pre-clear load.
func (s *Stage) ClearImages() {
	s.images = make(map[int]*ImageObject)
	s.imgOrder = s.imgOrder[:0]
	s.appliedImg = make(map[int]uint64)
	s.imageEpoch++
	s.imagesDirty = true
}

// ClearAll resets both the sprite and image stores.
func (s *Stage) ClearAll() {
	s.ClearSprites()
	s.ClearImages()
}
