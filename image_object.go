package spritecache

import (
	"bytes"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImageObject is one loaded raster image with placement state. Objects are
// created by LoadImage and are not drawable until their decode completes.
type ImageObject struct {
	Handle   int
	Filename string // diagnostic only
	Visible  bool
	X, Y     float64
	Scale    int     // discrete scale parameter, see ScaleFactor
	Rotation float64 // radians

	img           *ebiten.Image
	width, height int // natural display size
}

// Loaded reports whether the object's decode has completed.
func (o *ImageObject) Loaded() bool {
	return o.img != nil
}

// Size returns the object's natural display size in pixels.
func (o *ImageObject) Size() (width, height int) {
	return o.width, o.height
}

// ScaleFactor maps the discrete image scale parameter to a multiplier:
// 0 is natural size, n > 0 multiplies by 1+n, n < 0 divides by 1+|n|.
func ScaleFactor(n int) float64 {
	switch {
	case n > 0:
		return float64(1 + n)
	case n < 0:
		return 1 / float64(1-n)
	}
	return 1
}

// ImageLoadOptions carries the optional fields of a load command.
type ImageLoadOptions struct {
	// Width and Height override the natural display size. When zero or
	// negative the decoded bounds are used.
	Width, Height int

	// Filename is recorded for diagnostics only.
	Filename string
}

// decodeJob is a completed (or failed) asynchronous decode, produced on a
// decode goroutine and applied on the command thread by Update.
//
// seq and epoch implement the in-flight-race policy: the latest issued load
// for a handle wins regardless of completion order, and a clear invalidates
// everything issued before it.
type decodeJob struct {
	sprite   bool // true: encoded sprite define; false: image object load
	id       int  // definition id or image handle
	seq      uint64
	epoch    uint64
	filename string
	width    int
	height   int
	img      image.Image
	err      error
}

// LoadImage begins an asynchronous decode of data for the given handle.
// The returned error reports synchronous acceptance only — an empty payload
// is rejected immediately; everything after that is asynchronous.
//
// On decode success (applied during Update) the handle's object is wholly
// replaced by a fresh one: not visible, at (0, 0), scale 0, rotation 0. On
// decode failure the handle's prior object is left untouched and the failure
// is reported through OnLoadError or the debug log.
func (s *Stage) LoadImage(handle int, data []byte, opts ImageLoadOptions) error {
	if len(data) == 0 {
		return ErrEmptyImageData
	}
	s.loadSeq++
	job := decodeJob{
		id:       handle,
		seq:      s.loadSeq,
		epoch:    s.imageEpoch,
		filename: opts.Filename,
		width:    opts.Width,
		height:   opts.Height,
	}
	s.startDecode(job, data)
	return nil
}

// loadSpriteData begins an asynchronous decode of an encoded sprite payload.
// On completion the decoded image is quantized and committed as the
// definition for id, which also resolves the pending update queue for it.
func (s *Stage) loadSpriteData(id int, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyImageData
	}
	s.loadSeq++
	job := decodeJob{
		sprite: true,
		id:     id,
		seq:    s.loadSeq,
		epoch:  s.spriteEpoch,
	}
	s.startDecode(job, data)
	return nil
}

// startDecode runs the decoder on its own goroutine. The goroutine touches no
// stage state: it fills in the job and sends it on the completion channel.
func (s *Stage) startDecode(job decodeJob, data []byte) {
	decode := s.decoder
	go func() {
		img, _, err := decode(bytes.NewReader(data))
		if err != nil {
			job.err = &DecodeError{Handle: job.id, Filename: job.filename, Err: err}
		} else {
			job.img = img
		}
		s.completions <- job
	}()
}

// applyDecode applies one completed decode on the command thread.
func (s *Stage) applyDecode(job decodeJob) {
	if job.sprite {
		s.applySpriteDecode(job)
		return
	}

	// Issued before the last ClearImages: the store no longer wants it.
	if job.epoch != s.imageEpoch {
		return
	}
	// A later-issued load for this handle already landed.
	if job.seq < s.appliedImg[job.id] {
		return
	}

	if job.err != nil {
		if s.onLoadError != nil {
			s.onLoadError(job.id, job.filename, job.err)
		} else {
			s.warnf("%v", job.err)
		}
		return
	}

	s.appliedImg[job.id] = job.seq

	b := job.img.Bounds()
	w, h := b.Dx(), b.Dy()
	if job.width > 0 {
		w = job.width
	}
	if job.height > 0 {
		h = job.height
	}

	obj := &ImageObject{
		Handle:   job.id,
		Filename: job.filename,
		img:      ebiten.NewImageFromImage(job.img),
		width:    w,
		height:   h,
	}
	if old, ok := s.images[job.id]; ok {
		if old.img != nil {
			old.img.Deallocate()
		}
	} else {
		s.imgOrder = append(s.imgOrder, job.id)
	}
	s.images[job.id] = obj
	s.imagesDirty = true
}

// applySpriteDecode commits a finished encoded-sprite decode as a definition.
func (s *Stage) applySpriteDecode(job decodeJob) {
	if job.epoch != s.spriteEpoch {
		return
	}
	if job.seq < s.appliedDef[job.id] {
		return
	}
	if job.err != nil {
		if s.onLoadError != nil {
			s.onLoadError(job.id, job.filename, job.err)
		} else {
			s.warnf("%v", job.err)
		}
		return
	}
	s.appliedDef[job.id] = job.seq
	s.putDefinition(job.id, Quantize(job.img, s.side))
}

// ShowImage makes the object visible at the given position and scale.
// Returns ErrUnknownHandle (after a debug warning) when the handle has no
// object; the call is then a no-op.
func (s *Stage) ShowImage(handle int, x, y float64, scale int) error {
	obj, ok := s.images[handle]
	if !ok {
		s.warnf("show image: unknown handle %d", handle)
		return ErrUnknownHandle
	}
	obj.Visible = true
	obj.X, obj.Y = x, y
	obj.Scale = scale
	s.imagesDirty = true
	return nil
}

// HideImage makes the object invisible. Position, scale, and rotation are
// retained.
func (s *Stage) HideImage(handle int) error {
	obj, ok := s.images[handle]
	if !ok {
		s.warnf("hide image: unknown handle %d", handle)
		return ErrUnknownHandle
	}
	obj.Visible = false
	s.imagesDirty = true
	return nil
}

// RotateImage sets the object's rotation in radians.
func (s *Stage) RotateImage(handle int, radians float64) error {
	obj, ok := s.images[handle]
	if !ok {
		s.warnf("rotate image: unknown handle %d", handle)
		return ErrUnknownHandle
	}
	obj.Rotation = radians
	s.imagesDirty = true
	return nil
}
