package spritecache

import (
	"errors"
	"fmt"
)

// ErrUnknownHandle is returned by show/hide/rotate when the image handle has
// no object. The operation is a no-op.
var ErrUnknownHandle = errors.New("spritecache: unknown image handle")

// ErrEmptyImageData is returned by LoadImage when the payload is empty.
var ErrEmptyImageData = errors.New("spritecache: empty image data")

// ValidationError describes a rejected define payload. The store is left
// unchanged when one is returned.
type ValidationError struct {
	Field  string // the offending command field
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("spritecache: invalid %s: %s", e.Field, e.Reason)
}

// DecodeError wraps an image decode failure. Decode failures surface
// asynchronously (via the OnLoadError callback or the debug log) for image
// loads, and synchronously for encoded sprite defines applied through Apply.
type DecodeError struct {
	Handle   int
	Filename string
	Err      error
}

func (e *DecodeError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("spritecache: decode %q for handle %d: %v", e.Filename, e.Handle, e.Err)
	}
	return fmt.Sprintf("spritecache: decode for handle %d: %v", e.Handle, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
