package spritecache

import (
	"fmt"
	"os"
)

// Stats summarizes store contents for diagnostics and introspection queries.
type Stats struct {
	Definitions    int
	Compositions   int
	Instances      int
	PendingUpdates int
	Images         int
	LoadedImages   int
}

// Stats returns current store counts.
func (s *Stage) Stats() Stats {
	st := Stats{
		Definitions:    len(s.defs),
		Compositions:   len(s.comps),
		Instances:      len(s.instances),
		PendingUpdates: len(s.pending),
		Images:         len(s.images),
	}
	for _, obj := range s.images {
		if obj.Loaded() {
			st.LoadedImages++
		}
	}
	return st
}

// ImageSummary describes one image object for debug queries.
type ImageSummary struct {
	Handle   int
	Filename string
	Visible  bool
	Loaded   bool
	Width    int
	Height   int
}

// ImageSummaries returns one summary per image object, in first-load order.
func (s *Stage) ImageSummaries() []ImageSummary {
	out := make([]ImageSummary, 0, len(s.imgOrder))
	for _, handle := range s.imgOrder {
		obj := s.images[handle]
		if obj == nil {
			continue
		}
		w, h := obj.Size()
		out = append(out, ImageSummary{
			Handle:   obj.Handle,
			Filename: obj.Filename,
			Visible:  obj.Visible,
			Loaded:   obj.Loaded(),
			Width:    w,
			Height:   h,
		})
	}
	return out
}

// SetDebugMode enables or disables stderr diagnostics: queued-update notices,
// unknown-handle warnings, decode failures without an OnLoadError callback,
// and per-pass sprite render stats.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// warnf prints a diagnostic warning to stderr when debug mode is on.
func (s *Stage) warnf(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[spritecache] warning: "+format+"\n", args...)
}

// debugLogSpritePass prints per-pass stats for a dirty sprite render.
func (s *Stage) debugLogSpritePass(groupCount, drawn int) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[spritecache] sprite pass: %d drawn of %d instances | %d definition groups | %d pending\n",
		drawn, len(s.instances), groupCount, len(s.pending))
}
