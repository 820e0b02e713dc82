package main

import (
	"github.com/pchuck/segsieve/internal/config"
	"github.com/pchuck/segsieve/internal/obsprogress"
)

// progressHandle adapts internal/obsprogress.Bar to the dispatcher's
// func(delta int) callback, and is a safe no-op when progress display is
// disabled (quiet mode or a non-terminal stderr).
type progressHandle struct {
	bar *obsprogress.Bar
}

func newProgressHandle() *progressHandle {
	return &progressHandle{}
}

// attach estimates the segment count for [start, stop] from the active
// sieve-size config and wires a progress bar before the dispatcher call
// begins, sizing the bar from the requested range up front.
func (h *progressHandle) attach(start, stop uint64, description string, enabled bool) func(int) {
	if !enabled {
		return nil
	}
	segBytes := config.Current().SegmentBytes
	span := stop - start + 1
	segments := span/uint64(segBytes*30) + 1
	h.bar = obsprogress.New(int64(segments), description)
	return func(delta int) { h.bar.Update(int64(delta)) }
}

func (h *progressHandle) finish() {
	if h.bar != nil {
		h.bar.Finish()
	}
}
