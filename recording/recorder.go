// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import "github.com/gogpu/segbar"

// Recorder records fills issued through the segbar.Canvas interface.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
}

var _ segbar.Canvas = (*Recorder)(nil)

// NewRecorder creates a new Recorder for the given dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 16),
	}
}

// FillRect implements segbar.Canvas.
func (r *Recorder) FillRect(rect segbar.Rect, c segbar.RGBA) {
	r.commands = append(r.commands, FillRectCommand{Rect: rect, Color: c})
}

// FillPath implements segbar.Canvas. The path is cloned, so callers may
// reuse it.
func (r *Recorder) FillPath(p *segbar.Path, c segbar.RGBA) {
	r.commands = append(r.commands, FillPathCommand{Path: p.Clone(), Color: c})
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// FinishRecording returns an immutable Recording containing all recorded
// commands. The Recorder must not be used afterwards.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: r.commands,
	}
}

// Recording is an immutable list of drawing commands.
type Recording struct {
	width, height int
	commands      []Command
}

// Record renders w into a new Recording of the given size. The widget is
// resized to fill the whole recording.
func Record(w *segbar.Widget, width, height int) *Recording {
	size := w.Measure(segbar.ExactSpec(width), segbar.ExactSpec(height))
	w.OnResize(size)
	rec := NewRecorder(size.Width, size.Height)
	w.Render(rec)
	return rec.FinishRecording()
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Playback replays the recording onto c.
func (r *Recording) Playback(c segbar.Canvas) {
	for _, cmd := range r.commands {
		switch cmd := cmd.(type) {
		case FillRectCommand:
			c.FillRect(cmd.Rect, cmd.Color)
		case FillPathCommand:
			c.FillPath(cmd.Path, cmd.Color)
		}
	}
}
