// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"testing"

	"github.com/gogpu/segbar"
)

var (
	red  = segbar.Hex("#ff0000")
	blue = segbar.Hex("#0000ff")
)

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		t    CommandType
		want string
	}{
		{CmdFillRect, "FillRect"},
		{CmdFillPath, "FillPath"},
		{CommandType(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("CommandType(%d).String() = %q, want %q", tt.t, got, tt.want)
		}
	}
}

func TestRecorderCapturesCommands(t *testing.T) {
	rec := NewRecorder(50, 10)
	rec.FillRect(segbar.R(0, 0, 10, 10), red)

	p := segbar.RoundedRectPath(segbar.R(20, 0, 40, 10), 2, 2, segbar.AllCorners)
	rec.FillPath(p, blue)
	p.LineTo(99, 99) // mutating after the call must not leak into the recording

	if rec.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", rec.Len())
	}
	r := rec.FinishRecording()
	if r.Width() != 50 || r.Height() != 10 {
		t.Errorf("size = %dx%d, want 50x10", r.Width(), r.Height())
	}

	cmds := r.Commands()
	if cmds[0].Type() != CmdFillRect || cmds[1].Type() != CmdFillPath {
		t.Errorf("types = %v, %v", cmds[0].Type(), cmds[1].Type())
	}
	if cmds[0].Fill() != red || cmds[1].Fill() != blue {
		t.Errorf("fills = %v, %v", cmds[0].Fill(), cmds[1].Fill())
	}
	if b := cmds[1].Bounds(); b != segbar.R(20, 0, 40, 10) {
		t.Errorf("path bounds = %v, want (20,0)-(40,10)", b)
	}
}

type countingCanvas struct {
	rects, paths int
}

func (c *countingCanvas) FillRect(segbar.Rect, segbar.RGBA)  { c.rects++ }
func (c *countingCanvas) FillPath(*segbar.Path, segbar.RGBA) { c.paths++ }

func TestRecordAndPlayback(t *testing.T) {
	tests := []struct {
		style        segbar.Style
		rects, paths int
	}{
		{segbar.StyleSquared, 5, 0},
		{segbar.StyleRounded, 0, 5},
		{segbar.StyleRoundedEdges, 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			w := segbar.MustNew(segbar.WithPatch(segbar.Patch{
				SegmentCount: segbar.Ptr(5),
				Progress:     segbar.Ptr(3),
				Style:        segbar.Ptr(tt.style),
			}))
			r := Record(w, 300, 20)
			if r.Width() != 300 || r.Height() != 20 {
				t.Errorf("size = %dx%d, want 300x20", r.Width(), r.Height())
			}
			if w.Config().SegmentCount != len(r.Commands()) {
				t.Errorf("recorded %d commands, want 5", len(r.Commands()))
			}

			var c countingCanvas
			r.Playback(&c)
			if c.rects != tt.rects || c.paths != tt.paths {
				t.Errorf("playback = %d rects, %d paths, want %d, %d",
					c.rects, c.paths, tt.rects, tt.paths)
			}

			cfg := w.Config()
			for i, cmd := range r.Commands() {
				want := cfg.EmptyColor
				if i < cfg.Progress {
					want = cfg.FilledColor
				}
				if cmd.Fill() != want {
					t.Errorf("command %d fill = %v, want %v", i, cmd.Fill(), want)
				}
			}
		})
	}
}
