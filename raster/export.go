package raster

import (
	"io"

	"github.com/gogpu/segbar/recording"
)

func init() {
	recording.Register("png", recording.ExporterFunc(exportPNG))
}

// FromRecording rasterizes r onto a new canvas of the recording's size.
func FromRecording(r *recording.Recording) *Canvas {
	c := New(r.Width(), r.Height())
	r.Playback(c)
	return c
}

func exportPNG(r *recording.Recording, w io.Writer) error {
	return FromRecording(r).EncodePNG(w)
}
