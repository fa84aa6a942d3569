// Package recording captures segbar drawing calls as typed commands.
//
// A Recorder is a segbar.Canvas that stores every fill instead of
// rasterizing it. The resulting Recording can be inspected, replayed onto
// another canvas, or exported by name:
//
//	rec := recording.NewRecorder(400, 40)
//	w.OnResize(segbar.Size{Width: 400, Height: 40})
//	w.Render(rec)
//	r := rec.FinishRecording()
//
//	exp, err := recording.NewExporter("svg")
//	if err != nil {
//	    return err
//	}
//	err = exp.Export(r, os.Stdout)
//
// The "svg" exporter is built in. Other packages add formats with
// Register, following the database/sql driver pattern; importing
// github.com/gogpu/segbar/raster registers "png".
package recording
