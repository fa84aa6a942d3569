package recording

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestSVGExporterRegistered(t *testing.T) {
	e, err := NewExporter("svg")
	if err != nil {
		t.Fatalf("NewExporter(svg) error: %v", err)
	}
	var buf bytes.Buffer
	if err := e.Export(NewRecorder(1, 1).FinishRecording(), &buf); err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "<svg") {
		t.Errorf("svg exporter wrote %q", buf.String())
	}
}

func TestRegisterAndUnregister(t *testing.T) {
	called := false
	Register("test", ExporterFunc(func(*Recording, io.Writer) error {
		called = true
		return nil
	}))
	defer Unregister("test")

	found := false
	for _, name := range Exporters() {
		if name == "test" {
			found = true
		}
	}
	if !found {
		t.Errorf("Exporters() = %v, missing test", Exporters())
	}

	e, err := NewExporter("test")
	if err != nil {
		t.Fatalf("NewExporter(test) error: %v", err)
	}
	_ = e.Export(nil, io.Discard)
	if !called {
		t.Error("registered exporter was not called")
	}

	Unregister("test")
	if _, err := NewExporter("test"); err == nil {
		t.Error("NewExporter succeeded after Unregister")
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"nil", func() { Register("nil-exporter", nil) }},
		{"duplicate", func() { Register("svg", ExporterFunc(WriteSVG)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register did not panic")
				}
			}()
			tt.fn()
		})
	}
}
