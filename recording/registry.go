// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

// Exporter writes a Recording in some output format.
type Exporter interface {
	Export(r *Recording, w io.Writer) error
}

// ExporterFunc adapts a function to the Exporter interface.
type ExporterFunc func(r *Recording, w io.Writer) error

// Export calls f(r, w).
func (f ExporterFunc) Export(r *Recording, w io.Writer) error {
	return f(r, w)
}

var (
	registryMu sync.RWMutex
	exporters  = make(map[string]Exporter)
)

func init() {
	Register("svg", ExporterFunc(WriteSVG))
}

// Register makes an exporter available by name. It is typically called
// from init:
//
//	func init() {
//	    recording.Register("png", recording.ExporterFunc(exportPNG))
//	}
//
// Register panics if e is nil or the name is already taken.
func Register(name string, e Exporter) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if e == nil {
		panic("recording: Register exporter is nil")
	}
	if _, dup := exporters[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	exporters[name] = e
}

// Unregister removes an exporter. Unknown names are a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(exporters, name)
}

// NewExporter returns the exporter registered under name.
func NewExporter(name string) (Exporter, error) {
	registryMu.RLock()
	e, ok := exporters[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("recording: unknown exporter %q (forgotten import?)", name)
	}
	return e, nil
}

// Exporters returns the sorted names of all registered exporters.
func Exporters() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(exporters))
	for name := range exporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
