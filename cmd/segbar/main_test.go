package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/segbar"
	"github.com/gogpu/segbar/termcanvas"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderPNG(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "bar.png")
	if _, err := execute(t, "render", "-o", path, "--width", "120", "--height", "12", "--progress", "1"); err != nil {
		t.Fatalf("render error: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 12 {
		t.Errorf("image size = %dx%d, want 120x12", b.Dx(), b.Dy())
	}
}

func TestSVGToStdout(t *testing.T) {
	t.Chdir(t.TempDir())
	out, err := execute(t, "svg", "-o", "-", "--segments", "4", "--style", "squared")
	if err != nil {
		t.Fatalf("svg error: %v", err)
	}
	if !strings.HasPrefix(out, "<svg") {
		t.Fatalf("output is not SVG:\n%s", out)
	}
	if n := strings.Count(out, "<rect"); n != 4 {
		t.Errorf("SVG has %d rects, want 4", n)
	}
	if !strings.Contains(out, `width="100" height="10"`) {
		t.Errorf("SVG not at desired size:\n%s", out)
	}
}

func TestRenderFormatFlag(t *testing.T) {
	t.Chdir(t.TempDir())
	out, err := execute(t, "render", "--format", "svg", "-o", "-", "--style", "rounded")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if n := strings.Count(out, "<path"); n != 3 {
		t.Errorf("SVG has %d paths, want 3", n)
	}

	if _, err := execute(t, "render", "--format", "gif", "-o", "-"); err == nil {
		t.Error("unknown format accepted")
	}
}

func TestEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SEGBAR_SEGMENT_COUNT", "5")
	t.Setenv("SEGBAR_SEGMENT_STYLE", "squared")
	out, err := execute(t, "svg", "-o", "-")
	if err != nil {
		t.Fatalf("svg error: %v", err)
	}
	if n := strings.Count(out, "<rect"); n != 5 {
		t.Errorf("SVG has %d rects, want 5", n)
	}

	// Flags win over the environment.
	out, err = execute(t, "svg", "-o", "-", "--segments", "2")
	if err != nil {
		t.Fatalf("svg error: %v", err)
	}
	if n := strings.Count(out, "<rect"); n != 2 {
		t.Errorf("SVG has %d rects, want 2", n)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	cfg := "segment_count: 6\nsegment_style: squared\nprogress: 2\nsegment_filled_color: \"#ff0000\"\n"
	if err := os.WriteFile(filepath.Join(dir, "segbar.yaml"), []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "svg", "-o", "-")
	if err != nil {
		t.Fatalf("svg error: %v", err)
	}
	if n := strings.Count(out, "<rect"); n != 6 {
		t.Errorf("SVG has %d rects, want 6", n)
	}
	if n := strings.Count(out, `fill="#ff0000"`); n != 2 {
		t.Errorf("SVG has %d filled segments, want 2", n)
	}

	explicit := filepath.Join(t.TempDir(), "other.json")
	if err := os.WriteFile(explicit, []byte(`{"segment_count": "2", "segment_style": "squared"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err = execute(t, "--config", explicit, "svg", "-o", "-")
	if err != nil {
		t.Fatalf("svg error: %v", err)
	}
	if n := strings.Count(out, "<rect"); n != 2 {
		t.Errorf("--config: SVG has %d rects, want 2", n)
	}
}

func TestInvalidProgress(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := execute(t, "svg", "-o", "-", "--progress", "9")
	if !errors.Is(err, segbar.ErrProgressOutOfBounds) {
		t.Errorf("error = %v, want ErrProgressOutOfBounds", err)
	}
	_, err = execute(t, "svg", "-o", "-", "--spacing", "wide")
	if !errors.Is(err, segbar.ErrInvalidAttribute) {
		t.Errorf("error = %v, want ErrInvalidAttribute", err)
	}
}

func TestLogLevel(t *testing.T) {
	t.Chdir(t.TempDir())
	defer segbar.SetLogger(nil)

	if _, err := execute(t, "--log-level", "loud", "svg", "-o", "-"); err == nil {
		t.Error("invalid --log-level accepted")
	}
	out, err := execute(t, "--log-level", "debug", "svg", "-o", "-")
	if err != nil {
		t.Fatalf("svg error: %v", err)
	}
	if !strings.Contains(out, "level=DEBUG") {
		t.Errorf("debug logging not enabled:\n%s", out)
	}
}

func TestDrawTerm(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(32, 5)

	w := segbar.MustNew(segbar.WithPatch(segbar.Patch{Progress: segbar.Ptr(1)}))
	drawTerm(screen, w)

	if r, _, _, _ := screen.GetContent(0, 1); r == termcanvas.Block {
		t.Error("bar drawn into the margin")
	}
	blocks := 0
	for x := 1; x < 31; x++ {
		if r, _, _, _ := screen.GetContent(x, 1); r == termcanvas.Block {
			blocks++
		}
	}
	if blocks < 25 {
		t.Errorf("bar row has %d blocks, want at least 25", blocks)
	}

	var status []rune
	for x := 1; x < 4; x++ {
		r, _, _, _ := screen.GetContent(x, 3)
		status = append(status, r)
	}
	if string(status) != "1/3" {
		t.Errorf("status = %q, want 1/3", string(status))
	}
}
