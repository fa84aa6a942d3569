package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/gogpu/segbar"
	"github.com/gogpu/segbar/termcanvas"
)

func newTermCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "Draw the bar in the terminal and wait for a key",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			w, err := a.newWidget()
			if err != nil {
				return err
			}
			screen, err := tcell.NewScreen()
			if err != nil {
				return err
			}
			if err := screen.Init(); err != nil {
				return err
			}
			defer screen.Fini()
			return runTerm(screen, w)
		},
	}
}

// runTerm draws w and redraws on resize until a key is pressed.
func runTerm(screen tcell.Screen, w *segbar.Widget) error {
	drawTerm(screen, w)
	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			drawTerm(screen, w)
		case *tcell.EventKey, nil:
			return nil
		}
	}
}

// drawTerm paints the bar on the second row with a one-cell margin and a
// status line beneath it.
func drawTerm(screen tcell.Screen, w *segbar.Widget) {
	screen.Clear()
	cols, _ := screen.Size()
	c := termcanvas.New(screen, 1, 1, cols-2, 1)
	termcanvas.Render(c, w)

	cfg := w.Config()
	status := fmt.Sprintf("%d/%d  %s  (any key to exit)", cfg.Progress, cfg.SegmentCount, cfg.Style)
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i, r := range []rune(status) {
		screen.SetContent(1+i, 3, r, nil, style)
	}
	screen.Show()
}
