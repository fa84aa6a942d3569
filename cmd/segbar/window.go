package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/spf13/cobra"

	"github.com/gogpu/segbar"
	"github.com/gogpu/segbar/fynebar"
)

func newWindowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Show the bar in a desktop window",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			w, err := a.newWidget()
			if err != nil {
				return err
			}
			showWindow(w)
			return nil
		},
	}
}

// showWindow opens a window with the bar and progress buttons and blocks
// until it is closed.
func showWindow(w *segbar.Widget) {
	fa := fyneapp.New()
	win := fa.NewWindow("segbar")

	bar := fynebar.New(w)
	status := widget.NewLabel(statusText(w, nil))
	bar.OnChanged = func() { status.SetText(statusText(w, nil)) }
	step := func(delta int) func() {
		return func() {
			if err := bar.SetProgress(w.Progress() + delta); err != nil {
				status.SetText(statusText(w, err))
			}
		}
	}

	buttons := container.NewHBox(
		widget.NewButton("-", step(-1)),
		widget.NewButton("+", step(1)),
	)
	win.SetContent(container.NewVBox(container.NewPadded(bar), buttons, status))
	win.Resize(fyne.NewSize(400, 140))
	win.ShowAndRun()
}

func statusText(w *segbar.Widget, err error) string {
	if err != nil {
		return err.Error()
	}
	cfg := w.Config()
	return fmt.Sprintf("%d of %d", cfg.Progress, cfg.SegmentCount)
}
