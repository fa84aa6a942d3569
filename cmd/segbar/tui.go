package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/gogpu/segbar/tui"
)

func newTUICmd(a *app) *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Drive the bar interactively in the terminal",
		Long: `Drive the bar interactively.

Keys:
  ←/h →/l  change progress
  -/+      change segment count
  s        cycle style
  q        quit`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			tag, err := language.Parse(lang)
			if err != nil {
				return fmt.Errorf("invalid --lang %q: %w", lang, err)
			}
			w, err := a.newWidget()
			if err != nil {
				return err
			}
			return tui.Run(w, tui.WithLanguage(tag))
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "en", "status line language (en, fr)")
	return cmd
}
