// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/segbar"
)

const keyDPI = "dpi"

// attrFlags maps command-line flag names to attribute keys.
var attrFlags = []struct {
	flag, key, usage string
}{
	{"segments", segbar.AttrSegmentCount, "number of segments"},
	{"progress", segbar.AttrProgress, "number of filled segments"},
	{"spacing", segbar.AttrSpacing, "gap between segments (e.g. 2dp, 4px)"},
	{"stroke-width", segbar.AttrStrokeWidth, "bar thickness (e.g. 10dp)"},
	{"style", segbar.AttrStyle, "squared, rounded or rounded_edges"},
	{"empty-color", segbar.AttrEmptyColor, "color of empty segments"},
	{"filled-color", segbar.AttrFilledColor, "color of filled segments"},
}

// app holds state shared by all subcommands.
type app struct {
	v        *viper.Viper
	cfgFile  string
	logLevel string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "segbar",
		Short: "Render and host segmented progress bars",
		Long: `segbar draws a horizontal bar of discrete segments filled left to right.

Attributes are read from flags, SEGBAR_* environment variables and an
optional config file (segbar.yaml, .toml or .json in the current directory
or $HOME/.config/segbar) holding the attribute keys:

  segment_count, progress, segment_spacing, segment_stroke_width,
  segment_style, segment_empty_color, segment_filled_color, dpi`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.setupLogging(cmd); err != nil {
				return err
			}
			return a.initConfig()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: segbar.yaml)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (default: silent)")
	pf.Float64(keyDPI, float64(segbar.DefaultDensity), "screen density in dots per inch")
	_ = a.v.BindPFlag(keyDPI, pf.Lookup(keyDPI))
	for _, f := range attrFlags {
		pf.String(f.flag, "", f.usage)
		_ = a.v.BindPFlag(f.key, pf.Lookup(f.flag))
	}

	cmd.AddCommand(
		newRenderCmd(a),
		newSVGCmd(a),
		newTermCmd(a),
		newTUICmd(a),
		newWindowCmd(a),
	)
	return cmd
}

func (a *app) setupLogging(cmd *cobra.Command) error {
	if a.logLevel == "" {
		return nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
	}
	segbar.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	return nil
}

func (a *app) initConfig() error {
	v := a.v
	if a.cfgFile != "" {
		v.SetConfigFile(a.cfgFile)
	} else {
		v.SetConfigName("segbar")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/segbar")
	}

	v.SetDefault(keyDPI, float64(segbar.DefaultDensity))
	v.SetEnvPrefix("SEGBAR")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
		segbar.Logger().Debug("segbar: no config file, using flags and environment")
		return nil
	}
	segbar.Logger().Info("segbar: using config file", "path", v.ConfigFileUsed())
	return nil
}

// attributes collects every attribute set by flag, environment or config.
func (a *app) attributes() segbar.Attributes {
	attrs := segbar.Attributes{}
	for _, key := range segbar.AttributeKeys {
		if a.v.IsSet(key) {
			attrs[key] = a.v.GetString(key)
		}
	}
	return attrs
}

func (a *app) density() segbar.Density {
	return segbar.Density(a.v.GetFloat64(keyDPI))
}

// newWidget builds a widget from the resolved attributes.
func (a *app) newWidget(opts ...segbar.Option) (*segbar.Widget, error) {
	opts = append([]segbar.Option{
		segbar.WithDensity(a.density()),
		segbar.WithAttributes(a.attributes()),
	}, opts...)
	w, err := segbar.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("configure widget: %w", err)
	}
	return w, nil
}
