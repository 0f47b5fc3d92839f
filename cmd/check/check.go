package main

import (
	"errors"
	"fmt"
	"github.com/urfave/cli/v2"
	"io"
	"regexlab/internal/app/domain/regex"
	"regexlab/internal/app/domain/validator"
	"regexlab/internal/app/infrastructure/config"
	"regexlab/internal/app/ports"
	"strings"
)

var (
	errInvalidPattern = errors.New("invalid pattern")
	errEmptyPattern   = errors.New("empty pattern: nothing matches")
)

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "check",
		Usage:     "checks a regular expression against test strings",
		UsageText: "check [--engine re2|regexp2] [--pattern P | --preset NAME] STRINGS...",
		Writer:    out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "pattern",
				Aliases: []string{"p"},
				Usage:   "regular expression to test",
			},
			&cli.StringFlag{
				Name:  "preset",
				Usage: "use a named preset instead of --pattern",
			},
			&cli.StringFlag{
				Name:  "engine",
				Usage: "regex engine: " + strings.Join(regex.Names(), ", "),
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "config file with extra presets and engine settings",
			},
			&cli.BoolFlag{
				Name:  "list-presets",
				Usage: "print presets and exit",
			},
		},
		Action: check,
	}
}

func check(c *cli.Context) error {
	manager, err := config.New(c.String("config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg := manager.Get()

	engineName := cfg.Engine.Name
	if c.IsSet("engine") {
		engineName = c.String("engine")
	}
	engine, err := regex.New(engineName, cfg.Engine.MatchTimeout())
	if err != nil {
		return err
	}

	extra := make([]ports.Preset, 0, len(cfg.Presets))
	for _, p := range cfg.Presets {
		extra = append(extra, ports.Preset{Name: p.Name, Pattern: p.Pattern})
	}
	v := validator.New(engine, validator.WithPresets(validator.MergePresets(extra)))

	out := c.App.Writer
	if c.Bool("list-presets") {
		for _, p := range v.ListPresets() {
			fmt.Fprintf(out, "%-12s %s\n", p.Name, p.Pattern)
		}
		return nil
	}

	if c.IsSet("pattern") && c.IsSet("preset") {
		return errors.New("--pattern and --preset are mutually exclusive")
	}

	var st ports.PatternState
	if name := c.String("preset"); name != "" {
		p, err := v.FindPreset(name)
		if err != nil {
			return err
		}
		st = v.ApplyPreset(p.Pattern)
	} else {
		st = v.SetPattern(c.String("pattern"))
	}

	switch st.Status {
	case ports.StatusEmpty:
		return errEmptyPattern
	case ports.StatusInvalid:
		return fmt.Errorf("%w: %s", errInvalidPattern, st.Error)
	}

	fmt.Fprintf(out, "Pattern: %s ✓ Valid Regex (%s)\n", st.Pattern, engine.Name())
	for _, s := range c.Args().Slice() {
		v.AddTestString(s)
	}
	for _, r := range v.Results() {
		verdict := "✗ No Match"
		if r.Matched {
			verdict = "✓ Match"
		}
		fmt.Fprintf(out, "%-10s  %s\n", verdict, r.Text)
	}

	return nil
}
