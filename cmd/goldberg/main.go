// SPDX-License-Identifier: MIT

// Command goldberg builds a Goldberg coefficient table and prints the BCH
// coefficients of the requested words, or the whole table with -dump.
//
// Usage:
//
//	goldberg -order 6 -word AB,ABAB -word BBAAB
//	goldberg -order 4 -dump
//	goldberg -config goldberg.yaml -v
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/katalvlaran/bch/freelie"
	"github.com/katalvlaran/bch/goldberg"
	"github.com/katalvlaran/bch/metrics"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	wordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))
)

func main() {
	var (
		words      wordList
		order      = flag.Int("order", 0, "Highest word length the table covers (1..32)")
		dump       = flag.Bool("dump", false, "Print every row of the table")
		configPath = flag.String("config", "", "Path to YAML config file")
		verbose    = flag.Bool("v", false, "Debug logging and metrics summary")
	)
	flag.Var(&words, "word", "Word to look up, e.g. AABB (repeatable, comma-separated)")
	flag.Parse()

	cfg, err := resolveConfig(*configPath, *order, *dump, *verbose, words)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, os.Stdout, term.IsTerminal(int(os.Stdout.Fd()))); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveConfig loads the config file, if any, and lets explicit flags win.
func resolveConfig(path string, order int, dump, verbose bool, words wordList) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if order != 0 {
		cfg.Order = order
	}
	if dump {
		cfg.Dump = true
	}
	if verbose {
		cfg.LogLevel = "debug"
		cfg.Metrics.Enabled = true
	}
	if len(words) > 0 {
		cfg.Words = words
	}
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.DisableStacktrace = true
	return zcfg.Build()
}

func run(cfg *Config, out io.Writer, styled bool) error {
	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()
	goldberg.SetLogger(log)

	opts := []goldberg.Option{goldberg.WithLogger(log)}
	var reg *prometheus.Registry
	if cfg.Metrics.Enabled {
		reg = prometheus.NewRegistry()
		opts = append(opts, goldberg.WithMetrics(metrics.NewPrometheus(reg, cfg.Metrics.Namespace)))
	}

	tbl, err := goldberg.Build(cfg.Order, opts...)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}
	defer func() { _ = tbl.Close() }()

	render := func(s lipgloss.Style, text string) string {
		if styled {
			return s.Render(text)
		}
		return text
	}

	fp, err := tbl.Fingerprint()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, render(titleStyle, fmt.Sprintf("Goldberg coefficients, order %d", tbl.Order())))
	fmt.Fprintf(out, "rows: %d  denominator: %s  fingerprint: %016x\n", tbl.Len(), tbl.Denominator(), fp)

	for _, s := range cfg.Words {
		w, err := freelie.ParseWord(s)
		if err != nil {
			return fmt.Errorf("word %q: %w", s, err)
		}
		r, err := tbl.Rat(w)
		if err != nil {
			return fmt.Errorf("word %q: %w", s, err)
		}
		fmt.Fprintf(out, "%s\t%s\n", render(wordStyle, freelie.FormatWord(w)), render(valueStyle, r.RatString()))
	}

	if cfg.Dump {
		if err := tbl.Dump(out); err != nil {
			return err
		}
	}

	if reg != nil {
		logMetrics(log, reg)
	}
	return nil
}

// logMetrics writes every gathered sample at debug level.
func logMetrics(log *zap.Logger, reg *prometheus.Registry) {
	families, err := reg.Gather()
	if err != nil {
		log.Warn("gather metrics", zap.Error(err))
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			fields := []zap.Field{zap.String("metric", mf.GetName())}
			for _, lp := range m.GetLabel() {
				fields = append(fields, zap.String(lp.GetName(), lp.GetValue()))
			}
			switch {
			case m.GetCounter() != nil:
				fields = append(fields, zap.Float64("value", m.GetCounter().GetValue()))
			case m.GetGauge() != nil:
				fields = append(fields, zap.Float64("value", m.GetGauge().GetValue()))
			case m.GetHistogram() != nil:
				fields = append(fields,
					zap.Uint64("count", m.GetHistogram().GetSampleCount()),
					zap.Float64("sum", m.GetHistogram().GetSampleSum()))
			}
			log.Debug("metric", fields...)
		}
	}
}
