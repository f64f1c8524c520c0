package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/kalafut/chunkopt"
	"github.com/kalafut/chunkopt/internal/config"
	"github.com/kalafut/chunkopt/internal/log"
	"github.com/kalafut/chunkopt/internal/render"
)

var CLI struct {
	Config     string        `name:"config" type:"path" help:"Path to config file."`
	Threshold  int           `default:"-1" help:"Non-space characters at or below which a line is unimportant (0 to only use empty lines)."`
	TimeLimit    time.Duration `name:"time-limit" short:"t" help:"Max time to spend diffing."`
	Raw          bool          `help:"Print the diff without boundary optimization."`
	SideBySide   bool          `name:"side-by-side" help:"Print line diffs in two columns."`
	NoSideBySide bool          `name:"no-side-by-side" help:"Print line diffs in one column even if the config file asks for two."`
	Width        int           `help:"Output width for --side-by-side."`
	Color        string        `help:"Colorize output: auto, always or never."`

	Lines struct {
		BeforeFile *os.File `arg help:"Before file"`
		AfterFile  *os.File `arg help:"After file"`
	} `cmd help:"Compare two files line by line."`

	Words struct {
		BeforeFile *os.File `arg help:"Before file"`
		AfterFile  *os.File `arg help:"After file"`
	} `cmd help:"Compare two files word by word."`

	Diff struct {
		BeforeFile *os.File `arg help:"Before file"`
		AfterFile  *os.File `arg help:"After file"`
	} `cmd help:"Compare two files using the mode from the config file."`
}

func main() {
	os.Exit(realMain())
}

func realMain() int {
	ctx := kong.Parse(&CLI, kong.Description("Show differences between two files with natural chunk boundaries."))

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		log.Errorf("%s", err)
		return 1
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		log.Errorf("%s", err)
		return 1
	}
	applyColor(cfg.Color)

	var before, after *os.File
	mode := cfg.Mode
	switch ctx.Command() {
	case "lines <before-file> <after-file>":
		before, after, mode = CLI.Lines.BeforeFile, CLI.Lines.AfterFile, config.ModeLines
	case "words <before-file> <after-file>":
		before, after, mode = CLI.Words.BeforeFile, CLI.Words.AfterFile, config.ModeWords
	case "diff <before-file> <after-file>":
		before, after = CLI.Diff.BeforeFile, CLI.Diff.AfterFile
	default:
		panic(ctx.Command())
	}
	defer before.Close()
	defer after.Close()

	if mode == config.ModeWords && CLI.SideBySide {
		log.Warnf("--side-by-side only applies to line diffs, ignoring it")
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(runCtx, cfg, mode, CLI.Raw, before, after, os.Stdout); err != nil {
		if errors.Is(err, chunkopt.ErrAborted) {
			log.Warnf("interrupted")
		} else {
			log.Errorf("%s", err)
		}
		return 1
	}
	return 0
}

// applyFlags overrides config file settings with flags that were given.
func applyFlags(cfg *config.Config) {
	if CLI.Threshold >= 0 {
		cfg.UnimportantLineCharCount = CLI.Threshold
	}
	if CLI.TimeLimit > 0 {
		cfg.Timeout = CLI.TimeLimit
	}
	if CLI.SideBySide {
		cfg.SideBySide = true
	}
	if CLI.NoSideBySide {
		cfg.SideBySide = false
	}
	if CLI.Width > 0 {
		cfg.Width = CLI.Width
	}
	if CLI.Color != "" {
		cfg.Color = CLI.Color
	}
}

func applyColor(setting string) {
	switch setting {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}
}

func run(ctx context.Context, cfg *config.Config, mode string, raw bool, before, after io.Reader, w io.Writer) error {
	a, err := io.ReadAll(before)
	if err != nil {
		return fmt.Errorf("reading before file: %w", err)
	}
	b, err := io.ReadAll(after)
	if err != nil {
		return fmt.Errorf("reading after file: %w", err)
	}

	opts := cfg.Options()
	if raw {
		opts = append(opts, chunkopt.WithRaw())
	}

	start := time.Now()

	if mode == config.ModeWords {
		d, err := chunkopt.CompareWords(ctx, string(a), string(b), opts...)
		if err != nil {
			return err
		}
		log.Debug("%d vs %d words, %d matched in %d chunks (%s)",
			len(d.A), len(d.B), d.MatchedCount(), len(d.Chunks()), time.Since(start))
		if raw {
			log.Infof("boundaries not optimized: %d words matched in %d chunks", d.MatchedCount(), len(d.Chunks()))
		}
		return render.Words(w, d)
	}

	d, err := chunkopt.CompareLines(ctx, string(a), string(b), opts...)
	if err != nil {
		return err
	}
	log.Debug("%d vs %d lines, %d matched in %d chunks (%s)",
		len(d.A), len(d.B), d.MatchedCount(), len(d.Chunks()), time.Since(start))
	if raw {
		log.Infof("boundaries not optimized: %d lines matched in %d chunks", d.MatchedCount(), len(d.Chunks()))
	}
	if cfg.SideBySide {
		return render.SideBySide(w, d, cfg.Width)
	}
	return render.Lines(w, d)
}
