// Command kanaruby annotates Japanese text with furigana.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/cobra"

	"kanaruby"
	"kanaruby/dict"
	"kanaruby/render"
	"kanaruby/selector"
	"kanaruby/tokenize"
)

type config struct {
	DictPath  string `env:"KANARUBY_DICT" env-default:"dict.gob"`
	LogLevel  string `env:"KANARUBY_LOG_LEVEL" env-default:"info"`
	LogFormat string `env:"KANARUBY_LOG_FORMAT" env-default:"text"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "kanaruby",
		Short:         "Annotate Japanese text with furigana",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newAnnotateCmd())
	return root
}

func newAnnotateCmd() *cobra.Command {
	var (
		format        string
		katakana      bool
		includeCommon bool
		sysdict       string
		dictPath      string
		exact         bool
	)

	cmd := &cobra.Command{
		Use:   "annotate [input] [output]",
		Short: "Annotate text from a file or STDIN and write the result to a file or STDOUT",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg config
			if err := cleanenv.ReadEnv(&cfg); err != nil {
				return fmt.Errorf("read env config: %w", err)
			}
			logger := newLogger(cfg.LogLevel, cfg.LogFormat)
			if dictPath == "" {
				dictPath = cfg.DictPath
			}

			text, err := readInput(args)
			if err != nil {
				return err
			}

			d, err := dict.LoadFile(dictPath)
			if err != nil {
				return err
			}
			logger.Info("dictionary loaded", "path", dictPath, "entries", d.Len())

			tok, err := tokenize.New(tokenize.SysDict(sysdict))
			if err != nil {
				return err
			}

			opts := []kanaruby.Option{kanaruby.WithLogger(logger)}
			if exact {
				opts = append(opts, kanaruby.WithSelector(selector.Exact{}))
			}
			annotator := kanaruby.New(d, tok, opts...)

			doc, err := annotator.Annotate(cmd.Context(), text)
			if err != nil {
				return err
			}

			out, err := render.Render(doc, render.Format(format), render.Config{
				GlossCommonWords: includeCommon,
				Script:           script(katakana),
			})
			if err != nil {
				return err
			}
			return writeOutput(args, out)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "markdown", "output format: markdown, html, latex")
	cmd.Flags().BoolVarP(&katakana, "katakana", "k", false, "emit readings in katakana instead of hiragana")
	cmd.Flags().BoolVarP(&includeCommon, "include-common", "c", false, "gloss readings of common words too")
	cmd.Flags().StringVar(&sysdict, "sysdict", string(tokenize.IPA), "tokenizer system dictionary: ipa or uni")
	cmd.Flags().StringVar(&dictPath, "dict", "", "path to the furigana dictionary artifact")
	cmd.Flags().BoolVar(&exact, "exact", false, "only use dictionary readings that exactly match the analyzer")
	return cmd
}

func script(katakana bool) render.Script {
	if katakana {
		return render.Katakana
	}
	return render.Hiragana
}

func readInput(args []string) (string, error) {
	if len(args) >= 1 && args[0] != "-" {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(b), nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}

func writeOutput(args []string, out string) error {
	if len(args) == 2 && args[1] != "-" {
		if err := os.WriteFile(args[1], []byte(out), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}
	_, err := fmt.Fprintln(os.Stdout, out)
	return err
}

// newLogger builds a slog.Logger on stderr and installs it as the
// default. Format "json" gives structured output; anything else gives
// human-readable text.
func newLogger(level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
