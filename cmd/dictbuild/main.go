// Command dictbuild produces the binary furigana dictionary artifact the
// annotator loads at startup. It downloads the JmdictFurigana source,
// parses it, marks common words using JMdict priority data, and writes a
// gob artifact. This is a one-time offline step; nothing in the core
// depends on it beyond the artifact format.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/cobra"
	jmdict "github.com/yomidevs/jmdict-go"

	"kanaruby/dict"
)

type config struct {
	SourceURL  string `env:"DICTBUILD_SOURCE_URL" env-default:"https://github.com/Doublevil/JmdictFurigana/releases/latest/download/JmdictFurigana.txt"`
	CachePath  string `env:"DICTBUILD_CACHE" env-default:""`
	JMdictPath string `env:"DICTBUILD_JMDICT" env-default:""`
	OutPath    string `env:"DICTBUILD_OUT" env-default:"dict.gob"`
	LogLevel   string `env:"DICTBUILD_LOG_LEVEL" env-default:"info"`
}

func main() {
	cmd := &cobra.Command{
		Use:           "dictbuild",
		Short:         "Build the furigana dictionary artifact",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg config
			if err := cleanenv.ReadEnv(&cfg); err != nil {
				return fmt.Errorf("read env config: %w", err)
			}
			return run(cfg)
		},
	}
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	logger := newLogger(cfg.LogLevel)

	source, err := fetchSource(logger, cfg)
	if err != nil {
		return err
	}

	entries, skipped, err := parseSource(source)
	if err != nil {
		return err
	}
	logger.Info("source parsed", "entries", len(entries), "skipped", skipped)

	if cfg.JMdictPath != "" {
		marked, err := markCommon(cfg.JMdictPath, entries)
		if err != nil {
			return err
		}
		logger.Info("common-word flags applied", "jmdict", cfg.JMdictPath, "marked", marked)
	} else {
		logger.Warn("no JMdict path configured; all entries treated as uncommon")
	}

	d := dict.New()
	for _, e := range entries {
		if err := d.Add(e); err != nil {
			return err
		}
	}
	if err := writeArtifact(cfg.OutPath, d); err != nil {
		return err
	}
	logger.Info("artifact written", "path", cfg.OutPath, "entries", d.Len())
	return nil
}

// fetchSource returns the JmdictFurigana text, preferring the cache file
// when present and filling it after a download.
func fetchSource(logger *slog.Logger, cfg config) (string, error) {
	if cfg.CachePath != "" {
		if b, err := os.ReadFile(cfg.CachePath); err == nil {
			logger.Info("using cached source", "path", cfg.CachePath)
			return string(b), nil
		}
	}
	logger.Info("downloading source", "url", cfg.SourceURL)
	resp, err := http.Get(cfg.SourceURL)
	if err != nil {
		return "", fmt.Errorf("download source: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download source: status %s", resp.Status)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("download source: %w", err)
	}
	if cfg.CachePath != "" {
		if err := os.WriteFile(cfg.CachePath, b, 0o644); err != nil {
			logger.Warn("could not write cache", "path", cfg.CachePath, "err", err)
		}
	}
	return string(b), nil
}

// parseSource parses the source leniently: a handful of malformed lines
// in an upstream release should not fail the whole build. Skipped lines
// are counted; an entirely unparseable source is an error.
func parseSource(source string) ([]*dict.Entry, int, error) {
	var entries []*dict.Entry
	skipped := 0
	for i, line := range strings.Split(source, "\n") {
		if i == 0 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, err := dict.ParseLine(line)
		if err != nil {
			skipped++
			continue
		}
		if err := e.Validate(); err != nil {
			skipped++
			continue
		}
		entries = append(entries, e)
	}
	if len(entries) == 0 {
		return nil, 0, fmt.Errorf("no parseable entries in source (%d lines skipped)", skipped)
	}
	return entries, skipped, nil
}

// commonPriorities are the JMdict priority tags that count a form as
// common.
var commonPriorities = map[string]bool{
	"ichi1": true,
	"news1": true,
	"spec1": true,
	"spec2": true,
	"gai1":  true,
}

func isCommon(priorities []string) bool {
	for _, p := range priorities {
		if commonPriorities[p] {
			return true
		}
	}
	return false
}

type commonness struct {
	text    bool
	reading bool
}

// markCommon loads JMdict and flags each (surface, reading) pair whose
// priority tags mark it common.
func markCommon(path string, entries []*dict.Entry) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open JMdict: %w", err)
	}
	defer f.Close()

	jm, _, err := jmdict.LoadJmdict(f)
	if err != nil {
		return 0, fmt.Errorf("load JMdict: %w", err)
	}

	freq := make(map[string]commonness)
	for _, entry := range jm.Entries {
		for _, k := range entry.Kanji {
			kc := isCommon(k.Priorities)
			for _, r := range entry.Readings {
				key := k.Expression + "|" + r.Reading
				c := freq[key]
				c.text = c.text || kc
				c.reading = c.reading || isCommon(r.Priorities)
				freq[key] = c
			}
		}
	}

	marked := 0
	for _, e := range entries {
		if c, ok := freq[e.Text+"|"+e.Reading]; ok {
			e.TextCommon = c.text
			e.ReadingCommon = c.reading
			if c.text || c.reading {
				marked++
			}
		}
	}
	return marked, nil
}

// writeArtifact writes to a temporary file and renames it into place so
// a failed build never leaves a truncated artifact behind.
func writeArtifact(path string, d *dict.Dictionary) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create artifact: %w", err)
	}
	if err := dict.WriteGob(f, d); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close artifact: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename artifact: %w", err)
	}
	return nil
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
	slog.SetDefault(logger)
	return logger
}
