// Package main provides the CLI entrypoint for wpmtest.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/wpmtest/internal/config"
	"github.com/verte-zerg/wpmtest/internal/generator"
	"github.com/verte-zerg/wpmtest/internal/model"
	"github.com/verte-zerg/wpmtest/internal/session"
	"github.com/verte-zerg/wpmtest/internal/stats"
	"github.com/verte-zerg/wpmtest/internal/tui"
	"github.com/verte-zerg/wpmtest/internal/wordlist"
)

const (
	defaultLang     = "en"
	defaultWords    = 50
	defaultCaps     = 0.0
	defaultPunct    = 0.0
	defaultPunctSet = ".,!?;:"
	title           = " wpmtest "
)

var (
	testLang     string
	testWords    int
	testWordList string
	testCaps     float64
	testPunct    float64
	testPunctSet string
	testSeed     int64
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wpmtest",
		Short:         "Terminal typing speed test",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runTestCmd,
	}

	rootCmd.Flags().StringVar(&testLang, "lang", defaultLang, "built-in vocabulary")
	rootCmd.Flags().IntVar(&testWords, "words", defaultWords, "words per test")
	rootCmd.Flags().StringVar(&testWordList, "wordlist", "", "path to a word list file (one word per line)")
	rootCmd.Flags().Float64Var(&testCaps, "caps", defaultCaps, "probability of capitalized first letter (0-1)")
	rootCmd.Flags().Float64Var(&testPunct, "punct", defaultPunct, "punctuation probability per word (0-1)")
	rootCmd.Flags().StringVar(&testPunctSet, "punct-set", defaultPunctSet, "punctuation set")
	rootCmd.Flags().Int64Var(&testSeed, "seed", 0, "random seed for a reproducible text (0 = random)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())

	return rootCmd
}

func runTestCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyConfig(cmd, "lang", &testLang, fileCfg.Test.Lang)
	applyConfig(cmd, "words", &testWords, fileCfg.Test.Words)
	applyConfig(cmd, "wordlist", &testWordList, fileCfg.Test.WordList)
	applyConfig(cmd, "caps", &testCaps, fileCfg.Test.CapsPct)
	applyConfig(cmd, "punct", &testPunct, fileCfg.Test.PunctPct)
	applyConfig(cmd, "punct-set", &testPunctSet, fileCfg.Test.PunctSet)
	applyConfig(cmd, "seed", &testSeed, fileCfg.Test.Seed)

	cfg := model.Config{
		Lang:         testLang,
		Words:        testWords,
		WordListPath: testWordList,
		CapsPct:      testCaps,
		PunctPct:     testPunct,
		PunctSet:     testPunctSet,
		Seed:         testSeed,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	vocab, err := loadVocabulary(cfg)
	if err != nil {
		return err
	}

	gen := generator.New()
	if cfg.Seed != 0 {
		gen = generator.NewSeeded(cfg.Seed)
	}
	target := gen.GenerateWith(vocab, cfg.Words, generator.Options{
		CapsPct:  cfg.CapsPct,
		PunctPct: cfg.PunctPct,
		PunctSet: []rune(cfg.PunctSet),
	})

	m := tui.NewModel(session.New(target), title)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return reportOutcome(cmd, m.Session())
}

func reportOutcome(cmd *cobra.Command, s *session.Session) error {
	if s.Phase() != session.Completed {
		logErrln("test cancelled")
		return nil
	}
	result, err := s.Result()
	if err != nil {
		// A zero-word test completes without a key press.
		logErrf("no result: %v\n", err)
		return nil
	}
	if err := stats.RenderSummary(cmd.OutOrStdout(), result); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

func loadVocabulary(cfg model.Config) (*wordlist.Vocabulary, error) {
	lang, err := wordlist.ParseLanguage(cfg.Lang)
	if err != nil {
		return nil, err
	}
	if cfg.WordListPath == "" {
		return wordlist.Load(lang)
	}
	return wordlist.LoadWords(cfg.WordListPath, wordlist.FilterForLang(lang))
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeDefaultConfig(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// writeDefaultConfig creates the config file from the template unless it exists.
func writeDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List built-in vocabularies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, lang := range wordlist.Languages() {
				vocab, err := wordlist.Load(lang)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d words\n", lang, vocab.Len()); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			}
			return nil
		},
	}
}

func applyConfig[T any](cmd *cobra.Command, name string, target, value *T) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wpmtest configuration
# Uncomment a value to enable it. CLI flags override config values.

[test]
# lang = %q               # Built-in vocabulary
# words = %d              # Words per test
# wordlist = ""           # Word list file, one word per line
# caps = %.2f             # Probability of capitalized first letter (0-1)
# punct = %.2f            # Punctuation probability per word (0-1)
# punct-set = %q      # Punctuation set
# seed = 0                # Fixed seed for a reproducible text (0 = random)
`,
		defaultLang,
		defaultWords,
		defaultCaps,
		defaultPunct,
		defaultPunctSet,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if cfg.CapsPct < 0 || cfg.CapsPct > 1 {
		return fmt.Errorf("--caps must be between 0 and 1")
	}
	if cfg.PunctPct < 0 || cfg.PunctPct > 1 {
		return fmt.Errorf("--punct must be between 0 and 1")
	}
	if cfg.PunctPct > 0 && cfg.PunctSet == "" {
		return fmt.Errorf("--punct-set must not be empty")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
