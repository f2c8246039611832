// Package main provides the CLI entrypoint for tuipractice.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/tuipractice/internal/config"
	"github.com/verte-zerg/tuipractice/internal/generator"
	"github.com/verte-zerg/tuipractice/internal/model"
	"github.com/verte-zerg/tuipractice/internal/source"
	"github.com/verte-zerg/tuipractice/internal/tui"
	"github.com/verte-zerg/tuipractice/internal/typing"
	"github.com/verte-zerg/tuipractice/internal/wordlist"
)

const (
	defaultWidthPct     = 0.70
	defaultWordCount    = 25
	defaultLineWords    = 10
	defaultCaps         = 0.0
	defaultPunct        = 0.0
	terminalWidthBackup = 80
)

const defaultPunctSet = ".,!?;:"

var (
	practiceKeepNewline    bool
	practiceExitOnComplete bool
	practiceWidthPct       float64
	practiceKeyHelp        bool

	wordsPath      string
	wordsCount     int
	wordsLineWords int
	wordsCaps      float64
	wordsPunct     float64
	wordsPunctSet  string
	wordsASCIIOnly bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuipractice <file>",
		Short:         "Practice typing a text file in the terminal",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&practiceKeepNewline, "keep-trailing-newline", false, "keep the final newline of the practice file")
	flags.BoolVar(&practiceExitOnComplete, "exit-on-complete", true, "quit as soon as the text is fully typed")
	flags.Float64Var(&practiceWidthPct, "width-pct", defaultWidthPct, "share of the terminal width used for the text (0-1]")
	flags.BoolVar(&practiceKeyHelp, "key-help", true, "show key bindings in the footer")

	rootCmd.AddCommand(newWordsCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadPracticeConfig(cmd)
	if err != nil {
		return err
	}
	text, err := loadPracticeText(args[0], cfg)
	if err != nil {
		return err
	}
	return runSession(cmd, cfg, text)
}

// loadPracticeConfig merges defaults, the config file and explicitly set flags.
func loadPracticeConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyBoolConfig(cmd, "keep-trailing-newline", &practiceKeepNewline, fileCfg.Practice.KeepTrailingNewline)
	applyBoolConfig(cmd, "exit-on-complete", &practiceExitOnComplete, fileCfg.Practice.ExitOnComplete)
	applyFloatConfig(cmd, "width-pct", &practiceWidthPct, fileCfg.Display.WidthPct)
	applyBoolConfig(cmd, "key-help", &practiceKeyHelp, fileCfg.Display.KeyHelp)

	cfg := model.Config{
		KeepTrailingNewline: practiceKeepNewline,
		ExitOnComplete:      practiceExitOnComplete,
		WidthPct:            practiceWidthPct,
		KeyHelp:             practiceKeyHelp,
		Theme:               fileCfg.Theme.ApplyTheme(model.DefaultTheme()),
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func loadPracticeText(path string, cfg model.Config) (string, error) {
	text, err := source.Load(path, source.Options{KeepTrailingNewline: cfg.KeepTrailingNewline})
	if err != nil {
		if errors.Is(err, source.ErrNotFile) {
			return "", fmt.Errorf("the file %q does not exist", filepath.Base(path))
		}
		return "", err
	}
	return text, nil
}

func newProgress(text string) (*typing.Progress, error) {
	progress, err := typing.New(text)
	if err != nil {
		if errors.Is(err, typing.ErrEmptyInput) {
			return nil, fmt.Errorf("nothing to practice: %w", err)
		}
		return nil, err
	}
	return progress, nil
}

func runSession(cmd *cobra.Command, cfg model.Config, text string) error {
	progress, err := newProgress(text)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("interactive practice needs a terminal on stdin")
	}

	program := tea.NewProgram(tui.NewModel(cfg, progress), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if progress.IsComplete() {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), "Practice complete."); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Practice randomly generated words from a word list",
		Args:  cobra.NoArgs,
		RunE:  runWordsCmd,
	}
	cmd.Flags().StringVar(&wordsPath, "wordlist", "", "word list file (whitespace separated)")
	cmd.Flags().IntVar(&wordsCount, "count", defaultWordCount, "words per text")
	cmd.Flags().IntVar(&wordsLineWords, "line-words", defaultLineWords, "words per line (0 keeps one line)")
	cmd.Flags().Float64Var(&wordsCaps, "caps", defaultCaps, "probability of capitalized first letter (0-1)")
	cmd.Flags().Float64Var(&wordsPunct, "punct", defaultPunct, "punctuation probability per word (0-1)")
	cmd.Flags().StringVar(&wordsPunctSet, "punct-set", defaultPunctSet, "punctuation set")
	cmd.Flags().BoolVar(&wordsASCIIOnly, "ascii-only", false, "skip words with non-ASCII letters")
	if err := cmd.MarkFlagRequired("wordlist"); err != nil {
		logErrf("failed to mark --wordlist required: %v\n", err)
	}
	return cmd
}

func runWordsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadPracticeConfig(cmd)
	if err != nil {
		return err
	}
	wcfg := model.WordsConfig{
		WordListPath: wordsPath,
		Count:        wordsCount,
		LineWords:    wordsLineWords,
		CapsPct:      wordsCaps,
		PunctPct:     wordsPunct,
		PunctSet:     wordsPunctSet,
		ASCIIOnly:    wordsASCIIOnly,
	}
	if err := validateWordsConfig(wcfg); err != nil {
		return err
	}

	var keep wordlist.FilterFunc
	if wcfg.ASCIIOnly {
		keep = wordlist.ASCIILetters
	}
	words, err := wordlist.LoadWords(wcfg.WordListPath, keep)
	if err != nil {
		return fmt.Errorf("failed to load word list %s: %w", wcfg.WordListPath, err)
	}

	text := generator.New().Text(words, generator.Options{
		Count:     wcfg.Count,
		LineWords: wcfg.LineWords,
		CapsPct:   wcfg.CapsPct,
		PunctPct:  wcfg.PunctPct,
		PunctSet:  []rune(wcfg.PunctSet),
	})
	return runSession(cmd, cfg, text)
}

func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview <file>",
		Short: "Print the practice text as it will be laid out",
		Args:  cobra.ExactArgs(1),
		RunE:  runPreviewCmd,
	}
}

func runPreviewCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadPracticeConfig(cmd)
	if err != nil {
		return err
	}
	text, err := loadPracticeText(args[0], cfg)
	if err != nil {
		return err
	}
	progress, err := newProgress(text)
	if err != nil {
		return err
	}
	width := int(float64(terminalWidth(os.Stdout)) * cfg.WidthPct)
	out := tui.RenderText(progress.Snapshot(), cfg.Theme, width)
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func terminalWidth(file *os.File) int {
	if !term.IsTerminal(int(file.Fd())) {
		return terminalWidthBackup
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
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
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	theme := model.DefaultTheme()
	return fmt.Sprintf(`# tuipractice configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# keep-trailing-newline = false  # Keep the final newline of the practice file
# exit-on-complete = true        # Quit as soon as the text is fully typed

[display]
# width-pct = %.2f               # Share of the terminal width used for the text
# key-help = true                # Show key bindings in the footer

[theme]
# typed = %q
# mistyped-fg = %q
# mistyped-bg = %q
# current-fg = %q
# current-bg = %q
# untyped = %q
# footer = %q
`,
		defaultWidthPct,
		theme.Typed,
		theme.MistypedFg,
		theme.MistypedBg,
		theme.CurrentFg,
		theme.CurrentBg,
		theme.Untyped,
		theme.Footer,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.WidthPct <= 0 || cfg.WidthPct > 1 {
		return fmt.Errorf("--width-pct must be in (0, 1]")
	}
	return nil
}

func validateWordsConfig(cfg model.WordsConfig) error {
	if strings.TrimSpace(cfg.WordListPath) == "" {
		return fmt.Errorf("--wordlist must not be empty")
	}
	if cfg.Count <= 0 {
		return fmt.Errorf("--count must be > 0")
	}
	if cfg.LineWords < 0 {
		return fmt.Errorf("--line-words must be >= 0")
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
