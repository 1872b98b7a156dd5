// Package main provides the CLI entrypoint for letterfall.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"letterfall/internal/config"
	"letterfall/internal/dict"
	"letterfall/internal/letters"
	"letterfall/internal/physics"
	"letterfall/internal/score"
	"letterfall/internal/scoresui"
	"letterfall/internal/session"
	"letterfall/internal/sim"
	"letterfall/internal/sound"
	"letterfall/internal/spawn"
	"letterfall/internal/stats"
	"letterfall/internal/tui"
)

const (
	defaultCurveWindow = 10
	defaultPlotHeight  = 10
)

var (
	defaultGame   = session.DefaultConfig()
	defaultTuning = spawn.DefaultTuning()
	defaultSim    = sim.DefaultOptions()
)

var (
	playWords       string
	playStrategy    string
	playMinWord     int
	playSound       bool
	playInterval    float64
	playBatchPairs  int
	playBurstPairs  int
	playCandidates  int
	playRecency     int
	playVowelTarget float64
	playArenaWidth  float64
	playArenaHeight float64
	playMaxLink     float64

	simRounds     int
	simPairs      int
	simWordEvery  int
	simWordLength int
	simMaxDiscs   int
	simSeed       int64
	simWidth      int
	simHeight     int
	simColor      bool

	scoresLast   int
	scoresWindow int
	scoresPlain  bool

	wordsPath    string
	wordsInstall bool
	wordsForce   bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "letterfall",
		Short:         "TUI word game with falling letter discs",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().StringVar(&playWords, "words", "", "path to the word list file")
	rootCmd.Flags().StringVar(&playStrategy, "strategy", defaultGame.StrategyLabel, "spawn strategy: bigram or bag")
	rootCmd.Flags().IntVar(&playMinWord, "min-word", defaultGame.MinWordLength, "shortest committable word")
	rootCmd.Flags().BoolVar(&playSound, "sound", true, "play sound cues")
	rootCmd.Flags().Float64Var(&playInterval, "interval", defaultGame.Interval.Seconds(), "seconds between spawn batches")
	rootCmd.Flags().IntVar(&playBatchPairs, "batch-pairs", defaultGame.BatchPairs, "pairs per recurring batch")
	rootCmd.Flags().IntVar(&playBurstPairs, "burst-pairs", defaultGame.BurstPairs, "pairs in the opening burst")
	rootCmd.Flags().IntVar(&playCandidates, "candidates", defaultTuning.Candidates, "bigram candidates scored per spawn")
	rootCmd.Flags().IntVar(&playRecency, "recency", defaultTuning.RecencySize, "recently spawned pairs remembered")
	rootCmd.Flags().Float64Var(&playVowelTarget, "vowel-target", defaultTuning.TargetVowelRatio, "vowel share the spawner steers toward (0-1)")
	rootCmd.Flags().Float64Var(&playArenaWidth, "arena-width", defaultGame.ArenaWidth, "arena width in world units")
	rootCmd.Flags().Float64Var(&playArenaHeight, "arena-height", defaultGame.ArenaHeight, "arena height in world units")
	rootCmd.Flags().Float64Var(&playMaxLink, "max-link", defaultGame.MaxLink, "longest selection link between disc centers")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newScoresCmd())
	rootCmd.AddCommand(newWordsCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "words", &playWords, fileCfg.Game.WordList)
	applyStringConfig(cmd, "strategy", &playStrategy, fileCfg.Game.Strategy)
	applyIntConfig(cmd, "min-word", &playMinWord, fileCfg.Game.MinWordLength)
	applyBoolConfig(cmd, "sound", &playSound, fileCfg.Game.Sound)
	applyFloatConfig(cmd, "interval", &playInterval, fileCfg.Spawn.Interval)
	applyIntConfig(cmd, "batch-pairs", &playBatchPairs, fileCfg.Spawn.BatchPairs)
	applyIntConfig(cmd, "burst-pairs", &playBurstPairs, fileCfg.Spawn.BurstPairs)
	applyIntConfig(cmd, "candidates", &playCandidates, fileCfg.Spawn.Candidates)
	applyIntConfig(cmd, "recency", &playRecency, fileCfg.Spawn.RecencySize)
	applyFloatConfig(cmd, "vowel-target", &playVowelTarget, fileCfg.Spawn.VowelTarget)
	applyFloatConfig(cmd, "arena-width", &playArenaWidth, fileCfg.Arena.Width)
	applyFloatConfig(cmd, "arena-height", &playArenaHeight, fileCfg.Arena.Height)
	applyFloatConfig(cmd, "max-link", &playMaxLink, fileCfg.Arena.MaxLink)

	cfg := defaultGame
	cfg.MinWordLength = playMinWord
	cfg.StrategyLabel = playStrategy
	cfg.Interval = time.Duration(playInterval * float64(time.Second))
	cfg.BatchPairs = playBatchPairs
	cfg.BurstPairs = playBurstPairs
	cfg.ArenaWidth = playArenaWidth
	cfg.ArenaHeight = playArenaHeight
	cfg.MaxLink = playMaxLink

	tuning := defaultTuning
	tuning.Candidates = playCandidates
	tuning.RecencySize = playRecency
	tuning.TargetVowelRatio = playVowelTarget

	if err := validateConfig(cfg, tuning); err != nil {
		return err
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	var strategy spawn.Strategy
	switch cfg.StrategyLabel {
	case score.StrategyBigram:
		sel, err := spawn.NewSelector(letters.Bigrams(), tuning, rnd)
		if err != nil {
			return fmt.Errorf("failed to build selector: %w", err)
		}
		strategy = sel
	case score.StrategyBag:
		strategy = spawn.NewBag(rnd)
	default:
		return fmt.Errorf("--strategy must be %q or %q", score.StrategyBigram, score.StrategyBag)
	}

	listPath := playWords
	if listPath == "" {
		listPath = config.DefaultWordsPath()
	}
	d, err := dict.Open(listPath)
	if err != nil {
		return fmt.Errorf("failed to open word list: %w", err)
	}

	st, err := score.OpenStore(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	var sounds *sound.Player
	if playSound {
		sounds = sound.NewPlayer()
		if err := sounds.Init(); err != nil {
			logErrf("sound disabled: %v\n", err)
			sounds = nil
		}
	}

	eng := physics.NewChipmunk(cfg.ArenaWidth, cfg.ArenaHeight)
	placer := spawn.NewPlacer(spawn.DefaultLayout(cfg.ArenaWidth), rnd)
	ctrl := session.New(cfg, eng, d, strategy, placer)

	model := tui.NewModel(ctrl, st, sounds)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
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

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the spawner headlessly and report board balance",
		Args:  cobra.NoArgs,
		RunE:  runSimulateCmd,
	}
	cmd.Flags().IntVar(&simRounds, "rounds", defaultSim.Rounds, "spawn rounds to simulate")
	cmd.Flags().IntVar(&simPairs, "pairs", defaultSim.PairsPerRound, "pairs spawned per round")
	cmd.Flags().IntVar(&simWordEvery, "word-every", defaultSim.WordEvery, "consume a word every N rounds (0 disables)")
	cmd.Flags().IntVar(&simWordLength, "word-length", defaultSim.WordLength, "letters consumed per word")
	cmd.Flags().IntVar(&simMaxDiscs, "max-discs", defaultSim.MaxDiscs, "pause spawning above this board size")
	cmd.Flags().Int64Var(&simSeed, "seed", defaultSim.Seed, "random seed")
	cmd.Flags().IntVar(&simWidth, "width", 0, "plot width in columns (0: autodetect)")
	cmd.Flags().IntVar(&simHeight, "height", defaultPlotHeight, "plot height in rows")
	cmd.Flags().BoolVar(&simColor, "color", false, "force colored plots")
	return cmd
}

func runSimulateCmd(cmd *cobra.Command, _ []string) error {
	opts := defaultSim
	opts.Rounds = simRounds
	opts.PairsPerRound = simPairs
	opts.WordEvery = simWordEvery
	opts.WordLength = simWordLength
	opts.MaxDiscs = simMaxDiscs
	opts.Seed = simSeed

	res, err := sim.Run(opts)
	if err != nil {
		return fmt.Errorf("failed to run simulation: %w", err)
	}
	return sim.Report(cmd.OutOrStdout(), res, simWidth, simHeight, simColor)
}

func newScoresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Browse stored games",
		Args:  cobra.NoArgs,
		RunE:  runScoresCmd,
	}
	cmd.Flags().IntVar(&scoresLast, "last", 0, "limit to last N games (0: all)")
	cmd.Flags().IntVar(&scoresWindow, "window", defaultCurveWindow, "moving average window for curves")
	cmd.Flags().BoolVar(&scoresPlain, "plain", false, "print to stdout instead of the TUI")
	return cmd
}

func runScoresCmd(cmd *cobra.Command, _ []string) error {
	st, err := score.OpenStore(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	if scoresPlain {
		return renderPlainScores(cmd.OutOrStdout(), st)
	}

	model := scoresui.NewModel(st, scoresLast, scoresWindow)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run scores TUI: %w", err)
	}
	return nil
}

func renderPlainScores(w io.Writer, st *score.Store) error {
	ctx := context.Background()
	games, err := st.ListGames(ctx, scoresLast)
	if err != nil {
		return fmt.Errorf("failed to load games: %w", err)
	}
	if err := stats.RenderGameSummary(w, games); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if len(games) == 0 {
		return nil
	}
	if len(games) > 1 {
		if err := stats.RenderScoreCurves(w, games, scoresWindow, 0, defaultPlotHeight, false); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	aggs, err := st.LetterAggregates(ctx, scoresLast)
	if err != nil {
		return fmt.Errorf("failed to load letter stats: %w", err)
	}
	if len(aggs) == 0 {
		return nil
	}
	if err := stats.RenderLetterTable(w, aggs); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Inspect or install the word list",
		Args:  cobra.NoArgs,
		RunE:  runWordsCmd,
	}
	cmd.Flags().StringVar(&wordsPath, "path", "", "word list path (default: config location)")
	cmd.Flags().BoolVar(&wordsInstall, "install", false, "write the built-in starter list to the path")
	cmd.Flags().BoolVar(&wordsForce, "force", false, "overwrite an existing word list")
	return cmd
}

func runWordsCmd(cmd *cobra.Command, _ []string) error {
	path := wordsPath
	if path == "" {
		path = config.DefaultWordsPath()
	}

	if wordsInstall {
		if !wordsForce {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("word list already exists: %s (use --force to overwrite)", path)
			} else if !os.IsNotExist(err) {
				return fmt.Errorf("failed to stat word list: %w", err)
			}
		}
		words := dict.BuiltinList()
		if err := writeWordList(path, words); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		logErrf("Wrote %s (%d words)\n", path, len(words))
		return nil
	}

	d, err := dict.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open word list: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := d.WaitReady(ctx); err != nil {
		logErrf("word list %s not readable (%v); using built-in list\n", path, err)
	}
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "Source: %s\nWords: %d\n", d.Source(), d.Size()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if d.Source() == dict.BuiltinSource {
		if _, err := fmt.Fprintln(out, "Install a starter list: letterfall words --install"); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func writeWordList(path string, words []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create word list dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "words-*.txt")
	if err != nil {
		return fmt.Errorf("failed to create temp word list: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	writer := bufio.NewWriter(tmpFile)
	for _, word := range words {
		if _, err := fmt.Fprintln(writer, word); err != nil {
			return fmt.Errorf("failed to write word list: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush word list: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close word list: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write word list: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
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
	return fmt.Sprintf(`# letterfall configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# min-word-length = %d    # Shortest committable word
# sound = true            # Play sound cues
# strategy = %q      # Spawn strategy: "bigram" or "bag"
# word-list = ""          # Path to a word list file (one word per line)

[spawn]
# interval = %.1f         # Seconds between spawn batches
# batch-pairs = %d        # Pairs per recurring batch
# burst-pairs = %d        # Pairs in the opening burst
# candidates = %d        # Bigram candidates scored per spawn
# recency = %d           # Recently spawned pairs remembered
# vowel-target = %.2f     # Vowel share the spawner steers toward

[arena]
# width = %.0f            # Arena width in world units
# height = %.0f           # Arena height in world units
# max-link = %.0f         # Longest selection link between disc centers
`,
		defaultGame.MinWordLength,
		defaultGame.StrategyLabel,
		defaultGame.Interval.Seconds(),
		defaultGame.BatchPairs,
		defaultGame.BurstPairs,
		defaultTuning.Candidates,
		defaultTuning.RecencySize,
		defaultTuning.TargetVowelRatio,
		defaultGame.ArenaWidth,
		defaultGame.ArenaHeight,
		defaultGame.MaxLink,
	)
}

func validateConfig(cfg session.Config, tuning spawn.Tuning) error {
	if cfg.MinWordLength < 2 {
		return fmt.Errorf("--min-word must be >= 2")
	}
	if cfg.Interval <= 0 {
		return fmt.Errorf("--interval must be > 0")
	}
	if cfg.BatchPairs < 1 {
		return fmt.Errorf("--batch-pairs must be >= 1")
	}
	if cfg.BurstPairs < 1 {
		return fmt.Errorf("--burst-pairs must be >= 1")
	}
	if tuning.Candidates < 1 {
		return fmt.Errorf("--candidates must be >= 1")
	}
	if tuning.RecencySize < 0 {
		return fmt.Errorf("--recency must be >= 0")
	}
	if tuning.TargetVowelRatio < 0 || tuning.TargetVowelRatio > 1 {
		return fmt.Errorf("--vowel-target must be between 0 and 1")
	}
	if cfg.ArenaWidth < 200 || cfg.ArenaHeight < 200 {
		return fmt.Errorf("--arena-width and --arena-height must be >= 200")
	}
	if cfg.MaxLink <= 0 {
		return fmt.Errorf("--max-link must be > 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
