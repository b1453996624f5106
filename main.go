// main.go
//
// Entry point for wrdl, a terminal game of Wordle.
// Responsibilities:
//   - Parse flags and environment, set up zerolog to a file.
//   - Apply setting flags (-w, -a, -r) to the saved progress and exit.
//   - Pick the secret (sequential index or word of the day) and run a session.
//   - Record finished games and advance the index.
//   - Alternative modes: -stats (print), -serve (HTTP stats API).
//
// Notes:
//   - While a session runs the terminal belongs to tcell, so nothing is
//     printed to stdout/stderr until it returns.
//   - Fatal errors print "error: <msg>" on stderr and exit with status 1.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/robalobadob/wordle/apps/wrdl/internal/config"
	"github.com/robalobadob/wordle/apps/wrdl/internal/daily"
	"github.com/robalobadob/wordle/apps/wrdl/internal/game"
	"github.com/robalobadob/wordle/apps/wrdl/internal/httpserver"
	"github.com/robalobadob/wordle/apps/wrdl/internal/store"
	"github.com/robalobadob/wordle/apps/wrdl/internal/ui"
	"github.com/robalobadob/wordle/apps/wrdl/internal/words"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "1.0.0"

const about = "wrdl is a terminal-based game of Wordle."

// isTerminal reports whether the game can take over the terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// newScreen is swapped in tests.
var newScreen = tcell.NewScreen

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	wordsPath   string
	allowedPath string
	reset       bool
	version     bool
	daily       bool
	stats       bool
	serve       bool
	set         map[string]bool // flags present on the command line
}

func parseFlags(args []string, stdout io.Writer) (*options, error) {
	o := &options{set: map[string]bool{}}
	fs := flag.NewFlagSet("wrdl", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.StringVar(&o.wordsPath, "w", "", "path to the secret `words` file, empty to unset")
	fs.StringVar(&o.allowedPath, "a", "", "path to the allowed `guesses` file, empty to unset")
	fs.BoolVar(&o.reset, "r", false, "set the next word pointer to the beginning")
	fs.BoolVar(&o.version, "V", false, "print version information")
	fs.BoolVar(&o.daily, "daily", false, "play the word of the day")
	fs.BoolVar(&o.stats, "stats", false, "print statistics")
	fs.BoolVar(&o.serve, "serve", false, "serve statistics over HTTP on $PORT")
	fs.Usage = func() {
		fmt.Fprintf(stdout, "wrdl %s\n\n%s\n\nUSAGE:\n    wrdl [OPTIONS]\n\nOPTIONS:\n", version, about)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("invalid argument %q", fs.Arg(0))
	}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	log.Logger = zerolog.Nop()
	console := zerolog.New(zerolog.ConsoleWriter{
		Out:         stderr,
		NoColor:     true,
		PartsOrder:  []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		FormatLevel: func(any) string { return "error:" },
	})
	fail := func(err error) int {
		log.Error().Err(err).Msg("wrdl failed")
		console.Error().Msg(err.Error())
		return 1
	}

	opts, err := parseFlags(args, stdout)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return fail(err)
	}
	if opts.version {
		fmt.Fprintln(stdout, version)
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		return fail(err)
	}
	logFile, err := openLog(cfg)
	if err != nil {
		return fail(err)
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg.DBPath, log.Logger)
	if err != nil {
		return fail(err)
	}
	defer st.Close()

	switch {
	case opts.set["w"] || opts.set["a"] || opts.set["r"]:
		err = applySettings(ctx, st, opts, stdout)
	case opts.stats:
		err = printStats(ctx, st, stdout)
	case opts.serve:
		err = serve(ctx, st, cfg)
	default:
		err = play(ctx, st, cfg, opts.daily, stdout)
	}
	if err != nil {
		return fail(err)
	}
	return 0
}

// openLog points the global logger at cfg.LogFile.
func openLog(cfg config.Config) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)
	log.Logger = zerolog.New(f).With().Timestamp().Str("version", version).Logger()
	return f, nil
}

// ------------------------------ settings -----------------------------------

func applySettings(ctx context.Context, st store.Store, o *options, out io.Writer) error {
	p, err := st.LoadProgress(ctx)
	if err != nil {
		return err
	}
	if o.set["w"] {
		if p.WordsPath, err = overridePath(o.wordsPath); err != nil {
			return err
		}
		fmt.Fprintln(out, describePath("Words file", p.WordsPath))
	}
	if o.set["a"] {
		if p.AllowedPath, err = overridePath(o.allowedPath); err != nil {
			return err
		}
		fmt.Fprintln(out, describePath("Allowed guesses file", p.AllowedPath))
	}
	if o.set["r"] && o.reset {
		p.Index = 0
		fmt.Fprintln(out, "Next word reset to the beginning.")
	}
	// Reject unreadable lists now rather than at the next game.
	if _, err := words.Load(p.WordsPath, p.AllowedPath); err != nil {
		return err
	}
	if err := st.SaveProgress(ctx, p); err != nil {
		return err
	}
	log.Info().Int("index", p.Index).Str("words", p.WordsPath).Str("allowed", p.AllowedPath).Msg("settings saved")
	return nil
}

// overridePath validates a -w/-a value. Empty means "use the built-in list".
func overridePath(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		return "", nil
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(abs); err != nil {
		return "", fmt.Errorf("path does not exist: %s", p)
	}
	return abs, nil
}

func describePath(what, p string) string {
	if p == "" {
		return what + " unset, using the built-in list."
	}
	return what + " set to " + p + "."
}

// -------------------------------- stats ------------------------------------

func printStats(ctx context.Context, st store.Store, out io.Writer) error {
	results, err := st.Results(ctx, 0)
	if err != nil {
		return err
	}
	s := store.Summarize(results)
	fmt.Fprintf(out, "Played          %d\n", s.Played)
	fmt.Fprintf(out, "Win %%           %d\n", s.WinPercent)
	fmt.Fprintf(out, "Current streak  %d\n", s.CurrentStreak)
	fmt.Fprintf(out, "Max streak      %d\n", s.MaxStreak)
	fmt.Fprintln(out, "\nGuess distribution")
	for i, n := range s.Distribution {
		fmt.Fprintf(out, "%d | %s %d\n", i+1, strings.Repeat("#", n), n)
	}
	return nil
}

// -------------------------------- serve ------------------------------------

func serve(ctx context.Context, st store.Store, cfg config.Config) error {
	srv := httpserver.New(st, log.Logger)
	errc := make(chan error, 1)
	go func() { errc <- srv.Start(":" + cfg.Port) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down stats server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errc
}

// --------------------------------- play ------------------------------------

func play(ctx context.Context, st store.Store, cfg config.Config, dailyMode bool, out io.Writer) error {
	if !isTerminal() {
		return errors.New("wrdl needs an interactive terminal")
	}

	p, err := st.LoadProgress(ctx)
	if err != nil {
		return err
	}
	lists, err := words.Load(p.WordsPath, p.AllowedPath)
	if err != nil {
		return err
	}

	now := time.Now()
	index, date := p.Index, ""
	if dailyMode {
		date = daily.DateKey(now)
		played, err := st.PlayedDaily(ctx, date)
		if err != nil {
			return err
		}
		if played {
			fmt.Fprintf(out, "The word for %s has already been played. Come back tomorrow.\n", date)
			return nil
		}
		index = daily.WordIndex(now, cfg.DailySalt, len(lists.Answers()))
	}
	secret, err := lists.Answer(index)
	if err != nil {
		return err
	}

	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("%w: %v", ui.ErrTerminal, err)
	}
	nAnswers, nAllowed := lists.Stats()
	log.Info().Int("index", index).Bool("daily", dailyMode).
		Int("answers", nAnswers).Int("allowed", nAllowed).Msg("session start")
	g, err := ui.Play(ctx, screen, secret, lists.Allowed(), index, ui.SystemClipboard{}, log.Logger)
	if err != nil {
		return err
	}
	if !g.Status().Over() {
		log.Info().Int("index", index).Int("attempts", g.Attempts()).Msg("session abandoned")
		return nil
	}
	return finish(ctx, st, g, p, dailyMode, date, time.Since(now))
}

// finish records a completed game and, outside daily mode, moves to the next word.
func finish(ctx context.Context, st store.Store, g *game.Game, p store.Progress,
	dailyMode bool, date string, elapsed time.Duration) error {
	res := &store.Result{
		Index:     g.Index(),
		Word:      g.Secret(),
		Attempts:  g.Attempts(),
		Won:       g.Status() == game.Won,
		Daily:     dailyMode,
		Date:      date,
		Grid:      game.Grid(g.Guesses()),
		ElapsedMs: elapsed.Milliseconds(),
	}
	if err := st.RecordResult(ctx, res); err != nil {
		return err
	}
	log.Info().Int64("id", res.ID).Bool("won", res.Won).Int("attempts", res.Attempts).Msg("game recorded")
	if dailyMode {
		return nil
	}
	p.Index++
	return st.SaveProgress(ctx, p)
}
