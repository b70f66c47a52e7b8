// internal/console/console.go
//
// Line-oriented front-end for the hint engine.
// Responsibilities:
//   - Start games: draw a secret with the configured Selector, register the
//     game in the Store.
//   - Apply guesses typed one per line and print the scored row.
//   - On an empty line, list the words still consistent with the game so far.
//   - Slash commands: /new, /stats, /help, /quit.
//
// Notes:
//   - Input is read on its own goroutine so Run returns promptly when ctx is
//     cancelled.
//   - User-facing messages go to the output writer; diagnostics go to the logger.

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-hints/internal/game"
	"github.com/robalobadob/wordle/apps/go-hints/internal/store"
	"github.com/robalobadob/wordle/apps/go-hints/internal/words"
)

// Options wires a Console to its collaborators.
type Options struct {
	Dict    *words.Dictionary
	Select  words.Selector  // secret selection; nil means words.RandomSelector()
	Store   store.Store     // nil means a fresh in-memory store
	Rows    int             // guesses per game; <= 0 means 6
	Workers int             // goroutines for candidate listing
	Color   bool            // ANSI colors in tile rows
	Logger  *zerolog.Logger // nil means the global logger
}

// Console runs games over a line-based reader/writer pair.
type Console struct {
	opts Options
	in   io.Reader
	out  io.Writer
	log  zerolog.Logger
	game *game.Game
}

// New constructs a Console reading commands from in and writing to out.
func New(in io.Reader, out io.Writer, opts Options) *Console {
	if opts.Select == nil {
		opts.Select = words.RandomSelector()
	}
	if opts.Store == nil {
		opts.Store = store.NewMemoryStore()
	}
	l := log.Logger
	if opts.Logger != nil {
		l = *opts.Logger
	}
	return &Console{
		opts: opts,
		in:   in,
		out:  out,
		log:  l.With().Str("component", "console").Logger(),
	}
}

// Game returns the game in progress, or nil before the first NewGame.
func (c *Console) Game() *game.Game { return c.game }

// NewGame draws a secret and starts a fresh game with an empty history.
// A current game with no guesses yet is restarted rather than replaced.
func (c *Console) NewGame(ctx context.Context) error {
	if c.opts.Dict == nil {
		return errors.New("console: no dictionary")
	}
	secret, err := c.opts.Select(c.opts.Dict.Answers())
	if err != nil {
		return fmt.Errorf("select answer: %w", err)
	}
	g := c.game
	if g != nil && len(g.Guesses) == 0 {
		// Nothing played yet: redraw in place.
		if err := g.Restart(secret); err != nil {
			return fmt.Errorf("restart game: %w", err)
		}
	} else if g, err = game.New(c.opts.Dict, secret, c.opts.Rows); err != nil {
		return fmt.Errorf("new game: %w", err)
	}
	if err := c.opts.Store.Save(ctx, g); err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	c.game = g
	c.log.Debug().Str("gameId", g.ID).Int("cols", g.Cols).Int("rows", g.Rows).Msg("new game")
	c.printf("New game: guess the %d-letter word in %d tries. Empty line lists possible words, /help for commands.\n", g.Cols, g.Rows)
	return nil
}

// Run starts a game and processes input until EOF, /quit or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	if err := c.NewGame(ctx); err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		var err error
		defer func() {
			readErr <- err
			close(lines)
		}()
		sc := bufio.NewScanner(c.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				err = ctx.Err()
				return
			}
		}
		err = sc.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				// The reader may have stopped because ctx was cancelled.
				if err := ctx.Err(); err != nil {
					return err
				}
				return <-readErr
			}
			quit, err := c.Handle(ctx, line)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

// Handle processes one line of input. It reports quit=true for /quit.
// Returned errors are fatal; user mistakes are answered on the output.
func (c *Console) Handle(ctx context.Context, line string) (quit bool, err error) {
	line = strings.TrimSpace(line)
	if c.game == nil {
		if err := c.NewGame(ctx); err != nil {
			return false, err
		}
	}

	switch {
	case line == "":
		return false, c.listCandidates(ctx)
	case strings.HasPrefix(line, "/"):
		return c.command(ctx, line)
	default:
		return false, c.guess(ctx, line)
	}
}

// command runs a slash command.
func (c *Console) command(ctx context.Context, line string) (bool, error) {
	switch strings.ToLower(strings.Fields(line)[0]) {
	case "/quit", "/exit":
		return true, nil
	case "/new":
		return false, c.NewGame(ctx)
	case "/stats":
		return false, c.printStats(ctx)
	case "/help":
		c.printHelp()
	default:
		c.printf("Unknown command %q. Type /help for commands.\n", line)
	}
	return false, nil
}

// guess applies one word to the current game and reports the outcome.
func (c *Console) guess(ctx context.Context, word string) error {
	g := c.game
	v, state, err := g.ApplyGuess(word)
	switch {
	case errors.Is(err, game.ErrFinished):
		c.printf("This game is over. Type /new to play again.\n")
		return nil
	case errors.Is(err, game.ErrLengthMismatch):
		c.printf("Enter a %d-letter word.\n", g.Cols)
		return nil
	case errors.Is(err, game.ErrNotInWordList):
		c.printf("Word doesn't exist.\n")
		return nil
	case err != nil:
		return err
	}

	if err := c.opts.Store.Save(ctx, g); err != nil {
		c.log.Warn().Err(err).Str("gameId", g.ID).Msg("save game")
	}
	c.log.Debug().
		Str("gameId", g.ID).
		Str("verdict", v.String()).
		Str("state", string(state)).
		Int("guess", len(g.Guesses)).
		Msg("guess scored")

	c.printf("%d/%d  %s\n", len(g.Guesses), g.Rows, renderRow(strings.ToUpper(word), v, c.opts.Color))
	c.printf("%s\n", renderKeyboard(&g.Keyboard, c.opts.Color))

	switch state {
	case game.StateWon:
		c.printf("Congratulations! You've guessed the word!\n")
	case game.StateLost:
		c.printf("The word was: '%s'! Better luck next time!\n", g.Answer)
	}
	return nil
}

// listCandidates prints the words still consistent with the current game.
func (c *Console) listCandidates(ctx context.Context) error {
	cands, err := c.game.CandidatesContext(ctx, c.opts.Workers)
	if err != nil {
		return fmt.Errorf("list candidates: %w", err)
	}
	c.log.Info().
		Str("gameId", c.game.ID).
		Int("guesses", c.game.History.Len()).
		Int("candidates", len(cands)).
		Msg("listing possible words")
	c.printf("Possible words: [%s]\n", strings.Join(cands, ", "))
	return nil
}

// printStats prints the tally of finished games in the store.
func (c *Console) printStats(ctx context.Context) error {
	s, err := store.Tally(ctx, c.opts.Store)
	if err != nil {
		return fmt.Errorf("tally: %w", err)
	}
	c.printf("Played %d  Win %% %.0f  Current streak %d  Max streak %d\n",
		s.Played, s.WinRate(), s.Streak, s.BestStreak)
	rows := c.opts.Rows
	if c.game != nil {
		rows = c.game.Rows
	}
	for n := 1; n <= rows; n++ {
		c.printf("  %d: %d\n", n, s.Guesses[n])
	}
	return nil
}

func (c *Console) printHelp() {
	c.printf(`Type a word and press enter to guess.
  (empty line)  list the words still possible
  /new          start a new game
  /stats        show results so far
  /quit         exit
`)
}

func (c *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(c.out, format, args...); err != nil {
		c.log.Warn().Err(err).Msg("write output")
	}
}
