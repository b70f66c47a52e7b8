package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-hints/internal/config"
	"github.com/robalobadob/wordle/apps/go-hints/internal/console"
	"github.com/robalobadob/wordle/apps/go-hints/internal/daily"
	"github.com/robalobadob/wordle/apps/go-hints/internal/store"
	"github.com/robalobadob/wordle/apps/go-hints/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}
	setupLogging(cfg)

	dict, err := words.Load(words.Source{
		Length:      cfg.WordLength,
		AnswersFile: cfg.AnswersFile,
		AllowedFile: cfg.AllowedFile,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pick, err := selector(cfg, dict)
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}

	c := console.New(os.Stdin, os.Stdout, console.Options{
		Dict:    dict,
		Select:  pick,
		Store:   store.NewMemoryStore(),
		Rows:    cfg.MaxGuesses,
		Workers: cfg.FilterWorkers,
		Color:   cfg.Color,
	})
	log.Info().Str("selection", cfg.Selection).Int("length", dict.Length()).Msg("starting go-hints")
	if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("session exited")
	}
}

func setupLogging(cfg config.Config) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	// Diagnostics share the terminal with the game, so keep them on stderr.
	if cfg.LogFormat == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen, NoColor: !cfg.Color})
}

// selector picks the secret strategy. An ANSWER override must be one of
// the loaded answers.
func selector(cfg config.Config, dict *words.Dictionary) (words.Selector, error) {
	if cfg.Answer != "" {
		if !dict.IsAnswer(cfg.Answer) {
			return nil, fmt.Errorf("ANSWER %q is not in the answer list", cfg.Answer)
		}
		return words.FixedSelector(cfg.Answer), nil
	}
	switch cfg.Selection {
	case config.SelectRandom:
		return words.RandomSelector(), nil
	case config.SelectDaily:
		return daily.Selector(cfg.DailySalt, time.Now), nil
	default:
		return words.PluralSkipSelector(nil, cfg.PluralSuffix, cfg.PluralKeepProb), nil
	}
}
