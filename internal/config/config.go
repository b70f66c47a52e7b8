// internal/config/config.go
//
// Runtime configuration, read from the environment.
// A .env file in the working directory is loaded first when present
// (variables already set in the environment win).
//
// Environment variables:
//   LOG_LEVEL=info               zerolog level name
//   LOG_FORMAT=console           "console" (human) or "json"
//   WORD_LENGTH=5                letters per word
//   MAX_GUESSES=6                rows per game
//   WORDS_ANSWERS_FILE=          optional answers list
//   WORDS_ALLOWED_FILE=          optional allowed list
//   WORD_SELECTION=plural-skip   random | plural-skip | daily
//   PLURAL_SUFFIX=s              suffix treated as plural by plural-skip
//   PLURAL_KEEP_PROB=0.3333      chance a plural draw is kept
//   DAILY_SALT=local_dev_salt    salt for the daily selection
//   FILTER_WORKERS=1             goroutines used to list candidates
//   COLOR=true                   ANSI tile colors
//   ANSWER=                      fixed secret (testing)

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"
)

// Selection modes for WORD_SELECTION.
const (
	SelectRandom     = "random"
	SelectPluralSkip = "plural-skip"
	SelectDaily      = "daily"
)

var ErrInvalid = errors.New("invalid configuration")

// Config holds every setting the binary reads.
type Config struct {
	LogLevel  string
	LogFormat string

	WordLength  int
	MaxGuesses  int
	AnswersFile string
	AllowedFile string

	Selection      string
	PluralSuffix   string
	PluralKeepProb float64
	DailySalt      string
	Answer         string

	FilterWorkers int
	Color         bool
}

// Load reads .env (if any) and the environment, then validates the result.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the environment without touching .env files.
func FromEnv() (Config, error) {
	c := Config{
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "console"),
		WordLength:     envInt("WORD_LENGTH", 5),
		MaxGuesses:     envInt("MAX_GUESSES", 6),
		AnswersFile:    os.Getenv("WORDS_ANSWERS_FILE"),
		AllowedFile:    os.Getenv("WORDS_ALLOWED_FILE"),
		Selection:      strings.ToLower(getEnv("WORD_SELECTION", SelectPluralSkip)),
		PluralSuffix:   getEnv("PLURAL_SUFFIX", "s"),
		PluralKeepProb: envFloat("PLURAL_KEEP_PROB", 1.0/3),
		DailySalt:      getEnv("DAILY_SALT", "local_dev_salt"),
		Answer:         strings.TrimSpace(os.Getenv("ANSWER")),
		FilterWorkers:  envInt("FILTER_WORKERS", 1),
		Color:          envBool("COLOR", true),
	}
	return c, c.Validate()
}

// Validate rejects settings the rest of the program can't run with.
func (c Config) Validate() error {
	var errs []error
	if c.WordLength <= 0 {
		errs = append(errs, fmt.Errorf("WORD_LENGTH must be positive, got %d", c.WordLength))
	}
	if c.MaxGuesses <= 0 {
		errs = append(errs, fmt.Errorf("MAX_GUESSES must be positive, got %d", c.MaxGuesses))
	}
	if n := utf8.RuneCountInString(c.Answer); n > 0 && c.WordLength > 0 && n != c.WordLength {
		errs = append(errs, fmt.Errorf("ANSWER %q has %d letters, WORD_LENGTH is %d", c.Answer, n, c.WordLength))
	}
	if c.PluralKeepProb < 0 || c.PluralKeepProb > 1 {
		errs = append(errs, fmt.Errorf("PLURAL_KEEP_PROB must be within [0,1], got %g", c.PluralKeepProb))
	}
	if c.FilterWorkers <= 0 {
		errs = append(errs, fmt.Errorf("FILTER_WORKERS must be positive, got %d", c.FilterWorkers))
	}
	switch c.Selection {
	case SelectRandom, SelectPluralSkip, SelectDaily:
	default:
		errs = append(errs, fmt.Errorf("WORD_SELECTION %q is not one of random, plural-skip, daily", c.Selection))
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT %q is not console or json", c.LogFormat))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envInt parses k as an int, falling back to def when unset or malformed.
func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// envFloat parses k as a float64, falling back to def when unset or malformed.
func envFloat(k string, def float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

// envBool parses k as a bool, falling back to def when unset or malformed.
func envBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
