// Package daily picks one answer per calendar day. Everyone using the same
// salt and word list gets the same secret on the same UTC date.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordle/apps/go-hints/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex maps a UTC date onto [0, n). The index is the first 8 bytes of
// HMAC-SHA256(salt, DateKey(date)) taken modulo n, so it is stable for a salt
// and unpredictable without it. n <= 0 yields 0.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(DateKey(date)))
	return int(binary.BigEndian.Uint64(mac.Sum(nil)) % uint64(n))
}

// Selector returns a words.Selector that picks today's word. now defaults
// to time.Now.
func Selector(salt string, now func() time.Time) words.Selector {
	if now == nil {
		now = time.Now
	}
	return func(answers []string) (string, error) {
		if len(answers) == 0 {
			return "", words.ErrNoWords
		}
		return answers[WordIndex(now(), salt, len(answers))], nil
	}
}
