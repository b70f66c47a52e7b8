// Package assets embeds the default word lists, used when no word files are
// configured.
package assets

import (
	"embed"
	"io"
)

const (
	AnswersFile = "answers.txt"
	AllowedFile = "allowed.txt"
)

//go:embed answers.txt allowed.txt
var FS embed.FS

// Answers opens the embedded answer list.
func Answers() (io.ReadCloser, error) {
	return FS.Open(AnswersFile)
}

// Allowed opens the embedded list of extra allowed guesses.
func Allowed() (io.ReadCloser, error) {
	return FS.Open(AllowedFile)
}
