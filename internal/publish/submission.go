// Package publish turns a title/content submission into files committed to a
// remote repository.
package publish

import (
	"errors"
	"strings"
)

// ErrEmptySubmission is returned when both title and content are blank.
var ErrEmptySubmission = errors.New("title and content cannot both be empty")

// Submission is a validated, whitespace-trimmed form submission.
type Submission struct {
	Title   string
	Content string
}

// NewSubmission trims both fields and accepts the submission when at least
// one of them is non-empty.
func NewSubmission(title, content string) (Submission, error) {
	s := Submission{
		Title:   strings.TrimSpace(title),
		Content: strings.TrimSpace(content),
	}
	if s.Title == "" && s.Content == "" {
		return Submission{}, ErrEmptySubmission
	}
	return s, nil
}
