package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// RemoteWriteError reports a failed Contents API write. Either Status/Body are
// set (GitHub answered with a non-2xx status) or Err is (the request never
// completed, including timeouts).
type RemoteWriteError struct {
	Path   string
	Status int
	Body   string
	Err    error
}

func (e *RemoteWriteError) Error() string {
	if e.Err != nil {
		if errors.Is(e.Err, context.DeadlineExceeded) {
			return fmt.Sprintf("GitHub API timeout writing %s: %v", e.Path, e.Err)
		}
		return fmt.Sprintf("GitHub API request failed for %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("GitHub API Error (%d): %s", e.Status, e.Body)
}

func (e *RemoteWriteError) Unwrap() error { return e.Err }

// IsConflict reports whether GitHub refused the write because a file already
// exists at the path. The Contents API answers 422 when no sha is supplied
// for an existing file; 409 is returned for branch-level conflicts.
func (e *RemoteWriteError) IsConflict() bool {
	return e.Status == http.StatusUnprocessableEntity || e.Status == http.StatusConflict
}
