package report

import "errors"

var (
	// ErrEmptyJournal indicates export or trend rendering was requested
	// with no entries in the session journal.
	ErrEmptyJournal = errors.New("session journal is empty")

	// ErrRenderChart indicates the trend plot could not be rendered to
	// an image.
	ErrRenderChart = errors.New("rendering trend chart failed")
)
