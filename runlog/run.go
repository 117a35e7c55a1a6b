// Package runlog keeps a ledger of scraper invocations: which page was
// fetched, how many reviews came out and where they were written.
package runlog

import (
	"context"
	"errors"
	"time"
)

const (
	StatusWorking = "working"
	StatusOK      = "ok"
	StatusFailed  = "failed"
)

var ErrNotFound = errors.New("run not found")

type Run struct {
	ID         string
	URL        string
	Status     string
	Count      int
	OutputFile string
	Error      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SelectParams filters a listing. Zero values select everything.
type SelectParams struct {
	Status string
	Limit  int
}

// ValidStatus reports whether status is empty or one a run can be in.
func ValidStatus(status string) bool {
	switch status {
	case "", StatusWorking, StatusOK, StatusFailed:
		return true
	default:
		return false
	}
}

type RunRepository interface {
	Create(context.Context, *Run) error
	Select(context.Context, SelectParams) ([]Run, error)
	Update(context.Context, *Run) error
	Close() error
}
