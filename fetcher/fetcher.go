// Package fetcher turns a page URL into markup. The browser fetcher runs the
// review page scripts in a headless browser; the static fetcher issues a
// plain HTTP request and is mostly useful for pages rendered on the server.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gosom/naver-place-reviews/naver"
)

const (
	TypeBrowser = "browser"
	TypeStatic  = "static"
)

// ErrFetchFailed wraps every error returned by Fetch.
var ErrFetchFailed = errors.New("fetch failed")

// Fetcher abstracts page fetching strategies.
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) (*naver.Page, error)
	// Close releases any resources (browser instances, etc.).
	Close() error
	// Type returns TypeBrowser or TypeStatic.
	Type() string
}

// Options configures both fetcher kinds. Fields that do not apply to a kind
// are ignored.
type Options struct {
	Headful          bool
	Proxies          []string
	ExitOnInactivity time.Duration
	Timeout          time.Duration
	UserAgent        string
	JobOptions       []naver.PageJobOptions
}

// New returns the fetcher registered under kind.
func New(kind string, opts Options) (Fetcher, error) {
	switch kind {
	case TypeBrowser, "":
		return NewBrowser(opts), nil
	case TypeStatic:
		return NewStatic(opts), nil
	default:
		return nil, fmt.Errorf("unknown fetcher type %q", kind)
	}
}

func failed(err error) error {
	return fmt.Errorf("%w: %w", ErrFetchFailed, err)
}
