package runner

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/gosom/naver-place-reviews/export"
	"github.com/gosom/naver-place-reviews/fetcher"
	"github.com/gosom/naver-place-reviews/naver"
)

const (
	DefaultTimeout          = 3 * time.Minute
	DefaultExitOnInactivity = time.Minute
)

type Runner interface {
	Run(context.Context) error
	Close(context.Context) error
}

type Config struct {
	URL          string
	OutputDir    string
	DataFolder   string
	FetcherType  string
	Headful      bool
	Proxies      []string
	UserAgent    string
	VisitKeyword string
	PreviewRows  int
	Timeout      time.Duration
	Debug        bool

	ExitOnInactivity time.Duration
	WaitSelector     string
	ClickPause       time.Duration
	ScrollPause      time.Duration
	SettleDelay      time.Duration

	Excel  bool
	DBPath string

	S3Bucket           string
	S3Prefix           string
	S3Region           string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
}

// DefaultConfig reproduces a plain invocation without flags.
func DefaultConfig() Config {
	return Config{
		URL:              naver.DefaultURL,
		OutputDir:        ".",
		FetcherType:      fetcher.TypeBrowser,
		VisitKeyword:     naver.DefaultVisitKeyword,
		PreviewRows:      export.DefaultPreviewRows,
		Timeout:          DefaultTimeout,
		ExitOnInactivity: DefaultExitOnInactivity,
		WaitSelector:     naver.DefaultWaitSelector,
	}
}

func (c *Config) Validate() error {
	if c.URL == "" {
		return errors.New("url is required")
	}

	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid url scheme %q", u.Scheme)
	}

	if u.Host == "" {
		return errors.New("invalid url: missing host")
	}

	switch c.FetcherType {
	case fetcher.TypeBrowser, fetcher.TypeStatic:
	default:
		return fmt.Errorf("unknown fetcher type %q", c.FetcherType)
	}

	if c.PreviewRows < 0 {
		return errors.New("preview rows must not be negative")
	}

	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}

	if c.S3Bucket == "" && (c.S3Prefix != "" || c.S3Region != "") {
		return errors.New("s3 prefix and region require an s3 bucket")
	}

	return nil
}
