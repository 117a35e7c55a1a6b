package runner

import (
	"github.com/gosom/naver-place-reviews/fetcher"
	"github.com/gosom/naver-place-reviews/naver"
)

// PageJobOptions translates the browser related settings into options for
// the page job.
func PageJobOptions(cfg *Config) []naver.PageJobOptions {
	// an empty selector skips the wait
	opts := []naver.PageJobOptions{
		naver.WithWaitSelector(cfg.WaitSelector, 0),
	}

	if cfg.ClickPause > 0 || cfg.ScrollPause > 0 || cfg.SettleDelay > 0 {
		opts = append(opts, naver.WithDelays(cfg.ClickPause, cfg.ScrollPause, cfg.SettleDelay))
	}

	return opts
}

func NewFetcher(cfg *Config) (fetcher.Fetcher, error) {
	return fetcher.New(cfg.FetcherType, fetcher.Options{
		Headful:          cfg.Headful,
		Proxies:          cfg.Proxies,
		ExitOnInactivity: cfg.ExitOnInactivity,
		Timeout:          cfg.Timeout,
		UserAgent:        cfg.UserAgent,
		JobOptions:       PageJobOptions(cfg),
	})
}
