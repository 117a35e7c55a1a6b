package fetcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gosom/naver-place-reviews/common/logger"
	"github.com/gosom/naver-place-reviews/naver"
	"github.com/gosom/scrapemate"
	"github.com/gosom/scrapemate/scrapemateapp"
	"golang.org/x/sync/errgroup"
)

const defaultExitOnInactivity = time.Minute

type fetchOutcome struct {
	page *naver.Page
	err  error
}

// Browser fetches a page with a scrapemate app in JS mode. Each call starts
// its own app with a single page job and tears it down afterwards.
type Browser struct {
	opts Options
}

func NewBrowser(opts Options) *Browser {
	if opts.ExitOnInactivity <= 0 {
		opts.ExitOnInactivity = defaultExitOnInactivity
	}

	return &Browser{opts: opts}
}

func (b *Browser) Type() string {
	return TypeBrowser
}

func (b *Browser) Close() error {
	return nil
}

func (b *Browser) Fetch(ctx context.Context, pageURL string) (*naver.Page, error) {
	outcome := make(chan fetchOutcome, 1)

	// only the first outcome counts
	report := func(o fetchOutcome) {
		select {
		case outcome <- o:
		default:
		}
	}

	collector := &pageCollector{report: report}

	jobOpts := append([]naver.PageJobOptions{}, b.opts.JobOptions...)
	jobOpts = append(jobOpts, naver.WithFailureHook(func(err error) {
		report(fetchOutcome{err: err})
	}))

	job := naver.NewPageJob(pageURL, jobOpts...)

	mate, err := b.setupMate(collector)
	if err != nil {
		return nil, failed(fmt.Errorf("setup browser: %w", err))
	}

	defer func() {
		_ = mate.Close()
	}()

	mateCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var result fetchOutcome

	egroup, egCtx := errgroup.WithContext(mateCtx)

	egroup.Go(func() error {
		defer cancel()

		err := mate.Start(egCtx, job)
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		return nil
	})

	egroup.Go(func() error {
		defer cancel()

		select {
		case result = <-outcome:
		case <-egCtx.Done():
		}

		return nil
	})

	if err := egroup.Wait(); err != nil {
		return nil, failed(err)
	}

	switch {
	case result.page != nil:
		return result.page, nil
	case result.err != nil:
		return nil, failed(result.err)
	case ctx.Err() != nil:
		return nil, failed(ctx.Err())
	default:
		return nil, failed(errors.New("browser returned no page"))
	}
}

func (b *Browser) setupMate(collector scrapemate.ResultWriter) (*scrapemateapp.ScrapemateApp, error) {
	matecfg, err := b.mateConfig(collector)
	if err != nil {
		return nil, err
	}

	return scrapemateapp.NewScrapeMateApp(matecfg)
}

func (b *Browser) mateConfig(collector scrapemate.ResultWriter) (*scrapemateapp.Config, error) {
	opts := []func(*scrapemateapp.Config) error{
		scrapemateapp.WithConcurrency(1),
		scrapemateapp.WithExitOnInactivity(b.opts.ExitOnInactivity),
	}

	// an empty user agent keeps the browser default
	if b.opts.Headful {
		opts = append(opts, scrapemateapp.WithJS(
			scrapemateapp.Headfull(),
			scrapemateapp.DisableImages(),
			scrapemateapp.WithUA(b.opts.UserAgent),
		))
	} else {
		opts = append(opts, scrapemateapp.WithJS(
			scrapemateapp.DisableImages(),
			scrapemateapp.WithUA(b.opts.UserAgent),
		))
	}

	if len(b.opts.Proxies) > 0 {
		opts = append(opts, scrapemateapp.WithProxies(b.opts.Proxies))
	}

	logger.Debug("starting browser", "headful", b.opts.Headful, "has_proxy", len(b.opts.Proxies) > 0,
		"custom_ua", b.opts.UserAgent != "")

	return scrapemateapp.NewConfig(
		[]scrapemate.ResultWriter{collector},
		opts...,
	)
}

// pageCollector implements scrapemate.ResultWriter and forwards the first
// page it sees.
type pageCollector struct {
	report func(fetchOutcome)
}

func (c *pageCollector) Run(_ context.Context, in <-chan scrapemate.Result) error {
	for res := range in {
		if page, ok := res.Data.(*naver.Page); ok {
			c.report(fetchOutcome{page: page})
		}
	}

	return nil
}
