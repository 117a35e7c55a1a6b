package naver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gosom/naver-place-reviews/common/logger"
	"github.com/gosom/scrapemate"
)

// DefaultURL is the visitor review list of the restaurant this tool was
// written for, newest first.
const DefaultURL = "https://m.place.naver.com/restaurant/19792810/review/visitor?entry=ple&reviewSort=recent"

const (
	defaultClickPause  = time.Second
	defaultScrollPause = 2 * time.Second
	defaultSettleDelay = 3 * time.Second
	defaultWaitTimeout = 15 * time.Second
)

type PageJobOptions func(*PageJob)

// PageJob loads one review page in the browser, expands and scrolls the
// review list once and hands the resulting markup to the result writers.
type PageJob struct {
	scrapemate.Job

	WaitSelector string
	WaitTimeout  time.Duration
	ClickPause   time.Duration
	ScrollPause  time.Duration
	SettleDelay  time.Duration

	onFailure func(error)
}

func NewPageJob(pageURL string, opts ...PageJobOptions) *PageJob {
	job := PageJob{
		Job: scrapemate.Job{
			ID:         uuid.New().String(),
			Method:     http.MethodGet,
			URL:        pageURL,
			MaxRetries: 0,
			Priority:   scrapemate.PriorityMedium,
		},
		WaitSelector: DefaultWaitSelector,
		WaitTimeout:  defaultWaitTimeout,
		ClickPause:   defaultClickPause,
		ScrollPause:  defaultScrollPause,
		SettleDelay:  defaultSettleDelay,
	}

	for _, opt := range opts {
		opt(&job)
	}

	return &job
}

func WithWaitSelector(selector string, timeout time.Duration) PageJobOptions {
	return func(j *PageJob) {
		j.WaitSelector = selector
		if timeout > 0 {
			j.WaitTimeout = timeout
		}
	}
}

// WithDelays overrides the click pause, scroll pause and the final settle
// delay. Zero values keep the defaults.
func WithDelays(click, scroll, settle time.Duration) PageJobOptions {
	return func(j *PageJob) {
		if click > 0 {
			j.ClickPause = click
		}
		if scroll > 0 {
			j.ScrollPause = scroll
		}
		if settle > 0 {
			j.SettleDelay = settle
		}
	}
}

// WithFailureHook registers fn to be called when the browser could not
// produce the page. The job is not retried.
func WithFailureHook(fn func(error)) PageJobOptions {
	return func(j *PageJob) {
		j.onFailure = fn
	}
}

func (j *PageJob) BrowserActions(ctx context.Context, page scrapemate.BrowserPage) scrapemate.Response {
	var resp scrapemate.Response

	resp.URL = j.URL

	fail := func(err error) scrapemate.Response {
		resp.Error = err
		if j.onFailure != nil {
			j.onFailure(err)
		}
		return resp
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	pageResponse, err := page.Goto(resp.URL, scrapemate.WaitUntilNetworkIdle)
	if err != nil {
		return fail(fmt.Errorf("navigate to %s: %w", resp.URL, err))
	}

	if pageResponse != nil && pageResponse.URL != "" {
		resp.URL = pageResponse.URL
	}

	if j.WaitSelector != "" {
		if err := page.WaitForSelector(j.WaitSelector, j.WaitTimeout); err != nil {
			logger.Warn("review section did not appear, continuing", "selector", j.WaitSelector, "error", err)
		}
	}

	blockStylesheets(page)

	clicked, err := page.Eval(expandReviewsScript(j.ClickPause))
	if err != nil {
		return fail(fmt.Errorf("expand reviews: %w", err))
	}

	logger.Debug("expanded review list", "clicked", clicked)

	if _, err := page.Eval(scrollToBottomScript(j.ScrollPause)); err != nil {
		return fail(fmt.Errorf("scroll to bottom: %w", err))
	}

	page.WaitForTimeout(j.SettleDelay)

	content, err := page.Content()
	if err != nil {
		return fail(fmt.Errorf("read page content: %w", err))
	}

	resp.StatusCode = http.StatusOK
	resp.Body = []byte(content)

	return resp
}

func (j *PageJob) Process(_ context.Context, resp *scrapemate.Response) (any, []scrapemate.IJob, error) {
	defer func() {
		resp.Document = nil
		resp.Body = nil
	}()

	if len(resp.Body) == 0 {
		err := fmt.Errorf("empty response body")
		if j.onFailure != nil {
			j.onFailure(err)
		}

		return nil, nil, err
	}

	ans := &Page{
		URL:       resp.URL,
		HTML:      string(resp.Body),
		FetchedAt: time.Now().UTC(),
		Fetcher:   "browser",
	}

	logger.Info("page fetched", "url", ans.URL, "html_length", len(ans.HTML))

	return ans, nil, nil
}
