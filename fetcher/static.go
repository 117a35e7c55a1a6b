package fetcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gosom/naver-place-reviews/common/logger"
	"github.com/gosom/naver-place-reviews/naver"
)

const (
	defaultStaticTimeout = 30 * time.Second
	defaultUserAgent     = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
)

// Static fetches the server-rendered markup. Page scripts are not run, so
// reviews loaded on demand are missing.
type Static struct {
	client *resty.Client
}

func NewStatic(opts Options) *Static {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultStaticTimeout
	}

	ua := opts.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}

	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", ua).
		SetHeader("Accept-Language", "ko-KR,ko;q=0.9,en;q=0.8")

	if len(opts.Proxies) > 0 {
		client.SetProxy(opts.Proxies[0])
	}

	return &Static{client: client}
}

func (s *Static) Type() string {
	return TypeStatic
}

func (s *Static) Close() error {
	return nil
}

func (s *Static) Fetch(ctx context.Context, pageURL string) (*naver.Page, error) {
	res, err := s.client.R().
		SetContext(ctx).
		Get(pageURL)
	if err != nil {
		return nil, failed(err)
	}

	if res.IsError() {
		return nil, failed(fmt.Errorf("unexpected status %d from %s", res.StatusCode(), pageURL))
	}

	body := res.Body()
	if len(body) == 0 {
		return nil, failed(errors.New("empty response body"))
	}

	logger.Info("page fetched", "url", pageURL, "html_length", len(body))

	return &naver.Page{
		URL:       pageURL,
		HTML:      string(body),
		FetchedAt: time.Now().UTC(),
		Fetcher:   TypeStatic,
	}, nil
}
