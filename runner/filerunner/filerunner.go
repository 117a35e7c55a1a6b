package filerunner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosom/naver-place-reviews/common/logger"
	"github.com/gosom/naver-place-reviews/export"
	"github.com/gosom/naver-place-reviews/fetcher"
	"github.com/gosom/naver-place-reviews/naver"
	"github.com/gosom/naver-place-reviews/runlog"
	"github.com/gosom/naver-place-reviews/runner"
)

// ErrNoReviews is returned when the page was fetched but nothing could be
// extracted from it. No file is written in that case.
var ErrNoReviews = errors.New("no reviews extracted")

type uploader interface {
	Upload(ctx context.Context, localPath string) (string, error)
}

type Option func(*fileRunner)

// WithFetcher replaces the fetcher built from the config.
func WithFetcher(f fetcher.Fetcher) Option {
	return func(r *fileRunner) {
		r.fetcher = f
	}
}

func WithClock(now func() time.Time) Option {
	return func(r *fileRunner) {
		r.now = now
	}
}

// WithStdout sets where the preview table is printed.
func WithStdout(w io.Writer) Option {
	return func(r *fileRunner) {
		r.stdout = w
		r.lineWidth = 0
	}
}

func withUploader(u uploader) Option {
	return func(r *fileRunner) {
		r.uploader = u
	}
}

type fileRunner struct {
	cfg       *runner.Config
	fetcher   fetcher.Fetcher
	parser    *naver.Parser
	runs      *runlog.Service
	uploader  uploader
	now       func() time.Time
	stdout    io.Writer
	lineWidth int
}

func New(ctx context.Context, cfg *runner.Config, opts ...Option) (runner.Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ans := fileRunner{
		cfg:       cfg,
		parser:    naver.NewParser(naver.WithVisitKeyword(cfg.VisitKeyword)),
		now:       time.Now,
		stdout:    os.Stdout,
		lineWidth: export.TerminalWidth(os.Stdout),
	}

	for _, opt := range opts {
		opt(&ans)
	}

	if ans.fetcher == nil {
		f, err := runner.NewFetcher(cfg)
		if err != nil {
			return nil, err
		}

		ans.fetcher = f
	}

	if cfg.DBPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), os.ModePerm); err != nil {
			return nil, err
		}

		repo, err := runlog.NewSQLite(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open run log: %w", err)
		}

		ans.runs = runlog.NewService(repo)
	}

	if cfg.S3Bucket != "" && ans.uploader == nil {
		u, err := export.NewS3Uploader(ctx, export.S3Config{
			Bucket:          cfg.S3Bucket,
			Prefix:          cfg.S3Prefix,
			Region:          cfg.S3Region,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		})
		if err != nil {
			return nil, err
		}

		ans.uploader = u
	}

	return &ans, nil
}

func (r *fileRunner) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	logger.Info("starting review scrape", "url", r.cfg.URL, "fetcher", r.fetcher.Type())

	var run *runlog.Run

	if r.runs != nil {
		var err error

		run, err = r.runs.Start(ctx, r.cfg.URL)
		if err != nil {
			return fmt.Errorf("failed to record run: %w", err)
		}
	}

	count, outputFile, err := r.scrape(ctx)

	if run != nil {
		// the scrape context may already be done
		if ferr := r.runs.Finish(context.WithoutCancel(ctx), run, count, outputFile, err); ferr != nil {
			logger.Error("failed to update run", "run_id", run.ID, "error", ferr)
		}
	}

	return err
}

func (r *fileRunner) scrape(ctx context.Context) (int, string, error) {
	page, err := r.fetcher.Fetch(ctx, r.cfg.URL)
	if err != nil {
		logger.Error("crawl failed", "error", err)
		return 0, "", err
	}

	logger.Info("crawl succeeded", "html_length", len(page.HTML))

	cleaned, err := naver.CleanMarkup(page.HTML)
	if err != nil {
		return 0, "", err
	}

	reviews := naver.Assemble(r.parser.Parse(cleaned))
	if len(reviews) == 0 {
		logger.Error("review extraction failed", "url", page.URL)
		return 0, "", ErrNoReviews
	}

	logger.Info("collected reviews", "count", len(reviews))

	if err := export.Preview(r.stdout, reviews, r.cfg.PreviewRows, r.lineWidth); err != nil {
		logger.Warn("failed to print preview", "error", err)
	}

	outputFile, err := r.write(reviews)
	if err != nil {
		// a failed xlsx write still leaves the csv on disk
		if outputFile != "" {
			return len(reviews), outputFile, err
		}

		return 0, "", err
	}

	return len(reviews), outputFile, r.upload(ctx, outputFile)
}

func (r *fileRunner) write(reviews []naver.Review) (string, error) {
	if err := os.MkdirAll(r.cfg.OutputDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	csvPath := filepath.Join(r.cfg.OutputDir, export.FileName(r.now()))

	if err := export.WriteCSV(csvPath, reviews); err != nil {
		return "", err
	}

	logger.Info("reviews saved", "file", csvPath, "rows", len(reviews))

	if r.cfg.Excel {
		xlsxPath := strings.TrimSuffix(csvPath, ".csv") + ".xlsx"
		if err := export.WriteExcel(xlsxPath, reviews); err != nil {
			return csvPath, fmt.Errorf("failed to write xlsx: %w", err)
		}

		logger.Info("reviews saved", "file", xlsxPath, "rows", len(reviews))
	}

	return csvPath, nil
}

func (r *fileRunner) upload(ctx context.Context, csvPath string) error {
	if r.uploader == nil {
		return nil
	}

	paths := []string{csvPath}
	if r.cfg.Excel {
		paths = append(paths, strings.TrimSuffix(csvPath, ".csv")+".xlsx")
	}

	for _, p := range paths {
		key, err := r.uploader.Upload(ctx, p)
		if err != nil {
			return err
		}

		logger.Info("uploaded to s3", "bucket", r.cfg.S3Bucket, "key", key)
	}

	return nil
}

func (r *fileRunner) Close(context.Context) error {
	var errs []error

	if r.fetcher != nil {
		errs = append(errs, r.fetcher.Close())
	}

	if r.runs != nil {
		errs = append(errs, r.runs.Close())
	}

	return errors.Join(errs...)
}
