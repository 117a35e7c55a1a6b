package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gosom/naver-place-reviews/common/logger"
	"github.com/gosom/naver-place-reviews/fetcher"
	"github.com/gosom/naver-place-reviews/runlog"
	"github.com/gosom/naver-place-reviews/runner"
	"github.com/gosom/naver-place-reviews/runner/filerunner"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := runner.DefaultConfig()
	applyEnv(&cfg)

	var (
		listRuns   bool
		runsFilter runlog.SelectParams
	)

	cmd := &cobra.Command{
		Use:           "naver-place-reviews",
		Short:         "Scrape visitor reviews of a Naver Place restaurant into a CSV file",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if listRuns {
				err := printRuns(cmd.Context(), cmd.OutOrStdout(), cfg.DBPath, runsFilter)
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
				}

				return err
			}

			return run(cmd.Context(), &cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.URL, "url", cfg.URL, "review page url")
	flags.StringVar(&cfg.OutputDir, "output-dir", cfg.OutputDir, "directory the csv file is written to")
	flags.StringVar(&cfg.DataFolder, "data-folder", cfg.DataFolder, "directory for log files, empty logs to stdout only")
	flags.StringVar(&cfg.FetcherType, "fetcher", cfg.FetcherType, "page fetcher: "+fetcher.TypeBrowser+" or "+fetcher.TypeStatic)
	flags.BoolVar(&cfg.Headful, "headful", cfg.Headful, "show the browser window")
	flags.StringSliceVar(&cfg.Proxies, "proxies", cfg.Proxies, "proxy urls")
	flags.StringVar(&cfg.UserAgent, "user-agent", cfg.UserAgent, "user agent sent by either fetcher, empty uses the fetcher default")
	flags.StringVar(&cfg.VisitKeyword, "visit-keyword", cfg.VisitKeyword, "substring that marks a visit tag")
	flags.StringVar(&cfg.WaitSelector, "wait-selector", cfg.WaitSelector, "css selector to wait for before expanding reviews, empty to skip")
	flags.IntVar(&cfg.PreviewRows, "preview-rows", cfg.PreviewRows, "rows printed after scraping, 0 disables the preview")
	flags.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall timeout")
	flags.DurationVar(&cfg.ExitOnInactivity, "exit-on-inactivity", cfg.ExitOnInactivity, "stop the browser after this long without progress")
	flags.DurationVar(&cfg.ClickPause, "click-pause", cfg.ClickPause, "pause after each show more click (default 1s)")
	flags.DurationVar(&cfg.ScrollPause, "scroll-pause", cfg.ScrollPause, "pause after scrolling (default 2s)")
	flags.DurationVar(&cfg.SettleDelay, "settle-delay", cfg.SettleDelay, "wait before reading the page (default 3s)")
	flags.BoolVar(&cfg.Excel, "xlsx", cfg.Excel, "also write an xlsx file")
	flags.StringVar(&cfg.DBPath, "db", cfg.DBPath, "sqlite file recording each run, empty disables")
	flags.StringVar(&cfg.S3Bucket, "s3-bucket", cfg.S3Bucket, "upload written files to this bucket")
	flags.StringVar(&cfg.S3Prefix, "s3-prefix", cfg.S3Prefix, "object key prefix")
	flags.StringVar(&cfg.S3Region, "s3-region", cfg.S3Region, "bucket region")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "debug logging")
	flags.BoolVar(&listRuns, "list-runs", false, "print the runs recorded in --db and exit")
	flags.StringVar(&runsFilter.Status, "runs-status", "", "with --list-runs, only show runs in this status (working, ok, failed)")
	flags.IntVar(&runsFilter.Limit, "runs-limit", 20, "with --list-runs, maximum number of runs, 0 for all")

	return cmd
}

func applyEnv(cfg *runner.Config) {
	if v := os.Getenv("NAVER_REVIEW_URL"); v != "" {
		cfg.URL = v
	}

	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}

	if v := os.Getenv("DATA_FOLDER"); v != "" {
		cfg.DataFolder = v
	}

	if v := os.Getenv("USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}

	cfg.AWSAccessKeyID = os.Getenv("AWS_ACCESS_KEY_ID")
	cfg.AWSSecretAccessKey = os.Getenv("AWS_SECRET_ACCESS_KEY")
}

func run(ctx context.Context, cfg *runner.Config) (err error) {
	if err := logger.Init(logger.Options{DataFolder: cfg.DataFolder, Debug: cfg.Debug}); err != nil {
		return err
	}
	defer logger.Close()

	defer func() {
		if err != nil {
			logger.Error("scrape failed", "error", err)
		}
	}()

	r, err := filerunner.New(ctx, cfg)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := r.Close(context.Background()); cerr != nil {
			logger.Warn("failed to close runner", "error", cerr)
		}
	}()

	err = r.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Warn("interrupted")
	}

	return err
}

func printRuns(ctx context.Context, w io.Writer, dbPath string, params runlog.SelectParams) error {
	if dbPath == "" {
		return errors.New("--list-runs requires --db")
	}

	if !runlog.ValidStatus(params.Status) {
		return fmt.Errorf("unknown run status %q", params.Status)
	}

	if _, err := os.Stat(dbPath); err != nil {
		return fmt.Errorf("run log: %w", err)
	}

	repo, err := runlog.NewSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open run log: %w", err)
	}

	svc := runlog.NewService(repo)
	defer svc.Close()

	runs, err := svc.List(ctx, params)
	if err != nil {
		return err
	}

	return runlog.Fprint(w, runs)
}
