package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	once    sync.Once
	Logger  *slog.Logger
	logFile *os.File
)

// Options controls where and how verbosely the logger writes.
type Options struct {
	DataFolder string
	Debug      bool
	// Stdout replaces os.Stdout as the console sink. Used by tests.
	Stdout io.Writer
}

// Init initializes the global logger
func Init(opts Options) error {
	var err error
	once.Do(func() {
		err = initLogger(opts)
	})
	return err
}

func initLogger(opts Options) error {
	console := opts.Stdout
	if console == nil {
		console = os.Stdout
	}

	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}

	handlerOpts := &slog.HandlerOptions{
		Level: level,
	}

	if opts.DataFolder == "" {
		Logger = slog.New(slog.NewTextHandler(console, handlerOpts))
		slog.SetDefault(Logger)
		return nil
	}

	logDir := filepath.Join(opts.DataFolder, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	today := time.Now().Format("2006-01-02")
	logFilePath := filepath.Join(logDir, fmt.Sprintf("scraper_%s.log", today))

	file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	logFile = file

	// Write to both file and stdout
	multiWriter := io.MultiWriter(console, file)

	Logger = slog.New(slog.NewTextHandler(multiWriter, handlerOpts))

	slog.SetDefault(Logger)

	Logger.Debug("Logger initialized", "path", logFilePath)
	return nil
}

// Close closes the log file handle
func Close() {
	if logFile != nil {
		logFile.Close()
	}
}

func Info(msg string, args ...any) {
	if Logger != nil {
		Logger.Info(msg, args...)
	}
}

func Error(msg string, args ...any) {
	if Logger != nil {
		Logger.Error(msg, args...)
	}
}

func Warn(msg string, args ...any) {
	if Logger != nil {
		Logger.Warn(msg, args...)
	}
}

func Debug(msg string, args ...any) {
	if Logger != nil {
		Logger.Debug(msg, args...)
	}
}
