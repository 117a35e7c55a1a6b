package runlog

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo RunRepository
}

func NewService(repo RunRepository) *Service {
	return &Service{
		repo: repo,
	}
}

// Start records a new run for pageURL in the working state.
func (s *Service) Start(ctx context.Context, pageURL string) (*Run, error) {
	now := time.Now().UTC()

	run := Run{
		ID:        uuid.New().String(),
		URL:       pageURL,
		Status:    StatusWorking,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, &run); err != nil {
		return nil, err
	}

	return &run, nil
}

// Finish stores the outcome of run. A nil runErr marks it successful.
func (s *Service) Finish(ctx context.Context, run *Run, count int, outputFile string, runErr error) error {
	run.Count = count
	run.OutputFile = outputFile
	run.Status = StatusOK
	run.Error = ""

	if runErr != nil {
		run.Status = StatusFailed
		run.Error = runErr.Error()
	}

	run.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, run)
}

// List returns the recorded runs, newest first.
func (s *Service) List(ctx context.Context, params SelectParams) ([]Run, error) {
	return s.repo.Select(ctx, params)
}

func (s *Service) Close() error {
	return s.repo.Close()
}
