package contact

import (
	"context"
	"errors"
	"time"
)

var ErrMissingFields = errors.New("required contact fields missing")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Submit stamps the submission and appends it to the session's list.
func (s *Service) Submit(ctx context.Context, sid string, sub Submission) (Submission, error) {
	if sub.FullName == "" || sub.Email == "" || sub.Message == "" {
		return Submission{}, ErrMissingFields
	}
	sub.SubmittedAt = time.Now().UTC().Format(time.RFC3339)
	if err := s.repo.Append(ctx, sid, sub); err != nil {
		return Submission{}, err
	}
	return sub, nil
}

func (s *Service) ListBySession(ctx context.Context, sid string) ([]Submission, error) {
	return s.repo.ListBySession(ctx, sid)
}
