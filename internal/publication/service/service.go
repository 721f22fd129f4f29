package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/quickpost/publisher/internal/publication"
	"github.com/quickpost/publisher/internal/publication/repository"
	"github.com/quickpost/publisher/internal/publish"
)

var ErrNotFound = errors.New("not found")

// DefaultListLimit caps List when the caller asks for everything.
const DefaultListLimit = 50

// Service records successful publications and serves the log. It is
// registered with the publisher as a post-commit hook.
type Service struct {
	repo repository.Repository
}

func New(repo repository.Repository) *Service {
	return &Service{repo: repo}
}

// NewMemoryService returns a Service backed by the in-memory repository.
func NewMemoryService() *Service {
	return New(repository.NewMemoryRepo())
}

func (s *Service) Name() string { return "publication_log" }

// AfterCommit stores one Publication for rec.
func (s *Service) AfterCommit(ctx context.Context, rec *publish.Record) error {
	p := &publication.Publication{
		ID:        uuid.New().String(),
		Title:     rec.Submission.Title,
		Path:      rec.Layout.HTMLPath,
		Files:     rec.Layout.Files(),
		CreatedAt: rec.PublishedAt.UTC(),
	}
	// the HTML file is committed last; its commit describes the publication
	if n := len(rec.Commits); n > 0 && rec.Commits[n-1] != nil {
		p.CommitSHA = rec.Commits[n-1].CommitSHA
		p.HTMLURL = rec.Commits[n-1].HTMLURL
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id string) (*publication.Publication, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, limit int) ([]*publication.Publication, error) {
	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}
	return s.repo.List(ctx, limit)
}
