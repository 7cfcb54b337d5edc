package service

import (
	"context"

	"github.com/ecodeclub/schoolhire/internal/school/internal/domain"
	"github.com/ecodeclub/schoolhire/internal/school/internal/repository"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./job_posting.go -destination=../../mocks/job_posting.mock.go -package=schoolmocks -typed JobPostingService
type JobPostingService interface {
	Save(ctx context.Context, p domain.JobPosting) (int64, error)
	GetById(ctx context.Context, id int64) (domain.JobPosting, error)
	ListBySchool(ctx context.Context, schoolId int64, offset, limit int) ([]domain.JobPosting, int64, error)
	ListPublished(ctx context.Context, offset, limit int) ([]domain.JobPosting, int64, error)
	Publish(ctx context.Context, id int64) error
	Close(ctx context.Context, id int64) error
}

type jobPostingService struct {
	repo repository.JobPostingRepository
}

func NewJobPostingService(repo repository.JobPostingRepository) JobPostingService {
	return &jobPostingService{
		repo: repo,
	}
}

func (s *jobPostingService) Save(ctx context.Context, p domain.JobPosting) (int64, error) {
	if p.Status == "" {
		p.Status = domain.PostingStatusDraft
	}
	return s.repo.Save(ctx, p)
}

func (s *jobPostingService) GetById(ctx context.Context, id int64) (domain.JobPosting, error) {
	return s.repo.FindById(ctx, id)
}

func (s *jobPostingService) ListBySchool(ctx context.Context, schoolId int64, offset, limit int) ([]domain.JobPosting, int64, error) {
	var (
		postings []domain.JobPosting
		total    int64
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		postings, err = s.repo.ListBySchool(ctx, schoolId, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountBySchool(ctx, schoolId)
		return err
	})
	return postings, total, eg.Wait()
}

func (s *jobPostingService) ListPublished(ctx context.Context, offset, limit int) ([]domain.JobPosting, int64, error) {
	var (
		postings []domain.JobPosting
		total    int64
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		postings, err = s.repo.ListPublished(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountPublished(ctx)
		return err
	})
	return postings, total, eg.Wait()
}

func (s *jobPostingService) Publish(ctx context.Context, id int64) error {
	return s.repo.UpdateStatus(ctx, id, domain.PostingStatusPublished)
}

func (s *jobPostingService) Close(ctx context.Context, id int64) error {
	return s.repo.UpdateStatus(ctx, id, domain.PostingStatusClosed)
}
