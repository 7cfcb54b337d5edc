package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/schoolhire/internal/school/internal/domain"
	"github.com/ecodeclub/schoolhire/internal/school/internal/repository/dao"
	"gorm.io/gorm"
)

var ErrPostingNotFound = gorm.ErrRecordNotFound

type JobPostingRepository interface {
	Save(ctx context.Context, p domain.JobPosting) (int64, error)
	FindById(ctx context.Context, id int64) (domain.JobPosting, error)
	ListBySchool(ctx context.Context, schoolId int64, offset, limit int) ([]domain.JobPosting, error)
	CountBySchool(ctx context.Context, schoolId int64) (int64, error)
	ListPublished(ctx context.Context, offset, limit int) ([]domain.JobPosting, error)
	CountPublished(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.PostingStatus) error
}

type jobPostingRepository struct {
	dao dao.JobPostingDAO
}

func NewJobPostingRepository(d dao.JobPostingDAO) JobPostingRepository {
	return &jobPostingRepository{
		dao: d,
	}
}

func (r *jobPostingRepository) Save(ctx context.Context, p domain.JobPosting) (int64, error) {
	return r.dao.Save(ctx, dao.JobPosting{
		Id:          p.ID,
		SchoolId:    p.SchoolID,
		Title:       p.Title,
		Subject:     p.Subject,
		Description: p.Description,
		Status:      p.Status.String(),
	})
}

func (r *jobPostingRepository) FindById(ctx context.Context, id int64) (domain.JobPosting, error) {
	p, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.JobPosting{}, err
	}
	return r.toDomain(p), nil
}

func (r *jobPostingRepository) ListBySchool(ctx context.Context, schoolId int64, offset, limit int) ([]domain.JobPosting, error) {
	postings, err := r.dao.ListBySchool(ctx, schoolId, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(postings, func(_ int, src dao.JobPosting) domain.JobPosting {
		return r.toDomain(src)
	}), nil
}

func (r *jobPostingRepository) CountBySchool(ctx context.Context, schoolId int64) (int64, error) {
	return r.dao.CountBySchool(ctx, schoolId)
}

func (r *jobPostingRepository) ListPublished(ctx context.Context, offset, limit int) ([]domain.JobPosting, error) {
	postings, err := r.dao.ListByStatus(ctx, domain.PostingStatusPublished.String(), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(postings, func(_ int, src dao.JobPosting) domain.JobPosting {
		return r.toDomain(src)
	}), nil
}

func (r *jobPostingRepository) CountPublished(ctx context.Context) (int64, error) {
	return r.dao.CountByStatus(ctx, domain.PostingStatusPublished.String())
}

func (r *jobPostingRepository) UpdateStatus(ctx context.Context, id int64, status domain.PostingStatus) error {
	return r.dao.UpdateStatus(ctx, id, status.String())
}

func (r *jobPostingRepository) toDomain(p dao.JobPosting) domain.JobPosting {
	return domain.JobPosting{
		ID:          p.Id,
		SchoolID:    p.SchoolId,
		Title:       p.Title,
		Subject:     p.Subject,
		Description: p.Description,
		Status:      domain.PostingStatus(p.Status),
	}
}
