// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/domain"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/repository/dao"
	"gorm.io/gorm"
)

var ErrInterviewNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./interview.go -package=repomocks -destination=mocks/interview.mock.go -typed InterviewRepository
type InterviewRepository interface {
	Create(ctx context.Context, itv domain.Interview) (int64, error)
	Update(ctx context.Context, itv domain.Interview) error
	Delete(ctx context.Context, id int64) error
	FindById(ctx context.Context, id int64) (domain.Interview, error)
	FindByApplicationId(ctx context.Context, appId int64) ([]domain.Interview, error)
	// FindLatest 返回排期时间最晚的一场，没有任何面试时返回 ErrInterviewNotFound
	FindLatest(ctx context.Context, appId int64) (domain.Interview, error)
	Count(ctx context.Context, appId int64) (int64, error)
	// Confirm 事务内落面试、推进投递、清空时段，版本冲突返回 ErrConcurrentModify
	Confirm(ctx context.Context, itv domain.Interview, appVersion int64) (int64, error)
}

type interviewRepository struct {
	dao dao.InterviewDAO
}

func NewInterviewRepository(d dao.InterviewDAO) InterviewRepository {
	return &interviewRepository{
		dao: d,
	}
}

func (r *interviewRepository) Create(ctx context.Context, itv domain.Interview) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(itv))
}

func (r *interviewRepository) Update(ctx context.Context, itv domain.Interview) error {
	return r.dao.UpdateById(ctx, r.toEntity(itv))
}

func (r *interviewRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.DeleteById(ctx, id)
}

func (r *interviewRepository) FindById(ctx context.Context, id int64) (domain.Interview, error) {
	itv, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Interview{}, err
	}
	return r.toDomain(itv), nil
}

func (r *interviewRepository) FindByApplicationId(ctx context.Context, appId int64) ([]domain.Interview, error) {
	itvs, err := r.dao.FindByApplicationId(ctx, appId)
	if err != nil {
		return nil, err
	}
	return slice.Map(itvs, func(_ int, src dao.Interview) domain.Interview {
		return r.toDomain(src)
	}), nil
}

func (r *interviewRepository) FindLatest(ctx context.Context, appId int64) (domain.Interview, error) {
	itv, err := r.dao.FindLatestByApplicationId(ctx, appId)
	if err != nil {
		return domain.Interview{}, err
	}
	return r.toDomain(itv), nil
}

func (r *interviewRepository) Count(ctx context.Context, appId int64) (int64, error) {
	return r.dao.CountByApplicationId(ctx, appId)
}

func (r *interviewRepository) Confirm(ctx context.Context, itv domain.Interview, appVersion int64) (int64, error) {
	return r.dao.ConfirmInterview(ctx, r.toEntity(itv), appVersion)
}

func (r *interviewRepository) toEntity(itv domain.Interview) dao.Interview {
	return dao.Interview{
		Id:               itv.ID,
		ApplicationId:    itv.ApplicationID,
		InterviewerId:    itv.InterviewerID,
		ScheduledAt:      itv.ScheduledAt,
		Location:         itv.Location,
		InterviewerNames: toNames(itv.InterviewerNames),
		Status:           itv.Status.String(),
	}
}

func (r *interviewRepository) toDomain(itv dao.Interview) domain.Interview {
	return domain.Interview{
		ID:               itv.Id,
		ApplicationID:    itv.ApplicationId,
		InterviewerID:    itv.InterviewerId,
		ScheduledAt:      itv.ScheduledAt,
		Location:         itv.Location,
		InterviewerNames: itv.InterviewerNames.Val,
		Status:           domain.InterviewStatus(itv.Status),
	}
}
