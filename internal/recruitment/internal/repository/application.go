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
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/domain"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/repository/dao"
	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound = gorm.ErrRecordNotFound
	ErrConcurrentModify    = dao.ErrConcurrentModify
)

//go:generate mockgen -source=./application.go -package=repomocks -destination=mocks/application.mock.go -typed ApplicationRepository
type ApplicationRepository interface {
	Create(ctx context.Context, app domain.Application) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Application, error)
	FindByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Application, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
	UpdateStage(ctx context.Context, id int64, stage domain.Stage,
		location string, interviewerNames []string) error
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
}

type applicationRepository struct {
	dao dao.ApplicationDAO
}

func NewApplicationRepository(d dao.ApplicationDAO) ApplicationRepository {
	return &applicationRepository{
		dao: d,
	}
}

func (r *applicationRepository) Create(ctx context.Context, app domain.Application) (int64, error) {
	return r.dao.Create(ctx, dao.Application{
		Uid:          app.UID,
		JobPostingId: app.JobPostingID,
		SchoolId:     app.SchoolID,
		ContactEmail: app.ContactEmail,
		Status:       app.Status.String(),
		CurrentStage: app.CurrentStage.String(),
	})
}

func (r *applicationRepository) FindById(ctx context.Context, id int64) (domain.Application, error) {
	app, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	return r.toDomain(app), nil
}

func (r *applicationRepository) FindByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Application, error) {
	apps, err := r.dao.FindByUid(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(apps, func(_ int, src dao.Application) domain.Application {
		return r.toDomain(src)
	}), nil
}

func (r *applicationRepository) CountByUid(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountByUid(ctx, uid)
}

func (r *applicationRepository) UpdateStage(ctx context.Context, id int64, stage domain.Stage,
	location string, interviewerNames []string) error {
	return r.dao.UpdateStage(ctx, id, stage.String(), location, interviewerNames)
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return r.dao.UpdateStatus(ctx, id, status.String())
}

func (r *applicationRepository) toDomain(app dao.Application) domain.Application {
	return domain.Application{
		ID:                app.Id,
		UID:               app.Uid,
		JobPostingID:      app.JobPostingId,
		SchoolID:          app.SchoolId,
		ContactEmail:      app.ContactEmail,
		Status:            domain.Status(app.Status),
		CurrentStage:      domain.Stage(app.CurrentStage),
		InterviewLocation: app.InterviewLocation,
		InterviewerNames:  app.InterviewerNames.Val,
		Rating:            app.Rating,
		Version:           app.Version,
		Utime:             app.Utime,
	}
}

func toNames(names []string) sqlx.JsonColumn[[]string] {
	return sqlx.JsonColumn[[]string]{
		Val:   names,
		Valid: true,
	}
}
