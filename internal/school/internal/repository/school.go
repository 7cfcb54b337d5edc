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
	"github.com/ecodeclub/schoolhire/internal/school/internal/domain"
	"github.com/ecodeclub/schoolhire/internal/school/internal/repository/dao"
	"gorm.io/gorm"
)

var ErrSchoolNotFound = gorm.ErrRecordNotFound

type SchoolRepository interface {
	Save(ctx context.Context, s domain.School) (int64, error)
	FindById(ctx context.Context, id int64) (domain.School, error)
	List(ctx context.Context, offset, limit int) ([]domain.School, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error

	AddAdmin(ctx context.Context, schoolId, uid int64) error
	RemoveAdmin(ctx context.Context, schoolId, uid int64) error
	IsAdmin(ctx context.Context, uid, schoolId int64) (bool, error)
	AdminUids(ctx context.Context, schoolId int64) ([]int64, error)
	SchoolIdsByAdmin(ctx context.Context, uid int64) ([]int64, error)
}

type schoolRepository struct {
	dao dao.SchoolDAO
}

func NewSchoolRepository(d dao.SchoolDAO) SchoolRepository {
	return &schoolRepository{
		dao: d,
	}
}

func (r *schoolRepository) Save(ctx context.Context, s domain.School) (int64, error) {
	return r.dao.Save(ctx, dao.School{
		Id:      s.ID,
		Name:    s.Name,
		Region:  s.Region,
		Address: s.Address,
	})
}

func (r *schoolRepository) FindById(ctx context.Context, id int64) (domain.School, error) {
	s, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.School{}, err
	}
	return r.toDomain(s), nil
}

func (r *schoolRepository) List(ctx context.Context, offset, limit int) ([]domain.School, error) {
	schools, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(schools, func(_ int, src dao.School) domain.School {
		return r.toDomain(src)
	}), nil
}

func (r *schoolRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *schoolRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.DeleteById(ctx, id)
}

func (r *schoolRepository) AddAdmin(ctx context.Context, schoolId, uid int64) error {
	return r.dao.AddAdmin(ctx, schoolId, uid)
}

func (r *schoolRepository) RemoveAdmin(ctx context.Context, schoolId, uid int64) error {
	return r.dao.RemoveAdmin(ctx, schoolId, uid)
}

func (r *schoolRepository) IsAdmin(ctx context.Context, uid, schoolId int64) (bool, error) {
	return r.dao.IsAdmin(ctx, uid, schoolId)
}

func (r *schoolRepository) AdminUids(ctx context.Context, schoolId int64) ([]int64, error) {
	return r.dao.FindAdminUids(ctx, schoolId)
}

func (r *schoolRepository) SchoolIdsByAdmin(ctx context.Context, uid int64) ([]int64, error) {
	return r.dao.FindSchoolIdsByAdmin(ctx, uid)
}

func (r *schoolRepository) toDomain(s dao.School) domain.School {
	return domain.School{
		ID:      s.Id,
		Name:    s.Name,
		Region:  s.Region,
		Address: s.Address,
	}
}
