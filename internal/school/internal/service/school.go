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

package service

import (
	"context"

	"github.com/ecodeclub/schoolhire/internal/school/internal/domain"
	"github.com/ecodeclub/schoolhire/internal/school/internal/repository"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./school.go -destination=../../mocks/school.mock.go -package=schoolmocks -typed SchoolService
type SchoolService interface {
	Save(ctx context.Context, school domain.School) (int64, error)
	GetById(ctx context.Context, id int64) (domain.School, error)
	List(ctx context.Context, offset, limit int) ([]domain.School, int64, error)
	Delete(ctx context.Context, id int64) error

	// IsAdmin 判断 uid 是否是 schoolId 这所学校的管理员。
	IsAdmin(ctx context.Context, uid, schoolId int64) (bool, error)
	// AdminUids 返回学校当前全部管理员。
	// 每次调用都实时查库，广播通知依赖这个语义，不允许缓存成员关系。
	AdminUids(ctx context.Context, schoolId int64) ([]int64, error)
	AddAdmin(ctx context.Context, schoolId, uid int64) error
	RemoveAdmin(ctx context.Context, schoolId, uid int64) error
	ManagedSchoolIds(ctx context.Context, uid int64) ([]int64, error)
}

type schoolService struct {
	repo repository.SchoolRepository
}

func NewSchoolService(repo repository.SchoolRepository) SchoolService {
	return &schoolService{
		repo: repo,
	}
}

func (s *schoolService) Save(ctx context.Context, school domain.School) (int64, error) {
	return s.repo.Save(ctx, school)
}

func (s *schoolService) GetById(ctx context.Context, id int64) (domain.School, error) {
	return s.repo.FindById(ctx, id)
}

func (s *schoolService) List(ctx context.Context, offset, limit int) ([]domain.School, int64, error) {
	var (
		schools []domain.School
		total   int64
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		schools, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	return schools, total, eg.Wait()
}

func (s *schoolService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *schoolService) IsAdmin(ctx context.Context, uid, schoolId int64) (bool, error) {
	return s.repo.IsAdmin(ctx, uid, schoolId)
}

func (s *schoolService) AdminUids(ctx context.Context, schoolId int64) ([]int64, error) {
	return s.repo.AdminUids(ctx, schoolId)
}

func (s *schoolService) AddAdmin(ctx context.Context, schoolId, uid int64) error {
	return s.repo.AddAdmin(ctx, schoolId, uid)
}

func (s *schoolService) RemoveAdmin(ctx context.Context, schoolId, uid int64) error {
	return s.repo.RemoveAdmin(ctx, schoolId, uid)
}

func (s *schoolService) ManagedSchoolIds(ctx context.Context, uid int64) ([]int64, error) {
	return s.repo.SchoolIdsByAdmin(ctx, uid)
}
