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
	"errors"
	"time"

	"github.com/ecodeclub/schoolhire/internal/pkg/timewindow"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/domain"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/repository"
)

var (
	// ErrNotOwner 只有提交人自己能改或删自己的时段
	ErrNotOwner = errors.New("不是时段的提交人")
	// ErrInvalidSlot 日期或时间格式非法，或起止时间倒置
	ErrInvalidSlot = errors.New("非法的可面试时段")
)

const dateLayout = "2006-01-02"

type AvailabilityService interface {
	List(ctx context.Context, appId int64) ([]domain.AvailabilitySlot, error)
	// Create 解析 date 和 HH:MM 起止时间，星期几一律从 date 推导
	Create(ctx context.Context, uid, appId int64, date, startTime, endTime string) (int64, error)
	Update(ctx context.Context, uid, slotId int64, date, startTime, endTime string) error
	Delete(ctx context.Context, uid, slotId int64) error
}

type availabilityService struct {
	repo    repository.AvailabilityRepository
	appRepo repository.ApplicationRepository
}

func NewAvailabilityService(repo repository.AvailabilityRepository,
	appRepo repository.ApplicationRepository) AvailabilityService {
	return &availabilityService{
		repo:    repo,
		appRepo: appRepo,
	}
}

func (s *availabilityService) List(ctx context.Context, appId int64) ([]domain.AvailabilitySlot, error) {
	return s.repo.FindByApplicationId(ctx, appId)
}

func (s *availabilityService) Create(ctx context.Context, uid, appId int64,
	date, startTime, endTime string) (int64, error) {
	slot, err := s.parseSlot(date, startTime, endTime)
	if err != nil {
		return 0, err
	}
	if _, err = s.appRepo.FindById(ctx, appId); err != nil {
		return 0, err
	}
	slot.ApplicationID = appId
	slot.UID = uid
	return s.repo.Create(ctx, slot)
}

func (s *availabilityService) Update(ctx context.Context, uid, slotId int64,
	date, startTime, endTime string) error {
	slot, err := s.parseSlot(date, startTime, endTime)
	if err != nil {
		return err
	}
	old, err := s.repo.FindById(ctx, slotId)
	if err != nil {
		return err
	}
	if old.UID != uid {
		return ErrNotOwner
	}
	slot.ID = old.ID
	slot.ApplicationID = old.ApplicationID
	slot.UID = old.UID
	return s.repo.Update(ctx, slot)
}

func (s *availabilityService) Delete(ctx context.Context, uid, slotId int64) error {
	old, err := s.repo.FindById(ctx, slotId)
	if err != nil {
		return err
	}
	if old.UID != uid {
		return ErrNotOwner
	}
	return s.repo.Delete(ctx, slotId)
}

func (s *availabilityService) parseSlot(date, startTime, endTime string) (domain.AvailabilitySlot, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return domain.AvailabilitySlot{}, ErrInvalidSlot
	}
	start, err := timewindow.Parse(startTime)
	if err != nil {
		return domain.AvailabilitySlot{}, ErrInvalidSlot
	}
	end, err := timewindow.Parse(endTime)
	if err != nil {
		return domain.AvailabilitySlot{}, ErrInvalidSlot
	}
	if start >= end {
		return domain.AvailabilitySlot{}, ErrInvalidSlot
	}
	return domain.AvailabilitySlot{
		Date:      day,
		DayOfWeek: domain.DayOfWeekFromDate(day),
		StartTime: start,
		EndTime:   end,
	}, nil
}
