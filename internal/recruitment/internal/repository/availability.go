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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/domain"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/repository/dao"
	"gorm.io/gorm"
)

var ErrSlotNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./availability.go -package=repomocks -destination=mocks/availability.mock.go -typed AvailabilityRepository
type AvailabilityRepository interface {
	Create(ctx context.Context, slot domain.AvailabilitySlot) (int64, error)
	Update(ctx context.Context, slot domain.AvailabilitySlot) error
	Delete(ctx context.Context, id int64) error
	FindById(ctx context.Context, id int64) (domain.AvailabilitySlot, error)
	FindByApplicationId(ctx context.Context, appId int64) ([]domain.AvailabilitySlot, error)
	DeleteByApplicationId(ctx context.Context, appId int64) error
}

type availabilityRepository struct {
	dao dao.AvailabilityDAO
}

func NewAvailabilityRepository(d dao.AvailabilityDAO) AvailabilityRepository {
	return &availabilityRepository{
		dao: d,
	}
}

func (r *availabilityRepository) Create(ctx context.Context, slot domain.AvailabilitySlot) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(slot))
}

func (r *availabilityRepository) Update(ctx context.Context, slot domain.AvailabilitySlot) error {
	return r.dao.UpdateById(ctx, r.toEntity(slot))
}

func (r *availabilityRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.DeleteById(ctx, id)
}

func (r *availabilityRepository) FindById(ctx context.Context, id int64) (domain.AvailabilitySlot, error) {
	slot, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.AvailabilitySlot{}, err
	}
	return r.toDomain(slot), nil
}

func (r *availabilityRepository) FindByApplicationId(ctx context.Context, appId int64) ([]domain.AvailabilitySlot, error) {
	slots, err := r.dao.FindByApplicationId(ctx, appId)
	if err != nil {
		return nil, err
	}
	return slice.Map(slots, func(_ int, src dao.AvailabilitySlot) domain.AvailabilitySlot {
		return r.toDomain(src)
	}), nil
}

func (r *availabilityRepository) DeleteByApplicationId(ctx context.Context, appId int64) error {
	return r.dao.DeleteByApplicationId(ctx, appId)
}

func (r *availabilityRepository) toEntity(slot domain.AvailabilitySlot) dao.AvailabilitySlot {
	return dao.AvailabilitySlot{
		Id:            slot.ID,
		ApplicationId: slot.ApplicationID,
		Uid:           slot.UID,
		Date:          slot.Date.UnixMilli(),
		DayOfWeek:     int8(slot.DayOfWeek),
		StartTime:     slot.StartTime,
		EndTime:       slot.EndTime,
	}
}

func (r *availabilityRepository) toDomain(slot dao.AvailabilitySlot) domain.AvailabilitySlot {
	return domain.AvailabilitySlot{
		ID:            slot.Id,
		ApplicationID: slot.ApplicationId,
		UID:           slot.Uid,
		Date:          time.UnixMilli(slot.Date),
		DayOfWeek:     domain.DayOfWeek(slot.DayOfWeek),
		StartTime:     slot.StartTime,
		EndTime:       slot.EndTime,
	}
}
