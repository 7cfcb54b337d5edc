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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
)

// AvailabilitySlot 可面试时段。DayOfWeek 存 0=周日..6=周六 的下标，
// 列表按下标排序即日历顺序。
type AvailabilitySlot struct {
	Id            int64 `gorm:"primaryKey,autoIncrement"`
	ApplicationId int64 `gorm:"type:BIGINT;NOT NULL;index:idx_slot_app"`
	Uid           int64 `gorm:"type:BIGINT;NOT NULL;index:idx_slot_uid"`
	// Date 当天零点的 unix 毫秒
	Date      int64 `gorm:"type:BIGINT;NOT NULL"`
	DayOfWeek int8  `gorm:"type:TINYINT;NOT NULL"`
	// StartTime/EndTime 当天零点起的分钟数
	StartTime int `gorm:"type:INT;NOT NULL"`
	EndTime   int `gorm:"type:INT;NOT NULL"`
	Ctime     int64
	Utime     int64
}

func (AvailabilitySlot) TableName() string {
	return "availability_slots"
}

type AvailabilityDAO interface {
	Create(ctx context.Context, slot AvailabilitySlot) (int64, error)
	UpdateById(ctx context.Context, slot AvailabilitySlot) error
	DeleteById(ctx context.Context, id int64) error
	FindById(ctx context.Context, id int64) (AvailabilitySlot, error)
	FindByApplicationId(ctx context.Context, appId int64) ([]AvailabilitySlot, error)
	DeleteByApplicationId(ctx context.Context, appId int64) error
}

type GORMAvailabilityDAO struct {
	db *egorm.Component
}

func NewGORMAvailabilityDAO(db *egorm.Component) AvailabilityDAO {
	return &GORMAvailabilityDAO{
		db: db,
	}
}

func (d *GORMAvailabilityDAO) Create(ctx context.Context, slot AvailabilitySlot) (int64, error) {
	now := time.Now().UnixMilli()
	slot.Ctime = now
	slot.Utime = now
	err := d.db.WithContext(ctx).Create(&slot).Error
	return slot.Id, err
}

func (d *GORMAvailabilityDAO) UpdateById(ctx context.Context, slot AvailabilitySlot) error {
	return d.db.WithContext(ctx).Model(&AvailabilitySlot{}).
		Where("id = ?", slot.Id).
		Updates(map[string]any{
			"date":        slot.Date,
			"day_of_week": slot.DayOfWeek,
			"start_time":  slot.StartTime,
			"end_time":    slot.EndTime,
			"utime":       time.Now().UnixMilli(),
		}).Error
}

func (d *GORMAvailabilityDAO) DeleteById(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Where("id = ?", id).Delete(&AvailabilitySlot{}).Error
}

func (d *GORMAvailabilityDAO) FindById(ctx context.Context, id int64) (AvailabilitySlot, error) {
	var slot AvailabilitySlot
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&slot).Error
	return slot, err
}

func (d *GORMAvailabilityDAO) FindByApplicationId(ctx context.Context, appId int64) ([]AvailabilitySlot, error) {
	var slots []AvailabilitySlot
	err := d.db.WithContext(ctx).
		Where("application_id = ?", appId).
		Order("day_of_week ASC, start_time ASC").
		Find(&slots).Error
	return slots, err
}

func (d *GORMAvailabilityDAO) DeleteByApplicationId(ctx context.Context, appId int64) error {
	return d.db.WithContext(ctx).
		Where("application_id = ?", appId).
		Delete(&AvailabilitySlot{}).Error
}
