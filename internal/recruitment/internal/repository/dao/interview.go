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

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

type Interview struct {
	Id               int64                     `gorm:"primaryKey,autoIncrement"`
	ApplicationId    int64                     `gorm:"type:BIGINT;NOT NULL;index:idx_itv_app"`
	InterviewerId    int64                     `gorm:"type:BIGINT;NOT NULL"`
	ScheduledAt      int64                     `gorm:"type:BIGINT;NOT NULL"`
	Location         string                    `gorm:"type:varchar(512)"`
	InterviewerNames sqlx.JsonColumn[[]string] `gorm:"type:json"`
	Status           string                    `gorm:"type:varchar(32);NOT NULL"`
	Ctime            int64
	Utime            int64
}

func (Interview) TableName() string {
	return "interviews"
}

type InterviewDAO interface {
	Create(ctx context.Context, itv Interview) (int64, error)
	UpdateById(ctx context.Context, itv Interview) error
	DeleteById(ctx context.Context, id int64) error
	FindById(ctx context.Context, id int64) (Interview, error)
	FindByApplicationId(ctx context.Context, appId int64) ([]Interview, error)
	FindLatestByApplicationId(ctx context.Context, appId int64) (Interview, error)
	CountByApplicationId(ctx context.Context, appId int64) (int64, error)
	// ConfirmInterview 确认面试的三件事在一个事务里完成：
	// 插入面试、推进投递状态（带版本号乐观检查）、清空该投递全部可面试时段。
	// 版本号不匹配返回 ErrConcurrentModify。
	ConfirmInterview(ctx context.Context, itv Interview, appVersion int64) (int64, error)
}

type GORMInterviewDAO struct {
	db *egorm.Component
}

func NewGORMInterviewDAO(db *egorm.Component) InterviewDAO {
	return &GORMInterviewDAO{
		db: db,
	}
}

func (d *GORMInterviewDAO) Create(ctx context.Context, itv Interview) (int64, error) {
	now := time.Now().UnixMilli()
	itv.Ctime = now
	itv.Utime = now
	err := d.db.WithContext(ctx).Create(&itv).Error
	return itv.Id, err
}

func (d *GORMInterviewDAO) UpdateById(ctx context.Context, itv Interview) error {
	return d.db.WithContext(ctx).Model(&Interview{}).
		Where("id = ?", itv.Id).
		Updates(map[string]any{
			"scheduled_at":      itv.ScheduledAt,
			"location":          itv.Location,
			"interviewer_names": itv.InterviewerNames,
			"utime":             time.Now().UnixMilli(),
		}).Error
}

func (d *GORMInterviewDAO) DeleteById(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Where("id = ?", id).Delete(&Interview{}).Error
}

func (d *GORMInterviewDAO) FindById(ctx context.Context, id int64) (Interview, error) {
	var itv Interview
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&itv).Error
	return itv, err
}

func (d *GORMInterviewDAO) FindByApplicationId(ctx context.Context, appId int64) ([]Interview, error) {
	var itvs []Interview
	err := d.db.WithContext(ctx).
		Where("application_id = ?", appId).
		Order("scheduled_at ASC").
		Find(&itvs).Error
	return itvs, err
}

func (d *GORMInterviewDAO) FindLatestByApplicationId(ctx context.Context, appId int64) (Interview, error) {
	var itv Interview
	err := d.db.WithContext(ctx).
		Where("application_id = ?", appId).
		Order("scheduled_at DESC").
		First(&itv).Error
	return itv, err
}

func (d *GORMInterviewDAO) CountByApplicationId(ctx context.Context, appId int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Interview{}).
		Where("application_id = ?", appId).
		Count(&count).Error
	return count, err
}

func (d *GORMInterviewDAO) ConfirmInterview(ctx context.Context, itv Interview, appVersion int64) (int64, error) {
	now := time.Now().UnixMilli()
	itv.Ctime = now
	itv.Utime = now
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&itv).Error; err != nil {
			return err
		}
		res := tx.Model(&Application{}).
			Where("id = ? AND version = ?", itv.ApplicationId, appVersion).
			Updates(map[string]any{
				"status":        "IN_PROCESS",
				"current_stage": "INTERVIEW",
				"version":       gorm.Expr("version + 1"),
				"utime":         now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrConcurrentModify
		}
		// 确认之后所有待选时段都作废，双方的一起清掉
		return tx.Where("application_id = ?", itv.ApplicationId).
			Delete(&AvailabilitySlot{}).Error
	})
	return itv.Id, err
}
