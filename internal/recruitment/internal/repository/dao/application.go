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
	"errors"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

// ErrConcurrentModify 乐观锁版本不匹配，说明有并发写先落库。
var ErrConcurrentModify = errors.New("投递记录已被并发修改")

type Application struct {
	Id           int64  `gorm:"primaryKey,autoIncrement"`
	Uid          int64  `gorm:"type:BIGINT;NOT NULL;index:idx_app_uid"`
	JobPostingId int64  `gorm:"type:BIGINT;NOT NULL;index:idx_app_posting"`
	SchoolId     int64  `gorm:"type:BIGINT;NOT NULL;index:idx_app_school"`
	ContactEmail string `gorm:"type:varchar(256)"`
	Status       string `gorm:"type:varchar(32);NOT NULL"`
	CurrentStage string `gorm:"type:varchar(64);NOT NULL"`

	InterviewLocation string                   `gorm:"type:varchar(512)"`
	InterviewerNames  sqlx.JsonColumn[[]string] `gorm:"type:json"`

	Rating int8
	// Version 每次写都自增，面试确认用它做乐观锁
	Version int64 `gorm:"type:BIGINT;NOT NULL;default:1"`
	Ctime   int64
	Utime   int64
}

func (Application) TableName() string {
	return "applications"
}

type ApplicationDAO interface {
	Create(ctx context.Context, app Application) (int64, error)
	FindById(ctx context.Context, id int64) (Application, error)
	FindByUid(ctx context.Context, uid int64, offset int, limit int) ([]Application, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
	// UpdateStage 更新阶段，顺带持久化邀请时填的地点和面试官
	UpdateStage(ctx context.Context, id int64, stage string, location string, interviewerNames []string) error
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type GORMApplicationDAO struct {
	db *egorm.Component
}

func NewGORMApplicationDAO(db *egorm.Component) ApplicationDAO {
	return &GORMApplicationDAO{
		db: db,
	}
}

func (d *GORMApplicationDAO) Create(ctx context.Context, app Application) (int64, error) {
	now := time.Now().UnixMilli()
	app.Ctime = now
	app.Utime = now
	app.Version = 1
	err := d.db.WithContext(ctx).Create(&app).Error
	return app.Id, err
}

func (d *GORMApplicationDAO) FindById(ctx context.Context, id int64) (Application, error) {
	var app Application
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&app).Error
	return app, err
}

func (d *GORMApplicationDAO) FindByUid(ctx context.Context, uid int64, offset int, limit int) ([]Application, error) {
	var apps []Application
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Offset(offset).Limit(limit).
		Order("utime DESC").
		Find(&apps).Error
	return apps, err
}

func (d *GORMApplicationDAO) CountByUid(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Application{}).
		Where("uid = ?", uid).Count(&count).Error
	return count, err
}

func (d *GORMApplicationDAO) UpdateStage(ctx context.Context, id int64,
	stage string, location string, interviewerNames []string) error {
	return d.db.WithContext(ctx).Model(&Application{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"current_stage":      stage,
			"interview_location": location,
			"interviewer_names": sqlx.JsonColumn[[]string]{
				Val:   interviewerNames,
				Valid: true,
			},
			"version": gorm.Expr("version + 1"),
			"utime":   time.Now().UnixMilli(),
		}).Error
}

func (d *GORMApplicationDAO) UpdateStatus(ctx context.Context, id int64, status string) error {
	return d.db.WithContext(ctx).Model(&Application{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":  status,
			"version": gorm.Expr("version + 1"),
			"utime":   time.Now().UnixMilli(),
		}).Error
}
