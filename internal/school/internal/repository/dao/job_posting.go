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
	"gorm.io/gorm/clause"
)

type JobPosting struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	SchoolId    int64  `gorm:"type:BIGINT;NOT NULL;index:idx_school_id"`
	Title       string `gorm:"type:varchar(256);not null"`
	Subject     string `gorm:"type:varchar(128)"`
	Description string `gorm:"type:TEXT"`
	Status      string `gorm:"type:ENUM('DRAFT','PUBLISHED','CLOSED');NOT NULL;default:'DRAFT'"`
	Ctime       int64
	Utime       int64
}

func (JobPosting) TableName() string {
	return "job_postings"
}

type JobPostingDAO interface {
	Save(ctx context.Context, p JobPosting) (int64, error)
	FindById(ctx context.Context, id int64) (JobPosting, error)
	ListBySchool(ctx context.Context, schoolId int64, offset, limit int) ([]JobPosting, error)
	CountBySchool(ctx context.Context, schoolId int64) (int64, error)
	ListByStatus(ctx context.Context, status string, offset, limit int) ([]JobPosting, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type GORMJobPostingDAO struct {
	db *egorm.Component
}

func NewGORMJobPostingDAO(db *egorm.Component) JobPostingDAO {
	return &GORMJobPostingDAO{
		db: db,
	}
}

func (d *GORMJobPostingDAO) Save(ctx context.Context, p JobPosting) (int64, error) {
	now := time.Now().UnixMilli()
	p.Utime = now
	if p.Id == 0 {
		p.Ctime = now
	}
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "subject", "description", "status", "utime",
		}),
	}).Create(&p).Error
	return p.Id, err
}

func (d *GORMJobPostingDAO) FindById(ctx context.Context, id int64) (JobPosting, error) {
	var p JobPosting
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	return p, err
}

func (d *GORMJobPostingDAO) ListBySchool(ctx context.Context, schoolId int64, offset, limit int) ([]JobPosting, error) {
	var postings []JobPosting
	err := d.db.WithContext(ctx).Where("school_id = ?", schoolId).
		Order("utime DESC").
		Offset(offset).Limit(limit).
		Find(&postings).Error
	return postings, err
}

func (d *GORMJobPostingDAO) CountBySchool(ctx context.Context, schoolId int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&JobPosting{}).
		Where("school_id = ?", schoolId).Count(&count).Error
	return count, err
}

func (d *GORMJobPostingDAO) ListByStatus(ctx context.Context, status string, offset, limit int) ([]JobPosting, error) {
	var postings []JobPosting
	err := d.db.WithContext(ctx).Where("status = ?", status).
		Order("utime DESC").
		Offset(offset).Limit(limit).
		Find(&postings).Error
	return postings, err
}

func (d *GORMJobPostingDAO) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&JobPosting{}).
		Where("status = ?", status).Count(&count).Error
	return count, err
}

func (d *GORMJobPostingDAO) UpdateStatus(ctx context.Context, id int64, status string) error {
	return d.db.WithContext(ctx).Model(&JobPosting{}).
		Where("id = ?", id).Updates(map[string]any{
		"status": status,
		"utime":  time.Now().UnixMilli(),
	}).Error
}
