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

type School struct {
	Id      int64  `gorm:"primaryKey,autoIncrement"`
	Name    string `gorm:"type:varchar(256);not null"`
	Region  string `gorm:"type:varchar(128);index:idx_region"`
	Address string `gorm:"type:varchar(512)"`
	Ctime   int64
	Utime   int64
}

func (School) TableName() string {
	return "schools"
}

// SchoolAdmin 学校管理员的成员关系，一行一个 (school, uid) 对。
type SchoolAdmin struct {
	Id       int64 `gorm:"primaryKey,autoIncrement"`
	SchoolId int64 `gorm:"type:BIGINT;NOT NULL;uniqueIndex:unq_school_uid,priority:1"`
	Uid      int64 `gorm:"type:BIGINT;NOT NULL;uniqueIndex:unq_school_uid,priority:2;index:idx_admin_uid"`
	Ctime    int64
	Utime    int64
}

func (SchoolAdmin) TableName() string {
	return "school_admins"
}

type SchoolDAO interface {
	Save(ctx context.Context, s School) (int64, error)
	FindById(ctx context.Context, id int64) (School, error)
	List(ctx context.Context, offset int, limit int) ([]School, error)
	Count(ctx context.Context) (int64, error)
	DeleteById(ctx context.Context, id int64) error

	AddAdmin(ctx context.Context, schoolId, uid int64) error
	RemoveAdmin(ctx context.Context, schoolId, uid int64) error
	IsAdmin(ctx context.Context, uid, schoolId int64) (bool, error)
	FindAdminUids(ctx context.Context, schoolId int64) ([]int64, error)
	FindSchoolIdsByAdmin(ctx context.Context, uid int64) ([]int64, error)
}

type GORMSchoolDAO struct {
	db *egorm.Component
}

func NewGORMSchoolDAO(db *egorm.Component) SchoolDAO {
	return &GORMSchoolDAO{
		db: db,
	}
}

func (d *GORMSchoolDAO) Save(ctx context.Context, s School) (int64, error) {
	now := time.Now().UnixMilli()
	s.Utime = now
	s.Ctime = now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "region", "address", "utime"}),
	}).Create(&s).Error
	return s.Id, err
}

func (d *GORMSchoolDAO) FindById(ctx context.Context, id int64) (School, error) {
	var s School
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	return s, err
}

func (d *GORMSchoolDAO) List(ctx context.Context, offset int, limit int) ([]School, error) {
	var schools []School
	err := d.db.WithContext(ctx).Offset(offset).Limit(limit).Order("utime DESC").Find(&schools).Error
	return schools, err
}

func (d *GORMSchoolDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&School{}).Count(&count).Error
	return count, err
}

func (d *GORMSchoolDAO) DeleteById(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Where("id = ?", id).Delete(&School{}).Error
}

func (d *GORMSchoolDAO) AddAdmin(ctx context.Context, schoolId, uid int64) error {
	now := time.Now().UnixMilli()
	admin := SchoolAdmin{
		SchoolId: schoolId,
		Uid:      uid,
		Ctime:    now,
		Utime:    now,
	}
	// 重复添加视为成功
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "school_id"}, {Name: "uid"}},
		DoUpdates: clause.AssignmentColumns([]string{"utime"}),
	}).Create(&admin).Error
}

func (d *GORMSchoolDAO) RemoveAdmin(ctx context.Context, schoolId, uid int64) error {
	return d.db.WithContext(ctx).
		Where("school_id = ? AND uid = ?", schoolId, uid).
		Delete(&SchoolAdmin{}).Error
}

func (d *GORMSchoolDAO) IsAdmin(ctx context.Context, uid, schoolId int64) (bool, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&SchoolAdmin{}).
		Where("school_id = ? AND uid = ?", schoolId, uid).
		Count(&count).Error
	return count > 0, err
}

func (d *GORMSchoolDAO) FindAdminUids(ctx context.Context, schoolId int64) ([]int64, error) {
	var uids []int64
	err := d.db.WithContext(ctx).Model(&SchoolAdmin{}).
		Where("school_id = ?", schoolId).
		Pluck("uid", &uids).Error
	return uids, err
}

func (d *GORMSchoolDAO) FindSchoolIdsByAdmin(ctx context.Context, uid int64) ([]int64, error) {
	var ids []int64
	err := d.db.WithContext(ctx).Model(&SchoolAdmin{}).
		Where("uid = ?", uid).
		Pluck("school_id", &ids).Error
	return ids, err
}
