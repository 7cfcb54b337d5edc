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

type Notification struct {
	Id      int64  `gorm:"primaryKey,autoIncrement"`
	Uid     int64  `gorm:"type:BIGINT;NOT NULL;index:idx_uid"`
	Type    string `gorm:"type:varchar(64);NOT NULL"`
	Title   string `gorm:"type:varchar(256);NOT NULL"`
	Message string `gorm:"type:TEXT"`
	Url     string `gorm:"type:varchar(512)"`
	// 0-未读 1-已读
	Read  uint8 `gorm:"type:TINYINT;NOT NULL;default:0"`
	Ctime int64
	Utime int64
}

func (Notification) TableName() string {
	return "notifications"
}

type NotificationDAO interface {
	Create(ctx context.Context, n Notification) (int64, error)
	// BatchCreate 一次事务插入全部行，要么全部成功要么全部失败
	BatchCreate(ctx context.Context, ns []Notification) error
	FindByUid(ctx context.Context, uid int64, offset, limit int) ([]Notification, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
	CountUnread(ctx context.Context, uid int64) (int64, error)
	MarkRead(ctx context.Context, id, uid int64) error
	// DeleteReadBefore 清理 utime 早于 before 的已读通知，返回删除行数
	DeleteReadBefore(ctx context.Context, before int64, limit int) (int64, error)
}

type GORMNotificationDAO struct {
	db *egorm.Component
}

func NewGORMNotificationDAO(db *egorm.Component) NotificationDAO {
	return &GORMNotificationDAO{
		db: db,
	}
}

func (d *GORMNotificationDAO) Create(ctx context.Context, n Notification) (int64, error) {
	now := time.Now().UnixMilli()
	n.Ctime, n.Utime = now, now
	err := d.db.WithContext(ctx).Create(&n).Error
	return n.Id, err
}

func (d *GORMNotificationDAO) BatchCreate(ctx context.Context, ns []Notification) error {
	if len(ns) == 0 {
		return nil
	}
	now := time.Now().UnixMilli()
	for i := range ns {
		ns[i].Ctime, ns[i].Utime = now, now
	}
	return d.db.WithContext(ctx).Create(&ns).Error
}

func (d *GORMNotificationDAO) FindByUid(ctx context.Context, uid int64, offset, limit int) ([]Notification, error) {
	var ns []Notification
	err := d.db.WithContext(ctx).Where("uid = ?", uid).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&ns).Error
	return ns, err
}

func (d *GORMNotificationDAO) CountByUid(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Notification{}).
		Where("uid = ?", uid).Count(&count).Error
	return count, err
}

func (d *GORMNotificationDAO) CountUnread(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Notification{}).
		Where("uid = ? AND `read` = 0", uid).Count(&count).Error
	return count, err
}

func (d *GORMNotificationDAO) MarkRead(ctx context.Context, id, uid int64) error {
	return d.db.WithContext(ctx).Model(&Notification{}).
		Where("id = ? AND uid = ?", id, uid).
		Updates(map[string]any{
			"read":  1,
			"utime": time.Now().UnixMilli(),
		}).Error
}

func (d *GORMNotificationDAO) DeleteReadBefore(ctx context.Context, before int64, limit int) (int64, error) {
	res := d.db.WithContext(ctx).
		Where("`read` = 1 AND utime < ?", before).
		Limit(limit).
		Delete(&Notification{})
	return res.RowsAffected, res.Error
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Notification{})
}
