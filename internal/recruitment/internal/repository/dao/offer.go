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

type Offer struct {
	Id            int64  `gorm:"primaryKey,autoIncrement"`
	ApplicationId int64  `gorm:"type:BIGINT;NOT NULL;index:idx_offer_app"`
	LetterUrl     string `gorm:"type:varchar(1024);NOT NULL"`
	Status        string `gorm:"type:varchar(32);NOT NULL"`
	ResponseAt    int64
	Ctime         int64
	Utime         int64
}

func (Offer) TableName() string {
	return "offers"
}

type OfferDAO interface {
	Create(ctx context.Context, offer Offer) (int64, error)
	FindById(ctx context.Context, id int64) (Offer, error)
	FindByApplicationId(ctx context.Context, appId int64) (Offer, error)
	UpdateResponse(ctx context.Context, id int64, status string, responseAt int64) error
}

type GORMOfferDAO struct {
	db *egorm.Component
}

func NewGORMOfferDAO(db *egorm.Component) OfferDAO {
	return &GORMOfferDAO{
		db: db,
	}
}

func (d *GORMOfferDAO) Create(ctx context.Context, offer Offer) (int64, error) {
	now := time.Now().UnixMilli()
	offer.Ctime = now
	offer.Utime = now
	err := d.db.WithContext(ctx).Create(&offer).Error
	return offer.Id, err
}

func (d *GORMOfferDAO) FindById(ctx context.Context, id int64) (Offer, error) {
	var offer Offer
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&offer).Error
	return offer, err
}

func (d *GORMOfferDAO) FindByApplicationId(ctx context.Context, appId int64) (Offer, error) {
	var offer Offer
	err := d.db.WithContext(ctx).
		Where("application_id = ?", appId).
		Order("ctime DESC").
		First(&offer).Error
	return offer, err
}

func (d *GORMOfferDAO) UpdateResponse(ctx context.Context, id int64, status string, responseAt int64) error {
	return d.db.WithContext(ctx).Model(&Offer{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":      status,
			"response_at": responseAt,
			"utime":       time.Now().UnixMilli(),
		}).Error
}
