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

	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/domain"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/repository/dao"
	"gorm.io/gorm"
)

var ErrOfferNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./offer.go -package=repomocks -destination=mocks/offer.mock.go -typed OfferRepository
type OfferRepository interface {
	Create(ctx context.Context, offer domain.Offer) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Offer, error)
	FindByApplicationId(ctx context.Context, appId int64) (domain.Offer, error)
	UpdateResponse(ctx context.Context, id int64, status domain.OfferStatus, responseAt int64) error
}

type offerRepository struct {
	dao dao.OfferDAO
}

func NewOfferRepository(d dao.OfferDAO) OfferRepository {
	return &offerRepository{
		dao: d,
	}
}

func (r *offerRepository) Create(ctx context.Context, offer domain.Offer) (int64, error) {
	return r.dao.Create(ctx, dao.Offer{
		ApplicationId: offer.ApplicationID,
		LetterUrl:     offer.LetterURL,
		Status:        offer.Status.String(),
	})
}

func (r *offerRepository) FindById(ctx context.Context, id int64) (domain.Offer, error) {
	offer, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Offer{}, err
	}
	return r.toDomain(offer), nil
}

func (r *offerRepository) FindByApplicationId(ctx context.Context, appId int64) (domain.Offer, error) {
	offer, err := r.dao.FindByApplicationId(ctx, appId)
	if err != nil {
		return domain.Offer{}, err
	}
	return r.toDomain(offer), nil
}

func (r *offerRepository) UpdateResponse(ctx context.Context, id int64,
	status domain.OfferStatus, responseAt int64) error {
	return r.dao.UpdateResponse(ctx, id, status.String(), responseAt)
}

func (r *offerRepository) toDomain(offer dao.Offer) domain.Offer {
	return domain.Offer{
		ID:            offer.Id,
		ApplicationID: offer.ApplicationId,
		LetterURL:     offer.LetterUrl,
		Status:        domain.OfferStatus(offer.Status),
		ResponseAt:    offer.ResponseAt,
	}
}
