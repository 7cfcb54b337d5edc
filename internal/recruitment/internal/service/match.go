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

	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/domain"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/repository"
)

type MatchService interface {
	ComputeMatches(ctx context.Context, appId int64) ([]domain.MatchSuggestion, error)
}

type matchService struct {
	appRepo  repository.ApplicationRepository
	slotRepo repository.AvailabilityRepository
}

func NewMatchService(appRepo repository.ApplicationRepository,
	slotRepo repository.AvailabilityRepository) MatchService {
	return &matchService{
		appRepo:  appRepo,
		slotRepo: slotRepo,
	}
}

func (s *matchService) ComputeMatches(ctx context.Context, appId int64) ([]domain.MatchSuggestion, error) {
	app, err := s.appRepo.FindById(ctx, appId)
	if err != nil {
		return nil, err
	}
	// 不知道候选人是谁就分不出两侧，当不存在处理
	if app.UID == 0 {
		return nil, repository.ErrApplicationNotFound
	}
	slots, err := s.slotRepo.FindByApplicationId(ctx, appId)
	if err != nil {
		return nil, err
	}
	return domain.MatchSlots(app.UID, slots), nil
}
