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
	"testing"

	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/domain"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/repository"
	repomocks "github.com/ecodeclub/schoolhire/internal/recruitment/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMatchService_ComputeMatches(t *testing.T) {
	const appId int64 = 100

	testCases := []struct {
		name    string
		setup   func(appRepo *repomocks.MockApplicationRepository, slotRepo *repomocks.MockAvailabilityRepository)
		want    []domain.MatchSuggestion
		wantErr error
	}{
		{
			name: "双方各一段且有交集",
			setup: func(appRepo *repomocks.MockApplicationRepository, slotRepo *repomocks.MockAvailabilityRepository) {
				appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{ID: appId, UID: 10}, nil)
				slotRepo.EXPECT().FindByApplicationId(gomock.Any(), appId).
					Return([]domain.AvailabilitySlot{
						{ID: 1, ApplicationID: appId, UID: 10, DayOfWeek: 2, StartTime: 600, EndTime: 720},
						{ID: 2, ApplicationID: appId, UID: 20, DayOfWeek: 2, StartTime: 660, EndTime: 780},
					}, nil)
			},
			want: []domain.MatchSuggestion{
				{
					DayOfWeek: 2, StartTime: 660, EndTime: 720,
					CandidateSlot: domain.AvailabilitySlot{ID: 1, ApplicationID: appId, UID: 10, DayOfWeek: 2, StartTime: 600, EndTime: 720},
					AdminSlot:     domain.AvailabilitySlot{ID: 2, ApplicationID: appId, UID: 20, DayOfWeek: 2, StartTime: 660, EndTime: 780},
				},
			},
		},
		{
			name: "没有交集返回空",
			setup: func(appRepo *repomocks.MockApplicationRepository, slotRepo *repomocks.MockAvailabilityRepository) {
				appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{ID: appId, UID: 10}, nil)
				slotRepo.EXPECT().FindByApplicationId(gomock.Any(), appId).
					Return([]domain.AvailabilitySlot{
						{ID: 1, UID: 10, DayOfWeek: 2, StartTime: 600, EndTime: 660},
						{ID: 2, UID: 20, DayOfWeek: 3, StartTime: 600, EndTime: 660},
					}, nil)
			},
			want: nil,
		},
		{
			name: "投递不存在",
			setup: func(appRepo *repomocks.MockApplicationRepository, slotRepo *repomocks.MockAvailabilityRepository) {
				appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{}, repository.ErrApplicationNotFound)
			},
			wantErr: repository.ErrApplicationNotFound,
		},
		{
			name: "脏数据投递没有候选人",
			setup: func(appRepo *repomocks.MockApplicationRepository, slotRepo *repomocks.MockAvailabilityRepository) {
				appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{ID: appId, UID: 0}, nil)
			},
			wantErr: repository.ErrApplicationNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			appRepo := repomocks.NewMockApplicationRepository(ctrl)
			slotRepo := repomocks.NewMockAvailabilityRepository(ctrl)
			tc.setup(appRepo, slotRepo)

			svc := NewMatchService(appRepo, slotRepo)
			got, err := svc.ComputeMatches(t.Context(), appId)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, got)
		})
	}
}
