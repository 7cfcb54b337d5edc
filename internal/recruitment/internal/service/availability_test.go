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
	"testing"

	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/domain"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/repository"
	repomocks "github.com/ecodeclub/schoolhire/internal/recruitment/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAvailabilityService_Create(t *testing.T) {
	testCases := []struct {
		name      string
		date      string
		startTime string
		endTime   string
		setup     func(slotRepo *repomocks.MockAvailabilityRepository, appRepo *repomocks.MockApplicationRepository)
		wantId    int64
		wantErr   error
	}{
		{
			name:      "成功并从日期推导星期",
			date:      "2024-01-15",
			startTime: "09:00",
			endTime:   "10:00",
			setup: func(slotRepo *repomocks.MockAvailabilityRepository, appRepo *repomocks.MockApplicationRepository) {
				appRepo.EXPECT().FindById(gomock.Any(), int64(1)).
					Return(domain.Application{ID: 1, UID: 10}, nil)
				slotRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, slot domain.AvailabilitySlot) (int64, error) {
						// 2024-01-15 是周一
						assert.Equal(t, domain.DayOfWeek(1), slot.DayOfWeek)
						assert.Equal(t, 540, slot.StartTime)
						assert.Equal(t, 600, slot.EndTime)
						assert.Equal(t, int64(1), slot.ApplicationID)
						assert.Equal(t, int64(10), slot.UID)
						return 100, nil
					})
			},
			wantId: 100,
		},
		{
			name:      "日期格式非法",
			date:      "Monday",
			startTime: "09:00",
			endTime:   "10:00",
			setup: func(slotRepo *repomocks.MockAvailabilityRepository, appRepo *repomocks.MockApplicationRepository) {
			},
			wantErr: ErrInvalidSlot,
		},
		{
			name:      "时间格式非法",
			date:      "2024-01-15",
			startTime: "9:00",
			endTime:   "10:00",
			setup: func(slotRepo *repomocks.MockAvailabilityRepository, appRepo *repomocks.MockApplicationRepository) {
			},
			wantErr: ErrInvalidSlot,
		},
		{
			name:      "起止时间倒置",
			date:      "2024-01-15",
			startTime: "10:00",
			endTime:   "09:00",
			setup: func(slotRepo *repomocks.MockAvailabilityRepository, appRepo *repomocks.MockApplicationRepository) {
			},
			wantErr: ErrInvalidSlot,
		},
		{
			name:      "投递不存在",
			date:      "2024-01-15",
			startTime: "09:00",
			endTime:   "10:00",
			setup: func(slotRepo *repomocks.MockAvailabilityRepository, appRepo *repomocks.MockApplicationRepository) {
				appRepo.EXPECT().FindById(gomock.Any(), int64(1)).
					Return(domain.Application{}, repository.ErrApplicationNotFound)
			},
			wantErr: repository.ErrApplicationNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			slotRepo := repomocks.NewMockAvailabilityRepository(ctrl)
			appRepo := repomocks.NewMockApplicationRepository(ctrl)
			tc.setup(slotRepo, appRepo)

			svc := NewAvailabilityService(slotRepo, appRepo)
			id, err := svc.Create(t.Context(), 10, 1, tc.date, tc.startTime, tc.endTime)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantId, id)
		})
	}
}

func TestAvailabilityService_Update(t *testing.T) {
	testCases := []struct {
		name    string
		uid     int64
		setup   func(slotRepo *repomocks.MockAvailabilityRepository)
		wantErr error
	}{
		{
			name: "成功保留原归属",
			uid:  10,
			setup: func(slotRepo *repomocks.MockAvailabilityRepository) {
				slotRepo.EXPECT().FindById(gomock.Any(), int64(100)).
					Return(domain.AvailabilitySlot{ID: 100, ApplicationID: 1, UID: 10}, nil)
				slotRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, slot domain.AvailabilitySlot) error {
						assert.Equal(t, int64(100), slot.ID)
						assert.Equal(t, int64(1), slot.ApplicationID)
						assert.Equal(t, int64(10), slot.UID)
						return nil
					})
			},
		},
		{
			name: "非提交人",
			uid:  11,
			setup: func(slotRepo *repomocks.MockAvailabilityRepository) {
				slotRepo.EXPECT().FindById(gomock.Any(), int64(100)).
					Return(domain.AvailabilitySlot{ID: 100, ApplicationID: 1, UID: 10}, nil)
			},
			wantErr: ErrNotOwner,
		},
		{
			name: "时段不存在",
			uid:  10,
			setup: func(slotRepo *repomocks.MockAvailabilityRepository) {
				slotRepo.EXPECT().FindById(gomock.Any(), int64(100)).
					Return(domain.AvailabilitySlot{}, repository.ErrSlotNotFound)
			},
			wantErr: repository.ErrSlotNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			slotRepo := repomocks.NewMockAvailabilityRepository(ctrl)
			appRepo := repomocks.NewMockApplicationRepository(ctrl)
			tc.setup(slotRepo)

			svc := NewAvailabilityService(slotRepo, appRepo)
			err := svc.Update(t.Context(), tc.uid, 100, "2024-01-15", "09:00", "10:00")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestAvailabilityService_Delete(t *testing.T) {
	testCases := []struct {
		name    string
		uid     int64
		setup   func(slotRepo *repomocks.MockAvailabilityRepository)
		wantErr error
	}{
		{
			name: "成功",
			uid:  10,
			setup: func(slotRepo *repomocks.MockAvailabilityRepository) {
				slotRepo.EXPECT().FindById(gomock.Any(), int64(100)).
					Return(domain.AvailabilitySlot{ID: 100, UID: 10}, nil)
				slotRepo.EXPECT().Delete(gomock.Any(), int64(100)).Return(nil)
			},
		},
		{
			name: "非提交人",
			uid:  11,
			setup: func(slotRepo *repomocks.MockAvailabilityRepository) {
				slotRepo.EXPECT().FindById(gomock.Any(), int64(100)).
					Return(domain.AvailabilitySlot{ID: 100, UID: 10}, nil)
			},
			wantErr: ErrNotOwner,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			slotRepo := repomocks.NewMockAvailabilityRepository(ctrl)
			appRepo := repomocks.NewMockApplicationRepository(ctrl)
			tc.setup(slotRepo)

			svc := NewAvailabilityService(slotRepo, appRepo)
			err := svc.Delete(t.Context(), tc.uid, 100)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
