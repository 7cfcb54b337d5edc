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
	"errors"
	"testing"

	"github.com/ecodeclub/schoolhire/internal/notification"
	notificationmocks "github.com/ecodeclub/schoolhire/internal/notification/mocks"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/domain"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/event"
	evtmocks "github.com/ecodeclub/schoolhire/internal/recruitment/internal/event/mocks"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/repository"
	repomocks "github.com/ecodeclub/schoolhire/internal/recruitment/internal/repository/mocks"
	schoolmocks "github.com/ecodeclub/schoolhire/internal/school/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type interviewSvcMocks struct {
	appRepo   *repomocks.MockApplicationRepository
	itvRepo   *repomocks.MockInterviewRepository
	slotRepo  *repomocks.MockAvailabilityRepository
	schoolSvc *schoolmocks.MockSchoolService
	notifSvc  *notificationmocks.MockService
	producer  *evtmocks.MockStageEventProducer
}

func newInterviewSvcMocks(ctrl *gomock.Controller) interviewSvcMocks {
	return interviewSvcMocks{
		appRepo:   repomocks.NewMockApplicationRepository(ctrl),
		itvRepo:   repomocks.NewMockInterviewRepository(ctrl),
		slotRepo:  repomocks.NewMockAvailabilityRepository(ctrl),
		schoolSvc: schoolmocks.NewMockSchoolService(ctrl),
		notifSvc:  notificationmocks.NewMockService(ctrl),
		producer:  evtmocks.NewMockStageEventProducer(ctrl),
	}
}

func (m interviewSvcMocks) newSvc() InterviewService {
	return NewInterviewService(m.appRepo, m.itvRepo, m.slotRepo,
		m.schoolSvc, m.notifSvc, m.producer)
}

func TestInterviewService_SendInvite(t *testing.T) {
	const (
		adminUid int64 = 1
		appId    int64 = 100
		schoolId int64 = 7
	)

	testCases := []struct {
		name     string
		location string
		setup    func(m interviewSvcMocks)
		wantErr  error
	}{
		{
			name:     "首次邀请成功",
			location: "主校区 3 号楼",
			setup: func(m interviewSvcMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{
						ID: appId, UID: 10, SchoolID: schoolId,
						CurrentStage: domain.StageScreening,
					}, nil)
				m.schoolSvc.EXPECT().IsAdmin(gomock.Any(), adminUid, schoolId).Return(true, nil)
				m.slotRepo.EXPECT().FindByApplicationId(gomock.Any(), appId).
					Return([]domain.AvailabilitySlot{{ID: 1}}, nil)
				m.itvRepo.EXPECT().FindLatest(gomock.Any(), appId).
					Return(domain.Interview{}, repository.ErrInterviewNotFound)
				m.appRepo.EXPECT().UpdateStage(gomock.Any(), appId,
					domain.StageInvitationSent, "主校区 3 号楼", []string{"王老师"}).Return(nil)
				m.notifSvc.EXPECT().Send(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, n notification.Notification) (int64, error) {
						assert.Equal(t, notification.TypeInterviewInvite, n.Type)
						assert.Equal(t, int64(10), n.UID)
						return 1, nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), event.StageChangedEvent{
					ApplicationID: appId,
					UID:           10,
					Stage:         domain.StageInvitationSent.String(),
				}).Return(nil)
			},
		},
		{
			name:     "改期重邀发改期通知",
			location: "线上会议室",
			setup: func(m interviewSvcMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{
						ID: appId, UID: 10, SchoolID: schoolId,
						CurrentStage: domain.StageInterview,
					}, nil)
				m.schoolSvc.EXPECT().IsAdmin(gomock.Any(), adminUid, schoolId).Return(true, nil)
				m.slotRepo.EXPECT().FindByApplicationId(gomock.Any(), appId).
					Return([]domain.AvailabilitySlot{{ID: 1}}, nil)
				m.itvRepo.EXPECT().FindLatest(gomock.Any(), appId).
					Return(domain.Interview{ID: 9, Status: domain.InterviewStatusScheduled}, nil)
				m.appRepo.EXPECT().UpdateStage(gomock.Any(), appId,
					domain.StageInvitationSent, "线上会议室", []string{"王老师"}).Return(nil)
				m.notifSvc.EXPECT().Send(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, n notification.Notification) (int64, error) {
						assert.Equal(t, notification.TypeInterviewReschedule, n.Type)
						return 2, nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:     "非管理员",
			location: "主校区",
			setup: func(m interviewSvcMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{ID: appId, SchoolID: schoolId}, nil)
				m.schoolSvc.EXPECT().IsAdmin(gomock.Any(), adminUid, schoolId).Return(false, nil)
			},
			wantErr: ErrNotAdmin,
		},
		{
			name:     "地点为空",
			location: "   ",
			setup: func(m interviewSvcMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{ID: appId, SchoolID: schoolId}, nil)
				m.schoolSvc.EXPECT().IsAdmin(gomock.Any(), adminUid, schoolId).Return(true, nil)
			},
			wantErr: ErrInvalidLocation,
		},
		{
			name:     "没有任何时段",
			location: "主校区",
			setup: func(m interviewSvcMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{
						ID: appId, SchoolID: schoolId,
						CurrentStage: domain.StageScreening,
					}, nil)
				m.schoolSvc.EXPECT().IsAdmin(gomock.Any(), adminUid, schoolId).Return(true, nil)
				m.slotRepo.EXPECT().FindByApplicationId(gomock.Any(), appId).Return(nil, nil)
			},
			wantErr: ErrNoAvailability,
		},
		{
			name:     "面试阶段但没有待进行的面试",
			location: "主校区",
			setup: func(m interviewSvcMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{
						ID: appId, SchoolID: schoolId,
						CurrentStage: domain.StageInterview,
					}, nil)
				m.schoolSvc.EXPECT().IsAdmin(gomock.Any(), adminUid, schoolId).Return(true, nil)
				m.slotRepo.EXPECT().FindByApplicationId(gomock.Any(), appId).
					Return([]domain.AvailabilitySlot{{ID: 1}}, nil)
				m.itvRepo.EXPECT().FindLatest(gomock.Any(), appId).
					Return(domain.Interview{ID: 9, Status: domain.InterviewStatusCompleted}, nil)
			},
			wantErr: ErrStageNotAllowed,
		},
		{
			name:     "offer阶段不允许再邀请",
			location: "主校区",
			setup: func(m interviewSvcMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{
						ID: appId, SchoolID: schoolId,
						CurrentStage: domain.StageOffer,
					}, nil)
				m.schoolSvc.EXPECT().IsAdmin(gomock.Any(), adminUid, schoolId).Return(true, nil)
				m.slotRepo.EXPECT().FindByApplicationId(gomock.Any(), appId).
					Return([]domain.AvailabilitySlot{{ID: 1}}, nil)
				m.itvRepo.EXPECT().FindLatest(gomock.Any(), appId).
					Return(domain.Interview{}, repository.ErrInterviewNotFound)
			},
			wantErr: ErrStageNotAllowed,
		},
		{
			name:     "通知失败不影响邀请",
			location: "主校区",
			setup: func(m interviewSvcMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{
						ID: appId, UID: 10, SchoolID: schoolId,
						CurrentStage: domain.StageScreening,
					}, nil)
				m.schoolSvc.EXPECT().IsAdmin(gomock.Any(), adminUid, schoolId).Return(true, nil)
				m.slotRepo.EXPECT().FindByApplicationId(gomock.Any(), appId).
					Return([]domain.AvailabilitySlot{{ID: 1}}, nil)
				m.itvRepo.EXPECT().FindLatest(gomock.Any(), appId).
					Return(domain.Interview{}, repository.ErrInterviewNotFound)
				m.appRepo.EXPECT().UpdateStage(gomock.Any(), appId,
					domain.StageInvitationSent, "主校区", []string{"王老师"}).Return(nil)
				m.notifSvc.EXPECT().Send(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("mock db error"))
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
					Return(errors.New("mock mq error"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newInterviewSvcMocks(ctrl)
			tc.setup(m)

			err := m.newSvc().SendInvite(t.Context(), adminUid, appId, tc.location, []string{"王老师"})
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestInterviewService_Confirm(t *testing.T) {
	const (
		uid   int64 = 10
		appId int64 = 100
	)

	testCases := []struct {
		name        string
		scheduledAt int64
		location    string
		setup       func(m interviewSvcMocks)
		wantId      int64
		wantErr     error
	}{
		{
			name:        "成功",
			scheduledAt: 1705305600000,
			location:    "主校区 3 号楼",
			setup: func(m interviewSvcMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{ID: appId, UID: uid, Version: 3}, nil)
				m.itvRepo.EXPECT().Confirm(gomock.Any(), domain.Interview{
					ApplicationID:    appId,
					InterviewerID:    uid,
					ScheduledAt:      1705305600000,
					Location:         "主校区 3 号楼",
					InterviewerNames: []string{"王老师"},
					Status:           domain.InterviewStatusScheduled,
				}, int64(3)).Return(int64(55), nil)
				m.notifSvc.EXPECT().Send(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, n notification.Notification) (int64, error) {
						assert.Equal(t, notification.TypeInterviewScheduled, n.Type)
						return 1, nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), event.StageChangedEvent{
					ApplicationID: appId,
					UID:           uid,
					Stage:         domain.StageInterview.String(),
				}).Return(nil)
			},
			wantId: 55,
		},
		{
			name:        "时间非法",
			scheduledAt: 0,
			location:    "主校区",
			setup: func(m interviewSvcMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{ID: appId, UID: uid}, nil)
			},
			wantErr: ErrInvalidSchedule,
		},
		{
			name:        "地点为空",
			scheduledAt: 1705305600000,
			location:    "",
			setup: func(m interviewSvcMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{ID: appId, UID: uid}, nil)
			},
			wantErr: ErrInvalidLocation,
		},
		{
			name:        "版本冲突",
			scheduledAt: 1705305600000,
			location:    "主校区",
			setup: func(m interviewSvcMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{ID: appId, UID: uid, Version: 3}, nil)
				m.itvRepo.EXPECT().Confirm(gomock.Any(), gomock.Any(), int64(3)).
					Return(int64(0), repository.ErrConcurrentModify)
			},
			wantErr: ErrConcurrentModify,
		},
		{
			name:        "通知失败不影响排期",
			scheduledAt: 1705305600000,
			location:    "主校区",
			setup: func(m interviewSvcMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{ID: appId, UID: uid, Version: 1}, nil)
				m.itvRepo.EXPECT().Confirm(gomock.Any(), gomock.Any(), int64(1)).
					Return(int64(56), nil)
				m.notifSvc.EXPECT().Send(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("mock db error"))
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantId: 56,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newInterviewSvcMocks(ctrl)
			tc.setup(m)

			id, err := m.newSvc().Confirm(t.Context(), uid, appId,
				tc.scheduledAt, tc.location, []string{"王老师"})
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantId, id)
		})
	}
}

func TestInterviewService_Reschedule(t *testing.T) {
	const (
		adminUid    int64 = 1
		appId       int64 = 100
		interviewId int64 = 55
		schoolId    int64 = 7
	)

	testCases := []struct {
		name     string
		location string
		setup    func(m interviewSvcMocks)
		wantErr  error
	}{
		{
			name:     "成功改写时间地点",
			location: "新校区",
			setup: func(m interviewSvcMocks) {
				m.itvRepo.EXPECT().FindById(gomock.Any(), interviewId).
					Return(domain.Interview{
						ID: interviewId, ApplicationID: appId,
						ScheduledAt: 1, Location: "旧校区",
						Status: domain.InterviewStatusScheduled,
					}, nil)
				m.appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{ID: appId, SchoolID: schoolId}, nil)
				m.schoolSvc.EXPECT().IsAdmin(gomock.Any(), adminUid, schoolId).Return(true, nil)
				m.itvRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, itv domain.Interview) error {
						assert.Equal(t, int64(1705305600000), itv.ScheduledAt)
						assert.Equal(t, "新校区", itv.Location)
						return nil
					})
			},
		},
		{
			name:     "地点留空则沿用原地点",
			location: "",
			setup: func(m interviewSvcMocks) {
				m.itvRepo.EXPECT().FindById(gomock.Any(), interviewId).
					Return(domain.Interview{
						ID: interviewId, ApplicationID: appId,
						Location: "旧校区",
					}, nil)
				m.appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{ID: appId, SchoolID: schoolId}, nil)
				m.schoolSvc.EXPECT().IsAdmin(gomock.Any(), adminUid, schoolId).Return(true, nil)
				m.itvRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, itv domain.Interview) error {
						assert.Equal(t, "旧校区", itv.Location)
						return nil
					})
			},
		},
		{
			name:     "面试不属于该投递",
			location: "新校区",
			setup: func(m interviewSvcMocks) {
				m.itvRepo.EXPECT().FindById(gomock.Any(), interviewId).
					Return(domain.Interview{ID: interviewId, ApplicationID: 999}, nil)
			},
			wantErr: repository.ErrInterviewNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newInterviewSvcMocks(ctrl)
			tc.setup(m)

			err := m.newSvc().Reschedule(t.Context(), adminUid, appId, interviewId,
				1705305600000, tc.location, nil)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestInterviewService_Cancel(t *testing.T) {
	const (
		adminUid    int64 = 1
		appId       int64 = 100
		interviewId int64 = 55
		schoolId    int64 = 7
	)

	testCases := []struct {
		name    string
		setup   func(m interviewSvcMocks)
		wantErr error
	}{
		{
			name: "还有其他面试则阶段不动",
			setup: func(m interviewSvcMocks) {
				m.itvRepo.EXPECT().FindById(gomock.Any(), interviewId).
					Return(domain.Interview{ID: interviewId, ApplicationID: appId}, nil)
				m.appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{
						ID: appId, SchoolID: schoolId,
						CurrentStage: domain.StageInterview,
					}, nil)
				m.schoolSvc.EXPECT().IsAdmin(gomock.Any(), adminUid, schoolId).Return(true, nil)
				m.itvRepo.EXPECT().Delete(gomock.Any(), interviewId).Return(nil)
				m.itvRepo.EXPECT().Count(gomock.Any(), appId).Return(int64(1), nil)
			},
		},
		{
			name: "最后一场取消阶段退回邀请已发",
			setup: func(m interviewSvcMocks) {
				m.itvRepo.EXPECT().FindById(gomock.Any(), interviewId).
					Return(domain.Interview{ID: interviewId, ApplicationID: appId}, nil)
				m.appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{
						ID: appId, SchoolID: schoolId,
						CurrentStage:      domain.StageInterview,
						InterviewLocation: "主校区",
						InterviewerNames:  []string{"王老师"},
					}, nil)
				m.schoolSvc.EXPECT().IsAdmin(gomock.Any(), adminUid, schoolId).Return(true, nil)
				m.itvRepo.EXPECT().Delete(gomock.Any(), interviewId).Return(nil)
				m.itvRepo.EXPECT().Count(gomock.Any(), appId).Return(int64(0), nil)
				m.appRepo.EXPECT().UpdateStage(gomock.Any(), appId,
					domain.StageInvitationSent, "主校区", []string{"王老师"}).Return(nil)
			},
		},
		{
			name: "非管理员",
			setup: func(m interviewSvcMocks) {
				m.itvRepo.EXPECT().FindById(gomock.Any(), interviewId).
					Return(domain.Interview{ID: interviewId, ApplicationID: appId}, nil)
				m.appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{ID: appId, SchoolID: schoolId}, nil)
				m.schoolSvc.EXPECT().IsAdmin(gomock.Any(), adminUid, schoolId).Return(false, nil)
			},
			wantErr: ErrNotAdmin,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newInterviewSvcMocks(ctrl)
			tc.setup(m)

			err := m.newSvc().Cancel(t.Context(), adminUid, appId, interviewId)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
