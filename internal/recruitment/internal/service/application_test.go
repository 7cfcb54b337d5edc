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

	"github.com/ecodeclub/schoolhire/internal/email"
	emailmocks "github.com/ecodeclub/schoolhire/internal/email/mocks"
	notificationmocks "github.com/ecodeclub/schoolhire/internal/notification/mocks"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/domain"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/event"
	evtmocks "github.com/ecodeclub/schoolhire/internal/recruitment/internal/event/mocks"
	repomocks "github.com/ecodeclub/schoolhire/internal/recruitment/internal/repository/mocks"
	"github.com/ecodeclub/schoolhire/internal/school"
	schoolmocks "github.com/ecodeclub/schoolhire/internal/school/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type appSvcMocks struct {
	appRepo    *repomocks.MockApplicationRepository
	postingSvc *schoolmocks.MockJobPostingService
	schoolSvc  *schoolmocks.MockSchoolService
	notifSvc   *notificationmocks.MockService
	emailSvc   *emailmocks.MockService
	producer   *evtmocks.MockStageEventProducer
}

func newAppSvcMocks(ctrl *gomock.Controller) appSvcMocks {
	return appSvcMocks{
		appRepo:    repomocks.NewMockApplicationRepository(ctrl),
		postingSvc: schoolmocks.NewMockJobPostingService(ctrl),
		schoolSvc:  schoolmocks.NewMockSchoolService(ctrl),
		notifSvc:   notificationmocks.NewMockService(ctrl),
		emailSvc:   emailmocks.NewMockService(ctrl),
		producer:   evtmocks.NewMockStageEventProducer(ctrl),
	}
}

func (m appSvcMocks) newSvc() ApplicationService {
	return NewApplicationService(m.appRepo, m.postingSvc, m.schoolSvc,
		m.notifSvc, m.emailSvc, m.producer)
}

func TestApplicationService_Apply(t *testing.T) {
	const (
		uid       int64 = 10
		postingId int64 = 200
		schoolId  int64 = 7
	)

	testCases := []struct {
		name    string
		setup   func(m appSvcMocks)
		wantId  int64
		wantErr error
	}{
		{
			name: "成功",
			setup: func(m appSvcMocks) {
				m.postingSvc.EXPECT().GetById(gomock.Any(), postingId).
					Return(school.JobPosting{
						ID: postingId, SchoolID: schoolId,
						Status: school.PostingStatusPublished,
					}, nil)
				m.appRepo.EXPECT().Create(gomock.Any(), domain.Application{
					UID:          uid,
					JobPostingID: postingId,
					SchoolID:     schoolId,
					ContactEmail: "tom@example.com",
					Status:       domain.StatusApplied,
					CurrentStage: domain.StageScreening,
				}).Return(int64(100), nil)
			},
			wantId: 100,
		},
		{
			name: "岗位未发布",
			setup: func(m appSvcMocks) {
				m.postingSvc.EXPECT().GetById(gomock.Any(), postingId).
					Return(school.JobPosting{
						ID: postingId, SchoolID: schoolId,
						Status: school.PostingStatusDraft,
					}, nil)
			},
			wantErr: ErrPostingNotOpen,
		},
		{
			name: "岗位已关闭",
			setup: func(m appSvcMocks) {
				m.postingSvc.EXPECT().GetById(gomock.Any(), postingId).
					Return(school.JobPosting{
						ID: postingId, SchoolID: schoolId,
						Status: school.PostingStatusClosed,
					}, nil)
			},
			wantErr: ErrPostingNotOpen,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newAppSvcMocks(ctrl)
			tc.setup(m)

			id, err := m.newSvc().Apply(t.Context(), uid, "tom@example.com", postingId)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantId, id)
		})
	}
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	const (
		candidateUid int64 = 10
		adminUid     int64 = 1
		appId        int64 = 100
		schoolId     int64 = 7
	)

	testCases := []struct {
		name     string
		actorUid int64
		status   domain.Status
		setup    func(m appSvcMocks)
		wantErr  error
	}{
		{
			// 自己撤回自己的投递，状态要改，但不会给自己发通知
			name:     "候选人撤回自己的投递",
			actorUid: candidateUid,
			status:   domain.StatusWithdrawn,
			setup: func(m appSvcMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{ID: appId, UID: candidateUid, SchoolID: schoolId}, nil)
				m.schoolSvc.EXPECT().IsAdmin(gomock.Any(), candidateUid, schoolId).Return(false, nil)
				m.appRepo.EXPECT().UpdateStatus(gomock.Any(), appId, domain.StatusWithdrawn).Return(nil)
			},
		},
		{
			name:     "候选人不能改成其他状态",
			actorUid: candidateUid,
			status:   domain.StatusOffer,
			setup: func(m appSvcMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{ID: appId, UID: candidateUid, SchoolID: schoolId}, nil)
				m.schoolSvc.EXPECT().IsAdmin(gomock.Any(), candidateUid, schoolId).Return(false, nil)
			},
			wantErr: ErrStatusForbidden,
		},
		{
			name:     "非本人也非管理员",
			actorUid: 99,
			status:   domain.StatusWithdrawn,
			setup: func(m appSvcMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{ID: appId, UID: candidateUid, SchoolID: schoolId}, nil)
				m.schoolSvc.EXPECT().IsAdmin(gomock.Any(), int64(99), schoolId).Return(false, nil)
			},
			wantErr: ErrStatusForbidden,
		},
		{
			name:     "未知状态",
			actorUid: adminUid,
			status:   domain.Status("NOT_A_STATUS"),
			setup:    func(m appSvcMocks) {},
			wantErr:  ErrInvalidStatus,
		},
		{
			name:     "管理员拒绝并发拒信",
			actorUid: adminUid,
			status:   domain.StatusRejected,
			setup: func(m appSvcMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{
						ID: appId, UID: candidateUid, SchoolID: schoolId,
						ContactEmail: "tom@example.com",
					}, nil)
				m.schoolSvc.EXPECT().IsAdmin(gomock.Any(), adminUid, schoolId).Return(true, nil)
				m.appRepo.EXPECT().UpdateStatus(gomock.Any(), appId, domain.StatusRejected).Return(nil)
				m.appRepo.EXPECT().UpdateStage(gomock.Any(), appId,
					domain.StageRejected, "", nil).Return(nil)
				m.emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, mail email.Mail) error {
						assert.Equal(t, "tom@example.com", mail.To)
						return nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), event.StageChangedEvent{
					ApplicationID: appId,
					UID:           candidateUid,
					Stage:         domain.StageRejected.String(),
				}).Return(nil)
				m.notifSvc.EXPECT().Send(gomock.Any(), gomock.Any()).Return(int64(1), nil)
			},
		},
		{
			name:     "拒信发送失败不影响拒绝",
			actorUid: adminUid,
			status:   domain.StatusRejected,
			setup: func(m appSvcMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{
						ID: appId, UID: candidateUid, SchoolID: schoolId,
						ContactEmail: "tom@example.com",
					}, nil)
				m.schoolSvc.EXPECT().IsAdmin(gomock.Any(), adminUid, schoolId).Return(true, nil)
				m.appRepo.EXPECT().UpdateStatus(gomock.Any(), appId, domain.StatusRejected).Return(nil)
				m.appRepo.EXPECT().UpdateStage(gomock.Any(), appId,
					domain.StageRejected, "", nil).Return(nil)
				m.emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).
					Return(errors.New("mock smtp error"))
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
				m.notifSvc.EXPECT().Send(gomock.Any(), gomock.Any()).Return(int64(1), nil)
			},
		},
		{
			name:     "没留邮箱就不发拒信",
			actorUid: adminUid,
			status:   domain.StatusRejected,
			setup: func(m appSvcMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{ID: appId, UID: candidateUid, SchoolID: schoolId}, nil)
				m.schoolSvc.EXPECT().IsAdmin(gomock.Any(), adminUid, schoolId).Return(true, nil)
				m.appRepo.EXPECT().UpdateStatus(gomock.Any(), appId, domain.StatusRejected).Return(nil)
				m.appRepo.EXPECT().UpdateStage(gomock.Any(), appId,
					domain.StageRejected, "", nil).Return(nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
				m.notifSvc.EXPECT().Send(gomock.Any(), gomock.Any()).Return(int64(1), nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newAppSvcMocks(ctrl)
			tc.setup(m)

			err := m.newSvc().UpdateStatus(t.Context(), tc.actorUid, appId, tc.status)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
