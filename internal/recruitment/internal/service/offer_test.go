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
	repomocks "github.com/ecodeclub/schoolhire/internal/recruitment/internal/repository/mocks"
	schoolmocks "github.com/ecodeclub/schoolhire/internal/school/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type offerSvcMocks struct {
	offerRepo *repomocks.MockOfferRepository
	appRepo   *repomocks.MockApplicationRepository
	schoolSvc *schoolmocks.MockSchoolService
	notifSvc  *notificationmocks.MockService
	producer  *evtmocks.MockStageEventProducer
}

func newOfferSvcMocks(ctrl *gomock.Controller) offerSvcMocks {
	return offerSvcMocks{
		offerRepo: repomocks.NewMockOfferRepository(ctrl),
		appRepo:   repomocks.NewMockApplicationRepository(ctrl),
		schoolSvc: schoolmocks.NewMockSchoolService(ctrl),
		notifSvc:  notificationmocks.NewMockService(ctrl),
		producer:  evtmocks.NewMockStageEventProducer(ctrl),
	}
}

func (m offerSvcMocks) newSvc() OfferService {
	return NewOfferService(m.offerRepo, m.appRepo, m.schoolSvc, m.notifSvc, m.producer)
}

func TestOfferService_Send(t *testing.T) {
	const (
		adminUid int64 = 1
		appId    int64 = 100
		schoolId int64 = 7
	)

	testCases := []struct {
		name      string
		letterUrl string
		setup     func(m offerSvcMocks)
		wantId    int64
		wantErr   error
	}{
		{
			name:      "成功",
			letterUrl: "https://oss.example.com/offer/100.pdf",
			setup: func(m offerSvcMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{
						ID: appId, UID: 10, SchoolID: schoolId,
						CurrentStage:      domain.StageInterview,
						InterviewLocation: "主校区",
						InterviewerNames:  []string{"王老师"},
					}, nil)
				m.schoolSvc.EXPECT().IsAdmin(gomock.Any(), adminUid, schoolId).Return(true, nil)
				m.offerRepo.EXPECT().Create(gomock.Any(), domain.Offer{
					ApplicationID: appId,
					LetterURL:     "https://oss.example.com/offer/100.pdf",
					Status:        domain.OfferStatusPending,
				}).Return(int64(33), nil)
				m.appRepo.EXPECT().UpdateStatus(gomock.Any(), appId, domain.StatusOffer).Return(nil)
				m.appRepo.EXPECT().UpdateStage(gomock.Any(), appId,
					domain.StageOffer, "主校区", []string{"王老师"}).Return(nil)
				m.notifSvc.EXPECT().Send(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, n notification.Notification) (int64, error) {
						assert.Equal(t, notification.TypeOfferSent, n.Type)
						assert.Equal(t, int64(10), n.UID)
						return 1, nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), event.StageChangedEvent{
					ApplicationID: appId,
					UID:           10,
					Stage:         domain.StageOffer.String(),
				}).Return(nil)
			},
			wantId: 33,
		},
		{
			name:      "非管理员",
			letterUrl: "https://oss.example.com/offer/100.pdf",
			setup: func(m offerSvcMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{ID: appId, SchoolID: schoolId}, nil)
				m.schoolSvc.EXPECT().IsAdmin(gomock.Any(), adminUid, schoolId).Return(false, nil)
			},
			wantErr: ErrNotAdmin,
		},
		{
			name:      "letter地址为空",
			letterUrl: "  ",
			setup: func(m offerSvcMocks) {
				m.appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{ID: appId, SchoolID: schoolId}, nil)
				m.schoolSvc.EXPECT().IsAdmin(gomock.Any(), adminUid, schoolId).Return(true, nil)
			},
			wantErr: ErrInvalidLetterUrl,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newOfferSvcMocks(ctrl)
			tc.setup(m)

			id, err := m.newSvc().Send(t.Context(), adminUid, appId, tc.letterUrl)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantId, id)
		})
	}
}

func TestOfferService_Respond(t *testing.T) {
	const (
		uid      int64 = 10
		offerId  int64 = 33
		appId    int64 = 100
		schoolId int64 = 7
	)

	testCases := []struct {
		name     string
		response domain.OfferStatus
		setup    func(m offerSvcMocks)
		wantErr  error
	}{
		{
			name:     "接受并广播全部管理员",
			response: domain.OfferStatusAccepted,
			setup: func(m offerSvcMocks) {
				m.offerRepo.EXPECT().FindById(gomock.Any(), offerId).
					Return(domain.Offer{ID: offerId, ApplicationID: appId,
						Status: domain.OfferStatusPending}, nil)
				m.appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{ID: appId, UID: uid, SchoolID: schoolId}, nil)
				m.offerRepo.EXPECT().UpdateResponse(gomock.Any(), offerId,
					domain.OfferStatusAccepted, gomock.Any()).Return(nil)
				m.schoolSvc.EXPECT().AdminUids(gomock.Any(), schoolId).
					Return([]int64{1, 2}, nil)
				m.notifSvc.EXPECT().SendMany(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, ns []notification.Notification) error {
						assert.Len(t, ns, 2)
						assert.Equal(t, int64(1), ns[0].UID)
						assert.Equal(t, int64(2), ns[1].UID)
						assert.Equal(t, notification.TypeOfferResponded, ns[0].Type)
						return nil
					})
			},
		},
		{
			name:     "非候选人本人",
			response: domain.OfferStatusRejected,
			setup: func(m offerSvcMocks) {
				m.offerRepo.EXPECT().FindById(gomock.Any(), offerId).
					Return(domain.Offer{ID: offerId, ApplicationID: appId}, nil)
				m.appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{ID: appId, UID: 99, SchoolID: schoolId}, nil)
			},
			wantErr: ErrNotCandidate,
		},
		{
			name:     "回应只能是接受或拒绝",
			response: domain.OfferStatusPending,
			setup:    func(m offerSvcMocks) {},
			wantErr:  ErrInvalidOfferResponse,
		},
		{
			// 已接受的 offer 不能再改口，也不会重复广播
			name:     "已回应过的不能再回应",
			response: domain.OfferStatusRejected,
			setup: func(m offerSvcMocks) {
				m.offerRepo.EXPECT().FindById(gomock.Any(), offerId).
					Return(domain.Offer{ID: offerId, ApplicationID: appId,
						Status: domain.OfferStatusAccepted, ResponseAt: 111}, nil)
				m.appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{ID: appId, UID: uid, SchoolID: schoolId}, nil)
			},
			wantErr: ErrOfferAlreadyResponded,
		},
		{
			name:     "广播失败不影响回应",
			response: domain.OfferStatusRejected,
			setup: func(m offerSvcMocks) {
				m.offerRepo.EXPECT().FindById(gomock.Any(), offerId).
					Return(domain.Offer{ID: offerId, ApplicationID: appId,
						Status: domain.OfferStatusPending}, nil)
				m.appRepo.EXPECT().FindById(gomock.Any(), appId).
					Return(domain.Application{ID: appId, UID: uid, SchoolID: schoolId}, nil)
				m.offerRepo.EXPECT().UpdateResponse(gomock.Any(), offerId,
					domain.OfferStatusRejected, gomock.Any()).Return(nil)
				m.schoolSvc.EXPECT().AdminUids(gomock.Any(), schoolId).
					Return(nil, errors.New("mock db error"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newOfferSvcMocks(ctrl)
			tc.setup(m)

			err := m.newSvc().Respond(t.Context(), uid, offerId, tc.response)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
