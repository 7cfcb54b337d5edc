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
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/schoolhire/internal/notification"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/domain"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/event"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/repository"
	"github.com/ecodeclub/schoolhire/internal/school"
	"github.com/gotomicro/ego/core/elog"
)

var (
	// ErrNotCandidate 只有投递的候选人本人能回应 offer
	ErrNotCandidate = errors.New("不是投递的候选人")
	// ErrInvalidLetterUrl offer letter 地址不能为空
	ErrInvalidLetterUrl = errors.New("offer letter 地址不能为空")
	// ErrInvalidOfferResponse 回应只能是接受或拒绝
	ErrInvalidOfferResponse = errors.New("非法的 offer 回应")
	// ErrOfferAlreadyResponded 每个 offer 只接受一次回应
	ErrOfferAlreadyResponded = errors.New("offer 已被回应")
)

type OfferService interface {
	Send(ctx context.Context, adminUid, appId int64, letterUrl string) (int64, error)
	// Respond 候选人接受或拒绝 offer，并广播给学校全部管理员
	Respond(ctx context.Context, uid, offerId int64, response domain.OfferStatus) error
	GetByApplicationId(ctx context.Context, appId int64) (domain.Offer, error)
}

type offerService struct {
	offerRepo repository.OfferRepository
	appRepo   repository.ApplicationRepository
	schoolSvc school.Service
	notifSvc  notification.Service
	producer  event.StageEventProducer
	logger    *elog.Component
}

func NewOfferService(offerRepo repository.OfferRepository,
	appRepo repository.ApplicationRepository,
	schoolSvc school.Service,
	notifSvc notification.Service,
	producer event.StageEventProducer) OfferService {
	return &offerService{
		offerRepo: offerRepo,
		appRepo:   appRepo,
		schoolSvc: schoolSvc,
		notifSvc:  notifSvc,
		producer:  producer,
		logger:    elog.DefaultLogger,
	}
}

func (s *offerService) Send(ctx context.Context, adminUid, appId int64, letterUrl string) (int64, error) {
	app, err := s.appRepo.FindById(ctx, appId)
	if err != nil {
		return 0, err
	}
	ok, err := s.schoolSvc.IsAdmin(ctx, adminUid, app.SchoolID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrNotAdmin
	}
	if strings.TrimSpace(letterUrl) == "" {
		return 0, ErrInvalidLetterUrl
	}
	id, err := s.offerRepo.Create(ctx, domain.Offer{
		ApplicationID: appId,
		LetterURL:     letterUrl,
		Status:        domain.OfferStatusPending,
	})
	if err != nil {
		return 0, err
	}
	if err = s.appRepo.UpdateStatus(ctx, appId, domain.StatusOffer); err != nil {
		return 0, err
	}
	err = s.appRepo.UpdateStage(ctx, appId, domain.StageOffer,
		app.InterviewLocation, app.InterviewerNames)
	if err != nil {
		return 0, err
	}
	s.notify(ctx, notification.Notification{
		UID:     app.UID,
		Type:    notification.TypeOfferSent,
		Title:   "收到 Offer",
		Message: "学校向你发出了 offer，请查看并回应",
		URL:     fmt.Sprintf("/applications/%d", appId),
	})
	s.produceStageEvent(ctx, app, domain.StageOffer)
	return id, nil
}

func (s *offerService) Respond(ctx context.Context, uid, offerId int64, response domain.OfferStatus) error {
	if response != domain.OfferStatusAccepted && response != domain.OfferStatusRejected {
		return ErrInvalidOfferResponse
	}
	offer, err := s.offerRepo.FindById(ctx, offerId)
	if err != nil {
		return err
	}
	app, err := s.appRepo.FindById(ctx, offer.ApplicationID)
	if err != nil {
		return err
	}
	if app.UID != uid {
		return ErrNotCandidate
	}
	if offer.Status != domain.OfferStatusPending {
		return ErrOfferAlreadyResponded
	}
	err = s.offerRepo.UpdateResponse(ctx, offerId, response, time.Now().UnixMilli())
	if err != nil {
		return err
	}
	s.notifyAdmins(ctx, app, response)
	return nil
}

func (s *offerService) GetByApplicationId(ctx context.Context, appId int64) (domain.Offer, error) {
	return s.offerRepo.FindByApplicationId(ctx, appId)
}

// notifyAdmins 广播给学校全部管理员。成员关系实时查，不缓存。
func (s *offerService) notifyAdmins(ctx context.Context, app domain.Application, response domain.OfferStatus) {
	uids, err := s.schoolSvc.AdminUids(ctx, app.SchoolID)
	if err != nil {
		s.logger.Error("查询学校管理员失败",
			elog.FieldErr(err),
			elog.Int64("schoolId", app.SchoolID))
		return
	}
	action := "接受"
	if response == domain.OfferStatusRejected {
		action = "拒绝"
	}
	ns := slice.Map(uids, func(_ int, uid int64) notification.Notification {
		return notification.Notification{
			UID:     uid,
			Type:    notification.TypeOfferResponded,
			Title:   "候选人回应了 offer",
			Message: fmt.Sprintf("候选人%s了 offer", action),
			URL:     fmt.Sprintf("/applications/%d", app.ID),
		}
	})
	if err = s.notifSvc.SendMany(ctx, ns); err != nil {
		s.logger.Error("广播 offer 回应通知失败",
			elog.FieldErr(err),
			elog.Int64("appId", app.ID))
	}
}

func (s *offerService) notify(ctx context.Context, n notification.Notification) {
	if _, err := s.notifSvc.Send(ctx, n); err != nil {
		s.logger.Error("发送站内通知失败",
			elog.FieldErr(err),
			elog.Int64("uid", n.UID))
	}
}

func (s *offerService) produceStageEvent(ctx context.Context, app domain.Application, stage domain.Stage) {
	err := s.producer.Produce(ctx, event.StageChangedEvent{
		ApplicationID: app.ID,
		UID:           app.UID,
		Stage:         stage.String(),
	})
	if err != nil {
		s.logger.Error("发送阶段变更事件失败",
			elog.FieldErr(err),
			elog.Int64("appId", app.ID))
	}
}
