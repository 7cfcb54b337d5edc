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

	"github.com/ecodeclub/schoolhire/internal/notification"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/domain"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/event"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/repository"
	"github.com/ecodeclub/schoolhire/internal/school"
	"github.com/gotomicro/ego/core/elog"
)

var (
	// ErrNotAdmin 操作人不是投递所属学校的管理员
	ErrNotAdmin = errors.New("不是学校管理员")
	// ErrNoAvailability 双方都没提交任何可面试时段，发不了邀请
	ErrNoAvailability = errors.New("没有任何可面试时段")
	// ErrInvalidLocation 面试地点不能为空
	ErrInvalidLocation = errors.New("面试地点不能为空")
	// ErrInvalidSchedule 面试时间非法
	ErrInvalidSchedule = errors.New("非法的面试时间")
	// ErrStageNotAllowed 当前阶段不允许该操作，阶段只进不退
	ErrStageNotAllowed = errors.New("当前阶段不允许该操作")
	// ErrConcurrentModify 两个确认请求撞到一起，后到的失败
	ErrConcurrentModify = repository.ErrConcurrentModify
)

type InterviewService interface {
	// SendInvite 向候选人发出（或重发）面试邀请。
	// 要求至少存在一个可面试时段；最近一场面试还是 SCHEDULED 时视为改期重邀。
	SendInvite(ctx context.Context, adminUid, appId int64,
		location string, interviewerNames []string) error
	// Confirm 敲定一个具体时间。建面试、推进投递、清空全部时段在一个事务里完成。
	Confirm(ctx context.Context, uid, appId int64,
		scheduledAt int64, location string, interviewerNames []string) (int64, error)
	// Reschedule 原地改写既有面试的时间地点，不新增轮次
	Reschedule(ctx context.Context, adminUid, appId, interviewId int64,
		scheduledAt int64, location string, interviewerNames []string) error
	Cancel(ctx context.Context, adminUid, appId, interviewId int64) error
	List(ctx context.Context, appId int64) ([]domain.Interview, error)
}

type interviewService struct {
	appRepo   repository.ApplicationRepository
	itvRepo   repository.InterviewRepository
	slotRepo  repository.AvailabilityRepository
	schoolSvc school.Service
	notifSvc  notification.Service
	producer  event.StageEventProducer
	logger    *elog.Component
}

func NewInterviewService(appRepo repository.ApplicationRepository,
	itvRepo repository.InterviewRepository,
	slotRepo repository.AvailabilityRepository,
	schoolSvc school.Service,
	notifSvc notification.Service,
	producer event.StageEventProducer) InterviewService {
	return &interviewService{
		appRepo:   appRepo,
		itvRepo:   itvRepo,
		slotRepo:  slotRepo,
		schoolSvc: schoolSvc,
		notifSvc:  notifSvc,
		producer:  producer,
		logger:    elog.DefaultLogger,
	}
}

func (s *interviewService) SendInvite(ctx context.Context, adminUid, appId int64,
	location string, interviewerNames []string) error {
	app, err := s.appRepo.FindById(ctx, appId)
	if err != nil {
		return err
	}
	if err = s.requireAdmin(ctx, adminUid, app.SchoolID); err != nil {
		return err
	}
	if strings.TrimSpace(location) == "" {
		return ErrInvalidLocation
	}
	slots, err := s.slotRepo.FindByApplicationId(ctx, appId)
	if err != nil {
		return err
	}
	if len(slots) == 0 {
		return ErrNoAvailability
	}
	isReschedule, err := s.hasPendingInterview(ctx, appId)
	if err != nil {
		return err
	}
	switch app.CurrentStage {
	case domain.StageScreening, domain.StageInvitationSent:
	case domain.StageInterview:
		// 改期回环：只有最近一场面试还没进行时才允许重发邀请
		if !isReschedule {
			return ErrStageNotAllowed
		}
	default:
		return ErrStageNotAllowed
	}
	err = s.appRepo.UpdateStage(ctx, appId, domain.StageInvitationSent, location, interviewerNames)
	if err != nil {
		return err
	}
	s.notify(ctx, s.inviteNotification(app, location, isReschedule))
	s.produceStageEvent(ctx, app, domain.StageInvitationSent)
	return nil
}

func (s *interviewService) Confirm(ctx context.Context, uid, appId int64,
	scheduledAt int64, location string, interviewerNames []string) (int64, error) {
	app, err := s.appRepo.FindById(ctx, appId)
	if err != nil {
		return 0, err
	}
	if scheduledAt <= 0 {
		return 0, ErrInvalidSchedule
	}
	if strings.TrimSpace(location) == "" {
		return 0, ErrInvalidLocation
	}
	id, err := s.itvRepo.Confirm(ctx, domain.Interview{
		ApplicationID:    appId,
		InterviewerID:    uid,
		ScheduledAt:      scheduledAt,
		Location:         location,
		InterviewerNames: interviewerNames,
		Status:           domain.InterviewStatusScheduled,
	}, app.Version)
	if err != nil {
		return 0, err
	}
	when := time.UnixMilli(scheduledAt).Format("2006-01-02 15:04")
	s.notify(ctx, notification.Notification{
		UID:     app.UID,
		Type:    notification.TypeInterviewScheduled,
		Title:   "面试已排期",
		Message: fmt.Sprintf("你的面试定在 %s，地点：%s", when, location),
		URL:     fmt.Sprintf("/applications/%d", appId),
	})
	s.produceStageEvent(ctx, app, domain.StageInterview)
	return id, nil
}

func (s *interviewService) Reschedule(ctx context.Context, adminUid, appId, interviewId int64,
	scheduledAt int64, location string, interviewerNames []string) error {
	itv, app, err := s.findOwned(ctx, appId, interviewId)
	if err != nil {
		return err
	}
	if err = s.requireAdmin(ctx, adminUid, app.SchoolID); err != nil {
		return err
	}
	if scheduledAt <= 0 {
		return ErrInvalidSchedule
	}
	itv.ScheduledAt = scheduledAt
	if strings.TrimSpace(location) != "" {
		itv.Location = location
	}
	if len(interviewerNames) > 0 {
		itv.InterviewerNames = interviewerNames
	}
	return s.itvRepo.Update(ctx, itv)
}

func (s *interviewService) Cancel(ctx context.Context, adminUid, appId, interviewId int64) error {
	_, app, err := s.findOwned(ctx, appId, interviewId)
	if err != nil {
		return err
	}
	if err = s.requireAdmin(ctx, adminUid, app.SchoolID); err != nil {
		return err
	}
	if err = s.itvRepo.Delete(ctx, interviewId); err != nil {
		return err
	}
	remaining, err := s.itvRepo.Count(ctx, appId)
	if err != nil {
		return err
	}
	// 最后一场面试被取消，阶段退回邀请已发，不能停在 INTERVIEW 却没有面试
	if remaining == 0 && app.CurrentStage == domain.StageInterview {
		return s.appRepo.UpdateStage(ctx, appId, domain.StageInvitationSent,
			app.InterviewLocation, app.InterviewerNames)
	}
	return nil
}

func (s *interviewService) List(ctx context.Context, appId int64) ([]domain.Interview, error) {
	return s.itvRepo.FindByApplicationId(ctx, appId)
}

func (s *interviewService) findOwned(ctx context.Context, appId, interviewId int64) (domain.Interview, domain.Application, error) {
	itv, err := s.itvRepo.FindById(ctx, interviewId)
	if err != nil {
		return domain.Interview{}, domain.Application{}, err
	}
	if itv.ApplicationID != appId {
		return domain.Interview{}, domain.Application{}, repository.ErrInterviewNotFound
	}
	app, err := s.appRepo.FindById(ctx, appId)
	if err != nil {
		return domain.Interview{}, domain.Application{}, err
	}
	return itv, app, nil
}

func (s *interviewService) requireAdmin(ctx context.Context, uid, schoolId int64) error {
	ok, err := s.schoolSvc.IsAdmin(ctx, uid, schoolId)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotAdmin
	}
	return nil
}

func (s *interviewService) hasPendingInterview(ctx context.Context, appId int64) (bool, error) {
	latest, err := s.itvRepo.FindLatest(ctx, appId)
	if errors.Is(err, repository.ErrInterviewNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return latest.Status == domain.InterviewStatusScheduled, nil
}

func (s *interviewService) inviteNotification(app domain.Application,
	location string, isReschedule bool) notification.Notification {
	n := notification.Notification{
		UID:  app.UID,
		Type: notification.TypeInterviewInvite,
		URL:  fmt.Sprintf("/applications/%d", app.ID),
	}
	if isReschedule {
		n.Type = notification.TypeInterviewReschedule
		n.Title = "面试改期请求"
		n.Message = fmt.Sprintf("学校希望重新约定面试时间，地点：%s，请更新你的可面试时段", location)
	} else {
		n.Title = "面试邀请"
		n.Message = fmt.Sprintf("你收到了一个面试邀请，地点：%s，请确认你的可面试时段", location)
	}
	return n
}

// notify 通知是 best-effort，落库失败只记日志，不影响主流程
func (s *interviewService) notify(ctx context.Context, n notification.Notification) {
	if _, err := s.notifSvc.Send(ctx, n); err != nil {
		s.logger.Error("发送站内通知失败",
			elog.FieldErr(err),
			elog.Int64("uid", n.UID))
	}
}

func (s *interviewService) produceStageEvent(ctx context.Context, app domain.Application, stage domain.Stage) {
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
