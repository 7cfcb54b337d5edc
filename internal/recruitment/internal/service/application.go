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

	"github.com/ecodeclub/schoolhire/internal/email"
	"github.com/ecodeclub/schoolhire/internal/notification"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/domain"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/event"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/repository"
	"github.com/ecodeclub/schoolhire/internal/school"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrInvalidStatus 未知的目标状态
	ErrInvalidStatus = errors.New("非法的投递状态")
	// ErrStatusForbidden 候选人只能撤回自己的投递，其余状态变更都是管理员的事
	ErrStatusForbidden = errors.New("无权修改该投递状态")
	// ErrPostingNotOpen 岗位未发布，不接受投递
	ErrPostingNotOpen = errors.New("岗位未发布")
)

type ApplicationService interface {
	Get(ctx context.Context, id int64) (domain.Application, error)
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Application, int64, error)
	Apply(ctx context.Context, uid int64, contactEmail string, postingId int64) (int64, error)
	// UpdateStatus 管理员可以改成任何状态；候选人只能把自己的投递改成 WITHDRAWN。
	// 改成 REJECTED 时阶段一并置为 REJECTED，并尽力发一封拒信邮件。
	UpdateStatus(ctx context.Context, actorUid, appId int64, status domain.Status) error
}

type applicationService struct {
	appRepo    repository.ApplicationRepository
	postingSvc school.JobPostingService
	schoolSvc  school.Service
	notifSvc   notification.Service
	emailSvc   email.Service
	producer   event.StageEventProducer
	logger     *elog.Component
}

func NewApplicationService(appRepo repository.ApplicationRepository,
	postingSvc school.JobPostingService,
	schoolSvc school.Service,
	notifSvc notification.Service,
	emailSvc email.Service,
	producer event.StageEventProducer) ApplicationService {
	return &applicationService{
		appRepo:    appRepo,
		postingSvc: postingSvc,
		schoolSvc:  schoolSvc,
		notifSvc:   notifSvc,
		emailSvc:   emailSvc,
		producer:   producer,
		logger:     elog.DefaultLogger,
	}
}

func (s *applicationService) Get(ctx context.Context, id int64) (domain.Application, error) {
	return s.appRepo.FindById(ctx, id)
}

func (s *applicationService) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Application, int64, error) {
	var (
		apps  []domain.Application
		total int64
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		apps, err = s.appRepo.FindByUid(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.appRepo.CountByUid(ctx, uid)
		return err
	})
	return apps, total, eg.Wait()
}

func (s *applicationService) Apply(ctx context.Context, uid int64, contactEmail string, postingId int64) (int64, error) {
	posting, err := s.postingSvc.GetById(ctx, postingId)
	if err != nil {
		return 0, err
	}
	if posting.Status != school.PostingStatusPublished {
		return 0, ErrPostingNotOpen
	}
	return s.appRepo.Create(ctx, domain.Application{
		UID:          uid,
		JobPostingID: postingId,
		SchoolID:     posting.SchoolID,
		ContactEmail: contactEmail,
		Status:       domain.StatusApplied,
		CurrentStage: domain.StageScreening,
	})
}

func (s *applicationService) UpdateStatus(ctx context.Context, actorUid, appId int64, status domain.Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	app, err := s.appRepo.FindById(ctx, appId)
	if err != nil {
		return err
	}
	isAdmin, err := s.schoolSvc.IsAdmin(ctx, actorUid, app.SchoolID)
	if err != nil {
		return err
	}
	if !isAdmin && (actorUid != app.UID || status != domain.StatusWithdrawn) {
		return ErrStatusForbidden
	}
	if err = s.appRepo.UpdateStatus(ctx, appId, status); err != nil {
		return err
	}
	if status == domain.StatusRejected {
		err = s.appRepo.UpdateStage(ctx, appId, domain.StageRejected,
			app.InterviewLocation, app.InterviewerNames)
		if err != nil {
			return err
		}
		s.sendRejectionMail(ctx, app)
		s.produceStageEvent(ctx, app, domain.StageRejected)
	}
	// 候选人自己撤回就不用再通知自己了
	if actorUid != app.UID {
		s.notify(ctx, notification.Notification{
			UID:     app.UID,
			Type:    notification.TypeStatusChanged,
			Title:   "投递状态更新",
			Message: fmt.Sprintf("你的投递状态变更为 %s", status),
			URL:     fmt.Sprintf("/applications/%d", appId),
		})
	}
	return nil
}

// sendRejectionMail 拒信是 best-effort，发送失败只记日志
func (s *applicationService) sendRejectionMail(ctx context.Context, app domain.Application) {
	if app.ContactEmail == "" {
		return
	}
	err := s.emailSvc.SendMail(ctx, email.Mail{
		To:      app.ContactEmail,
		Subject: "关于你的投递结果",
		Body:    []byte("很遗憾，你投递的岗位未能继续推进。感谢你的关注，欢迎继续投递其他岗位。"),
	})
	if err != nil {
		s.logger.Error("发送拒信邮件失败",
			elog.FieldErr(err),
			elog.Int64("appId", app.ID))
	}
}

func (s *applicationService) notify(ctx context.Context, n notification.Notification) {
	if _, err := s.notifSvc.Send(ctx, n); err != nil {
		s.logger.Error("发送站内通知失败",
			elog.FieldErr(err),
			elog.Int64("uid", n.UID))
	}
}

func (s *applicationService) produceStageEvent(ctx context.Context, app domain.Application, stage domain.Stage) {
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
