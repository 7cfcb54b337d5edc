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

package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/repository"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &AdminHandler{}

// AdminHandler 学校侧的面试和 offer 操作入口。
// 是否是归属学校的管理员由服务层校验。
type AdminHandler struct {
	itvSvc   service.InterviewService
	offerSvc service.OfferService
}

func NewAdminHandler(itvSvc service.InterviewService, offerSvc service.OfferService) *AdminHandler {
	return &AdminHandler{
		itvSvc:   itvSvc,
		offerSvc: offerSvc,
	}
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/interview")
	g.POST("/invite", ginx.BS[InviteReq](h.Invite))
	g.POST("/reschedule", ginx.BS[RescheduleReq](h.Reschedule))
	g.POST("/cancel", ginx.BS[CancelReq](h.Cancel))

	server.POST("/offer/send", ginx.BS[SendOfferReq](h.SendOffer))
}

func (h *AdminHandler) Invite(ctx *ginx.Context, req InviteReq, sess session.Session) (ginx.Result, error) {
	err := h.itvSvc.SendInvite(ctx, sess.Claims().Uid, req.ApplicationID,
		req.Location, req.InterviewerNames)
	switch {
	case errors.Is(err, service.ErrNotAdmin):
		return forbiddenResult, nil
	case errors.Is(err, repository.ErrApplicationNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrInvalidLocation):
		return invalidInputResult, nil
	case errors.Is(err, service.ErrNoAvailability):
		return noAvailabilityResult, nil
	case errors.Is(err, service.ErrStageNotAllowed):
		return stageNotAllowedResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) Reschedule(ctx *ginx.Context, req RescheduleReq, sess session.Session) (ginx.Result, error) {
	err := h.itvSvc.Reschedule(ctx, sess.Claims().Uid, req.ApplicationID, req.InterviewID,
		req.ScheduledAt, req.Location, req.InterviewerNames)
	switch {
	case errors.Is(err, service.ErrNotAdmin):
		return forbiddenResult, nil
	case errors.Is(err, repository.ErrInterviewNotFound),
		errors.Is(err, repository.ErrApplicationNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrInvalidSchedule):
		return invalidInputResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) Cancel(ctx *ginx.Context, req CancelReq, sess session.Session) (ginx.Result, error) {
	err := h.itvSvc.Cancel(ctx, sess.Claims().Uid, req.ApplicationID, req.InterviewID)
	switch {
	case errors.Is(err, service.ErrNotAdmin):
		return forbiddenResult, nil
	case errors.Is(err, repository.ErrInterviewNotFound),
		errors.Is(err, repository.ErrApplicationNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) SendOffer(ctx *ginx.Context, req SendOfferReq, sess session.Session) (ginx.Result, error) {
	id, err := h.offerSvc.Send(ctx, sess.Claims().Uid, req.ApplicationID, req.LetterURL)
	switch {
	case errors.Is(err, service.ErrNotAdmin):
		return forbiddenResult, nil
	case errors.Is(err, repository.ErrApplicationNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrInvalidLetterUrl):
		return invalidInputResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}
