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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/domain"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/repository"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

// Handler 候选人和面试官共用的登录态入口。
// 谁能做什么由服务层裁决，这里只负责取身份和翻译错误。
type Handler struct {
	availSvc service.AvailabilityService
	matchSvc service.MatchService
	itvSvc   service.InterviewService
	offerSvc service.OfferService
	appSvc   service.ApplicationService
}

func NewHandler(availSvc service.AvailabilityService,
	matchSvc service.MatchService,
	itvSvc service.InterviewService,
	offerSvc service.OfferService,
	appSvc service.ApplicationService) *Handler {
	return &Handler{
		availSvc: availSvc,
		matchSvc: matchSvc,
		itvSvc:   itvSvc,
		offerSvc: offerSvc,
		appSvc:   appSvc,
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	a := server.Group("/availability")
	a.POST("/list", ginx.B[AppIDReq](h.ListSlots))
	a.POST("/save", ginx.BS[SaveSlotReq](h.SaveSlot))
	a.POST("/delete", ginx.BS[IDReq](h.DeleteSlot))

	server.POST("/match/list", ginx.B[AppIDReq](h.Matches))

	server.POST("/interview/confirm", ginx.BS[ConfirmReq](h.ConfirmInterview))
	server.POST("/interview/list", ginx.B[AppIDReq](h.ListInterviews))

	server.POST("/offer/respond", ginx.BS[RespondOfferReq](h.RespondOffer))
	server.POST("/offer/detail", ginx.B[AppIDReq](h.OfferDetail))

	app := server.Group("/application")
	app.POST("/detail", ginx.B[IDReq](h.Detail))
	app.POST("/list", ginx.BS[ListReq](h.List))
	app.POST("/apply", ginx.BS[ApplyReq](h.Apply))
	app.POST("/update-status", ginx.BS[UpdateStatusReq](h.UpdateStatus))
}

func (h *Handler) ListSlots(ctx *ginx.Context, req AppIDReq) (ginx.Result, error) {
	slots, err := h.availSvc.List(ctx, req.ApplicationID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(slots, func(_ int, src domain.AvailabilitySlot) Slot {
			return newSlot(src)
		}),
	}, nil
}

func (h *Handler) SaveSlot(ctx *ginx.Context, req SaveSlotReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	if req.ID > 0 {
		err := h.availSvc.Update(ctx, uid, req.ID, req.Date, req.StartTime, req.EndTime)
		switch {
		case errors.Is(err, service.ErrInvalidSlot):
			return invalidInputResult, nil
		case errors.Is(err, service.ErrNotOwner):
			return forbiddenResult, nil
		case errors.Is(err, repository.ErrSlotNotFound):
			return notFoundResult, nil
		case err != nil:
			return systemErrorResult, err
		}
		return ginx.Result{Data: req.ID}, nil
	}
	id, err := h.availSvc.Create(ctx, uid, req.ApplicationID, req.Date, req.StartTime, req.EndTime)
	switch {
	case errors.Is(err, service.ErrInvalidSlot):
		return invalidInputResult, nil
	case errors.Is(err, repository.ErrApplicationNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) DeleteSlot(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	err := h.availSvc.Delete(ctx, sess.Claims().Uid, req.ID)
	switch {
	case errors.Is(err, service.ErrNotOwner):
		return forbiddenResult, nil
	case errors.Is(err, repository.ErrSlotNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) Matches(ctx *ginx.Context, req AppIDReq) (ginx.Result, error) {
	matches, err := h.matchSvc.ComputeMatches(ctx, req.ApplicationID)
	switch {
	case errors.Is(err, repository.ErrApplicationNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(matches, func(_ int, src domain.MatchSuggestion) MatchSuggestion {
			return newMatchSuggestion(src)
		}),
	}, nil
}

func (h *Handler) ConfirmInterview(ctx *ginx.Context, req ConfirmReq, sess session.Session) (ginx.Result, error) {
	id, err := h.itvSvc.Confirm(ctx, sess.Claims().Uid, req.ApplicationID,
		req.ScheduledAt, req.Location, req.InterviewerNames)
	switch {
	case errors.Is(err, service.ErrInvalidSchedule), errors.Is(err, service.ErrInvalidLocation):
		return invalidInputResult, nil
	case errors.Is(err, repository.ErrApplicationNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrConcurrentModify):
		return concurrentModifyResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) ListInterviews(ctx *ginx.Context, req AppIDReq) (ginx.Result, error) {
	itvs, err := h.itvSvc.List(ctx, req.ApplicationID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(itvs, func(_ int, src domain.Interview) Interview {
			return newInterview(src)
		}),
	}, nil
}

func (h *Handler) RespondOffer(ctx *ginx.Context, req RespondOfferReq, sess session.Session) (ginx.Result, error) {
	err := h.offerSvc.Respond(ctx, sess.Claims().Uid, req.OfferID,
		domain.OfferStatus(req.Response))
	switch {
	case errors.Is(err, service.ErrInvalidOfferResponse):
		return invalidInputResult, nil
	case errors.Is(err, service.ErrNotCandidate):
		return forbiddenResult, nil
	case errors.Is(err, service.ErrOfferAlreadyResponded):
		return offerRespondedResult, nil
	case errors.Is(err, repository.ErrOfferNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) OfferDetail(ctx *ginx.Context, req AppIDReq) (ginx.Result, error) {
	offer, err := h.offerSvc.GetByApplicationId(ctx, req.ApplicationID)
	switch {
	case errors.Is(err, repository.ErrOfferNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: newOffer(offer)}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	app, err := h.appSvc.Get(ctx, req.ID)
	switch {
	case errors.Is(err, repository.ErrApplicationNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: newApplication(app)}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	apps, total, err := h.appSvc.ListByUid(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[Application]{
			List: slice.Map(apps, func(_ int, src domain.Application) Application {
				return newApplication(src)
			}),
			Total: int(total),
		},
	}, nil
}

func (h *Handler) Apply(ctx *ginx.Context, req ApplyReq, sess session.Session) (ginx.Result, error) {
	id, err := h.appSvc.Apply(ctx, sess.Claims().Uid, req.ContactEmail, req.JobPostingID)
	switch {
	case errors.Is(err, service.ErrPostingNotOpen):
		return invalidInputResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) UpdateStatus(ctx *ginx.Context, req UpdateStatusReq, sess session.Session) (ginx.Result, error) {
	err := h.appSvc.UpdateStatus(ctx, sess.Claims().Uid, req.ApplicationID,
		domain.Status(req.Status))
	switch {
	case errors.Is(err, service.ErrInvalidStatus):
		return invalidInputResult, nil
	case errors.Is(err, service.ErrStatusForbidden):
		return forbiddenResult, nil
	case errors.Is(err, repository.ErrApplicationNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}
