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
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/schoolhire/internal/school/internal/domain"
	"github.com/ecodeclub/schoolhire/internal/school/internal/repository"
	"github.com/ecodeclub/schoolhire/internal/school/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler 学校侧的管理入口。
// 平台运营路由用 creator 声明拦截，岗位管理校验学校管理员身份。
type AdminHandler struct {
	svc        service.SchoolService
	postingSvc service.JobPostingService
}

func NewAdminHandler(svc service.SchoolService, postingSvc service.JobPostingService) *AdminHandler {
	return &AdminHandler{
		svc:        svc,
		postingSvc: postingSvc,
	}
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/schools/admin")
	g.POST("/save", ginx.S(h.Permission), ginx.B[SaveSchoolReq](h.Save))
	g.POST("/delete", ginx.S(h.Permission), ginx.B[IDReq](h.Delete))
	g.POST("/member/add", ginx.S(h.Permission), ginx.B[AdminMemberReq](h.AddAdmin))
	g.POST("/member/remove", ginx.S(h.Permission), ginx.B[AdminMemberReq](h.RemoveAdmin))

	p := server.Group("/postings/admin")
	p.POST("/save", ginx.BS[SavePostingReq](h.SavePosting))
	p.POST("/publish", ginx.BS[IDReq](h.PublishPosting))
	p.POST("/close", ginx.BS[IDReq](h.ClosePosting))
}

func (h *AdminHandler) Permission(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	if sess.Claims().Get("creator").StringOrDefault("") != "true" {
		ctx.AbortWithStatus(http.StatusForbidden)
		return ginx.Result{}, fmt.Errorf("非法访问学校运营后台 uid: %d", sess.Claims().Uid)
	}
	return ginx.Result{}, ginx.ErrNoResponse
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveSchoolReq) (ginx.Result, error) {
	if req.School.Name == "" {
		return invalidInputResult, nil
	}
	id, err := h.svc.Save(ctx, domain.School{
		ID:      req.School.ID,
		Name:    req.School.Name,
		Region:  req.School.Region,
		Address: req.School.Address,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) AddAdmin(ctx *ginx.Context, req AdminMemberReq) (ginx.Result, error) {
	err := h.svc.AddAdmin(ctx, req.SchoolID, req.UID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) RemoveAdmin(ctx *ginx.Context, req AdminMemberReq) (ginx.Result, error) {
	err := h.svc.RemoveAdmin(ctx, req.SchoolID, req.UID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

// SavePosting 新建或编辑岗位，要求调用者是归属学校的管理员。
func (h *AdminHandler) SavePosting(ctx *ginx.Context, req SavePostingReq, sess session.Session) (ginx.Result, error) {
	posting := domain.JobPosting{
		ID:          req.Posting.ID,
		SchoolID:    req.Posting.SchoolID,
		Title:       req.Posting.Title,
		Subject:     req.Posting.Subject,
		Description: req.Posting.Description,
		Status:      domain.PostingStatus(req.Posting.Status),
	}
	if posting.Status == "" {
		posting.Status = domain.PostingStatusDraft
	}
	if !posting.IsValid() {
		return invalidInputResult, nil
	}
	ok, err := h.svc.IsAdmin(ctx, sess.Claims().Uid, posting.SchoolID)
	if err != nil {
		return systemErrorResult, err
	}
	if !ok {
		return forbiddenResult, nil
	}
	id, err := h.postingSvc.Save(ctx, posting)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) PublishPosting(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	return h.updatePostingStatus(ctx, req.ID, sess.Claims().Uid, h.postingSvc.Publish)
}

func (h *AdminHandler) ClosePosting(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	return h.updatePostingStatus(ctx, req.ID, sess.Claims().Uid, h.postingSvc.Close)
}

func (h *AdminHandler) updatePostingStatus(ctx *ginx.Context, id, uid int64,
	update func(ctx context.Context, id int64) error) (ginx.Result, error) {
	p, err := h.postingSvc.GetById(ctx, id)
	switch {
	case errors.Is(err, repository.ErrPostingNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	ok, err := h.svc.IsAdmin(ctx, uid, p.SchoolID)
	if err != nil {
		return systemErrorResult, err
	}
	if !ok {
		return forbiddenResult, nil
	}
	if err = update(ctx, id); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}
