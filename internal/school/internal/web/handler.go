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
	"github.com/ecodeclub/schoolhire/internal/school/internal/domain"
	"github.com/ecodeclub/schoolhire/internal/school/internal/repository"
	"github.com/ecodeclub/schoolhire/internal/school/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

// Handler 学校目录的浏览入口，全部公开。
type Handler struct {
	svc        service.SchoolService
	postingSvc service.JobPostingService
}

func NewHandler(svc service.SchoolService, postingSvc service.JobPostingService) *Handler {
	return &Handler{
		svc:        svc,
		postingSvc: postingSvc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/schools")
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/postings", ginx.B[SchoolPostingsReq](h.Postings))
	server.POST("/postings/list", ginx.B[ListReq](h.PublishedPostings))
	server.POST("/postings/detail", ginx.B[IDReq](h.PostingDetail))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	schools, total, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[School]{
			List: slice.Map(schools, func(_ int, src domain.School) School {
				return newSchool(src)
			}),
			Total: int(total),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	s, err := h.svc.GetById(ctx, req.ID)
	switch {
	case errors.Is(err, repository.ErrSchoolNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	default:
		return ginx.Result{
			Data: newSchool(s),
		}, nil
	}
}

func (h *Handler) Postings(ctx *ginx.Context, req SchoolPostingsReq) (ginx.Result, error) {
	postings, total, err := h.postingSvc.ListBySchool(ctx, req.SchoolID, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[JobPosting]{
			List: slice.Map(postings, func(_ int, src domain.JobPosting) JobPosting {
				return newJobPosting(src)
			}),
			Total: int(total),
		},
	}, nil
}

func (h *Handler) PublishedPostings(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	postings, total, err := h.postingSvc.ListPublished(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[JobPosting]{
			List: slice.Map(postings, func(_ int, src domain.JobPosting) JobPosting {
				return newJobPosting(src)
			}),
			Total: int(total),
		},
	}, nil
}

func (h *Handler) PostingDetail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	p, err := h.postingSvc.GetById(ctx, req.ID)
	switch {
	case errors.Is(err, repository.ErrPostingNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	default:
		return ginx.Result{
			Data: newJobPosting(p),
		}, nil
	}
}

func newSchool(s domain.School) School {
	return School{
		ID:      s.ID,
		Name:    s.Name,
		Region:  s.Region,
		Address: s.Address,
	}
}

func newJobPosting(p domain.JobPosting) JobPosting {
	return JobPosting{
		ID:          p.ID,
		SchoolID:    p.SchoolID,
		Title:       p.Title,
		Subject:     p.Subject,
		Description: p.Description,
		Status:      p.Status.String(),
	}
}
