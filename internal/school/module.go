package school

import (
	"github.com/ecodeclub/schoolhire/internal/school/internal/domain"
	"github.com/ecodeclub/schoolhire/internal/school/internal/service"
	"github.com/ecodeclub/schoolhire/internal/school/internal/web"
)

type (
	Handler           = web.Handler
	AdminHandler      = web.AdminHandler
	Service           = service.SchoolService
	JobPostingService = service.JobPostingService
	School            = domain.School
	JobPosting        = domain.JobPosting
)

const (
	PostingStatusDraft     = domain.PostingStatusDraft
	PostingStatusPublished = domain.PostingStatusPublished
	PostingStatusClosed    = domain.PostingStatusClosed
)

type Module struct {
	Hdl        *Handler
	AdminHdl   *AdminHandler
	Svc        Service
	PostingSvc JobPostingService
}
