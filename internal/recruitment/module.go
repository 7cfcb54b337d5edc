package recruitment

import (
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/domain"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/service"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/web"
)

type (
	Handler      = web.Handler
	AdminHandler = web.AdminHandler

	AvailabilityService = service.AvailabilityService
	MatchService        = service.MatchService
	InterviewService    = service.InterviewService
	OfferService        = service.OfferService
	ApplicationService  = service.ApplicationService

	Application      = domain.Application
	AvailabilitySlot = domain.AvailabilitySlot
	Interview        = domain.Interview
	Offer            = domain.Offer
	MatchSuggestion  = domain.MatchSuggestion
)

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler

	AvailSvc AvailabilityService
	MatchSvc MatchService
	ItvSvc   InterviewService
	OfferSvc OfferService
	AppSvc   ApplicationService
}
