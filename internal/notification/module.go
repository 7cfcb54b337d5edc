package notification

import (
	"github.com/ecodeclub/schoolhire/internal/notification/internal/domain"
	"github.com/ecodeclub/schoolhire/internal/notification/internal/job"
	"github.com/ecodeclub/schoolhire/internal/notification/internal/service"
	"github.com/ecodeclub/schoolhire/internal/notification/internal/web"
)

type (
	Handler      = web.Handler
	Service      = service.Service
	Notification = domain.Notification
	Type         = domain.Type

	CleanReadJob = job.CleanReadNotificationsJob
)

const (
	TypeInterviewInvite     = domain.TypeInterviewInvite
	TypeInterviewReschedule = domain.TypeInterviewReschedule
	TypeInterviewScheduled  = domain.TypeInterviewScheduled
	TypeOfferSent           = domain.TypeOfferSent
	TypeOfferResponded      = domain.TypeOfferResponded
	TypeStatusChanged       = domain.TypeStatusChanged
)

type Module struct {
	Hdl      *Handler
	Svc      Service
	CleanJob *CleanReadJob
}
