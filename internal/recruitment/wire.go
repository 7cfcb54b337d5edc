//go:build wireinject

package recruitment

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/schoolhire/internal/email"
	"github.com/ecodeclub/schoolhire/internal/notification"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/event"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/repository"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/repository/dao"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/service"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/web"
	"github.com/ecodeclub/schoolhire/internal/school"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ,
	schoolModule *school.Module,
	notificationModule *notification.Module,
	emailSvc email.Service) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		initAvailabilityDAO,
		initInterviewDAO,
		initOfferDAO,
		repository.NewApplicationRepository,
		repository.NewAvailabilityRepository,
		repository.NewInterviewRepository,
		repository.NewOfferRepository,
		event.NewStageEventProducer,
		service.NewAvailabilityService,
		service.NewMatchService,
		service.NewInterviewService,
		service.NewOfferService,
		service.NewApplicationService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.FieldsOf(new(*school.Module), "Svc", "PostingSvc"),
		wire.FieldsOf(new(*notification.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ApplicationDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMApplicationDAO(db)
}

func initAvailabilityDAO(db *egorm.Component) dao.AvailabilityDAO {
	return dao.NewGORMAvailabilityDAO(db)
}

func initInterviewDAO(db *egorm.Component) dao.InterviewDAO {
	return dao.NewGORMInterviewDAO(db)
}

func initOfferDAO(db *egorm.Component) dao.OfferDAO {
	return dao.NewGORMOfferDAO(db)
}
