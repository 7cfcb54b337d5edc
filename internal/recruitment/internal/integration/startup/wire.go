//go:build wireinject

package startup

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/schoolhire/internal/email"
	"github.com/ecodeclub/schoolhire/internal/notification"
	"github.com/ecodeclub/schoolhire/internal/recruitment"
	"github.com/ecodeclub/schoolhire/internal/school"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ,
	schoolModule *school.Module,
	notificationModule *notification.Module,
	emailSvc email.Service) (*recruitment.Module, error) {
	wire.Build(recruitment.InitModule)
	return new(recruitment.Module), nil
}
