//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/schoolhire/internal/notification"
	"github.com/ecodeclub/schoolhire/internal/recruitment"
	"github.com/ecodeclub/schoolhire/internal/school"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		school.InitModule,
		wire.FieldsOf(new(*school.Module), "Hdl", "AdminHdl"),
		notification.InitModule,
		wire.FieldsOf(new(*notification.Module), "Hdl", "CleanJob"),
		recruitment.InitModule,
		wire.FieldsOf(new(*recruitment.Module), "Hdl", "AdminHdl"),
		InitEmailService,
		InitSession,
		initGinxServer,
		InitAdminServer,
		initCronJobs,
		initMQConsumers)
	return new(App), nil
}
