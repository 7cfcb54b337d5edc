//go:build wireinject

package notification

import (
	"sync"
	"time"

	"github.com/ecodeclub/schoolhire/internal/notification/internal/job"
	"github.com/ecodeclub/schoolhire/internal/notification/internal/repository"
	"github.com/ecodeclub/schoolhire/internal/notification/internal/repository/dao"
	"github.com/ecodeclub/schoolhire/internal/notification/internal/service"
	"github.com/ecodeclub/schoolhire/internal/notification/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewNotificationRepository,
		service.NewService,
		web.NewHandler,
		initCleanJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.NotificationDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMNotificationDAO(db)
}

func initCleanJob(svc service.Service) *job.CleanReadNotificationsJob {
	// 保留 90 天，单批 500 条
	return job.NewCleanReadNotificationsJob(svc, 90*24*time.Hour, 500)
}
