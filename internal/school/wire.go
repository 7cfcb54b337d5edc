//go:build wireinject

package school

import (
	"sync"

	"github.com/ecodeclub/schoolhire/internal/school/internal/repository"
	"github.com/ecodeclub/schoolhire/internal/school/internal/repository/dao"
	"github.com/ecodeclub/schoolhire/internal/school/internal/service"
	"github.com/ecodeclub/schoolhire/internal/school/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		initJobPostingDAO,
		repository.NewSchoolRepository,
		repository.NewJobPostingRepository,
		service.NewSchoolService,
		service.NewJobPostingService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.SchoolDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMSchoolDAO(db)
}

func initJobPostingDAO(db *egorm.Component) dao.JobPostingDAO {
	return dao.NewGORMJobPostingDAO(db)
}
