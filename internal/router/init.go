package router

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/lojinha/catalog-api/internal/application"
	"github.com/lojinha/catalog-api/internal/infrastructure/gormdb"
	handlers "github.com/lojinha/catalog-api/internal/interface/http"
	"github.com/lojinha/catalog-api/internal/interface/middleware"
	"github.com/lojinha/catalog-api/internal/router/modules"
	"github.com/lojinha/catalog-api/pkg/helpers"
)

// Deps are the process-lifetime components every module builds on. They are
// constructed once at startup and passed down explicitly.
type Deps struct {
	Logger *logrus.Logger
	DB     *gorm.DB
	JWT    *helpers.JWTManager
}

// InitModules builds repositories, services and handlers from Deps and
// registers all feature modules with the registry.
func InitModules(r *Registry, d Deps) {
	users := gormdb.NewUserRepository(d.DB)
	products := gormdb.NewProductRepository(d.DB)

	userSvc := application.NewUserService(users, d.JWT, d.Logger)
	productSvc := application.NewProductService(products, d.Logger)

	authMW := middleware.Auth(users, d.JWT)

	r.Add(
		modules.NewHealthModule(),
		modules.NewAuthModule(handlers.NewAuthHandler(userSvc, d.Logger), authMW),
		modules.NewProductModule(handlers.NewProductHandler(productSvc, d.Logger), authMW),
	)
}
