package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/lojinha/catalog-api/internal/interface/http"
)

// HealthModule exposes the liveness probe at the root path.
type HealthModule struct{}

func NewHealthModule() *HealthModule { return &HealthModule{} }

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", handlers.Health)
}
