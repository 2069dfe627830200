package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/lojinha/catalog-api/internal/interface/http"
)

// ProductModule wires the catalog endpoints.
// Public: GET /products, GET /products/:id
// Protected: POST, PUT /:id, DELETE /:id
type ProductModule struct {
	Handler *handlers.ProductHandler
	Auth    gin.HandlerFunc
}

func NewProductModule(h *handlers.ProductHandler, auth gin.HandlerFunc) *ProductModule {
	return &ProductModule{Handler: h, Auth: auth}
}

func (m *ProductModule) Register(rg *gin.RouterGroup) {
	rg.GET("/products", m.Handler.List)
	rg.GET("/products/:id", m.Handler.Get)

	protected := rg.Group("/")
	protected.Use(m.Auth)
	{
		protected.POST("/products", m.Handler.Create)
		protected.PUT("/products/:id", m.Handler.Update)
		protected.DELETE("/products/:id", m.Handler.Delete)
	}
}
