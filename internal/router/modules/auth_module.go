package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/lojinha/catalog-api/internal/interface/http"
)

// AuthModule wires the user auth endpoints.
// Public: POST /auth/register, POST /auth/login
// Protected: GET /auth/me
type AuthModule struct {
	Handler *handlers.AuthHandler
	Auth    gin.HandlerFunc
}

func NewAuthModule(h *handlers.AuthHandler, auth gin.HandlerFunc) *AuthModule {
	return &AuthModule{Handler: h, Auth: auth}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/register", m.Handler.Register)
	rg.POST("/auth/login", m.Handler.Login)
	rg.GET("/auth/me", m.Auth, m.Handler.Me)
}
