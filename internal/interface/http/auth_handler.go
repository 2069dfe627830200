package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lojinha/catalog-api/internal/application"
	"github.com/lojinha/catalog-api/internal/interface/middleware"
	"github.com/lojinha/catalog-api/pkg/helpers"
	"github.com/lojinha/catalog-api/pkg/response"
)

type AuthHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.UserService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	Name     *string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, err)
		return
	}

	u, token, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Error(c, http.StatusBadRequest, "Email already in use")
			return
		}
		helpers.LogError(h.Logger, "register failed", err, logrus.Fields{"email": req.Email})
		response.Internal(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   token,
		"user":    u.Public(),
	})
}

// Login handles POST /auth/login. Unknown email and wrong password produce
// the same body so neither can be probed separately.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, err)
		return
	}

	u, token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Email or key incorrect")
			return
		}
		helpers.LogError(h.Logger, "login failed", err, logrus.Fields{"email": req.Email})
		response.Internal(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User logged in successfully",
		"token":   token,
		"user":    u.Public(),
	})
}

// Me handles GET /auth/me, echoing the projection the auth middleware
// attached.
func (h *AuthHandler) Me(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "No token provided")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "User authenticated successfully",
		"user":    u,
	})
}
