package controllers

import (
	"github.com/Vitnet1814/qrmenu-sub000/pkg/resp"
	"github.com/Vitnet1814/qrmenu-sub000/services"
	"github.com/Vitnet1814/qrmenu-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Service: s}
}

// GET /api/auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	state := uuid.New().String()
	// state echoes back through the provider; the SPA keeps its copy
	resp.OK(c, gin.H{"url": ctl.Service.AuthURL(state), "state": state})
}

// GET /api/auth/callback?code=
func (ctl *AuthController) Callback(c *gin.Context) {
	token, user, err := ctl.Service.HandleCallback(c.Request.Context(), c.Query("code"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /api/auth/me
func (ctl *AuthController) Me(c *gin.Context) {
	resp.OK(c, gin.H{"userId": utils.CurrentUserID(c)})
}
