package controllers

import (
	"errors"

	"github.com/Krypton102019/dk-deli/pkg/resp"
	"github.com/Krypton102019/dk-deli/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /auth/login
func (h *AuthController) Login(c *gin.Context) {
	var req struct {
		Phone string `json:"phone" binding:"required"`
		Name  string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := h.Svc.Login(req.Phone, req.Name)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPhone) || errors.Is(err, services.ErrNameRequired) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// POST /auth/logout
func (h *AuthController) Logout(c *gin.Context) {
	h.Svc.Logout()
	resp.OK(c, gin.H{"loggedOut": true})
}
