package controllers

import (
	"github.com/Krypton102019/dk-deli/pkg/resp"
	"github.com/Krypton102019/dk-deli/store"

	"github.com/gin-gonic/gin"
)

// AppController exposes the app-level flags (onboarding, theme).
type AppController struct{ Store *store.Store }

func NewAppController(st *store.Store) *AppController { return &AppController{Store: st} }

// GET /app/flags
func (h *AppController) Flags(c *gin.Context) {
	resp.OK(c, gin.H{
		"hasSeenOnboarding": h.Store.HasSeenOnboarding(),
		"isDarkMode":        h.Store.IsDarkMode(),
	})
}

// POST /app/onboarding-seen
func (h *AppController) OnboardingSeen(c *gin.Context) {
	h.Store.SetHasSeenOnboarding(true)
	resp.OK(c, gin.H{"hasSeenOnboarding": true})
}

// POST /app/dark-mode/toggle
func (h *AppController) ToggleDarkMode(c *gin.Context) {
	resp.OK(c, gin.H{"isDarkMode": h.Store.ToggleDarkMode()})
}
