package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/SciCalc/backend/internal/providers/theme"
	"github.com/GriffinCanCode/SciCalc/backend/internal/shared/types"
)

// GetTheme returns the active mode, toggle label and chart palette
func (h *Handlers) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, theme.Describe(h.theme.Current()))
}

// SetTheme switches to the requested mode
func (h *Handlers) SetTheme(c *gin.Context) {
	var req types.ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	mode, err := theme.ParseMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	persistErr := h.theme.Set(c.Request.Context(), mode)
	h.respondTheme(c, mode, persistErr)
}

// ToggleTheme flips between light and dark
func (h *Handlers) ToggleTheme(c *gin.Context) {
	mode, persistErr := h.theme.Toggle(c.Request.Context())
	h.respondTheme(c, mode, persistErr)
}

func (h *Handlers) respondTheme(c *gin.Context, mode theme.Mode, persistErr error) {
	h.metrics.RecordThemeChange(string(mode))

	body := theme.Describe(mode)
	if persistErr != nil {
		body["persisted"] = false
		body["warning"] = persistErr.Error()
	}
	c.JSON(http.StatusOK, body)
}
