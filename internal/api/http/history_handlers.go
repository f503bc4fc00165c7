package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/SciCalc/backend/internal/domain/history"
)

// ListHistory returns recent calculations, oldest first
func (h *Handlers) ListHistory(c *gin.Context) {
	limit := h.historyLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		if n < limit {
			limit = n
		}
	}

	ctx := c.Request.Context()
	entries, err := h.history.List(ctx, limit)
	if err != nil {
		h.logger.Error("failed to list history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	total, err := h.history.Count(ctx)
	if err != nil {
		h.logger.Error("failed to count history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}
	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"lines":   lines,
		"total":   total,
	})
}

// ClearHistory deletes every recorded calculation
func (h *Handlers) ClearHistory(c *gin.Context) {
	removed, err := h.history.Clear(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to clear history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.logger.Info("history cleared", zap.Int("removed", removed))
	c.JSON(http.StatusOK, gin.H{"cleared": removed})
}

// ExportHistory downloads the whole log as json, yaml or toml, optionally
// compressed with gzip or zstd.
func (h *Handlers) ExportHistory(c *gin.Context) {
	format, err := history.ParseFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	compression, err := history.ParseCompression(c.Query("compress"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := h.history.Export(c.Request.Context(), format)
	if err == nil {
		data, err = history.Compress(data, compression)
	}
	if err != nil {
		h.logger.Error("failed to export history",
			zap.String("format", string(format)),
			zap.String("compress", string(compression)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("history.%s%s", format, compression.Extension())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, compression.ContentType(format), data)
}
