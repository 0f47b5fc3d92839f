package handlers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"regexlab/internal/app/infrastructure/config"
)

func (h *Handlers) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.status.Report())
}

type logLevelRequest struct {
	Level string `json:"level"`
}

// SetLogLevel меняет уровень логов на лету и сохраняет его в конфиг.
func (h *Handlers) SetLogLevel(c *gin.Context) {
	var req logLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Level == "" {
		badRequest(c, "body must be {\"level\": \"...\"}")
		return
	}

	if err := h.manager.Update(func(cfg *config.Config) {
		cfg.App.LogLevel = req.Level
	}); err != nil {
		badRequest(c, err.Error())
		return
	}

	h.log.SetLogLevel(req.Level)
	h.log.Info("Log level changed", "level", req.Level)
	c.JSON(http.StatusOK, gin.H{"level": h.log.GetLogLevel()})
}
