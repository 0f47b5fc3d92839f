package handlers

import (
	"errors"
	"github.com/gin-gonic/gin"
	"net/http"
	"regexlab/internal/app/domain/session"
	"regexlab/internal/app/domain/status"
	"regexlab/internal/app/infrastructure/config"
	"regexlab/internal/app/ports"
	"regexlab/pkg/logger"
	"slices"
)

type Handlers struct {
	log      logger.Logger
	manager  *config.Manager
	sessions *session.Manager
	status   *status.Status
	engine   string
	presets  []ports.Preset
}

func New(log logger.Logger, manager *config.Manager, sessions *session.Manager, st *status.Status, engine string, presets []ports.Preset) *Handlers {
	return &Handlers{
		log:      log,
		manager:  manager,
		sessions: sessions,
		status:   st,
		engine:   engine,
		presets:  slices.Clone(presets),
	}
}

func (h *Handlers) session(c *gin.Context) (*session.Session, bool) {
	s, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return nil, false
		}
		h.log.Error("Failed to get session", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return nil, false
	}
	return s, true
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msg})
}
