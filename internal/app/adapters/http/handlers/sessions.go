package handlers

import (
	"errors"
	"github.com/gin-gonic/gin"
	"net/http"
	"regexlab/internal/app/adapters/metrics"
	"regexlab/internal/app/domain/session"
	"regexlab/internal/app/ports"
	"strconv"
)

func (h *Handlers) CreateSession(c *gin.Context) {
	s := h.sessions.Create()
	metrics.SessionsActive.Set(float64(h.sessions.Len()))

	c.JSON(http.StatusCreated, gin.H{
		"id":       s.ID,
		"snapshot": s.Snapshot(),
	})
}

func (h *Handlers) GetSession(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.Snapshot())
}

func (h *Handlers) DeleteSession(c *gin.Context) {
	if err := h.sessions.Delete(c.Param("id")); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.Error("Failed to delete session", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	metrics.SessionsActive.Set(float64(h.sessions.Len()))
	c.Status(http.StatusNoContent)
}

func (h *Handlers) Evaluate(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": s.Snapshot().Results})
}

type patternRequest struct {
	Pattern *string `json:"pattern"`
}

func (h *Handlers) SetPattern(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	var req patternRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Pattern == nil {
		badRequest(c, "body must be {\"pattern\": \"...\"}")
		return
	}

	c.JSON(http.StatusOK, s.Apply(func(v ports.ValidatorPort) {
		h.setPattern(v, *req.Pattern)
	}))
}

type presetRequest struct {
	Name string `json:"name"`
}

func (h *Handlers) ApplyPreset(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	var req presetRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		badRequest(c, "body must be {\"name\": \"...\"}")
		return
	}

	var err error
	snap := s.Apply(func(v ports.ValidatorPort) {
		_, err = h.applyPreset(v, req.Name)
	})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}

type testStringRequest struct {
	Value string `json:"value"`
}

func (h *Handlers) AddTestString(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	var req testStringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "body must be {\"value\": \"...\"}")
		return
	}

	c.JSON(http.StatusOK, s.Apply(func(v ports.ValidatorPort) {
		h.addTestString(v, req.Value)
	}))
}

func (h *Handlers) RemoveTestString(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		badRequest(c, "index must be an integer")
		return
	}

	c.JSON(http.StatusOK, s.Apply(func(v ports.ValidatorPort) {
		h.removeTestString(v, index)
	}))
}

func (h *Handlers) ListPresets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"presets": h.presets})
}
