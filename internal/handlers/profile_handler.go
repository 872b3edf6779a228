package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/aureeture/careerhub/internal/dtos"
	"github.com/aureeture/careerhub/internal/middlewares"
	"github.com/aureeture/careerhub/internal/models"
	"github.com/aureeture/careerhub/internal/repositories"
	"github.com/aureeture/careerhub/internal/services"
)

type ProfileHandler struct {
	profiles *services.ProfileService
}

func NewProfileHandler(profiles *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	user, ok := h.requireUser(c)
	if !ok {
		return
	}

	resp, err := h.profiles.Get(c.Request.Context(), user)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) Create(c *gin.Context) {
	user, ok := h.requireUser(c)
	if !ok {
		return
	}

	var req dtos.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.profiles.Create(c.Request.Context(), user, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	user, ok := h.requireUser(c)
	if !ok {
		return
	}

	var req dtos.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.profiles.Update(c.Request.Context(), user, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// requireUser needs the local user mirror, not just the verified token; a
// failed mirror means there is no row for the profile to reference.
func (h *ProfileHandler) requireUser(c *gin.Context) (*models.User, bool) {
	auth, err := middlewares.GetAuth(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return nil, false
	}
	if auth.User == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user account unavailable"})
		return nil, false
	}
	return auth.User, true
}

func (h *ProfileHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repositories.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
	case errors.Is(err, repositories.ErrProfileExists):
		c.JSON(http.StatusConflict, gin.H{"error": "profile already exists"})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("profile request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
