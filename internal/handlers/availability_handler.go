package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/aureeture/careerhub/internal/dtos"
	"github.com/aureeture/careerhub/internal/repositories"
	"github.com/aureeture/careerhub/internal/services"
)

type AvailabilityHandler struct {
	availability *services.AvailabilityService
}

func NewAvailabilityHandler(availability *services.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

func (h *AvailabilityHandler) Slots(c *gin.Context) {
	mentorID := c.Query("mentorId")
	if mentorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mentorId is required"})
		return
	}

	startDate, ok := h.parseDate(c, "startDate")
	if !ok {
		return
	}
	endDate, ok := h.parseDate(c, "endDate")
	if !ok {
		return
	}

	resp, err := h.availability.Slots(c.Request.Context(), mentorID, startDate, endDate)
	if err != nil {
		if errors.Is(err, repositories.ErrAvailabilityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "mentor availability not found"})
			return
		}
		log.Error().Err(err).Str("mentor_id", mentorID).Msg("slot listing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AvailabilityHandler) Set(c *gin.Context) {
	mentorID := c.Query("mentorId")
	if mentorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mentorId is required"})
		return
	}

	var req dtos.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.availability.SetAvailability(c.Request.Context(), mentorID, &req); err != nil {
		if errors.Is(err, services.ErrInvalidClock) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Error().Err(err).Str("mentor_id", mentorID).Msg("availability update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "availability updated"})
}

func (h *AvailabilityHandler) parseDate(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}

	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be YYYY-MM-DD"})
		return nil, false
	}
	return &t, true
}
