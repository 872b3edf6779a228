package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/aureeture/careerhub/internal/services"
)

type MenteeHandler struct {
	mentees *services.MenteeService
}

func NewMenteeHandler(mentees *services.MenteeService) *MenteeHandler {
	return &MenteeHandler{mentees: mentees}
}

func (h *MenteeHandler) List(c *gin.Context) {
	mentorID := c.Query("mentorId")
	if mentorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mentorId is required"})
		return
	}

	resp, err := h.mentees.List(c.Request.Context(), mentorID)
	if err != nil {
		log.Error().Err(err).Str("mentor_id", mentorID).Msg("mentee listing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MenteeHandler) Get(c *gin.Context) {
	mentorID := c.Query("mentorId")
	if mentorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mentorId is required"})
		return
	}

	resp, err := h.mentees.Get(c.Request.Context(), mentorID, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrMenteeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "mentee not found"})
			return
		}
		log.Error().Err(err).Str("mentor_id", mentorID).Msg("mentee lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}
