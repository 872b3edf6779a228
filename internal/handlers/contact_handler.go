package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/aureeture/careerhub/internal/dtos"
	"github.com/aureeture/careerhub/internal/models"
	"github.com/aureeture/careerhub/internal/repositories"
)

type ContactHandler struct {
	contacts *repositories.ContactRepository
}

func NewContactHandler(contacts *repositories.ContactRepository) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

func (h *ContactHandler) CreateLead(c *gin.Context) {
	var req dtos.LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead := &models.Lead{
		ID:     uuid.New(),
		Name:   req.Name,
		Email:  req.Email,
		Mobile: req.Mobile,
		UTM:    req.UTM,
		Page:   req.Page,
		Source: "website",
	}
	if err := h.contacts.InsertLead(c.Request.Context(), lead); err != nil {
		log.Error().Err(err).Msg("lead insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "lead saved"})
}

func (h *ContactHandler) CreateEnterpriseDemo(c *gin.Context) {
	var req dtos.EnterpriseDemoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	demo := &models.EnterpriseDemo{
		ID:      uuid.New(),
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Page:    req.Page,
	}
	if err := h.contacts.InsertEnterpriseDemo(c.Request.Context(), demo); err != nil {
		log.Error().Err(err).Msg("enterprise demo insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "demo request saved"})
}

func (h *ContactHandler) CreateMessage(c *gin.Context) {
	var req dtos.ContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg := &models.Message{
		ID:      uuid.New(),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.contacts.InsertMessage(c.Request.Context(), msg); err != nil {
		log.Error().Err(err).Msg("contact message insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "message saved"})
}
