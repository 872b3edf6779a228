package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/aureeture/careerhub/internal/dtos"
	"github.com/aureeture/careerhub/internal/repositories"
	"github.com/aureeture/careerhub/internal/services"
	"github.com/aureeture/careerhub/internal/utils"
)

type SessionHandler struct {
	sessions *services.SessionService
}

func NewSessionHandler(sessions *services.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

func (h *SessionHandler) Create(c *gin.Context) {
	var req dtos.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.sessions.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dtos.NewSessionResponse(session))
}

func (h *SessionHandler) List(c *gin.Context) {
	mentorID := c.Query("mentorId")
	if mentorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mentorId is required"})
		return
	}

	scope := repositories.SessionScope(c.DefaultQuery("scope", "all"))
	switch scope {
	case repositories.ScopeAll, repositories.ScopeUpcoming, repositories.ScopePast:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "scope must be all, upcoming or past"})
		return
	}

	resp, err := h.sessions.List(c.Request.Context(), mentorID, scope)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SessionHandler) Get(c *gin.Context) {
	id, mentorID, ok := h.sessionParams(c)
	if !ok {
		return
	}

	session, err := h.sessions.Get(c.Request.Context(), id, mentorID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewSessionResponse(session))
}

func (h *SessionHandler) Update(c *gin.Context) {
	id, mentorID, ok := h.sessionParams(c)
	if !ok {
		return
	}

	var req dtos.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.sessions.Update(c.Request.Context(), id, mentorID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewSessionResponse(session))
}

func (h *SessionHandler) Complete(c *gin.Context) {
	id, mentorID, ok := h.sessionParams(c)
	if !ok {
		return
	}

	session, err := h.sessions.Complete(c.Request.Context(), id, mentorID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewSessionResponse(session))
}

func (h *SessionHandler) Delete(c *gin.Context) {
	id, mentorID, ok := h.sessionParams(c)
	if !ok {
		return
	}

	if err := h.sessions.Delete(c.Request.Context(), id, mentorID); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SessionHandler) VerifyJoin(c *gin.Context) {
	id, mentorID, ok := h.sessionParams(c)
	if !ok {
		return
	}

	resp, err := h.sessions.VerifyJoin(c.Request.Context(), id, mentorID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if !resp.CanJoin {
		c.JSON(http.StatusForbidden, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SessionHandler) Join(c *gin.Context) {
	var req dtos.JoinSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sessionId"})
		return
	}

	resp, err := h.sessions.Join(c.Request.Context(), sessionID, req.UserID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SessionHandler) StartRecording(c *gin.Context) {
	h.recording(c, "started")
}

func (h *SessionHandler) StopRecording(c *gin.Context) {
	h.recording(c, "stopped")
}

func (h *SessionHandler) recording(c *gin.Context, action string) {
	var req dtos.JoinSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sessionId"})
		return
	}

	resp, err := h.sessions.Recording(c.Request.Context(), sessionID, req.UserID, action)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SessionHandler) ConfirmPayment(c *gin.Context) {
	var req dtos.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.sessions.ConfirmPayment(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dtos.NewSessionResponse(session))
}

func (h *SessionHandler) CreateDemo(c *gin.Context) {
	mentorID := c.Query("mentorId")
	if mentorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mentorId is required"})
		return
	}

	if err := h.sessions.EnsureDemoSessions(c.Request.Context(), mentorID, true); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "demo sessions created"})
}

func (h *SessionHandler) sessionParams(c *gin.Context) (uuid.UUID, string, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return uuid.Nil, "", false
	}

	mentorID := c.Query("mentorId")
	if mentorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mentorId is required"})
		return uuid.Nil, "", false
	}
	return id, mentorID, true
}

func (h *SessionHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repositories.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, services.ErrInvalidTimeRange),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrPartialReschedule):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotParticipant),
		errors.Is(err, services.ErrMentorOnly),
		errors.Is(err, services.ErrSessionNotJoinable):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, utils.ErrRTCNotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "video service not configured"})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("session request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
