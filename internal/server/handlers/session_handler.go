package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/barstock/internal/domain/models"
)

// SessionService is the session surface used over HTTP.
type SessionService interface {
	CreateSession(ctx context.Context, in models.StockSessionInput) (models.StockSession, error)
	ListSessions(ctx context.Context) ([]models.StockSession, error)
	CurrentSession(ctx context.Context) (*models.StockSession, error)
	SaveCounts(ctx context.Context, sessionID string) (int, error)
}

// SessionHandler serves stock sessions.
type SessionHandler struct {
	svc    SessionService
	logger *zap.Logger
}

// NewSessionHandler constructs the HTTP handler adapter.
func NewSessionHandler(svc SessionService, logger *zap.Logger) *SessionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionHandler{svc: svc, logger: logger}
}

func (h *SessionHandler) Create(c *gin.Context) {
	var in models.StockSessionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	session, err := h.svc.CreateSession(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) List(c *gin.Context) {
	sessions, err := h.svc.ListSessions(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// Current answers null when no session is active.
func (h *SessionHandler) Current(c *gin.Context) {
	session, err := h.svc.CurrentSession(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) SaveCounts(c *gin.Context) {
	sessionID := c.Param("id")
	n, err := h.svc.SaveCounts(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    fmt.Sprintf("Saved %d stock counts to session", n),
		"session_id": sessionID,
		"count":      n,
	})
}
