package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/CineStyle-Engine/internal/application/constellation"
	"github.com/turtacn/CineStyle-Engine/internal/domain/style"
	"github.com/turtacn/CineStyle-Engine/pkg/errors"
)

// ConstellationHandler serves viewport sessions and render frames.
type ConstellationHandler struct {
	sessions constellation.Service
}

// NewConstellationHandler constructs a ConstellationHandler.
func NewConstellationHandler(sessions constellation.Service) *ConstellationHandler {
	return &ConstellationHandler{sessions: sessions}
}

// GestureRequest is the transport form of a viewport gesture.  Type selects
// the event; the remaining fields apply per type.
type GestureRequest struct {
	Type           string  `json:"type" binding:"required"`
	DeltaY         float64 `json:"deltaY"`
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	OnPoint        bool    `json:"onPoint"`
	RenderedWidth  float64 `json:"renderedWidth"`
	RenderedHeight float64 `json:"renderedHeight"`
}

// toEvent converts the transport form into a state-machine event.
func (r GestureRequest) toEvent() (constellation.GestureEvent, error) {
	switch r.Type {
	case "wheel":
		return constellation.WheelEvent{DeltaY: r.DeltaY}, nil
	case "drag_start":
		return constellation.DragStartEvent{X: r.X, Y: r.Y, OnPoint: r.OnPoint}, nil
	case "drag_move":
		return constellation.DragMoveEvent{
			X:              r.X,
			Y:              r.Y,
			RenderedWidth:  r.RenderedWidth,
			RenderedHeight: r.RenderedHeight,
		}, nil
	case "drag_end":
		return constellation.DragEndEvent{}, nil
	case "reset":
		return constellation.ResetEvent{}, nil
	default:
		return nil, errors.New(errors.ErrCodeGestureInvalid,
			"unknown gesture type").WithDetail("type=" + r.Type)
	}
}

// FrameRequest carries the optional target and blend vectors to project
// alongside the catalog.
type FrameRequest struct {
	Target map[string]float64 `json:"target"`
	Blend  map[string]float64 `json:"blend"`
}

// CreateSession handles POST /api/v1/constellation/sessions.
func (h *ConstellationHandler) CreateSession(c *gin.Context) {
	sess, err := h.sessions.CreateSession(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sess)
}

// CloseSession handles DELETE /api/v1/constellation/sessions/:id.
func (h *ConstellationHandler) CloseSession(c *gin.Context) {
	h.sessions.CloseSession(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

// ApplyGesture handles POST /api/v1/constellation/sessions/:id/gestures.
func (h *ConstellationHandler) ApplyGesture(c *gin.Context) {
	var req GestureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidParam("invalid gesture request body").WithCause(err))
		return
	}

	ev, err := req.toEvent()
	if err != nil {
		respondError(c, err)
		return
	}

	state, err := h.sessions.ApplyGesture(c.Request.Context(), c.Param("id"), ev)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"viewport": state})
}

// Frame handles POST /api/v1/constellation/sessions/:id/frame.
func (h *ConstellationHandler) Frame(c *gin.Context) {
	var req FrameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidParam("invalid frame request body").WithCause(err))
		return
	}

	var target, blend style.Vector
	var err error
	if len(req.Target) > 0 {
		if target, err = parseVector(req.Target); err != nil {
			respondError(c, err)
			return
		}
	}
	if len(req.Blend) > 0 {
		if blend, err = parseVector(req.Blend); err != nil {
			respondError(c, err)
			return
		}
	}

	frame, err := h.sessions.Frame(c.Request.Context(), c.Param("id"), target, blend)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, frame)
}
