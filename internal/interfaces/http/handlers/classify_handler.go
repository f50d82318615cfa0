package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/CineStyle-Engine/internal/domain/style"
	"github.com/turtacn/CineStyle-Engine/pkg/errors"
)

// ClassifyHandler serves quadrant and emotion-tier classification for an
// arbitrary vector.
type ClassifyHandler struct{}

// NewClassifyHandler constructs a ClassifyHandler.
func NewClassifyHandler() *ClassifyHandler {
	return &ClassifyHandler{}
}

// ClassifyRequest is the classification request body.
type ClassifyRequest struct {
	Vector map[string]float64 `json:"vector" binding:"required"`
}

// ClassifyResponse is the classification response body.
type ClassifyResponse struct {
	Quadrant      string  `json:"quadrant"`
	QuadrantLabel string  `json:"quadrantLabel"`
	EmotionTier   string  `json:"emotionTier"`
	CompositeX    float64 `json:"compositeX"`
	CompositeY    float64 `json:"compositeY"`
}

// Classify handles POST /api/v1/classify.
func (h *ClassifyHandler) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidParam("invalid classify request body").WithCause(err))
		return
	}

	v, err := parseVector(req.Vector)
	if err != nil {
		respondError(c, err)
		return
	}

	quadrant := style.QuadrantOf(v)
	c.JSON(http.StatusOK, ClassifyResponse{
		Quadrant:      string(quadrant),
		QuadrantLabel: quadrant.Label(),
		EmotionTier:   string(style.EmotionTierOf(v)),
		CompositeX:    style.CompositeX(v),
		CompositeY:    style.CompositeY(v),
	})
}
