package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/CineStyle-Engine/internal/application/blending"
	"github.com/turtacn/CineStyle-Engine/pkg/errors"
)

// BlendHandler serves director blending.
type BlendHandler struct {
	blender blending.Service
}

// NewBlendHandler constructs a BlendHandler.
func NewBlendHandler(blender blending.Service) *BlendHandler {
	return &BlendHandler{blender: blender}
}

// BlendRequest is the blend request body.  Weight is the primary director's
// share; it is clamped and snapped server-side, and the effective value
// comes back in the response.
type BlendRequest struct {
	PrimaryID   string  `json:"primaryId" binding:"required"`
	SecondaryID string  `json:"secondaryId" binding:"required"`
	Weight      float64 `json:"weight"`
}

// BlendResponse is the blend response body.
type BlendResponse struct {
	PrimaryID         string             `json:"primaryId"`
	SecondaryID       string             `json:"secondaryId"`
	Weight            float64            `json:"weight"`
	Vector            map[string]float64 `json:"vector"`
	Cluster           string             `json:"cluster"`
	Quadrant          string             `json:"quadrant"`
	EmotionTier       string             `json:"emotionTier"`
	DistancePrimary   float64            `json:"distancePrimary"`
	DistanceSecondary float64            `json:"distanceSecondary"`
}

// Blend handles POST /api/v1/blend.
func (h *BlendHandler) Blend(c *gin.Context) {
	var req BlendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidParam("invalid blend request body").WithCause(err))
		return
	}

	hybrid, err := h.blender.BlendSelection(c.Request.Context(), blending.Selection{
		PrimaryID:   req.PrimaryID,
		SecondaryID: req.SecondaryID,
		Weight:      req.Weight,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, BlendResponse{
		PrimaryID:         hybrid.Primary.ID,
		SecondaryID:       hybrid.Secondary.ID,
		Weight:            hybrid.Weight,
		Vector:            vectorToJSON(hybrid.Vector),
		Cluster:           string(hybrid.Cluster),
		Quadrant:          string(hybrid.Quadrant),
		EmotionTier:       string(hybrid.EmotionTier),
		DistancePrimary:   hybrid.DistancePrimary,
		DistanceSecondary: hybrid.DistanceSecondary,
	})
}
