package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/CineStyle-Engine/internal/application/matching"
	"github.com/turtacn/CineStyle-Engine/internal/domain/style"
	"github.com/turtacn/CineStyle-Engine/pkg/errors"
)

// MatchHandler serves nearest-director ranking.
type MatchHandler struct {
	matcher matching.Service
}

// NewMatchHandler constructs a MatchHandler.
func NewMatchHandler(matcher matching.Service) *MatchHandler {
	return &MatchHandler{matcher: matcher}
}

// MatchRequest is the ranking request body.  Genres are optional; when
// present the genre-aware distance applies.
type MatchRequest struct {
	Vector map[string]float64 `json:"vector" binding:"required"`
	N      int                `json:"n"`
	Genres []string           `json:"genres"`
}

// MatchEntry is one ranked result.
type MatchEntry struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Cluster       string             `json:"cluster"`
	KnownFor      []string           `json:"knownFor"`
	Vector        map[string]float64 `json:"vector"`
	VisualMandate string             `json:"visualMandate,omitempty"`
	Distance      float64            `json:"distance"`
	Rank          int                `json:"rank"`
	Quadrant      string             `json:"quadrant"`
	EmotionTier   string             `json:"emotionTier"`
}

// MatchResponse is the ranking response body.
type MatchResponse struct {
	Matches []MatchEntry `json:"matches"`
}

// Match handles POST /api/v1/match.
func (h *MatchHandler) Match(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidParam("invalid match request body").WithCause(err))
		return
	}

	target, err := parseVector(req.Vector)
	if err != nil {
		respondError(c, err)
		return
	}

	matches, err := h.matcher.NearestDirectors(c.Request.Context(), target, req.N, req.Genres)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := MatchResponse{Matches: make([]MatchEntry, 0, len(matches))}
	for _, m := range matches {
		resp.Matches = append(resp.Matches, MatchEntry{
			ID:            m.Director.ID,
			Name:          m.Director.Name,
			Cluster:       string(m.Director.Cluster),
			KnownFor:      m.Director.KnownFor,
			Vector:        vectorToJSON(m.Director.Vector),
			VisualMandate: m.Director.VisualMandate,
			Distance:      m.Distance,
			Rank:          m.Rank,
			Quadrant:      string(style.QuadrantOf(m.Director.Vector)),
			EmotionTier:   string(style.EmotionTierOf(m.Director.Vector)),
		})
	}
	c.JSON(http.StatusOK, resp)
}
