package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/CineStyle-Engine/internal/domain/director"
	"github.com/turtacn/CineStyle-Engine/internal/domain/style"
)

// DirectorHandler serves the catalog.
type DirectorHandler struct {
	provider *director.Provider
}

// NewDirectorHandler constructs a DirectorHandler.
func NewDirectorHandler(provider *director.Provider) *DirectorHandler {
	return &DirectorHandler{provider: provider}
}

// DirectorEntry is one catalog entry with its derived classification.
type DirectorEntry struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Cluster       string             `json:"cluster"`
	KnownFor      []string           `json:"knownFor"`
	Vector        map[string]float64 `json:"vector"`
	VisualMandate string             `json:"visualMandate,omitempty"`
	Quadrant      string             `json:"quadrant"`
	EmotionTier   string             `json:"emotionTier"`
}

func toDirectorEntry(p director.Profile) DirectorEntry {
	return DirectorEntry{
		ID:            p.ID,
		Name:          p.Name,
		Cluster:       string(p.Cluster),
		KnownFor:      p.KnownFor,
		Vector:        vectorToJSON(p.Vector),
		VisualMandate: p.VisualMandate,
		Quadrant:      string(style.QuadrantOf(p.Vector)),
		EmotionTier:   string(style.EmotionTierOf(p.Vector)),
	}
}

// List handles GET /api/v1/directors.
func (h *DirectorHandler) List(c *gin.Context) {
	catalog := h.provider.Current()
	entries := make([]DirectorEntry, 0)
	if catalog != nil {
		for _, p := range catalog.Profiles() {
			entries = append(entries, toDirectorEntry(p))
		}
	}
	c.JSON(http.StatusOK, gin.H{"directors": entries})
}

// Get handles GET /api/v1/directors/:id.
func (h *DirectorHandler) Get(c *gin.Context) {
	catalog := h.provider.Current()
	if catalog == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "catalog not loaded"})
		return
	}

	p, err := catalog.ByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDirectorEntry(p))
}
