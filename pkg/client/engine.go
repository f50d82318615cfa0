package client

import (
	"context"
	"fmt"
	"net/url"
)

// Vector is an axis-name to value mapping as the API speaks it.
type Vector map[string]float64

// Director is one catalog entry as returned by the API.
type Director struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Cluster       string   `json:"cluster"`
	KnownFor      []string `json:"knownFor"`
	Vector        Vector   `json:"vector"`
	VisualMandate string   `json:"visualMandate"`
	Quadrant      string   `json:"quadrant"`
	EmotionTier   string   `json:"emotionTier"`
}

// Match is one ranked result.
type Match struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Cluster       string   `json:"cluster"`
	KnownFor      []string `json:"knownFor"`
	Vector        Vector   `json:"vector"`
	VisualMandate string   `json:"visualMandate"`
	Distance      float64  `json:"distance"`
	Rank          int      `json:"rank"`
	Quadrant      string   `json:"quadrant"`
	EmotionTier   string   `json:"emotionTier"`
}

// MatchRequest asks for the n nearest directors to a target vector,
// optionally discounted by genre overlap.
type MatchRequest struct {
	Vector Vector   `json:"vector"`
	N      int      `json:"n,omitempty"`
	Genres []string `json:"genres,omitempty"`
}

// BlendRequest mixes two directors at the given primary weight.
type BlendRequest struct {
	PrimaryID   string  `json:"primaryId"`
	SecondaryID string  `json:"secondaryId"`
	Weight      float64 `json:"weight"`
}

// BlendResult is the hybrid profile the server computed.
type BlendResult struct {
	PrimaryID         string  `json:"primaryId"`
	SecondaryID       string  `json:"secondaryId"`
	Weight            float64 `json:"weight"`
	Vector            Vector  `json:"vector"`
	Cluster           string  `json:"cluster"`
	Quadrant          string  `json:"quadrant"`
	EmotionTier       string  `json:"emotionTier"`
	DistancePrimary   float64 `json:"distancePrimary"`
	DistanceSecondary float64 `json:"distanceSecondary"`
}

// Classification labels an arbitrary vector.
type Classification struct {
	Quadrant      string  `json:"quadrant"`
	QuadrantLabel string  `json:"quadrantLabel"`
	EmotionTier   string  `json:"emotionTier"`
	CompositeX    float64 `json:"compositeX"`
	CompositeY    float64 `json:"compositeY"`
}

// Viewport mirrors the server-side viewport state.
type Viewport struct {
	Zoom     float64 `json:"zoom"`
	PanX     float64 `json:"panX"`
	PanY     float64 `json:"panY"`
	Dragging bool    `json:"dragging"`
}

// Session is a constellation viewport session.
type Session struct {
	ID       string   `json:"id"`
	Viewport Viewport `json:"viewport"`
}

// Gesture is one viewport input event.  Type is one of wheel, drag_start,
// drag_move, drag_end, reset.
type Gesture struct {
	Type           string  `json:"type"`
	DeltaY         float64 `json:"deltaY,omitempty"`
	X              float64 `json:"x,omitempty"`
	Y              float64 `json:"y,omitempty"`
	OnPoint        bool    `json:"onPoint,omitempty"`
	RenderedWidth  float64 `json:"renderedWidth,omitempty"`
	RenderedHeight float64 `json:"renderedHeight,omitempty"`
}

// FramePoint is one projected marker.
type FramePoint struct {
	Kind     string  `json:"kind"`
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Cluster  string  `json:"cluster"`
	Quadrant string  `json:"quadrant"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// Frame is one render frame: projected points plus the visible window.
type Frame struct {
	Points   []FramePoint `json:"points"`
	Viewport Viewport     `json:"viewport"`
	ViewBoxX float64      `json:"viewBoxX"`
	ViewBoxY float64      `json:"viewBoxY"`
	ViewBoxW float64      `json:"viewBoxW"`
	ViewBoxH float64      `json:"viewBoxH"`
}

// Health is the server health report.
type Health struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	Uptime      string `json:"uptime"`
	CatalogSize int    `json:"catalog_size"`
}

// Health fetches the server health report.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var out Health
	if err := c.get(ctx, "/health", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Directors lists the catalog.
func (c *Client) Directors(ctx context.Context) ([]Director, error) {
	var out struct {
		Directors []Director `json:"directors"`
	}
	if err := c.get(ctx, "/api/v1/directors", &out); err != nil {
		return nil, err
	}
	return out.Directors, nil
}

// Director fetches one catalog entry.
func (c *Client) Director(ctx context.Context, id string) (*Director, error) {
	var out Director
	if err := c.get(ctx, "/api/v1/directors/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Match ranks the catalog against the request's target vector.
func (c *Client) Match(ctx context.Context, req MatchRequest) ([]Match, error) {
	var out struct {
		Matches []Match `json:"matches"`
	}
	if err := c.post(ctx, "/api/v1/match", req, &out); err != nil {
		return nil, err
	}
	return out.Matches, nil
}

// Blend mixes two directors into a hybrid profile.
func (c *Client) Blend(ctx context.Context, req BlendRequest) (*BlendResult, error) {
	var out BlendResult
	if err := c.post(ctx, "/api/v1/blend", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Classify labels an arbitrary style vector.
func (c *Client) Classify(ctx context.Context, vector Vector) (*Classification, error) {
	var out Classification
	body := map[string]Vector{"vector": vector}
	if err := c.post(ctx, "/api/v1/classify", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateSession starts a constellation viewport session.
func (c *Client) CreateSession(ctx context.Context) (*Session, error) {
	var out Session
	if err := c.post(ctx, "/api/v1/constellation/sessions", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CloseSession discards a viewport session.
func (c *Client) CloseSession(ctx context.Context, sessionID string) error {
	return c.deleteReq(ctx, "/api/v1/constellation/sessions/"+url.PathEscape(sessionID))
}

// ApplyGesture feeds one gesture into a session and returns the updated
// viewport.
func (c *Client) ApplyGesture(ctx context.Context, sessionID string, g Gesture) (*Viewport, error) {
	var out struct {
		Viewport Viewport `json:"viewport"`
	}
	path := fmt.Sprintf("/api/v1/constellation/sessions/%s/gestures", url.PathEscape(sessionID))
	if err := c.post(ctx, path, g, &out); err != nil {
		return nil, err
	}
	return &out.Viewport, nil
}

// RenderFrame projects the catalog plus optional target and blend vectors
// under the session's viewport.
func (c *Client) RenderFrame(ctx context.Context, sessionID string, target, blend Vector) (*Frame, error) {
	var out Frame
	body := map[string]Vector{}
	if target != nil {
		body["target"] = target
	}
	if blend != nil {
		body["blend"] = blend
	}
	path := fmt.Sprintf("/api/v1/constellation/sessions/%s/frame", url.PathEscape(sessionID))
	if err := c.post(ctx, path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
