// Package blending composes hybrid director profiles: a weighted mix of two
// catalog directors with derived classification and parent distances.
package blending

import (
	"context"
	"math"

	"github.com/turtacn/CineStyle-Engine/internal/domain/director"
	"github.com/turtacn/CineStyle-Engine/internal/domain/style"
	"github.com/turtacn/CineStyle-Engine/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/CineStyle-Engine/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/CineStyle-Engine/pkg/errors"
)

// Interactive weight bounds.  The domain blend accepts any weight in [0, 1];
// selections made through the API or CLI are additionally confined to this
// range and snapped to the step so slider positions are reproducible.
const (
	WeightMin  = 0.10
	WeightMax  = 0.90
	WeightStep = 0.05
)

// Selection names the two parents and the primary weight.
type Selection struct {
	PrimaryID   string  `json:"primaryId"`
	SecondaryID string  `json:"secondaryId"`
	Weight      float64 `json:"weight"`
}

// Hybrid is the resolved blend result.  It carries the effective weight
// after snapping, the blended vector, the classification derived from it,
// and the style distance from each parent.
type Hybrid struct {
	Primary           director.Profile  `json:"primary"`
	Secondary         director.Profile  `json:"secondary"`
	Weight            float64           `json:"weight"`
	Vector            style.Vector      `json:"vector"`
	Cluster           director.Cluster  `json:"cluster"`
	Quadrant          style.Quadrant    `json:"quadrant"`
	EmotionTier       style.EmotionTier `json:"emotionTier"`
	DistancePrimary   float64           `json:"distancePrimary"`
	DistanceSecondary float64           `json:"distanceSecondary"`
}

// Service resolves blend selections against the live catalog.
type Service interface {
	// BlendSelection resolves both parents, snaps the weight, and returns
	// the hybrid.  The hybrid inherits the primary parent's cluster.
	BlendSelection(ctx context.Context, sel Selection) (*Hybrid, error)
}

// ServiceConfig holds construction dependencies for the blending service.
type ServiceConfig struct {
	Provider *director.Provider
	Logger   logging.Logger
	Metrics  *prometheus.Metrics
}

type serviceImpl struct {
	provider *director.Provider
	logger   logging.Logger
	metrics  *prometheus.Metrics
}

// NewService constructs the blending Service.
func NewService(cfg ServiceConfig) (Service, error) {
	if cfg.Provider == nil {
		return nil, errors.NewValidation("blending service requires a catalog provider")
	}
	if cfg.Logger == nil {
		return nil, errors.NewValidation("blending service requires a logger")
	}
	return &serviceImpl{
		provider: cfg.Provider,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
	}, nil
}

func (s *serviceImpl) BlendSelection(ctx context.Context, sel Selection) (*Hybrid, error) {
	if sel.PrimaryID == sel.SecondaryID {
		return nil, errors.New(errors.ErrCodeBlendPairInvalid,
			"blend requires two distinct directors").WithDetail("id=" + sel.PrimaryID)
	}

	catalog := s.provider.Current()
	if catalog == nil || catalog.Len() == 0 {
		return nil, errors.New(errors.ErrCodeCatalogEmpty, "no catalog available for blending")
	}

	primary, err := catalog.ByID(sel.PrimaryID)
	if err != nil {
		return nil, err
	}
	secondary, err := catalog.ByID(sel.SecondaryID)
	if err != nil {
		return nil, err
	}

	weight := SnapWeight(sel.Weight)
	blended, err := style.Blend(primary.Vector, secondary.Vector, weight)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeBlendPairInvalid, "blend failed")
	}

	distPrimary, err := style.Distance(blended, primary.Vector)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeBlendPairInvalid, "parent distance failed")
	}
	distSecondary, err := style.Distance(blended, secondary.Vector)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeBlendPairInvalid, "parent distance failed")
	}

	if s.metrics != nil {
		s.metrics.BlendRequestsTotal.Inc()
	}
	s.logger.Debug("blend resolved",
		logging.String("primary", primary.ID),
		logging.String("secondary", secondary.ID),
		logging.Float64("weight", weight),
	)

	return &Hybrid{
		Primary:           primary,
		Secondary:         secondary,
		Weight:            weight,
		Vector:            blended,
		Cluster:           primary.Cluster,
		Quadrant:          style.QuadrantOf(blended),
		EmotionTier:       style.EmotionTierOf(blended),
		DistancePrimary:   distPrimary,
		DistanceSecondary: distSecondary,
	}, nil
}

// SnapWeight clamps a requested weight into [WeightMin, WeightMax] and snaps
// it to the nearest WeightStep increment.
func SnapWeight(w float64) float64 {
	if w < WeightMin {
		return WeightMin
	}
	if w > WeightMax {
		return WeightMax
	}
	steps := math.Round((w - WeightMin) / WeightStep)
	return WeightMin + steps*WeightStep
}
