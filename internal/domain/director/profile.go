// Package director defines the immutable director profile catalog: identity,
// archetype cluster, known genres, style vector, and display directives.
// The catalog is injected configuration, never a package-global singleton,
// so the matching engine stays testable against arbitrary fixtures.
package director

import (
	"github.com/turtacn/CineStyle-Engine/internal/domain/style"
	"github.com/turtacn/CineStyle-Engine/pkg/errors"
)

// Cluster is a fixed stylistic archetype attached to a director profile.
// It is intrinsic catalog data, never computed from the vector, and is
// carried unchanged into derived records (a blended selection inherits the
// primary director's cluster).
type Cluster string

const (
	ClusterVisionary   Cluster = "visionary"
	ClusterClassicist  Cluster = "classicist"
	ClusterMaximalist  Cluster = "maximalist"
	ClusterMinimalist  Cluster = "minimalist"
	ClusterProvocateur Cluster = "provocateur"
	ClusterHumanist    Cluster = "humanist"
)

// IsValid checks if the cluster is a member of the closed enumeration.
func (c Cluster) IsValid() bool {
	switch c {
	case ClusterVisionary, ClusterClassicist, ClusterMaximalist,
		ClusterMinimalist, ClusterProvocateur, ClusterHumanist:
		return true
	default:
		return false
	}
}

// String returns the string representation of the cluster.
func (c Cluster) String() string { return string(c) }

// ParseCluster parses a string into a Cluster.
func ParseCluster(s string) (Cluster, error) {
	c := Cluster(s)
	if c.IsValid() {
		return c, nil
	}
	return "", errors.New(errors.ErrCodeClusterInvalid, "unknown director cluster: "+s)
}

// Profile is an immutable catalog entry for one director.
type Profile struct {
	// ID is the stable catalog identifier (e.g., "kurosawa-a").
	ID string `json:"id" mapstructure:"id"`

	// Name is the display name.
	Name string `json:"name" mapstructure:"name"`

	// Cluster is the director's fixed stylistic archetype.
	Cluster Cluster `json:"cluster" mapstructure:"cluster"`

	// KnownFor lists the genres the director is associated with; used by
	// genre-aware distance scoring.
	KnownFor []string `json:"known_for" mapstructure:"known_for"`

	// Vector is the director's style point.  All catalog profiles share
	// one axis set.
	Vector style.Vector `json:"vector" mapstructure:"vector"`

	// VisualMandate carries free-form visual directives (lighting notes,
	// palette guidance).  Display only; no computation reads it.
	VisualMandate string `json:"visual_mandate,omitempty" mapstructure:"visual_mandate"`
}

// Validate checks structural integrity of a single profile.
func (p *Profile) Validate() error {
	if p.ID == "" {
		return errors.New(errors.ErrCodeCatalogInvalid, "director profile requires an id")
	}
	if p.Name == "" {
		return errors.New(errors.ErrCodeCatalogInvalid, "director profile requires a name").
			WithDetail("id=" + p.ID)
	}
	if !p.Cluster.IsValid() {
		return errors.New(errors.ErrCodeClusterInvalid, "unknown director cluster").
			WithDetail("id=" + p.ID + " cluster=" + string(p.Cluster))
	}
	if _, err := style.NewVector(p.Vector); err != nil {
		return errors.Wrap(err, errors.ErrCodeCatalogInvalid, "invalid style vector").
			WithDetail("id=" + p.ID)
	}
	return nil
}

// Quadrant returns the director's coarse style classification.
func (p *Profile) Quadrant() style.Quadrant {
	return style.QuadrantOf(p.Vector)
}

// EmotionTier returns the director's emotional tier label.
func (p *Profile) EmotionTier() style.EmotionTier {
	return style.EmotionTierOf(p.Vector)
}
