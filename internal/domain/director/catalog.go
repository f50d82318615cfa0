package director

import (
	"github.com/turtacn/CineStyle-Engine/internal/domain/style"
	"github.com/turtacn/CineStyle-Engine/pkg/errors"
)

// Catalog is an ordered, immutable list of director profiles.  Declaration
// order is significant: ranking uses it as the deterministic tie-break, so a
// Catalog preserves the order profiles were supplied in.
type Catalog struct {
	profiles []Profile
	byID     map[string]int
}

// NewCatalog validates the profiles and builds a catalog.  Validation
// enforces: at least one profile, structurally valid profiles, unique ids.
// The input slice is copied; later mutation of the argument does not affect
// the catalog.
func NewCatalog(profiles []Profile) (*Catalog, error) {
	if len(profiles) == 0 {
		return nil, errors.New(errors.ErrCodeCatalogEmpty, "director catalog is empty")
	}
	byID := make(map[string]int, len(profiles))
	copied := make([]Profile, len(profiles))
	for i := range profiles {
		p := profiles[i]
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := byID[p.ID]; dup {
			return nil, errors.New(errors.ErrCodeDuplicateDirector,
				"duplicate director id in catalog").WithDetail("id=" + p.ID)
		}
		p.Vector = p.Vector.Clone()
		p.KnownFor = append([]string(nil), p.KnownFor...)
		byID[p.ID] = i
		copied[i] = p
	}
	return &Catalog{profiles: copied, byID: byID}, nil
}

// Len returns the number of profiles in the catalog.
func (c *Catalog) Len() int { return len(c.profiles) }

// Profiles returns the profiles in declaration order.  The slice is a copy;
// the catalog itself is never exposed for mutation.
func (c *Catalog) Profiles() []Profile {
	out := make([]Profile, len(c.profiles))
	copy(out, c.profiles)
	return out
}

// ByID looks up a profile by its catalog id.
func (c *Catalog) ByID(id string) (Profile, error) {
	i, ok := c.byID[id]
	if !ok {
		return Profile{}, errors.New(errors.ErrCodeDirectorNotFound,
			"director not found in catalog").WithDetail("id=" + id)
	}
	return c.profiles[i], nil
}

// Each calls fn for every profile in declaration order, stopping early if fn
// returns false.  Iteration order is the ranking tie-break order.
func (c *Catalog) Each(fn func(idx int, p Profile) bool) {
	for i := range c.profiles {
		if !fn(i, c.profiles[i]) {
			return
		}
	}
}

// DefaultCatalog returns the built-in director catalog.  Deployments can
// replace it with a YAML catalog file; this static set keeps the engine
// usable with zero configuration.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultProfiles())
	if err != nil {
		// The built-in data is fixed at compile time; failing to validate
		// is a programming error, not a runtime condition.
		panic(err)
	}
	return c
}

func defaultProfiles() []Profile {
	v := func(scale, spectacle, structure, fluidity, emotion, pacing, texture float64) style.Vector {
		return style.Vector{
			style.AxisScale:         scale,
			style.AxisSpectacle:     spectacle,
			style.AxisStructure:     structure,
			style.AxisGenreFluidity: fluidity,
			style.AxisEmotion:       emotion,
			style.AxisPacing:        pacing,
			style.AxisTexture:       texture,
		}
	}
	return []Profile{
		{
			ID: "kurosawa-a", Name: "Akira Kurosawa", Cluster: ClusterClassicist,
			KnownFor: []string{"Drama", "Action", "Historical"},
			Vector:   v(8, 7, 3, 4, 7, 6, 8),
			VisualMandate: "Weather as dramatic force; telephoto compression; movement staged in depth.",
		},
		{
			ID: "villeneuve-d", Name: "Denis Villeneuve", Cluster: ClusterVisionary,
			KnownFor: []string{"Sci-Fi", "Thriller", "Drama"},
			Vector:   v(9, 8, 4, 5, 5, 3, 7),
			VisualMandate: "Monumental negative space; desaturated palettes; low-frequency sound beds.",
		},
		{
			ID: "anderson-w", Name: "Wes Anderson", Cluster: ClusterMinimalist,
			KnownFor: []string{"Comedy", "Drama"},
			Vector:   v(3, 4, 8, 7, 4, 7, 9),
			VisualMandate: "Planimetric symmetry; saturated pastel blocking; whip pans over cuts.",
		},
		{
			ID: "nolan-c", Name: "Christopher Nolan", Cluster: ClusterVisionary,
			KnownFor: []string{"Sci-Fi", "Thriller", "Action"},
			Vector:   v(9, 9, 7, 5, 5, 8, 6),
			VisualMandate: "Practical spectacle at scale; cross-cut time structures; IMAX-first framing.",
		},
		{
			ID: "varda-a", Name: "Agnès Varda", Cluster: ClusterHumanist,
			KnownFor: []string{"Documentary", "Drama"},
			Vector:   v(2, 2, 8, 8, 6, 4, 5),
			VisualMandate: "Handheld intimacy; found texture; direct-address warmth.",
		},
		{
			ID: "lynch-d", Name: "David Lynch", Cluster: ClusterProvocateur,
			KnownFor: []string{"Horror", "Mystery", "Drama"},
			Vector:   v(4, 5, 9, 9, 8, 3, 8),
			VisualMandate: "Industrial drones under domestic calm; sodium light; dream logic cuts.",
		},
		{
			ID: "gerwig-g", Name: "Greta Gerwig", Cluster: ClusterHumanist,
			KnownFor: []string{"Comedy", "Drama", "Romance"},
			Vector:   v(4, 4, 4, 5, 8, 8, 6),
			VisualMandate: "Warm ensemble blocking; overlapping dialogue rhythm; lived-in color.",
		},
		{
			ID: "miller-g", Name: "George Miller", Cluster: ClusterMaximalist,
			KnownFor: []string{"Action", "Sci-Fi"},
			Vector:   v(8, 10, 5, 6, 7, 10, 7),
			VisualMandate: "Center-framed chaos; crash-zoom punctuation; speed as emotion.",
		},
		{
			ID: "ozu-y", Name: "Yasujirō Ozu", Cluster: ClusterMinimalist,
			KnownFor: []string{"Drama", "Family"},
			Vector:   v(1, 1, 9, 2, 6, 2, 7),
			VisualMandate: "Tatami-level statics; pillow shots; 360-degree space.",
		},
		{
			ID: "bigelow-k", Name: "Kathryn Bigelow", Cluster: ClusterClassicist,
			KnownFor: []string{"Thriller", "Action", "War"},
			Vector:   v(7, 7, 3, 3, 7, 9, 4),
			VisualMandate: "Embedded-camera immediacy; procedural tension; available light.",
		},
		{
			ID: "jodorowsky-a", Name: "Alejandro Jodorowsky", Cluster: ClusterProvocateur,
			KnownFor: []string{"Fantasy", "Horror", "Western"},
			Vector:   v(6, 8, 10, 10, 9, 5, 9),
			VisualMandate: "Tableau surrealism; ritual color; symbolic staging over continuity.",
		},
		{
			ID: "spielberg-s", Name: "Steven Spielberg", Cluster: ClusterClassicist,
			KnownFor: []string{"Adventure", "Sci-Fi", "Drama", "Family"},
			Vector:   v(8, 8, 2, 4, 8, 7, 5),
			VisualMandate: "Oner-driven blocking; push-in awe; backlight through haze.",
		},
	}
}
