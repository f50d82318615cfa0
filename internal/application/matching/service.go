// Package matching implements nearest-director ranking over the catalog:
// distance scoring (optionally genre-aware), stable ordering, and an
// optional response cache.
package matching

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/turtacn/CineStyle-Engine/internal/domain/director"
	"github.com/turtacn/CineStyle-Engine/internal/domain/style"
	"github.com/turtacn/CineStyle-Engine/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/CineStyle-Engine/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/CineStyle-Engine/pkg/errors"
)

// Match is a computed, non-persistent pairing of a director and its distance
// from the target style.  Ordering is transient: it is recomputed whenever
// the target vector or genre context changes.
type Match struct {
	Director director.Profile `json:"director"`
	Distance float64          `json:"distance"`
	Rank     int              `json:"rank"`
}

// MatchCache abstracts the optional response cache.  A nil cache disables
// caching entirely; correctness never depends on it.
type MatchCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// Service ranks the catalog against a target style vector.
type Service interface {
	// NearestDirectors scores target against every catalog entry and
	// returns the n closest, ascending by distance.  With film genres the
	// canonical genre-aware distance applies; with nil/empty genres the
	// plain style distance is used (the older un-genred ranking survives
	// only as this case).  Ties keep catalog declaration order, so
	// identical inputs always produce identical ordered output.
	//
	// n <= 0 or n > catalog size returns the full ranked catalog.
	NearestDirectors(ctx context.Context, target style.Vector, n int, filmGenres []string) ([]Match, error)
}

// ServiceConfig holds construction dependencies for the matching service.
type ServiceConfig struct {
	Provider *director.Provider
	Logger   logging.Logger
	Metrics  *prometheus.Metrics
	Cache    MatchCache
	CacheTTL time.Duration
}

type serviceImpl struct {
	provider *director.Provider
	logger   logging.Logger
	metrics  *prometheus.Metrics
	cache    MatchCache
	cacheTTL time.Duration
}

// NewService constructs the matching Service.  Provider and Logger are
// mandatory; Metrics and Cache are optional.
func NewService(cfg ServiceConfig) (Service, error) {
	if cfg.Provider == nil {
		return nil, errors.NewValidation("matching service requires a catalog provider")
	}
	if cfg.Logger == nil {
		return nil, errors.NewValidation("matching service requires a logger")
	}
	ttl := cfg.CacheTTL
	if ttl == 0 {
		ttl = 5 * time.Minute
	}
	return &serviceImpl{
		provider: cfg.Provider,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
		cache:    cfg.Cache,
		cacheTTL: ttl,
	}, nil
}

func (s *serviceImpl) NearestDirectors(ctx context.Context, target style.Vector, n int, filmGenres []string) ([]Match, error) {
	catalog := s.provider.Current()
	if catalog == nil || catalog.Len() == 0 {
		return nil, errors.New(errors.ErrCodeCatalogEmpty, "no catalog available for matching")
	}

	strategy := "plain"
	if len(filmGenres) > 0 {
		strategy = "genre_aware"
	}
	if s.metrics != nil {
		s.metrics.MatchRequestsTotal.WithLabelValues(strategy).Inc()
	}

	cacheKey := buildCacheKey(target, n, filmGenres)
	if s.cache != nil {
		var cached []Match
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			if s.metrics != nil {
				s.metrics.MatchCacheHits.Inc()
			}
			s.logger.Debug("match cache hit", logging.String("key", cacheKey))
			return cached, nil
		}
		if s.metrics != nil {
			s.metrics.MatchCacheMisses.Inc()
		}
	}

	start := time.Now()
	matches, err := rankCatalog(catalog, target, filmGenres)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.MatchDuration.Observe(time.Since(start).Seconds())
	}

	if n > 0 && n < len(matches) {
		matches = matches[:n]
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, matches, s.cacheTTL); err != nil {
			// Caching is best-effort; a failed write never fails the request.
			s.logger.Warn("match cache write failed", logging.Err(err))
		}
	}

	s.logger.Debug("catalog ranked",
		logging.String("strategy", strategy),
		logging.Int("returned", len(matches)),
		logging.Duration("elapsed", time.Since(start)),
	)
	return matches, nil
}

// rankCatalog scores every profile and orders ascending by distance with a
// stable sort, so equal distances keep catalog declaration order.
func rankCatalog(catalog *director.Catalog, target style.Vector, filmGenres []string) ([]Match, error) {
	matches := make([]Match, 0, catalog.Len())
	var scoreErr error
	catalog.Each(func(_ int, p director.Profile) bool {
		d, err := style.GenreAwareDistance(target, p.Vector, p.KnownFor, filmGenres)
		if err != nil {
			scoreErr = errors.Wrap(err, errors.ErrCodeMatchFailed,
				"failed to score director").WithDetail("id=" + p.ID)
			return false
		}
		matches = append(matches, Match{Director: p, Distance: d})
		return true
	})
	if scoreErr != nil {
		return nil, scoreErr
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})
	for i := range matches {
		matches[i].Rank = i + 1
	}
	return matches, nil
}

// buildCacheKey derives a deterministic key from the ranking inputs.  Axis
// iteration is sorted and genres are normalized so logically identical
// requests share a key.
func buildCacheKey(target style.Vector, n int, filmGenres []string) string {
	var sb strings.Builder
	for _, axis := range target.Axes() {
		fmt.Fprintf(&sb, "%s=%g;", axis, target[axis])
	}
	fmt.Fprintf(&sb, "n=%d;", n)

	genres := make([]string, 0, len(filmGenres))
	for _, g := range filmGenres {
		genres = append(genres, strings.ToLower(strings.TrimSpace(g)))
	}
	sort.Strings(genres)
	fmt.Fprintf(&sb, "genres=%s", strings.Join(genres, ","))

	sum := sha256.Sum256([]byte(sb.String()))
	return "match:" + hex.EncodeToString(sum[:16])
}
