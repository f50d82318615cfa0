package blending

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/CineStyle-Engine/internal/domain/director"
	"github.com/turtacn/CineStyle-Engine/internal/domain/style"
	"github.com/turtacn/CineStyle-Engine/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/CineStyle-Engine/pkg/errors"
)

const testEpsilon = 1e-9

func testVector(t *testing.T, scale, spectacle, structure, fluidity, emotion float64) style.Vector {
	t.Helper()
	v, err := style.NewVector(map[style.Axis]float64{
		style.AxisScale:         scale,
		style.AxisSpectacle:     spectacle,
		style.AxisStructure:     structure,
		style.AxisGenreFluidity: fluidity,
		style.AxisEmotion:       emotion,
	})
	require.NoError(t, err)
	return v
}

func testService(t *testing.T) Service {
	t.Helper()
	catalog, err := director.NewCatalog([]director.Profile{
		{
			ID:      "epic",
			Name:    "Epic Director",
			Cluster: director.ClusterMaximalist,
			Vector:  testVector(t, 8, 9, 3, 2, 8),
		},
		{
			ID:      "intimate",
			Name:    "Intimate Director",
			Cluster: director.ClusterHumanist,
			Vector:  testVector(t, 2, 2, 2, 3, 6),
		},
	})
	require.NoError(t, err)
	svc, err := NewService(ServiceConfig{
		Provider: director.NewProvider(catalog),
		Logger:   logging.NewNopLogger(),
	})
	require.NoError(t, err)
	return svc
}

func TestBlendSelection(t *testing.T) {
	svc := testService(t)

	hybrid, err := svc.BlendSelection(context.Background(), Selection{
		PrimaryID:   "epic",
		SecondaryID: "intimate",
		Weight:      0.7,
	})
	require.NoError(t, err)

	assert.Equal(t, "epic", hybrid.Primary.ID)
	assert.Equal(t, "intimate", hybrid.Secondary.ID)
	assert.InDelta(t, 0.7, hybrid.Weight, testEpsilon)

	// scale blends to 8*0.7 + 2*0.3 = 6.2.
	assert.InDelta(t, 6.2, hybrid.Vector[style.AxisScale], testEpsilon)

	// The hybrid inherits the primary parent's cluster.
	assert.Equal(t, director.ClusterMaximalist, hybrid.Cluster)

	// Classification derives from the blended vector, not either parent.
	assert.Equal(t, style.QuadrantOf(hybrid.Vector), hybrid.Quadrant)
	assert.Equal(t, style.EmotionTierOf(hybrid.Vector), hybrid.EmotionTier)

	// A 0.7 weight sits closer to the primary parent.
	assert.Less(t, hybrid.DistancePrimary, hybrid.DistanceSecondary)
	assert.Greater(t, hybrid.DistancePrimary, 0.0)
}

func TestBlendSelection_PrimaryInheritsByOrder(t *testing.T) {
	svc := testService(t)

	reversed, err := svc.BlendSelection(context.Background(), Selection{
		PrimaryID:   "intimate",
		SecondaryID: "epic",
		Weight:      0.7,
	})
	require.NoError(t, err)
	assert.Equal(t, director.ClusterHumanist, reversed.Cluster)
}

func TestBlendSelection_SameDirectorRejected(t *testing.T) {
	svc := testService(t)

	_, err := svc.BlendSelection(context.Background(), Selection{
		PrimaryID:   "epic",
		SecondaryID: "epic",
		Weight:      0.5,
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeBlendPairInvalid))
}

func TestBlendSelection_UnknownDirector(t *testing.T) {
	svc := testService(t)

	_, err := svc.BlendSelection(context.Background(), Selection{
		PrimaryID:   "epic",
		SecondaryID: "missing",
		Weight:      0.5,
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeDirectorNotFound))
}

func TestSnapWeight(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"below range clamps up", 0.0, WeightMin},
		{"above range clamps down", 1.0, WeightMax},
		{"exact step passes through", 0.5, 0.5},
		{"snaps down to nearest step", 0.52, 0.5},
		{"snaps up to nearest step", 0.53, 0.55},
		{"lower bound", WeightMin, WeightMin},
		{"upper bound", WeightMax, WeightMax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SnapWeight(tt.in), testEpsilon)
		})
	}
}
