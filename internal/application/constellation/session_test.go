package constellation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/CineStyle-Engine/internal/domain/director"
	"github.com/turtacn/CineStyle-Engine/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/CineStyle-Engine/pkg/errors"
)

func sessionService(t *testing.T) Service {
	t.Helper()
	catalog, err := director.NewCatalog([]director.Profile{
		{
			ID:      "d1",
			Name:    "First",
			Cluster: director.ClusterClassicist,
			Vector:  planeVector(t, 8, 8, 2, 2, 5),
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

func TestSessionLifecycle(t *testing.T) {
	svc := sessionService(t)
	ctx := context.Background()

	sess, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, DefaultViewport(), sess.Viewport)

	state, err := svc.ApplyGesture(ctx, sess.ID, WheelEvent{DeltaY: -1})
	require.NoError(t, err)
	assert.InDelta(t, 1.25, state.Zoom, testEpsilon)

	// State persists across calls.
	got, err := svc.Viewport(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, state, got)

	svc.CloseSession(ctx, sess.ID)
	_, err = svc.Viewport(ctx, sess.ID)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSessionNotFound))
}

func TestSessionsAreIndependent(t *testing.T) {
	svc := sessionService(t)
	ctx := context.Background()

	a, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	b, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	require.NotEqual(t, a.ID, b.ID)

	_, err = svc.ApplyGesture(ctx, a.ID, WheelEvent{DeltaY: -1})
	require.NoError(t, err)

	bState, err := svc.Viewport(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, DefaultViewport(), bState)
}

func TestApplyGesture_UnknownSession(t *testing.T) {
	svc := sessionService(t)

	_, err := svc.ApplyGesture(context.Background(), "nope", ResetEvent{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSessionNotFound))
}

func TestApplyGesture_NilEvent(t *testing.T) {
	svc := sessionService(t)
	sess, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	_, err = svc.ApplyGesture(context.Background(), sess.ID, nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeGestureInvalid))
}

func TestFrame_ProjectsCatalogUnderSessionViewport(t *testing.T) {
	svc := sessionService(t)
	ctx := context.Background()

	sess, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	target := planeVector(t, 5, 5, 5, 5, 5)
	frame, err := svc.Frame(ctx, sess.ID, target, nil)
	require.NoError(t, err)
	require.Len(t, frame.Points, 2)
	assert.Equal(t, PointKindDirector, frame.Points[0].Kind)
	assert.Equal(t, PointKindTarget, frame.Points[1].Kind)

	_, err = svc.Frame(ctx, "nope", target, nil)
	require.Error(t, err)
}
