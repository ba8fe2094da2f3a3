package discovery

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestScrollLoadController_TriggersNearEnd(t *testing.T) {
	source := &fakeSource{candidates: makeCandidates(45)}
	session := newTestSession(source, 20)
	controller := NewScrollLoadController(session, 5, zap.NewNop())
	ctx := context.Background()

	controller.OnScroll(ctx, session.Token(), 3)
	assert.Len(t, session.Results(), 20)

	// far from the end: no trigger
	controller.OnScroll(ctx, session.Token(), 12)
	assert.Len(t, session.Results(), 20)

	controller.OnScroll(ctx, session.Token(), 5)
	assert.Len(t, session.Results(), 40)
}

func TestScrollLoadController_ExhaustedIsNoOp(t *testing.T) {
	source := &fakeSource{candidates: makeCandidates(10)}
	session := newTestSession(source, 20)
	controller := NewScrollLoadController(session, 5, zap.NewNop())
	ctx := context.Background()

	controller.OnScroll(ctx, session.Token(), 0)
	require.Equal(t, StateExhausted, session.State())

	calls := source.calls()
	controller.OnScroll(ctx, session.Token(), 0)
	assert.Equal(t, calls, source.calls())
}

func TestScrollLoadController_IgnoresStaleToken(t *testing.T) {
	source := &fakeSource{candidates: makeCandidates(10)}
	session := newTestSession(source, 20)
	controller := NewScrollLoadController(session, 5, zap.NewNop())
	ctx := context.Background()

	stale := session.Token()
	session.SetQuery("new query")

	controller.OnScroll(ctx, stale, 0)
	assert.Zero(t, source.calls())
	assert.Equal(t, StateEmpty, session.State())
}

func TestScrollLoadController_StopsAfterFailureUntilRetry(t *testing.T) {
	source := &fakeSource{candidates: makeCandidates(40)}
	session := newTestSession(source, 20)
	controller := NewScrollLoadController(session, 5, zap.NewNop())
	ctx := context.Background()

	controller.OnScroll(ctx, session.Token(), 0)
	require.Len(t, session.Results(), 20)

	source.setError(errors.New("catalog down"))
	controller.OnScroll(ctx, session.Token(), 0)
	require.Equal(t, StateFailed, session.State())

	// further scroll signals must not re-fetch on their own
	calls := source.calls()
	controller.OnScroll(ctx, session.Token(), 0)
	assert.Equal(t, calls, source.calls())

	assert.Error(t, controller.LoadMore(ctx))

	source.setError(nil)
	require.NoError(t, controller.Retry(ctx))
	assert.Len(t, session.Results(), 40)
	assert.Equal(t, StateExhausted, session.State())
}

func TestScrollLoadController_DefaultThreshold(t *testing.T) {
	source := &fakeSource{candidates: makeCandidates(10)}
	session := newTestSession(source, 20)
	controller := NewScrollLoadController(session, 0, zap.NewNop())

	assert.Equal(t, DefaultScrollThreshold, controller.threshold)
}
