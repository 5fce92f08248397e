package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	client := newTestClient(t, newTestServer(t))
	return NewSession(client, NewCache())
}

func TestSession_SyncLoadsServerCart(t *testing.T) {
	session := newTestSession(t)

	require.NoError(t, session.Sync(context.Background()))

	state := session.Cache().State()
	require.Empty(t, state.Items)
	require.False(t, state.Loading)
	require.Empty(t, state.Err)
}

func TestSession_MutationsReplaceStoreWholesale(t *testing.T) {
	session := newTestSession(t)
	ctx := context.Background()
	require.NoError(t, session.Sync(ctx))

	require.NoError(t, session.Add(ctx, backpack, 2))
	require.Equal(t, int64(2), session.Cache().State().ItemCount())

	require.NoError(t, session.SetQuantity(ctx, backpack.ID, 5))
	require.Equal(t, int64(5), session.Cache().State().ItemCount())

	require.NoError(t, session.Remove(ctx, backpack.ID))
	require.Empty(t, session.Cache().State().Items)
}

func TestSession_ClearEmptiesStore(t *testing.T) {
	session := newTestSession(t)
	ctx := context.Background()
	require.NoError(t, session.Add(ctx, backpack, 3))

	require.NoError(t, session.Clear(ctx))
	require.Empty(t, session.Cache().State().Items)
}

func TestSession_RejectionKeepsStaleState(t *testing.T) {
	session := newTestSession(t)
	ctx := context.Background()
	require.NoError(t, session.Add(ctx, backpack, 2))

	err := session.Add(ctx, backpack, -1)
	require.Error(t, err)

	state := session.Cache().State()
	require.NotEmpty(t, state.Err, "the server's rejection message surfaces")
	require.Equal(t, int64(2), state.ItemCount(), "the last accepted cart stays in place")
}

func TestSession_NetworkFailureSurfacesGenericMessage(t *testing.T) {
	server := newTestServer(t)
	client := newTestClient(t, server)
	session := NewSession(client, NewCache())
	ctx := context.Background()
	require.NoError(t, session.Add(ctx, backpack, 1))

	server.Close()
	require.Error(t, session.Sync(ctx))

	state := session.Cache().State()
	require.Equal(t, networkFailureMessage, state.Err)
	require.Equal(t, int64(1), state.ItemCount(), "stale items keep rendering while offline")
}

func TestSession_SubscribersSeeEveryTransition(t *testing.T) {
	session := newTestSession(t)

	var states []State
	unsubscribe := session.Cache().Subscribe(func(s State) { states = append(states, s) })
	defer unsubscribe()

	require.NoError(t, session.Add(context.Background(), backpack, 1))

	require.Len(t, states, 2, "loading then replaced")
	require.True(t, states[0].Loading)
	require.False(t, states[1].Loading)
	require.Equal(t, int64(1), states[1].ItemCount())
}
