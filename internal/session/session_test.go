package session_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/leighmacdonald/fpl-form/internal/fpl"
	"github.com/leighmacdonald/fpl-form/internal/session"
	"github.com/leighmacdonald/fpl-form/internal/tracker"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	calls atomic.Int32
	data  fpl.Bootstrap
	err   error
}

func (f *stubFetcher) Fetch(_ context.Context) (fpl.Bootstrap, error) {
	f.calls.Add(1)

	return f.data, f.err
}

func testData() fpl.Bootstrap {
	return fpl.Bootstrap{
		Players: []fpl.PlayerRecord{
			{WebName: "A", Form: "5.0", NowCost: 50, ElementType: 1, Team: 1, Status: "a"},
			{WebName: "B", Form: "9.0", NowCost: 140, ElementType: 2, Team: 2, Status: "i"},
		},
		Clubs: []fpl.ClubRecord{{ID: 2, Name: "ClubY"}, {ID: 1, Name: "ClubX"}},
	}
}

func TestOpenFetchesOnce(t *testing.T) {
	fetcher := &stubFetcher{data: testData()}
	sess, err := session.Open(context.Background(), fetcher)
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID())
	require.Equal(t, 2, sess.Players())
	require.Equal(t, []string{"ClubX", "ClubY"}, sess.Clubs())

	for range 5 {
		rows := sess.Select(tracker.DefaultFilter())
		require.Len(t, rows, 2)
		require.Equal(t, "B", rows[0].Player)
	}

	filter := tracker.DefaultFilter()
	filter.Position = "Goalkeeper"
	rows := sess.Select(filter)
	require.Len(t, rows, 1)
	require.Equal(t, "A", rows[0].Player)

	require.EqualValues(t, 1, fetcher.calls.Load())
}

func TestOpenError(t *testing.T) {
	fetcher := &stubFetcher{err: errors.Join(errors.New("boom"), fpl.ErrFetchDecode, fpl.ErrFetch)}
	sess, err := session.Open(context.Background(), fetcher)
	require.Nil(t, sess)
	require.True(t, errors.Is(err, session.ErrOpen))
	require.True(t, errors.Is(err, fpl.ErrFetchDecode))
}

func TestRegistry(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	fetcher := &stubFetcher{data: testData()}
	registry := session.NewRegistry(fetcher, time.Minute, session.WithClock(func() time.Time { return now }))

	first, err := registry.Start(context.Background())
	require.NoError(t, err)
	second, err := registry.Start(context.Background())
	require.NoError(t, err)
	require.NotEqual(t, first.ID(), second.ID())
	require.Equal(t, 2, registry.Len())

	found, ok := registry.Get(first.ID())
	require.True(t, ok)
	require.Same(t, first, found)

	_, ok = registry.Get("missing")
	require.False(t, ok)

	// Keep the first session alive, let the second go idle.
	now = now.Add(45 * time.Second)
	_, ok = registry.Get(first.ID())
	require.True(t, ok)

	now = now.Add(30 * time.Second)
	_, ok = registry.Get(second.ID())
	require.False(t, ok)

	_, ok = registry.Get(first.ID())
	require.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, err = registry.Start(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, registry.Len())
	require.EqualValues(t, 3, fetcher.calls.Load())
}

func TestRegistryFailedStart(t *testing.T) {
	fetcher := &stubFetcher{err: fpl.ErrFetch}
	registry := session.NewRegistry(fetcher, time.Minute)

	_, err := registry.Start(context.Background())
	require.Error(t, err)
	require.Zero(t, registry.Len())
}
