package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/localsquares/board-rotation/internal/models/po"
	"github.com/localsquares/board-rotation/internal/repositories"
	"github.com/stretchr/testify/require"
)

func TestPinRepository_ListActiveByBoard(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	repo := newPinRepo()
	boardID := uuid.New()
	base := time.Now().UTC().Add(-48 * time.Hour).Truncate(time.Microsecond)

	activeSub, canceledSub := uuid.New(), uuid.New()
	require.NoError(t, repo.UpsertSubscription(ctx, nil, activeSub, uuid.New(), po.SubscriptionStatusActive))
	require.NoError(t, repo.UpsertSubscription(ctx, nil, canceledSub, uuid.New(), "canceled"))

	first := seedPin(t, boardID, func(in *repositories.UpsertPinInput) {
		in.CreatedAt = timePtr(base)
		in.SubscriptionID = &activeSub
		in.Caption = stringPtr("Fresh bread daily")
		in.Impressions24h = 4
	})
	second := seedPin(t, boardID, func(in *repositories.UpsertPinInput) {
		in.CreatedAt = timePtr(base.Add(time.Hour))
		in.SubscriptionID = &canceledSub
	})
	third := seedPin(t, boardID, func(in *repositories.UpsertPinInput) {
		in.CreatedAt = timePtr(base.Add(2 * time.Hour))
	})
	paused := seedPin(t, boardID, func(in *repositories.UpsertPinInput) { in.Status = "paused" })
	archived := seedPin(t, boardID, func(in *repositories.UpsertPinInput) { in.Status = "archived" })
	seedPin(t, uuid.New())

	pins, err := repo.ListActiveByBoard(ctx, nil, boardID)
	require.NoError(t, err)
	require.Len(t, pins, 3)
	require.Equal(t, []uuid.UUID{first, second, third}, []uuid.UUID{pins[0].ID, pins[1].ID, pins[2].ID})
	for _, pin := range pins {
		require.NotEqual(t, paused, pin.ID)
		require.NotEqual(t, archived, pin.ID)
		require.Equal(t, po.PinStatusActive, pin.Status)
	}

	require.Equal(t, int64(4), pins[0].Impressions24h)
	require.Equal(t, "Fresh bread daily", *pins[0].Caption)
	require.Equal(t, po.SubscriptionStatusActive, *pins[0].SubscriptionStatus)
	require.Equal(t, "canceled", *pins[1].SubscriptionStatus)
	require.Nil(t, pins[2].SubscriptionStatus)
	require.Nil(t, pins[2].ContentUpdatedAt)
	require.NotNil(t, pins[2].LastImpressionReset)
	require.WithinDuration(t, base, *pins[0].CreatedAt, time.Millisecond)

	empty, err := repo.ListActiveByBoard(ctx, nil, uuid.New())
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestPinRepository_ResetCounterIsConditional(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	repo := newPinRepo()
	boardID := uuid.New()
	now := time.Now().UTC()
	threshold := now.Add(-24 * time.Hour)

	overdue := seedPin(t, boardID, func(in *repositories.UpsertPinInput) {
		in.Impressions24h = 12
		in.LastImpressionReset = timePtr(now.Add(-30 * time.Hour))
	})
	fresh := seedPin(t, boardID, func(in *repositories.UpsertPinInput) {
		in.Impressions24h = 3
		in.LastImpressionReset = timePtr(now.Add(-time.Hour))
	})

	ids, err := repo.ListOverdueForReset(ctx, nil, threshold)
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{overdue}, ids)

	ok, err := repo.ResetCounter(ctx, nil, overdue, threshold, now)
	require.NoError(t, err)
	require.True(t, ok)

	// 第二次执行时已不再逾期。
	ok, err = repo.ResetCounter(ctx, nil, overdue, threshold, now)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = repo.ResetCounter(ctx, nil, fresh, threshold, now)
	require.NoError(t, err)
	require.False(t, ok)

	pin, err := repo.Get(ctx, nil, overdue)
	require.NoError(t, err)
	require.Zero(t, pin.Impressions24h)
	require.WithinDuration(t, now, *pin.LastImpressionReset, time.Millisecond)

	pin, err = repo.Get(ctx, nil, fresh)
	require.NoError(t, err)
	require.Equal(t, int64(3), pin.Impressions24h)

	ids, err = repo.ListOverdueForReset(ctx, nil, threshold)
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestPinRepository_Counters(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	repo := newPinRepo()
	pinID := seedPin(t, uuid.New())

	require.NoError(t, repo.IncrementImpressions(ctx, nil, pinID))
	require.NoError(t, repo.IncrementImpressions(ctx, nil, pinID))
	require.NoError(t, repo.IncrementClicks(ctx, nil, pinID))

	pin, err := repo.Get(ctx, nil, pinID)
	require.NoError(t, err)
	require.Equal(t, int64(2), pin.Impressions24h)
	require.Equal(t, int64(2), pin.ViewCount)
	require.Equal(t, int64(1), pin.ClickCount)

	_, err = repo.Get(ctx, nil, uuid.New())
	require.ErrorIs(t, err, repositories.ErrPinNotFound)
}
