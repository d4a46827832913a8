package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/localsquares/board-rotation/internal/models/po"
	"github.com/localsquares/board-rotation/internal/repositories"
	"github.com/localsquares/board-rotation/internal/services"
	"github.com/localsquares/board-rotation/internal/services/mocks"
	"github.com/stretchr/testify/require"
)

type analyticsFixture struct {
	pins       *mocks.MockPinStore
	engagement *mocks.MockEngagementStore
	tx         *mocks.MockTransactor
	service    *services.AnalyticsService
}

func newAnalyticsFixture(t *testing.T) *analyticsFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &analyticsFixture{
		pins:       mocks.NewMockPinStore(ctrl),
		engagement: mocks.NewMockEngagementStore(ctrl),
		tx:         mocks.NewMockTransactor(ctrl),
	}
	f.service = services.NewAnalyticsService(f.pins, f.engagement, f.tx, func() time.Time { return fixedNow }, stdLogger)
	return f
}

func TestAnalyticsService_RecordClick(t *testing.T) {
	f := newAnalyticsFixture(t)
	pinID, boardID := uuid.New(), uuid.New()

	f.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
	f.engagement.EXPECT().InsertClick(gomock.Any(), nil, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ repositories.Session, evt po.Click) error {
			require.Equal(t, pinID, evt.PinID)
			require.Equal(t, po.ClickTypeMap, evt.ClickType)
			require.Equal(t, fixedNow, evt.CreatedAt)
			return nil
		})
	f.pins.EXPECT().IncrementClicks(gomock.Any(), nil, pinID).Return(nil)

	err := f.service.RecordClick(context.Background(), services.RecordClickInput{PinID: pinID, BoardID: boardID, ClickType: "MAP"})
	require.NoError(t, err)
}

func TestAnalyticsService_RecordClick_Failure(t *testing.T) {
	f := newAnalyticsFixture(t)
	pinID, boardID := uuid.New(), uuid.New()

	f.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
	f.engagement.EXPECT().InsertClick(gomock.Any(), nil, gomock.Any()).Return(nil)
	f.pins.EXPECT().IncrementClicks(gomock.Any(), nil, pinID).Return(errStore)

	err := f.service.RecordClick(context.Background(), services.RecordClickInput{PinID: pinID, BoardID: boardID})
	require.ErrorIs(t, err, services.ErrStoreUnavailable)

	err = f.service.RecordClick(context.Background(), services.RecordClickInput{BoardID: boardID})
	require.ErrorIs(t, err, services.ErrInvalidArgument)
}

func TestAnalyticsService_GetPinStats(t *testing.T) {
	f := newAnalyticsFixture(t)
	pinID := uuid.New()
	since := fixedNow.Add(-7 * 24 * time.Hour)

	f.engagement.EXPECT().CountImpressionsSince(gomock.Any(), nil, pinID, since).Return(int64(200), nil)
	f.engagement.EXPECT().CountClicksByTypeSince(gomock.Any(), nil, pinID, since).
		Return(map[string]int64{"pin": 6, "website": 4}, nil)

	stats, err := f.service.GetPinStats(context.Background(), pinID, 0)
	require.NoError(t, err)
	require.Equal(t, 7, stats.Days)
	require.Equal(t, int64(200), stats.Impressions)
	require.Equal(t, int64(10), stats.Clicks)
	require.Equal(t, map[string]int64{"pin": 6, "website": 4}, stats.ClicksByType)
	require.InDelta(t, 0.05, stats.CTR, 1e-9)
}

func TestAnalyticsService_GetPinStats_NoImpressions(t *testing.T) {
	f := newAnalyticsFixture(t)
	pinID := uuid.New()
	since := fixedNow.Add(-services.MaxStatsDays * 24 * time.Hour)

	f.engagement.EXPECT().CountImpressionsSince(gomock.Any(), nil, pinID, since).Return(int64(0), nil)
	f.engagement.EXPECT().CountClicksByTypeSince(gomock.Any(), nil, pinID, since).Return(map[string]int64{"share": 1}, nil)

	stats, err := f.service.GetPinStats(context.Background(), pinID, 365)
	require.NoError(t, err)
	require.Equal(t, services.MaxStatsDays, stats.Days)
	require.Zero(t, stats.CTR)
	require.Equal(t, int64(1), stats.Clicks)
}

func TestAnalyticsService_GetPinStats_LargeCountsKeepInt64(t *testing.T) {
	f := newAnalyticsFixture(t)
	pinID := uuid.New()
	const big = int64(1) << 40

	f.engagement.EXPECT().CountImpressionsSince(gomock.Any(), nil, pinID, gomock.Any()).Return(big*4, nil)
	f.engagement.EXPECT().CountClicksByTypeSince(gomock.Any(), nil, pinID, gomock.Any()).Return(map[string]int64{"map": big}, nil)

	stats, err := f.service.GetPinStats(context.Background(), pinID, 7)
	require.NoError(t, err)
	require.Equal(t, big, stats.ClicksByType["map"])
	require.Equal(t, stats.Clicks, stats.ClicksByType["map"])
	require.InDelta(t, 0.25, stats.CTR, 1e-9)
}

func TestAnalyticsService_GetPinStats_Errors(t *testing.T) {
	f := newAnalyticsFixture(t)
	pinID := uuid.New()

	_, err := f.service.GetPinStats(context.Background(), uuid.Nil, 7)
	require.ErrorIs(t, err, services.ErrInvalidArgument)

	f.engagement.EXPECT().CountImpressionsSince(gomock.Any(), nil, pinID, gomock.Any()).Return(int64(0), errStore)
	_, err = f.service.GetPinStats(context.Background(), pinID, 7)
	require.ErrorIs(t, err, services.ErrStoreUnavailable)

	f.engagement.EXPECT().CountImpressionsSince(gomock.Any(), nil, pinID, gomock.Any()).Return(int64(3), nil)
	f.engagement.EXPECT().CountClicksByTypeSince(gomock.Any(), nil, pinID, gomock.Any()).Return(nil, errStore)
	_, err = f.service.GetPinStats(context.Background(), pinID, 7)
	require.ErrorIs(t, err, services.ErrStoreUnavailable)
}
