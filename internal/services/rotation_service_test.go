package services_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/localsquares/board-rotation/internal/models/po"
	"github.com/localsquares/board-rotation/internal/repositories"
	"github.com/localsquares/board-rotation/internal/services"
	"github.com/localsquares/board-rotation/internal/services/mocks"
	"github.com/stretchr/testify/require"
)

var (
	stdLogger = log.NewStdLogger(io.Discard)
	fixedNow  = time.Date(2026, 10, 15, 15, 30, 0, 0, time.UTC)
	errStore  = errors.New("connection refused")
)

type rotationFixture struct {
	pins       *mocks.MockPinStore
	bookings   *mocks.MockFeaturedBookingStore
	engagement *mocks.MockEngagementStore
	tx         *mocks.MockTransactor
	service    *services.RotationService
}

func newRotationFixture(t *testing.T, newRand services.RandFactory, opts services.RotationOptions) *rotationFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &rotationFixture{
		pins:       mocks.NewMockPinStore(ctrl),
		bookings:   mocks.NewMockFeaturedBookingStore(ctrl),
		engagement: mocks.NewMockEngagementStore(ctrl),
		tx:         mocks.NewMockTransactor(ctrl),
	}
	clock := func() time.Time { return fixedNow }
	f.service = services.NewRotationService(f.pins, f.bookings, f.engagement, f.tx, newRand, clock, opts, stdLogger)
	return f
}

func newPin(boardID uuid.UUID, impressions int64, createdAt time.Time) *po.Pin {
	ts := createdAt
	return &po.Pin{
		ID:             uuid.New(),
		BoardID:        boardID,
		Title:          "pin",
		Status:         po.PinStatusActive,
		Impressions24h: impressions,
		CreatedAt:      &ts,
	}
}

func oldPins(boardID uuid.UUID, n int) []*po.Pin {
	pins := make([]*po.Pin, n)
	for i := range pins {
		pins[i] = newPin(boardID, int64(i), fixedNow.Add(-30*24*time.Hour))
	}
	return pins
}

func stringPtr(value string) *string { return &value }

func positionOf(pins []*po.Pin, id uuid.UUID) int {
	for i, pin := range pins {
		if pin.ID == id {
			return i
		}
	}
	return -1
}

func requireUnique(t *testing.T, pins []*po.Pin) {
	t.Helper()
	seen := map[uuid.UUID]struct{}{}
	for _, pin := range pins {
		_, dup := seen[pin.ID]
		require.False(t, dup, "pin %s returned twice", pin.ID)
		seen[pin.ID] = struct{}{}
	}
}

func TestRotationService_Scenario_NewCardUsuallyFirst(t *testing.T) {
	boardID := uuid.New()
	yearAgo := fixedNow.Add(-365 * 24 * time.Hour)
	a := newPin(boardID, 0, fixedNow)
	b := newPin(boardID, 9, yearAgo)
	c := newPin(boardID, 99, yearAgo)

	f := newRotationFixture(t, services.NewRandFactory(), services.RotationOptions{})
	const trials = 500
	f.pins.EXPECT().ListActiveByBoard(gomock.Any(), nil, boardID).Return([]*po.Pin{a, b, c}, nil).Times(trials)
	f.bookings.EXPECT().FindTodayPaidPinID(gomock.Any(), nil, boardID, gomock.Any()).Return(nil, nil).Times(trials)

	aFirst := 0
	for i := 0; i < trials; i++ {
		res, err := f.service.GetRotatedPins(context.Background(), services.GetRotatedPinsInput{BoardID: boardID})
		require.NoError(t, err)
		require.Len(t, res.Pins, 3)
		requireUnique(t, res.Pins)
		require.Nil(t, res.FeaturedPinID)
		if res.Pins[0].ID == a.ID {
			aFirst++
		}
	}
	// 理论值 2.0/2.11 ≈ 0.95。
	require.Greater(t, float64(aFirst)/trials, 0.85)
}

func TestRotationService_SeededFactoryIsReproducible(t *testing.T) {
	boardID := uuid.New()
	pins := oldPins(boardID, 8)

	f := newRotationFixture(t, services.SeededRandFactory(77), services.RotationOptions{})
	f.pins.EXPECT().ListActiveByBoard(gomock.Any(), nil, boardID).Return(pins, nil).Times(2)
	f.bookings.EXPECT().FindTodayPaidPinID(gomock.Any(), nil, boardID, gomock.Any()).Return(&pins[3].ID, nil).Times(2)

	first, err := f.service.GetRotatedPins(context.Background(), services.GetRotatedPinsInput{BoardID: boardID})
	require.NoError(t, err)
	second, err := f.service.GetRotatedPins(context.Background(), services.GetRotatedPinsInput{BoardID: boardID})
	require.NoError(t, err)
	require.Equal(t, first.Pins, second.Pins)
}

func TestRotationService_FeaturedPlacement(t *testing.T) {
	boardID := uuid.New()
	pins := oldPins(boardID, 6)
	featured := pins[5]

	f := newRotationFixture(t, nil, services.RotationOptions{})
	const trials = 200
	f.pins.EXPECT().ListActiveByBoard(gomock.Any(), nil, boardID).Return(pins, nil).Times(trials)
	f.bookings.EXPECT().FindTodayPaidPinID(gomock.Any(), nil, boardID, gomock.Any()).Return(&featured.ID, nil).Times(trials)

	for i := 0; i < trials; i++ {
		res, err := f.service.GetRotatedPins(context.Background(), services.GetRotatedPinsInput{BoardID: boardID})
		require.NoError(t, err)
		require.Len(t, res.Pins, 6)
		requireUnique(t, res.Pins)
		idx := positionOf(res.Pins, featured.ID)
		require.GreaterOrEqual(t, idx, 0)
		require.LessOrEqual(t, idx, 3)
		require.NotNil(t, res.FeaturedPinID)
		require.Equal(t, featured.ID, *res.FeaturedPinID)
	}
}

func TestRotationService_FeaturedAppendedWhenPoolIsSmall(t *testing.T) {
	boardID := uuid.New()
	pins := oldPins(boardID, 2)
	featured := pins[0]

	f := newRotationFixture(t, nil, services.RotationOptions{})
	const trials = 100
	f.pins.EXPECT().ListActiveByBoard(gomock.Any(), nil, boardID).Return(pins, nil).Times(trials)
	f.bookings.EXPECT().FindTodayPaidPinID(gomock.Any(), nil, boardID, gomock.Any()).Return(&featured.ID, nil).Times(trials)

	for i := 0; i < trials; i++ {
		res, err := f.service.GetRotatedPins(context.Background(), services.GetRotatedPinsInput{BoardID: boardID})
		require.NoError(t, err)
		require.Len(t, res.Pins, 2)
		require.LessOrEqual(t, positionOf(res.Pins, featured.ID), 1)
	}
}

func TestRotationService_FeaturedBookingForMissingPinIsIgnored(t *testing.T) {
	boardID := uuid.New()
	pins := oldPins(boardID, 3)
	ghost := uuid.New()

	f := newRotationFixture(t, nil, services.RotationOptions{})
	f.pins.EXPECT().ListActiveByBoard(gomock.Any(), nil, boardID).Return(pins, nil)
	f.bookings.EXPECT().FindTodayPaidPinID(gomock.Any(), nil, boardID, gomock.Any()).Return(&ghost, nil)

	res, err := f.service.GetRotatedPins(context.Background(), services.GetRotatedPinsInput{BoardID: boardID})
	require.NoError(t, err)
	require.Len(t, res.Pins, 3)
	require.Nil(t, res.FeaturedPinID)
}

func TestRotationService_LimitEnforcement(t *testing.T) {
	boardID := uuid.New()
	pins := oldPins(boardID, 10)

	f := newRotationFixture(t, nil, services.RotationOptions{})
	f.pins.EXPECT().ListActiveByBoard(gomock.Any(), nil, boardID).Return(pins, nil)
	f.bookings.EXPECT().FindTodayPaidPinID(gomock.Any(), nil, boardID, gomock.Any()).Return(nil, nil)

	res, err := f.service.GetRotatedPins(context.Background(), services.GetRotatedPinsInput{BoardID: boardID, Limit: 2})
	require.NoError(t, err)
	require.Len(t, res.Pins, 2)
}

func TestRotationService_LimitClamped(t *testing.T) {
	boardID := uuid.New()
	pins := oldPins(boardID, 120)

	f := newRotationFixture(t, nil, services.RotationOptions{})
	f.pins.EXPECT().ListActiveByBoard(gomock.Any(), nil, boardID).Return(pins, nil).Times(3)
	f.bookings.EXPECT().FindTodayPaidPinID(gomock.Any(), nil, boardID, gomock.Any()).Return(nil, nil).Times(3)

	res, err := f.service.GetRotatedPins(context.Background(), services.GetRotatedPinsInput{BoardID: boardID, Limit: 500})
	require.NoError(t, err)
	require.Len(t, res.Pins, services.MaxRotationLimit)

	res, err = f.service.GetRotatedPins(context.Background(), services.GetRotatedPinsInput{BoardID: boardID, Limit: 0})
	require.NoError(t, err)
	require.Len(t, res.Pins, services.DefaultRotationLimit)

	res, err = f.service.GetRotatedPins(context.Background(), services.GetRotatedPinsInput{BoardID: boardID, Limit: -3})
	require.NoError(t, err)
	require.Len(t, res.Pins, services.DefaultRotationLimit)
}

func TestRotationService_EligibilityFilter(t *testing.T) {
	boardID := uuid.New()
	pins := oldPins(boardID, 4)
	pins[0].SubscriptionStatus = stringPtr("active")
	pins[1].SubscriptionStatus = stringPtr("past_due")
	pins[2].SubscriptionStatus = stringPtr("canceled")
	// pins[3] 没有关联订阅，保留。

	f := newRotationFixture(t, nil, services.RotationOptions{})
	f.pins.EXPECT().ListActiveByBoard(gomock.Any(), nil, boardID).Return(pins, nil)
	f.bookings.EXPECT().FindTodayPaidPinID(gomock.Any(), nil, boardID, gomock.Any()).Return(nil, nil)

	res, err := f.service.GetRotatedPins(context.Background(), services.GetRotatedPinsInput{BoardID: boardID})
	require.NoError(t, err)
	require.Len(t, res.Pins, 3)
	require.Equal(t, -1, positionOf(res.Pins, pins[2].ID))
	require.NotEqual(t, -1, positionOf(res.Pins, pins[3].ID))
}

func TestRotationService_FeaturedWithInactiveSubscriptionIsDropped(t *testing.T) {
	boardID := uuid.New()
	pins := oldPins(boardID, 3)
	pins[0].SubscriptionStatus = stringPtr("canceled")

	f := newRotationFixture(t, nil, services.RotationOptions{})
	f.pins.EXPECT().ListActiveByBoard(gomock.Any(), nil, boardID).Return(pins, nil)
	f.bookings.EXPECT().FindTodayPaidPinID(gomock.Any(), nil, boardID, gomock.Any()).Return(&pins[0].ID, nil)

	res, err := f.service.GetRotatedPins(context.Background(), services.GetRotatedPinsInput{BoardID: boardID})
	require.NoError(t, err)
	require.Len(t, res.Pins, 2)
	require.Equal(t, -1, positionOf(res.Pins, pins[0].ID))
	require.Nil(t, res.FeaturedPinID)
}

func TestRotationService_SessionSeenSetUsesBoardLocalDay(t *testing.T) {
	boardID := uuid.New()
	pins := oldPins(boardID, 3)
	loc := time.FixedZone("UTC-5", -5*60*60)
	localNow := fixedNow.In(loc)
	startOfToday := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, loc)

	f := newRotationFixture(t, nil, services.RotationOptions{Location: loc})
	f.pins.EXPECT().ListActiveByBoard(gomock.Any(), nil, boardID).Return(pins, nil)
	f.bookings.EXPECT().FindTodayPaidPinID(gomock.Any(), nil, boardID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ repositories.Session, _ uuid.UUID, day time.Time) (*uuid.UUID, error) {
			require.Equal(t, localNow.Day(), day.Day())
			require.Equal(t, loc, day.Location())
			return nil, nil
		})
	f.engagement.EXPECT().ListSeenPinIDs(gomock.Any(), nil, "sess-1", boardID, startOfToday).
		Return([]uuid.UUID{pins[0].ID, pins[1].ID}, nil)

	res, err := f.service.GetRotatedPins(context.Background(), services.GetRotatedPinsInput{BoardID: boardID, SessionID: " sess-1 "})
	require.NoError(t, err)
	require.Len(t, res.Pins, 3)
}

func TestRotationService_EmptyBoardSkipsFurtherReads(t *testing.T) {
	boardID := uuid.New()

	f := newRotationFixture(t, nil, services.RotationOptions{})
	f.pins.EXPECT().ListActiveByBoard(gomock.Any(), nil, boardID).Return(nil, nil)

	res, err := f.service.GetRotatedPins(context.Background(), services.GetRotatedPinsInput{BoardID: boardID, SessionID: "sess"})
	require.NoError(t, err)
	require.NotNil(t, res.Pins)
	require.Empty(t, res.Pins)
}

func TestRotationService_StoreFailuresAreUpstreamUnavailable(t *testing.T) {
	boardID := uuid.New()
	pins := oldPins(boardID, 2)

	t.Run("pins", func(t *testing.T) {
		f := newRotationFixture(t, nil, services.RotationOptions{})
		f.pins.EXPECT().ListActiveByBoard(gomock.Any(), nil, boardID).Return(nil, errStore)

		res, err := f.service.GetRotatedPins(context.Background(), services.GetRotatedPinsInput{BoardID: boardID})
		require.Nil(t, res)
		require.ErrorIs(t, err, services.ErrStoreUnavailable)
		require.ErrorIs(t, err, errStore)
	})

	t.Run("featured", func(t *testing.T) {
		f := newRotationFixture(t, nil, services.RotationOptions{})
		f.pins.EXPECT().ListActiveByBoard(gomock.Any(), nil, boardID).Return(pins, nil)
		f.bookings.EXPECT().FindTodayPaidPinID(gomock.Any(), nil, boardID, gomock.Any()).Return(nil, errStore)

		_, err := f.service.GetRotatedPins(context.Background(), services.GetRotatedPinsInput{BoardID: boardID})
		require.ErrorIs(t, err, services.ErrStoreUnavailable)
	})

	t.Run("seen", func(t *testing.T) {
		f := newRotationFixture(t, nil, services.RotationOptions{})
		f.pins.EXPECT().ListActiveByBoard(gomock.Any(), nil, boardID).Return(pins, nil)
		f.bookings.EXPECT().FindTodayPaidPinID(gomock.Any(), nil, boardID, gomock.Any()).Return(nil, nil)
		f.engagement.EXPECT().ListSeenPinIDs(gomock.Any(), nil, "sess", boardID, gomock.Any()).Return(nil, errStore)

		_, err := f.service.GetRotatedPins(context.Background(), services.GetRotatedPinsInput{BoardID: boardID, SessionID: "sess"})
		require.ErrorIs(t, err, services.ErrStoreUnavailable)
	})
}

func TestRotationService_InvalidBoard(t *testing.T) {
	f := newRotationFixture(t, nil, services.RotationOptions{})
	_, err := f.service.GetRotatedPins(context.Background(), services.GetRotatedPinsInput{})
	require.ErrorIs(t, err, services.ErrInvalidArgument)
}

func TestRotationService_GetBoardRotation_MarksFeatured(t *testing.T) {
	boardID := uuid.New()
	pins := oldPins(boardID, 3)

	f := newRotationFixture(t, nil, services.RotationOptions{})
	f.pins.EXPECT().ListActiveByBoard(gomock.Any(), nil, boardID).Return(pins, nil)
	f.bookings.EXPECT().FindTodayPaidPinID(gomock.Any(), nil, boardID, gomock.Any()).Return(&pins[1].ID, nil)

	resp, err := f.service.GetBoardRotation(context.Background(), services.GetRotatedPinsInput{BoardID: boardID})
	require.NoError(t, err)
	require.Equal(t, boardID.String(), resp.BoardID)
	require.Len(t, resp.Pins, 3)
	featured := 0
	for _, card := range resp.Pins {
		if card.Featured {
			featured++
			require.Equal(t, pins[1].ID.String(), card.PinID)
		}
	}
	require.Equal(t, 1, featured)
	require.Equal(t, fixedNow, resp.GeneratedAt)
}

func runInTx(ctx context.Context, fn func(context.Context, repositories.Session) error) error {
	return fn(ctx, nil)
}

func TestRotationService_RecordImpression(t *testing.T) {
	pinID := uuid.New()
	boardID := uuid.New()

	f := newRotationFixture(t, nil, services.RotationOptions{})
	f.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
	f.engagement.EXPECT().InsertImpression(gomock.Any(), nil, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ repositories.Session, evt po.Impression) error {
			require.Equal(t, pinID, evt.PinID)
			require.Equal(t, boardID, evt.BoardID)
			require.NotNil(t, evt.SessionID)
			require.Equal(t, "sess-9", *evt.SessionID)
			require.Nil(t, evt.Referrer)
			require.Equal(t, fixedNow, evt.CreatedAt)
			return nil
		})
	f.pins.EXPECT().IncrementImpressions(gomock.Any(), nil, pinID).Return(nil)

	err := f.service.RecordImpression(context.Background(), services.RecordImpressionInput{
		PinID:     pinID,
		BoardID:   boardID,
		SessionID: "sess-9",
	})
	require.NoError(t, err)
}

func TestRotationService_RecordImpression_FailureIsReported(t *testing.T) {
	pinID := uuid.New()
	boardID := uuid.New()

	f := newRotationFixture(t, nil, services.RotationOptions{})
	f.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
	f.engagement.EXPECT().InsertImpression(gomock.Any(), nil, gomock.Any()).Return(errStore)

	err := f.service.RecordImpression(context.Background(), services.RecordImpressionInput{PinID: pinID, BoardID: boardID})
	require.ErrorIs(t, err, services.ErrStoreUnavailable)

	err = f.service.RecordImpression(context.Background(), services.RecordImpressionInput{PinID: pinID})
	require.ErrorIs(t, err, services.ErrInvalidArgument)
}
