package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// ImpressionResetWindow 是 24 小时曝光计数的重置周期。
const ImpressionResetWindow = 24 * time.Hour

// MaintenanceOptions 描述计数重置任务的并发与限速。
type MaintenanceOptions struct {
	Concurrency     int
	WritesPerSecond float64
}

// MaintenanceService 执行由外部调度器触发的维护任务。
type MaintenanceService struct {
	pins        PinStore
	now         Clock
	concurrency int
	limiter     *rate.Limiter
	log         *log.Helper
}

// NewMaintenanceService 构造 MaintenanceService。
func NewMaintenanceService(pins PinStore, now Clock, opts MaintenanceOptions, logger log.Logger) *MaintenanceService {
	if now == nil {
		now = NewClock()
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.WritesPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.WritesPerSecond), concurrency)
	}
	return &MaintenanceService{
		pins:        pins,
		now:         now,
		concurrency: concurrency,
		limiter:     limiter,
		log:         log.NewHelper(logger),
	}
}

// ResetDailyImpressionCounters 将超过 24 小时未重置的 Pin 曝光计数清零，返回成功重置的数量。
// 单个 Pin 失败不会中断批次；重复执行只会处理仍然逾期的 Pin。
func (s *MaintenanceService) ResetDailyImpressionCounters(ctx context.Context) (int, error) {
	now := s.now().UTC()
	threshold := now.Add(-ImpressionResetWindow)

	ids, err := s.pins.ListOverdueForReset(ctx, nil, threshold)
	if err != nil {
		s.log.WithContext(ctx).Errorw("msg", "list pins overdue for reset failed", "error", err)
		return 0, fmt.Errorf("%w: list pins overdue for reset: %w", ErrStoreUnavailable, err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	var reset, skipped, failed atomic.Int64
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for _, id := range ids {
		g.Go(func() error {
			if waitErr := s.limiter.Wait(ctx); waitErr != nil {
				failed.Add(1)
				return nil
			}
			ok, resetErr := s.resetOne(ctx, id, threshold, now)
			switch {
			case resetErr != nil:
				failed.Add(1)
			case ok:
				reset.Add(1)
			default:
				skipped.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	s.log.WithContext(ctx).Infow(
		"msg", "daily impression counters reset",
		"overdue", len(ids),
		"reset", reset.Load(),
		"skipped", skipped.Load(),
		"failed", failed.Load(),
	)
	return int(reset.Load()), nil
}

func (s *MaintenanceService) resetOne(ctx context.Context, pinID uuid.UUID, threshold, now time.Time) (bool, error) {
	ok, err := s.pins.ResetCounter(ctx, nil, pinID, threshold, now)
	if err != nil {
		s.log.WithContext(ctx).Warnw("msg", "reset pin impressions failed", "pin_id", pinID, "error", err)
		return false, err
	}
	return ok, nil
}
