package main

import (
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/localsquares/board-rotation/internal/config"
	"github.com/localsquares/board-rotation/internal/services"
	"github.com/spf13/cobra"
)

type resetJob struct {
	service *services.MaintenanceService
	logger  log.Logger
}

func newResetJob(service *services.MaintenanceService, logger log.Logger) *resetJob {
	return &resetJob{service: service, logger: logger}
}

// resetImpressionsCmd 供外部调度器（cron 等）每日调用。
func resetImpressionsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reset-impressions",
		Short: "Reset 24h impression counters for overdue pins",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			job, cleanup, err := wireResetJob(ctx, config.ConfigPath(*configPath))
			if err != nil {
				return fmt.Errorf("init reset job: %w", err)
			}
			defer cleanup()

			n, err := job.service.ResetDailyImpressionCounters(ctx)
			if err != nil {
				return err
			}
			log.NewHelper(job.logger).Infow("msg", "reset-impressions finished", "reset", n)
			fmt.Fprintf(cmd.OutOrStdout(), "reset %d pins\n", n)
			return nil
		},
	}
}
