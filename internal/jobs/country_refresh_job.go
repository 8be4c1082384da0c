package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// CountryRefreshSchedule reloads the country list daily at 03:00.
const CountryRefreshSchedule = "0 0 3 * * *"

const countryRefreshTimeout = 30 * time.Second

type countryRefresher interface {
	Refresh(ctx context.Context) error
}

// CountryRefreshJob reloads the cached country list so that a day-old list is
// replaced even while it is still being served.
type CountryRefreshJob struct {
	refresher countryRefresher
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewCountryRefreshJob(refresher countryRefresher, logger *slog.Logger) *CountryRefreshJob {
	return &CountryRefreshJob{
		refresher: refresher,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "country_refresh_job"),
	}
}

func (j *CountryRefreshJob) Start() error {
	_, err := j.cron.AddFunc(CountryRefreshSchedule, func() {
		j.run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Country refresh job started")
	return nil
}

func (j *CountryRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Country refresh job stopped")
}

func (j *CountryRefreshJob) run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, countryRefreshTimeout)
	defer cancel()

	// The cache keeps serving the previous list when this fails.
	if err := j.refresher.Refresh(ctx); err != nil {
		j.logger.WarnContext(ctx, "Country refresh job failed", "error", err)
	}
}
