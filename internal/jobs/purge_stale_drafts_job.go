package jobs

import (
	"context"
	"log/slog"
	"time"

	"orderwizard/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PurgeStaleDraftsSchedule runs the purge at the top of every hour.
const PurgeStaleDraftsSchedule = "0 0 * * * *"

type draftPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeStaleDraftsCommand) (int64, error)
}

// PurgeStaleDraftsJob deletes drafts that nobody has touched for longer than
// the configured TTL.
type PurgeStaleDraftsJob struct {
	handler draftPurger
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewPurgeStaleDraftsJob(handler draftPurger, ttl time.Duration, logger *slog.Logger) *PurgeStaleDraftsJob {
	return &PurgeStaleDraftsJob{
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "purge_stale_drafts_job"),
	}
}

// Start schedules the purge.
func (j *PurgeStaleDraftsJob) Start() error {
	_, err := j.cron.AddFunc(PurgeStaleDraftsSchedule, func() {
		j.run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Purge stale drafts job started", "ttl", j.ttl.String())
	return nil
}

// Stop stops the purge job. A purge already running is left to finish.
func (j *PurgeStaleDraftsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Purge stale drafts job stopped")
}

func (j *PurgeStaleDraftsJob) run(ctx context.Context) {
	cmd, err := commands.NewPurgeStaleDraftsCommand(j.ttl)
	if err != nil {
		j.logger.ErrorContext(ctx, "Purge stale drafts job misconfigured", "error", err)
		return
	}

	deleted, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Purge stale drafts job failed", "error", err)
		return
	}

	if deleted > 0 {
		j.logger.InfoContext(ctx, "Stale drafts purged", "deleted", deleted)
	}
}
