// Package jobs provides scheduled background tasks for the order wizard.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping.
//
// # Available Jobs
//
// 1. PurgeStaleDraftsJob - Runs hourly and deletes drafts untouched for longer than the draft TTL
// 2. CountryRefreshJob - Runs daily and reloads the cached country list
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(&purgeHandler, draftTTL, countryCache, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Both jobs log failures and wait for their next run
// - A failed country refresh keeps the previous list in the cache
// - Failed job starts will stop any already running jobs
package jobs
