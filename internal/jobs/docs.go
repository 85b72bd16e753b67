// Package jobs provides scheduled background tasks for the mailroom service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. LegacyImportJob - Pulls the legacy mailroom's parcel list every ten
// minutes and checks in awaiting parcels that are unknown locally, so both
// systems can run side by side during the migration.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(legacyImportJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed import run is logged and retried on the next tick; a single bad
// legacy record is skipped rather than aborting the whole pass.
package jobs
