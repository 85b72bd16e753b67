package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	legacyImportJob *LegacyImportJob
}

// NewJobManager creates a job manager. The legacy import job may be nil when
// the import is disabled by configuration.
func NewJobManager(legacyImportJob *LegacyImportJob) *JobManager {
	return &JobManager{
		legacyImportJob: legacyImportJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.legacyImportJob != nil {
		if err := jm.legacyImportJob.Start(); err != nil {
			return fmt.Errorf("failed to start legacy import job: %w", err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.legacyImportJob != nil {
		jm.legacyImportJob.Stop()
	}
}
