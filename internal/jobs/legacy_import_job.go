package jobs

import (
	"context"
	"log/slog"

	"mailroom/internal/adapters/out/legacyapi"
	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/application/usecases/queries"
	"mailroom/internal/core/domain/model/parcel"

	"github.com/robfig/cron/v3"
)

// legacyImportSchedule keeps the import cheap for the legacy backend while
// still fresher than the manual re-entry it replaces.
const legacyImportSchedule = "@every 10m"

// LegacySource lists the parcel records held by the legacy system.
type LegacySource interface {
	GetList(ctx context.Context) ([]legacyapi.Package, error)
}

// ParcelFinder looks up local parcel records.
type ParcelFinder interface {
	Handle(ctx context.Context, query queries.GetParcelsQuery) ([]queries.GetParcelsQueryResponse, error)
}

// ParcelCheckIn records a parcel arrival locally.
type ParcelCheckIn interface {
	Handle(ctx context.Context, cmd commands.CheckInParcelCommand) (*parcel.Parcel, error)
}

// LegacyImportJob periodically pulls the legacy system's parcel list and
// checks in, through the normal intake path, every awaiting parcel whose
// tracking number is not known locally. Parcels the legacy system already
// handed out are history, not work, and are skipped.
type LegacyImportJob struct {
	source   LegacySource
	finder   ParcelFinder
	checkIn  ParcelCheckIn
	cron     *cron.Cron
	logger   *slog.Logger
	schedule string
}

// NewLegacyImportJob creates the import job on the default schedule.
func NewLegacyImportJob(
	source LegacySource,
	finder ParcelFinder,
	checkIn ParcelCheckIn,
	logger *slog.Logger,
) *LegacyImportJob {
	return &LegacyImportJob{
		source:   source,
		finder:   finder,
		checkIn:  checkIn,
		cron:     cron.New(),
		logger:   logger.With("component", "legacy_import_job"),
		schedule: legacyImportSchedule,
	}
}

// Start schedules the periodic import.
func (j *LegacyImportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Legacy import run failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Legacy import job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduled import.
func (j *LegacyImportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Legacy import job stopped")
}

// RunOnce performs a single import pass. A parcel that fails to import does
// not abort the pass; the error is logged and the pass moves on, so one bad
// record cannot starve the rest.
func (j *LegacyImportJob) RunOnce(ctx context.Context) error {
	packages, err := j.source.GetList(ctx)
	if err != nil {
		return err
	}

	imported := 0
	for _, pkg := range packages {
		if pkg.Status != parcel.Received {
			continue
		}

		known, checkErr := j.existsLocally(ctx, pkg.TrackingNumber)
		if checkErr != nil {
			return checkErr
		}
		if known {
			continue
		}

		if importErr := j.importPackage(ctx, pkg); importErr != nil {
			j.logger.ErrorContext(ctx, "Failed to import legacy parcel",
				"tracking_number", pkg.TrackingNumber, "error", importErr)
			continue
		}
		imported++
	}

	if imported > 0 {
		j.logger.InfoContext(ctx, "Imported legacy parcels", "count", imported)
	}
	return nil
}

func (j *LegacyImportJob) existsLocally(ctx context.Context, trackingNumber string) (bool, error) {
	query, err := queries.NewGetParcelsQuery(queries.GetParcelsFilter{TrackingNumber: trackingNumber})
	if err != nil {
		return false, err
	}

	matches, err := j.finder.Handle(ctx, query)
	if err != nil {
		return false, err
	}

	return len(matches) > 0, nil
}

func (j *LegacyImportJob) importPackage(ctx context.Context, pkg legacyapi.Package) error {
	cmd, err := commands.NewCheckInParcelCommand(
		pkg.TrackingNumber,
		pkg.Carrier,
		pkg.GuestName,
		pkg.RoomNumber,
		pkg.ReceivedBy,
		parcel.Details{
			GuestPhone:      pkg.GuestPhone,
			Notes:           pkg.Notes,
			StorageLocation: pkg.StorageLocation,
			StorageNumber:   pkg.StorageNumber,
		},
	)
	if err != nil {
		return err
	}

	_, err = j.checkIn.Handle(ctx, cmd)
	return err
}
