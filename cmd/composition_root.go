package cmd

import (
	"log/slog"
	"os"

	"mailroom/internal/adapters/out/legacyapi"
	"mailroom/internal/adapters/out/postgres"
	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/application/usecases/queries"
	"mailroom/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCheckInParcelCommandHandler() commands.CheckInParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckInParcelCommandHandler(f)
}

func (c *CompositionRoot) CreatePickUpParcelCommandHandler() commands.PickUpParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPickUpParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordReceiverCommandHandler() commands.RecordReceiverCommandHandler {
	var f commands.ReceiverUoWFactory = FuncReceiverUoWFactory(func() commands.ReceiverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordReceiverCommandHandler(f)
}

func (c *CompositionRoot) CreateGetParcelsQueryHandler() queries.GetParcelsQueryHandler {
	return queries.NewGetParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReceiversQueryHandler() queries.GetReceiversQueryHandler {
	return queries.NewGetReceiversQueryHandler(c.gormDB)
}

// CreateJobManager wires the background jobs. The legacy import only runs
// when both enabled and pointed at a legacy API URL.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	var importJob *jobs.LegacyImportJob

	if c.config.LegacyImportEnabled && c.config.LegacyAPIURL != "" {
		client, err := legacyapi.NewClient(c.config.LegacyAPIURL)
		if err != nil {
			return nil, err
		}

		checkInHandler := c.CreateCheckInParcelCommandHandler()
		finder := c.CreateGetParcelsQueryHandler()
		logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
		importJob = jobs.NewLegacyImportJob(client, finder, &checkInHandler, logger)
	}

	return jobs.NewJobManager(importJob), nil
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncReceiverUoWFactory func() commands.ReceiverUoW

func (f FuncReceiverUoWFactory) Create() commands.ReceiverUoW {
	return f()
}
