package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	apphttp "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/kafka"
	"logistics/internal/adapters/out/memory"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"

	"gorm.io/gorm"
)

type unitOfWorkFactory interface {
	Create() ports.UnitOfWork
}

type CompositionRoot struct {
	uowFactory unitOfWorkFactory
	reader     queries.Reader
	publisher  ports.EventPublisher
	closers    []func() error
	policy     shipment.ReadinessPolicy
	config     Config
	logger     *slog.Logger
}

// NewCompositionRoot wires storage and event delivery as configured. gormDB
// is only used, and required, with postgres storage.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	policy, err := shipment.NewReadinessPolicy(config.WeightTolerance, config.DamagedItemsAccounted)
	if err != nil {
		return nil, err
	}

	policy = policy.WithDamagedOnScale(config.DamagedItemsWeighed)

	root := &CompositionRoot{policy: policy, config: config, logger: logger}

	switch config.Storage {
	case StorageMemory:
		store := memory.NewStore()
		root.uowFactory = memory.NewUnitOfWorkFactory(store)
		root.reader = memory.NewReader(store)
	case StoragePostgres:
		if gormDB == nil {
			return nil, errors.New("postgres storage needs a database connection")
		}
		root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
		root.reader = postgres.NewGormReader(gormDB)
	default:
		return nil, fmt.Errorf("unknown storage %q", config.Storage)
	}

	if config.KafkaEnabled() {
		producer, producerErr := kafka.NewProducer(config.KafkaBrokers, config.KafkaShipmentTopic, logger)
		if producerErr != nil {
			return nil, producerErr
		}
		root.publisher = producer
		root.closers = append(root.closers, producer.Close)
	} else {
		root.publisher = memory.NewEventLog(logger)
	}

	return root, nil
}

// Close releases what the root opened.
func (c *CompositionRoot) Close() error {
	var errs []error
	for _, closeFn := range c.closers {
		errs = append(errs, closeFn())
	}
	return errors.Join(errs...)
}

// ReadinessPolicy is the scan reconciliation policy shared by every shipment handler.
func (c *CompositionRoot) ReadinessPolicy() shipment.ReadinessPolicy {
	return c.policy
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) ledgerUoW() commands.LedgerUoWFactory {
	return FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fleetUoW() commands.FleetUoWFactory {
	return FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterTruckCommandHandler() commands.RegisterTruckCommandHandler {
	return commands.NewRegisterTruckCommandHandler(c.fleetUoW())
}

func (c *CompositionRoot) CreateMaintainTruckCommandHandler() commands.MaintainTruckCommandHandler {
	return commands.NewMaintainTruckCommandHandler(c.fleetUoW())
}

func (c *CompositionRoot) CreateTransferInventoryCommandHandler() commands.TransferInventoryCommandHandler {
	return commands.NewTransferInventoryCommandHandler(c.ledgerUoW(), c.logger)
}

func (c *CompositionRoot) CreateAssignInventoryToTruckCommandHandler() commands.AssignInventoryToTruckCommandHandler {
	return commands.NewAssignInventoryToTruckCommandHandler(c.uow(), c.logger)
}

func (c *CompositionRoot) CreateUpdateAssignmentStatusCommandHandler() commands.UpdateAssignmentStatusCommandHandler {
	return commands.NewUpdateAssignmentStatusCommandHandler(c.uow(), c.logger)
}

func (c *CompositionRoot) CreateRegisterShipmentCommandHandler() commands.RegisterShipmentCommandHandler {
	return commands.NewRegisterShipmentCommandHandler(c.uow(), c.logger)
}

func (c *CompositionRoot) CreateAssignTruckToShipmentCommandHandler() commands.AssignTruckToShipmentCommandHandler {
	return commands.NewAssignTruckToShipmentCommandHandler(c.uow(), c.policy, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateUpdateShipmentStatusCommandHandler() commands.UpdateShipmentStatusCommandHandler {
	return commands.NewUpdateShipmentStatusCommandHandler(c.uow(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateProcessShipmentItemCommandHandler() commands.ProcessShipmentItemCommandHandler {
	return commands.NewProcessShipmentItemCommandHandler(c.uow(), c.policy, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateReportMissingItemCommandHandler() commands.ReportMissingItemCommandHandler {
	return commands.NewReportMissingItemCommandHandler(c.uow(), c.policy, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateReportWeightMismatchCommandHandler() commands.ReportWeightMismatchCommandHandler {
	return commands.NewReportWeightMismatchCommandHandler(c.uow(), c.policy, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGetAvailableTrucksQueryHandler() queries.GetAvailableTrucksQueryHandler {
	return queries.NewGetAvailableTrucksQueryHandler(c.reader, services.NewCapacityMatcher())
}

func (c *CompositionRoot) CreateGetItemsBelowReorderPointQueryHandler() queries.GetItemsBelowReorderPointQueryHandler {
	return queries.NewGetItemsBelowReorderPointQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateGetProcessingSummaryQueryHandler() queries.GetProcessingSummaryQueryHandler {
	return queries.NewGetProcessingSummaryQueryHandler(c.reader, c.policy)
}

func (c *CompositionRoot) CreateHTTPServer() *apphttp.Server {
	return apphttp.NewServer(apphttp.Handlers{
		RegisterTruck:          c.CreateRegisterTruckCommandHandler(),
		MaintainTruck:          c.CreateMaintainTruckCommandHandler(),
		TransferInventory:      c.CreateTransferInventoryCommandHandler(),
		AssignInventory:        c.CreateAssignInventoryToTruckCommandHandler(),
		UpdateAssignmentStatus: c.CreateUpdateAssignmentStatusCommandHandler(),
		RegisterShipment:       c.CreateRegisterShipmentCommandHandler(),
		AssignTruck:            c.CreateAssignTruckToShipmentCommandHandler(),
		UpdateShipmentStatus:   c.CreateUpdateShipmentStatusCommandHandler(),
		ProcessItem:            c.CreateProcessShipmentItemCommandHandler(),
		ReportMissingItem:      c.CreateReportMissingItemCommandHandler(),
		ReportWeightMismatch:   c.CreateReportWeightMismatchCommandHandler(),
		AvailableTrucks:        c.CreateGetAvailableTrucksQueryHandler(),
		ItemsBelowReorderPoint: c.CreateGetItemsBelowReorderPointQueryHandler(),
		Assignment:             queries.NewGetAssignmentQueryHandler(c.reader),
		AssignmentsByTruck:     queries.NewGetAssignmentsByTruckQueryHandler(c.reader),
		AssignmentsByWarehouse: queries.NewGetAssignmentsByWarehouseQueryHandler(c.reader),
		Shipment:               queries.NewGetShipmentQueryHandler(c.reader),
		PendingShipments:       queries.NewGetPendingShipmentsQueryHandler(c.reader),
		ProcessingSummary:      c.CreateGetProcessingSummaryQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewReorderAlertJob(c.CreateGetItemsBelowReorderPointQueryHandler(), c.config.ReorderScanSchedule, c.logger),
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncLedgerUoWFactory func() commands.LedgerUoW

func (f FuncLedgerUoWFactory) Create() commands.LedgerUoW {
	return f()
}

type FuncFleetUoWFactory func() commands.FleetUoW

func (f FuncFleetUoWFactory) Create() commands.FleetUoW {
	return f()
}
