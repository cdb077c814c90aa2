package commands

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

type AssignTruckToShipmentResult struct {
	Outcome
	ShipmentID              kernel.UUID
	TrackingNumber          string
	TruckID                 kernel.UUID
	TruckRegistrationNumber string
	DriverID                *kernel.UUID
	Status                  string
	ScheduledPickupAt       *time.Time
}

type AssignTruckToShipmentCommandHandler struct {
	uowFactory UoWFactory
	policy     shipment.ReadinessPolicy
	notifier   statusNotifier
	logger     *slog.Logger
}

func NewAssignTruckToShipmentCommandHandler(
	uowFactory UoWFactory,
	policy shipment.ReadinessPolicy,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) AssignTruckToShipmentCommandHandler {
	logger = logger.With("component", "AssignTruckToShipment")
	return AssignTruckToShipmentCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		notifier:   statusNotifier{publisher: publisher, logger: logger},
		logger:     logger,
	}
}

// Handle binds an AVAILABLE truck to a PENDING shipment whose expected weight
// and volume fit the truck, and schedules the pickup. A shipment whose items
// were all scanned while it waited for a truck goes on to READY_FOR_PICKUP.
func (h AssignTruckToShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd AssignTruckToShipmentCommand,
) (AssignTruckToShipmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignTruckToShipmentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignTruckToShipmentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	s, err := uow.ShipmentRepository().Lock(ctx, cmd.ShipmentID())
	if err != nil {
		return h.fail(ctx, cmd, err)
	}
	truck, err := uow.TruckRepository().Lock(ctx, cmd.TruckID())
	if err != nil {
		return h.fail(ctx, cmd, err)
	}

	if _, err = s.Status().ScheduleForPickup(); err != nil {
		return h.fail(ctx, cmd, err)
	}
	if !truck.IsAvailable() {
		return h.fail(ctx, cmd, errs.NewInvalidStateError("truck "+truck.RegistrationNumber(), truck.Status().String()))
	}

	load, err := kernel.NewLoad(s.TotalWeight(), s.TotalVolume())
	if err != nil {
		return h.fail(ctx, cmd, err)
	}
	if err = load.FitError(truck.Capacity()); err != nil {
		return h.fail(ctx, cmd, err)
	}

	from := s.Status()
	if err = truck.Assign(); err != nil {
		return h.fail(ctx, cmd, err)
	}
	promoted, err := s.AssignTruck(truck.ID(), cmd.ScheduledPickupAt(), cmd.Notes(), h.policy, time.Now().UTC())
	if err != nil {
		return h.fail(ctx, cmd, err)
	}

	if err = uow.TruckRepository().Update(ctx, truck); err != nil {
		return h.fail(ctx, cmd, err)
	}
	if err = uow.ShipmentRepository().Update(ctx, s); err != nil {
		return h.fail(ctx, cmd, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return h.fail(ctx, cmd, err)
	}

	h.notifier.notify(ctx, s, from)
	h.logger.InfoContext(ctx, "truck assigned to shipment",
		"shipment_id", s.ID().String(), "truck_id", truck.ID().String(), "ready_for_pickup", promoted)

	return AssignTruckToShipmentResult{
		Outcome:                 succeeded("truck " + truck.RegistrationNumber() + " assigned to shipment " + s.TrackingNumber()),
		ShipmentID:              s.ID(),
		TrackingNumber:          s.TrackingNumber(),
		TruckID:                 truck.ID(),
		TruckRegistrationNumber: truck.RegistrationNumber(),
		DriverID:                truck.DriverID(),
		Status:                  s.Status().String(),
		ScheduledPickupAt:       s.ScheduledPickupAt(),
	}, nil
}

func (h AssignTruckToShipmentCommandHandler) fail(
	ctx context.Context,
	cmd AssignTruckToShipmentCommand,
	err error,
) (AssignTruckToShipmentResult, error) {
	outcome, err := reject(ctx, h.logger, err,
		"shipment_id", cmd.ShipmentID().String(), "truck_id", cmd.TruckID().String())
	return AssignTruckToShipmentResult{Outcome: outcome, ShipmentID: cmd.ShipmentID(), TruckID: cmd.TruckID()}, err
}
