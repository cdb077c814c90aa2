package commands

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/assignment"
	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type AssignedItem struct {
	InventoryID kernel.UUID
	Name        string
	SKU         string
	Quantity    int
	Weight      decimal.Decimal
	Volume      decimal.Decimal
}

type AssignInventoryToTruckResult struct {
	Outcome
	AssignmentID             kernel.UUID
	TruckID                  kernel.UUID
	TruckRegistrationNumber  string
	DriverID                 *kernel.UUID
	OriginWarehouseName      string
	DestinationWarehouseName string
	Items                    []AssignedItem
	Status                   string
	AssignedAt               time.Time
}

type AssignInventoryToTruckCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

func NewAssignInventoryToTruckCommandHandler(uowFactory UoWFactory, logger *slog.Logger) AssignInventoryToTruckCommandHandler {
	return AssignInventoryToTruckCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "AssignInventoryToTruck"),
	}
}

// Handle loads inventory lines onto an available truck. In one unit of work it
// debits the lines, binds the truck and records a PENDING assignment. Expected
// rejections come back as an unsuccessful result with nothing changed; unknown
// trucks, warehouses or lines come back as not found errors.
func (h AssignInventoryToTruckCommandHandler) Handle(
	ctx context.Context,
	cmd AssignInventoryToTruckCommand,
) (AssignInventoryToTruckResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignInventoryToTruckResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignInventoryToTruckResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	source, err := uow.WarehouseRepository().Get(ctx, cmd.SourceWarehouseID())
	if err != nil {
		return h.fail(ctx, cmd, err)
	}
	destination, err := uow.WarehouseRepository().Get(ctx, cmd.DestinationWarehouseID())
	if err != nil {
		return h.fail(ctx, cmd, err)
	}

	truck, err := uow.TruckRepository().Lock(ctx, cmd.TruckID())
	if err != nil {
		return h.fail(ctx, cmd, err)
	}
	if !truck.IsAvailable() {
		return h.fail(ctx, cmd, errs.NewInvalidStateError("truck "+truck.RegistrationNumber(), truck.Status().String()))
	}

	requested := cmd.Lines()
	ids := make([]kernel.UUID, 0, len(requested))
	for _, line := range requested {
		ids = append(ids, line.InventoryID)
	}
	locked, err := uow.InventoryRepository().LockMany(ctx, ids)
	if err != nil {
		return h.fail(ctx, cmd, err)
	}
	byID := make(map[kernel.UUID]*inventory.Line, len(locked))
	for _, line := range locked {
		if !line.BelongsTo(cmd.SourceWarehouseID()) {
			return h.fail(ctx, cmd, errs.NewObjectNotFoundError("inventory", line.ID().String()))
		}
		byID[line.ID()] = line
	}

	quantities := make([]int, len(requested))
	load := kernel.EmptyLoad()
	for i, line := range requested {
		quantities[i] = line.Quantity
		if quantities[i] == 0 {
			quantities[i] = byID[line.InventoryID].Quantity()
		}
		load = load.Add(byID[line.InventoryID].LoadOf(quantities[i]))
	}
	if err = load.FitError(truck.Capacity()); err != nil {
		return h.fail(ctx, cmd, err)
	}

	items := make([]assignment.Item, 0, len(requested))
	for i, req := range requested {
		line := byID[req.InventoryID]
		if quantities[i] == 0 || quantities[i] > line.Quantity() {
			return h.fail(ctx, cmd, errs.NewInsufficientInventoryError(line.ID().String(), max(quantities[i], 1), line.Quantity()))
		}
		item, itemErr := assignment.NewItem(line.ID(), line.SKU(), line.Item().Name(), quantities[i], line.LoadOf(quantities[i]))
		if itemErr != nil {
			return h.fail(ctx, cmd, itemErr)
		}
		items = append(items, item)
	}

	for i, req := range requested {
		line := byID[req.InventoryID]
		if err = line.Withdraw(quantities[i]); err != nil {
			return h.fail(ctx, cmd, err)
		}
		if err = uow.InventoryRepository().Update(ctx, line); err != nil {
			return h.fail(ctx, cmd, err)
		}
	}

	if err = truck.Assign(); err != nil {
		return h.fail(ctx, cmd, err)
	}
	if err = uow.TruckRepository().Update(ctx, truck); err != nil {
		return h.fail(ctx, cmd, err)
	}

	created, err := assignment.NewAssignment(cmd.AssignmentID(), truck.ID(), source.ID(), destination.ID(),
		items, cmd.ActorID(), time.Now().UTC())
	if err != nil {
		return h.fail(ctx, cmd, err)
	}
	if err = uow.AssignmentRepository().Add(ctx, created); err != nil {
		return h.fail(ctx, cmd, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return h.fail(ctx, cmd, err)
	}

	h.logger.InfoContext(ctx, "inventory assigned to truck",
		"assignment_id", created.ID().String(), "truck_id", truck.ID().String(), "items", len(items))

	result := AssignInventoryToTruckResult{
		Outcome:                  succeeded("inventory assigned to truck " + truck.RegistrationNumber()),
		AssignmentID:             created.ID(),
		TruckID:                  truck.ID(),
		TruckRegistrationNumber:  truck.RegistrationNumber(),
		DriverID:                 truck.DriverID(),
		OriginWarehouseName:      source.Name(),
		DestinationWarehouseName: destination.Name(),
		Status:                   created.Status().String(),
		AssignedAt:               created.AssignedAt(),
	}
	for _, item := range created.Items() {
		result.Items = append(result.Items, AssignedItem{
			InventoryID: item.InventoryID(),
			Name:        item.Name(),
			SKU:         item.SKU(),
			Quantity:    item.Quantity(),
			Weight:      item.Load().Weight(),
			Volume:      item.Load().Volume(),
		})
	}
	return result, nil
}

func (h AssignInventoryToTruckCommandHandler) fail(
	ctx context.Context,
	cmd AssignInventoryToTruckCommand,
	err error,
) (AssignInventoryToTruckResult, error) {
	outcome, err := reject(ctx, h.logger, err, "truck_id", cmd.TruckID().String())
	return AssignInventoryToTruckResult{Outcome: outcome, TruckID: cmd.TruckID()}, err
}
