package commands

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrAssignInventoryToTruckCommandIsNotConstructed = errors.New(
	"AssignInventoryToTruckCommand must be created via NewAssignInventoryToTruckCommand constructor",
)

// AssignmentLine names an inventory line to load. A zero Quantity loads the
// whole current quantity of the line.
type AssignmentLine struct {
	InventoryID kernel.UUID
	Quantity    int
}

type AssignInventoryToTruckCommand struct { //nolint:recvcheck //using for validation
	assignmentID           kernel.UUID
	truckID                kernel.UUID
	sourceWarehouseID      kernel.UUID
	destinationWarehouseID kernel.UUID
	lines                  []AssignmentLine
	actorID                kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignInventoryToTruckCommand(
	truckID kernel.UUID,
	sourceWarehouseID kernel.UUID,
	destinationWarehouseID kernel.UUID,
	lines []AssignmentLine,
	actorID kernel.UUID,
) (AssignInventoryToTruckCommand, error) {
	command := AssignInventoryToTruckCommand{
		assignmentID: kernel.NewUUID(),
		truckID:      truckID,
		actorID:      actorID,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireID("truck", truckID),
		requireID("actor", actorID),
		command.setRoute(sourceWarehouseID, destinationWarehouseID),
		command.setLines(lines),
	); err != nil {
		return AssignInventoryToTruckCommand{}, err
	}

	return command, nil
}

func (c AssignInventoryToTruckCommand) Validate() error {
	return c.guard.Validate(ErrAssignInventoryToTruckCommandIsNotConstructed)
}

func (c AssignInventoryToTruckCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

func (c AssignInventoryToTruckCommand) TruckID() kernel.UUID {
	return c.truckID
}

func (c AssignInventoryToTruckCommand) SourceWarehouseID() kernel.UUID {
	return c.sourceWarehouseID
}

func (c AssignInventoryToTruckCommand) DestinationWarehouseID() kernel.UUID {
	return c.destinationWarehouseID
}

// Lines returns one entry per inventory line, duplicates already merged.
func (c AssignInventoryToTruckCommand) Lines() []AssignmentLine {
	out := make([]AssignmentLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c AssignInventoryToTruckCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *AssignInventoryToTruckCommand) setRoute(source, destination kernel.UUID) error {
	if err := errors.Join(requireID("source warehouse", source), requireID("destination warehouse", destination)); err != nil {
		return err
	}
	if source.IsEqual(destination) {
		return errs.NewValueIsInvalidErrorWithCause("destination warehouse",
			fmt.Errorf("%s is also the source warehouse", destination))
	}
	c.sourceWarehouseID = source
	c.destinationWarehouseID = destination
	return nil
}

func (c *AssignInventoryToTruckCommand) setLines(lines []AssignmentLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("inventory ids")
	}

	merged := make([]AssignmentLine, 0, len(lines))
	index := make(map[kernel.UUID]int, len(lines))
	for _, line := range lines {
		if err := requireID("inventory id", line.InventoryID); err != nil {
			return err
		}
		if line.Quantity < 0 {
			return errs.NewValueIsOutOfRangeError("quantity", line.Quantity, 0, "unbounded")
		}

		i, seen := index[line.InventoryID]
		if !seen {
			index[line.InventoryID] = len(merged)
			merged = append(merged, line)
			continue
		}
		if line.Quantity == 0 || merged[i].Quantity == 0 {
			return errs.NewValueIsInvalidErrorWithCause("inventory ids",
				fmt.Errorf("%s is listed both in full and in part", line.InventoryID))
		}
		merged[i].Quantity += line.Quantity
	}

	c.lines = merged
	return nil
}
