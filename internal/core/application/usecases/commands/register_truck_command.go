package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrRegisterTruckCommandIsNotConstructed = errors.New(
	"RegisterTruckCommand must be created via NewRegisterTruckCommand constructor",
)

type RegisterTruckCommand struct { //nolint:recvcheck //using for validation
	truckID            kernel.UUID
	registrationNumber string
	model              string
	capacity           kernel.Load
	homeWarehouseID    kernel.UUID
	driverID           *kernel.UUID

	guard guard.ConstructorGuard
}

func NewRegisterTruckCommand(
	registrationNumber string,
	model string,
	capacity kernel.Load,
	homeWarehouseID kernel.UUID,
	driverID *kernel.UUID,
) (RegisterTruckCommand, error) {
	command := RegisterTruckCommand{
		truckID:            kernel.NewUUID(),
		registrationNumber: strings.TrimSpace(registrationNumber),
		model:              strings.TrimSpace(model),
		capacity:           capacity,
		homeWarehouseID:    homeWarehouseID,
		driverID:           driverID,
		guard:              guard.NewConstructorGuard(),
	}

	var errList []error
	if command.registrationNumber == "" {
		errList = append(errList, errs.NewValueIsRequiredError("registration number"))
	}
	if command.model == "" {
		errList = append(errList, errs.NewValueIsRequiredError("model"))
	}
	if err := capacity.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("capacity", err))
	}
	errList = append(errList, requireID("home warehouse", homeWarehouseID))
	if driverID != nil {
		errList = append(errList, requireID("driver", *driverID))
	}

	if err := errors.Join(errList...); err != nil {
		return RegisterTruckCommand{}, err
	}

	return command, nil
}

func (c RegisterTruckCommand) Validate() error {
	return c.guard.Validate(ErrRegisterTruckCommandIsNotConstructed)
}

func (c RegisterTruckCommand) TruckID() kernel.UUID {
	return c.truckID
}

func (c RegisterTruckCommand) RegistrationNumber() string {
	return c.registrationNumber
}

func (c RegisterTruckCommand) Model() string {
	return c.model
}

func (c RegisterTruckCommand) Capacity() kernel.Load {
	return c.capacity
}

func (c RegisterTruckCommand) HomeWarehouseID() kernel.UUID {
	return c.homeWarehouseID
}

func (c RegisterTruckCommand) DriverID() *kernel.UUID {
	return c.driverID
}
