package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrReportWeightMismatchCommandIsNotConstructed = errors.New(
	"ReportWeightMismatchCommand must be created via NewReportWeightMismatchCommand constructor",
)

type ReportWeightMismatchCommand struct { //nolint:recvcheck //using for validation
	trackingNumber string
	actualWeight   decimal.Decimal
	actorID        kernel.UUID

	guard guard.ConstructorGuard
}

func NewReportWeightMismatchCommand(
	trackingNumber string,
	actualWeight decimal.Decimal,
	actorID kernel.UUID,
) (ReportWeightMismatchCommand, error) {
	command := ReportWeightMismatchCommand{
		trackingNumber: strings.TrimSpace(trackingNumber),
		actualWeight:   actualWeight,
		actorID:        actorID,
		guard:          guard.NewConstructorGuard(),
	}

	var weightErr error
	if actualWeight.IsNegative() {
		weightErr = errs.NewValueIsOutOfRangeError("actual weight", actualWeight.String(), 0, "unbounded")
	}

	if err := errors.Join(
		requireText("tracking number", command.trackingNumber),
		requireID("actor", actorID),
		weightErr,
	); err != nil {
		return ReportWeightMismatchCommand{}, err
	}

	return command, nil
}

func (c ReportWeightMismatchCommand) Validate() error {
	return c.guard.Validate(ErrReportWeightMismatchCommandIsNotConstructed)
}

func (c ReportWeightMismatchCommand) TrackingNumber() string {
	return c.trackingNumber
}

func (c ReportWeightMismatchCommand) ActualWeight() decimal.Decimal {
	return c.actualWeight
}

func (c ReportWeightMismatchCommand) ActorID() kernel.UUID {
	return c.actorID
}
