package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrReportMissingItemCommandIsNotConstructed = errors.New(
	"ReportMissingItemCommand must be created via NewReportMissingItemCommand constructor",
)

type ReportMissingItemCommand struct { //nolint:recvcheck //using for validation
	trackingNumber string
	barcode        string
	notes          string
	actorID        kernel.UUID

	guard guard.ConstructorGuard
}

func NewReportMissingItemCommand(
	trackingNumber string,
	barcode string,
	notes string,
	actorID kernel.UUID,
) (ReportMissingItemCommand, error) {
	command := ReportMissingItemCommand{
		trackingNumber: strings.TrimSpace(trackingNumber),
		barcode:        strings.TrimSpace(barcode),
		notes:          notes,
		actorID:        actorID,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireText("tracking number", command.trackingNumber),
		requireText("barcode", command.barcode),
		requireID("actor", actorID),
	); err != nil {
		return ReportMissingItemCommand{}, err
	}

	return command, nil
}

func (c ReportMissingItemCommand) Validate() error {
	return c.guard.Validate(ErrReportMissingItemCommandIsNotConstructed)
}

func (c ReportMissingItemCommand) TrackingNumber() string {
	return c.trackingNumber
}

func (c ReportMissingItemCommand) Barcode() string {
	return c.barcode
}

func (c ReportMissingItemCommand) Notes() string {
	return c.notes
}

func (c ReportMissingItemCommand) ActorID() kernel.UUID {
	return c.actorID
}
