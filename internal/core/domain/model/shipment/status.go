package shipment

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

type Status int

const (
	Unknown Status = iota
	Pending
	ScheduledForPickup
	ReadyForPickup
	InTransit
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "UNKNOWN",
		Pending:            "PENDING",
		ScheduledForPickup: "SCHEDULED_FOR_PICKUP",
		ReadyForPickup:     "READY_FOR_PICKUP",
		InTransit:          "IN_TRANSIT",
		Delivered:          "DELIVERED",
		Cancelled:          "CANCELLED",
	}
}

func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("shipment status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("shipment status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// AcceptsScans reports whether items may still be processed. Once the truck
// has left nothing about the cargo can change.
func (s Status) AcceptsScans() bool {
	return s != InTransit && !s.IsTerminal()
}

func (s Status) invalid(action string) error {
	return errs.NewInvalidStateErrorWithCause("shipment", s.String(), fmt.Errorf("cannot %s", action))
}

func (s Status) ScheduleForPickup() (Status, error) {
	if s != Pending {
		return 0, s.invalid("assign a truck")
	}
	return ScheduledForPickup, nil
}

func (s Status) MarkReady() (Status, error) {
	if s != ScheduledForPickup {
		return 0, s.invalid("mark ready for pickup")
	}
	return ReadyForPickup, nil
}

func (s Status) StartTransit() (Status, error) {
	if s != ReadyForPickup {
		return 0, s.invalid("start transit")
	}
	return InTransit, nil
}

func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return 0, s.invalid("deliver")
	}
	return Delivered, nil
}

func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() {
		return 0, s.invalid("cancel")
	}
	return Cancelled, nil
}
