package assignment

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status of an inventory assignment.
//
//	PENDING -> IN_TRANSIT -> DELIVERED
//	PENDING | IN_TRANSIT -> CANCELLED
type Status int

const (
	Unknown Status = iota
	Pending
	InTransit
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("assignment status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("assignment status", fmt.Errorf("%d is not a valid status", s))
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

// ReleasesTruck reports whether entering s ends the truck binding.
func (s Status) ReleasesTruck() bool {
	return s.IsTerminal()
}

// TransitionTo validates the move to target. Moving to the current status is
// allowed and reported as unchanged.
func (s Status) TransitionTo(target Status) (Status, bool, error) {
	if err := target.Validate(); err != nil {
		return 0, false, err
	}
	if s == target {
		return s, false, nil
	}
	if s.IsTerminal() {
		return 0, false, errs.NewInvalidStateErrorWithCause("assignment", s.String(),
			fmt.Errorf("terminal status cannot change to %s", target))
	}

	allowed := map[Status][]Status{
		Pending:   {InTransit, Cancelled},
		InTransit: {Delivered, Cancelled},
	}
	for _, next := range allowed[s] {
		if next == target {
			return target, true, nil
		}
	}

	return 0, false, errs.NewInvalidStateErrorWithCause("assignment", s.String(),
		fmt.Errorf("cannot change to %s", target))
}
