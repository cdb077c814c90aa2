package fleet

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status is the operational state of a truck.
type Status int

const (
	// Unknown is the zero value and is never a valid truck status.
	Unknown Status = iota
	// Available trucks can be bound to a shipment or an inventory assignment.
	Available
	// Assigned trucks are bound but have not left the warehouse yet.
	Assigned
	// InTransit trucks are on the road.
	InTransit
	// Maintenance trucks are out of service.
	Maintenance
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "UNKNOWN",
		Available:   "AVAILABLE",
		Assigned:    "ASSIGNED",
		InTransit:   "IN_TRANSIT",
		Maintenance: "MAINTENANCE",
	}
}

// ParseStatus maps the external name of a status back to its value.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("truck status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("truck status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

func (s Status) Assign() (Status, error) {
	if s != Available {
		return 0, errs.NewInvalidStateErrorWithCause("truck", s.String(), fmt.Errorf("only %s trucks can be assigned", Available))
	}
	return Assigned, nil
}

func (s Status) Dispatch() (Status, error) {
	if s != Assigned && s != InTransit {
		return 0, errs.NewInvalidStateErrorWithCause("truck", s.String(), fmt.Errorf("only %s trucks can be dispatched", Assigned))
	}
	return InTransit, nil
}

func (s Status) Release() (Status, error) {
	if s == Maintenance {
		return 0, errs.NewInvalidStateErrorWithCause("truck", s.String(), fmt.Errorf("trucks in maintenance are released by maintenance"))
	}
	return Available, nil
}

func (s Status) CompleteMaintenance() (Status, error) {
	if s != Maintenance {
		return 0, errs.NewInvalidStateErrorWithCause("truck", s.String(), fmt.Errorf("truck is not in maintenance"))
	}
	return Available, nil
}

func (s Status) SendToMaintenance() (Status, error) {
	if s != Available && s != Maintenance {
		return 0, errs.NewInvalidStateErrorWithCause("truck", s.String(), fmt.Errorf("a bound truck cannot go to maintenance"))
	}
	return Maintenance, nil
}
