package inventory

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

type TransferStatus int

const (
	TransferUnknown TransferStatus = iota
	TransferPending
	TransferInTransit
	TransferCompleted
	TransferCancelled
)

func getTransferStatusStrings() map[TransferStatus]string {
	return map[TransferStatus]string{
		TransferUnknown:   "UNKNOWN",
		TransferPending:   "PENDING",
		TransferInTransit: "IN_TRANSIT",
		TransferCompleted: "COMPLETED",
		TransferCancelled: "CANCELLED",
	}
}

func ParseTransferStatus(s string) (TransferStatus, error) {
	for status, name := range getTransferStatusStrings() {
		if status != TransferUnknown && name == s {
			return status, nil
		}
	}
	return TransferUnknown, errs.NewValueIsInvalidErrorWithCause("transfer status", fmt.Errorf("%q is not a valid status", s))
}

func (s TransferStatus) Validate() error {
	if _, ok := getTransferStatusStrings()[s]; !ok || s == TransferUnknown {
		return errs.NewValueIsInvalidErrorWithCause("transfer status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s TransferStatus) String() string {
	if str, ok := getTransferStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

func (s TransferStatus) IsTerminal() bool {
	return s == TransferCompleted || s == TransferCancelled
}

func (s TransferStatus) Dispatch() (TransferStatus, error) {
	if s != TransferPending && s != TransferInTransit {
		return 0, errs.NewInvalidStateError("transfer", s.String())
	}
	return TransferInTransit, nil
}

func (s TransferStatus) Complete() (TransferStatus, error) {
	if s.IsTerminal() {
		return 0, errs.NewInvalidStateError("transfer", s.String())
	}
	return TransferCompleted, nil
}

func (s TransferStatus) Cancel() (TransferStatus, error) {
	if s.IsTerminal() {
		return 0, errs.NewInvalidStateError("transfer", s.String())
	}
	return TransferCancelled, nil
}
