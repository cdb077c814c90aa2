package shipment

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// ItemStatus is the scan state of a single shipment item.
type ItemStatus int

const (
	ItemUnknown ItemStatus = iota
	ItemPending
	ItemProcessed
	ItemDamaged
	ItemMissing
)

func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemUnknown:   "UNKNOWN",
		ItemPending:   "PENDING",
		ItemProcessed: "PROCESSED",
		ItemDamaged:   "DAMAGED",
		ItemMissing:   "MISSING",
	}
}

func ParseItemStatus(s string) (ItemStatus, error) {
	for status, name := range getItemStatusStrings() {
		if status != ItemUnknown && name == s {
			return status, nil
		}
	}
	return ItemUnknown, errs.NewValueIsInvalidErrorWithCause("item status", fmt.Errorf("%q is not a valid status", s))
}

func (s ItemStatus) Validate() error {
	if _, ok := getItemStatusStrings()[s]; !ok || s == ItemUnknown {
		return errs.NewValueIsInvalidErrorWithCause("item status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsScanResult reports whether s can be the outcome of a scan.
func (s ItemStatus) IsScanResult() bool {
	return s == ItemProcessed || s == ItemDamaged || s == ItemMissing
}
