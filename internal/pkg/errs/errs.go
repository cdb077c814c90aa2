package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels. Every typed error in this package unwraps to exactly one of them,
// so callers classify failures with errors.Is.
var (
	ErrObjectNotFound        = errors.New("object not found")
	ErrValueIsInvalid        = errors.New("value is invalid")
	ErrValueIsOutOfRange     = errors.New("value is out of range")
	ErrValueIsRequired       = errors.New("value is required")
	ErrInvalidState          = errors.New("invalid state")
	ErrCapacityExceeded      = errors.New("capacity exceeded")
	ErrInsufficientInventory = errors.New("insufficient inventory")
)

func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, sanitize(cause.Error()))
}

// ObjectNotFoundError reports a lookup that found nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause == nil {
		return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
	}
	return withCause(
		sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s", ErrObjectNotFound, e.ParamName, e.ID)),
		e.Cause,
	)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max)
	return withCause(sanitize(msg), e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidStateError reports an operation attempted on an entity whose
// current status does not allow it.
type InvalidStateError struct {
	Entity string
	State  string
	Cause  error
}

func NewInvalidStateError(entity, state string) *InvalidStateError {
	return &InvalidStateError{Entity: entity, State: state}
}

func NewInvalidStateErrorWithCause(entity, state string, cause error) *InvalidStateError {
	return &InvalidStateError{Entity: entity, State: state, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	return withCause(sanitize(fmt.Sprintf("%s: %s is %s", ErrInvalidState, e.Entity, e.State)), e.Cause)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// CapacityExceededError reports a load that does not fit into what is left of a capacity.
type CapacityExceededError struct {
	Dimension string
	Required  any
	Available any
}

func NewCapacityExceededError(dimension string, required, available any) *CapacityExceededError {
	return &CapacityExceededError{Dimension: dimension, Required: required, Available: available}
}

func (e *CapacityExceededError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s required %v, available %v",
		ErrCapacityExceeded, e.Dimension, e.Required, e.Available))
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

type InsufficientInventoryError struct {
	ItemID    any
	Requested int
	Available int
}

func NewInsufficientInventoryError(itemID any, requested, available int) *InsufficientInventoryError {
	return &InsufficientInventoryError{ItemID: itemID, Requested: requested, Available: available}
}

func (e *InsufficientInventoryError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s requested %d, available %d",
		ErrInsufficientInventory, e.ItemID, e.Requested, e.Available))
}

func (e *InsufficientInventoryError) Unwrap() error {
	return ErrInsufficientInventory
}

// IsValidation reports whether err is one of the input validation kinds.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrValueIsOutOfRange)
}

// IsBusiness reports whether err is an expected business rejection, as opposed
// to a missing object or an infrastructure failure.
func IsBusiness(err error) bool {
	return IsValidation(err) ||
		errors.Is(err, ErrInvalidState) ||
		errors.Is(err, ErrCapacityExceeded) ||
		errors.Is(err, ErrInsufficientInventory)
}
