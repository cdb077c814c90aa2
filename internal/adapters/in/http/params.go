package http

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Parameters are bound the way oapi-codegen's echo wrappers bind them, so a
// path or query value means the same here as in the OpenAPI document.

func pathID(c echo.Context, name string) (kernel.UUID, error) {
	var raw openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return toID(name, raw)
}

func pathString(c echo.Context, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}

func queryDecimal(c echo.Context, name string) (decimal.Decimal, error) {
	var value string
	if err := runtime.BindQueryParameter("form", true, true, name, c.QueryParams(), &value); err != nil {
		return decimal.Zero, errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return d, nil
}

// queryString returns the optional query parameter name, or "" when absent.
func queryString(c echo.Context, name string) (string, error) {
	var value *string
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &value); err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if value == nil {
		return "", nil
	}
	return *value, nil
}

// bindID binds an identifier carried in a request body.
func bindID(name, value string) (kernel.UUID, error) {
	var raw openapi_types.UUID
	if err := runtime.BindStringToObject(value, &raw); err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return toID(name, raw)
}

func bindOptionalID(name string, value *string) (*kernel.UUID, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	id, err := bindID(name, *value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func toID(name string, raw openapi_types.UUID) (kernel.UUID, error) {
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}
