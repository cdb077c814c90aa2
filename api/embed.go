// Package api holds the OpenAPI document of the REST interface.
package api

import _ "embed"

// OpenAPI is the document every /api request is validated against.
//
//go:embed openapi.yml
var OpenAPI []byte
