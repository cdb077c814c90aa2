package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"logistics/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

type Role string

const (
	RoleAdmin            Role = "admin"
	RoleLogisticsManager Role = "logistics_manager"
	RoleWarehouseStaff   Role = "warehouse_staff"
	RoleDeliveryDriver   Role = "delivery_driver"
)

// ParseRole accepts the role claim with or without the ROLE_ prefix, in any case.
func ParseRole(s string) (Role, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "role_")
	switch role := Role(s); role {
	case RoleAdmin, RoleLogisticsManager, RoleWarehouseStaff, RoleDeliveryDriver:
		return role, true
	}
	return "", false
}

// Claims carried by bearer tokens. Subject holds the actor id.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Actor is the authenticated caller of a request.
type Actor struct {
	ID   kernel.UUID
	Role Role
}

// Authenticate verifies the HS256 bearer token and stores the actor in the
// echo context. Tokens are issued elsewhere.
func Authenticate(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme, token, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				return c.JSON(http.StatusUnauthorized, errorResponse("missing bearer token"))
			}

			actor, err := parseActor(secret, strings.TrimSpace(token))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorResponse("invalid token"))
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

func parseActor(secret []byte, tokenString string) (Actor, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Actor{}, err
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return Actor{}, fmt.Errorf("subject: %w", err)
	}
	role, ok := ParseRole(claims.Role)
	if !ok {
		return Actor{}, errors.New("unknown role")
	}
	return Actor{ID: id, Role: role}, nil
}

func actorFrom(c echo.Context) Actor {
	actor, _ := c.Get(actorContextKey).(Actor)
	return actor
}

// Require lets the request through when the actor's role holds capability.
func Require(capability Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := c.Get(actorContextKey).(Actor)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorResponse("not authenticated"))
			}
			if !Allowed(actor.Role, capability) {
				return c.JSON(http.StatusForbidden, errorResponse("access denied"))
			}
			return next(c)
		}
	}
}
