package http

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"parcel/internal/generated/servers"
	"parcel/internal/pkg/logging"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleCourier  Role = "courier"
	RoleAdmin    Role = "admin"
)

var roleHierarchy = map[Role]int{
	RoleCustomer: 1,
	RoleCourier:  2,
	RoleAdmin:    3,
}

const identityKey = "identity"

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("insufficient permissions")
)

// Identity is the caller as asserted by a verified token.
type Identity struct {
	Subject string
	Role    Role
}

// Allows reports whether the identity's role is at least required.
func (i Identity) Allows(required Role) bool {
	have, ok := roleHierarchy[i.Role]
	if !ok {
		return false
	}
	want, ok := roleHierarchy[required]
	return ok && have >= want
}

// Authenticate verifies an HS256 bearer token when one is present and stores
// the resulting Identity. Requests without a token pass through anonymously;
// handlers decide whether that is enough.
func Authenticate(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}

			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header must be a Bearer token")
			}

			identity, err := parseToken(secret, tokenString)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token").SetInternal(err)
			}

			c.Set(identityKey, identity)
			req := c.Request()
			c.SetRequest(req.WithContext(logging.WithActor(req.Context(), identity.Subject)))

			return next(c)
		}
	}
}

func parseToken(secret []byte, tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Identity{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, errors.New("unexpected claims type")
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return Identity{}, errors.New("token has no subject")
	}

	role, _ := claims["role"].(string)
	if _, known := roleHierarchy[Role(role)]; !known {
		return Identity{}, fmt.Errorf("unknown role %q", role)
	}

	return Identity{Subject: subject, Role: Role(role)}, nil
}

// SignToken issues an HS256 token carrying sub and role claims.
func SignToken(secret []byte, subject string, role Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// authorize checks the caller against the scopes the route declares.
func authorize(c echo.Context) (Identity, error) {
	identity, ok := c.Get(identityKey).(Identity)
	if !ok {
		return Identity{}, ErrUnauthenticated
	}

	scopes, _ := c.Get(servers.BearerAuthScopes).([]string)
	if slices.ContainsFunc(scopes, func(scope string) bool { return !identity.Allows(Role(scope)) }) {
		return Identity{}, ErrForbidden
	}

	return identity, nil
}
