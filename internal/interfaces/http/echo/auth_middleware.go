package echo

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/mohammadpnp/contact-book/internal/domain/failure"
	domain "github.com/mohammadpnp/contact-book/internal/domain/user"
)

const identityKey = "identity"

// TokenResolver maps a presented credential to its user. A missing match is
// a normal outcome, reported through ErrUserNotFound, never a failure.
type TokenResolver interface {
	FindByToken(ctx context.Context, token string) (*domain.User, error)
}

// ResolveIdentity inspects the Authorization header on every request and
// stashes the matching user, when there is one, for the route group
// downstream. It never rejects; that is RequireIdentity's job.
func ResolveIdentity(users TokenResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get("Authorization")
			if token == "" {
				return next(c)
			}

			u, err := users.FindByToken(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return next(c)
				}
				return writeFailure(c, err)
			}

			c.Set(identityKey, u)
			return next(c)
		}
	}
}

// RequireIdentity rejects the request before any handler logic runs when no
// identity was resolved, so an unauthenticated caller learns nothing about
// payloads or resources.
func RequireIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := c.Get(identityKey).(*domain.User); !ok {
				return writeFailure(c, failure.New(failure.Unauthorized, "Unauthorized"))
			}
			return next(c)
		}
	}
}

// currentUser returns the resolved identity. Handlers behind
// RequireIdentity always get a populated user.
func currentUser(c echo.Context) domain.User {
	if u, ok := c.Get(identityKey).(*domain.User); ok {
		return *u
	}
	return domain.User{}
}
