package user

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	domain "github.com/mohammadpnp/contact-book/internal/domain/user"
)

type Logout interface {
	Execute(ctx context.Context, caller domain.User) (bool, error)
}

type logout struct {
	repo   domain.Repository
	logger *zap.Logger
}

func NewLogout(repo domain.Repository, logger *zap.Logger) Logout {
	return &logout{repo: repo, logger: logger}
}

func (uc *logout) Execute(ctx context.Context, caller domain.User) (bool, error) {
	uc.logger.Debug("logout user", zap.String("username", caller.Username))

	// Clearing the token invalidates the session; the old value resolves to
	// no user from here on.
	if err := uc.repo.UpdateToken(ctx, caller.Username, nil); err != nil {
		return false, fmt.Errorf("clear token: %w", err)
	}

	return true, nil
}
