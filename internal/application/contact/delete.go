package contact

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mohammadpnp/contact-book/internal/application/ownership"
	domain "github.com/mohammadpnp/contact-book/internal/domain/contact"
	"github.com/mohammadpnp/contact-book/internal/domain/user"
)

type Delete interface {
	Execute(ctx context.Context, caller user.User, contactID int64) (bool, error)
}

type deleteContact struct {
	repo   domain.Repository
	logger *zap.Logger
}

func NewDelete(repo domain.Repository, logger *zap.Logger) Delete {
	return &deleteContact{repo: repo, logger: logger}
}

func (uc *deleteContact) Execute(ctx context.Context, caller user.User, contactID int64) (bool, error) {
	uc.logger.Debug("delete contact",
		zap.String("username", caller.Username),
		zap.Int64("contact_id", contactID))

	if _, err := ownership.RequireContact(ctx, uc.repo, caller.Username, contactID); err != nil {
		return false, err
	}

	if err := uc.repo.Delete(ctx, contactID, caller.Username); err != nil {
		return false, fmt.Errorf("delete contact: %w", err)
	}

	return true, nil
}
