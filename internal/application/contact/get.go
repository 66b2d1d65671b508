package contact

import (
	"context"

	"go.uber.org/zap"

	"github.com/mohammadpnp/contact-book/internal/application/ownership"
	domain "github.com/mohammadpnp/contact-book/internal/domain/contact"
	"github.com/mohammadpnp/contact-book/internal/domain/user"
)

type Get interface {
	Execute(ctx context.Context, caller user.User, contactID int64) (ContactOutput, error)
}

type get struct {
	repo   domain.Repository
	logger *zap.Logger
}

func NewGet(repo domain.Repository, logger *zap.Logger) Get {
	return &get{repo: repo, logger: logger}
}

func (uc *get) Execute(ctx context.Context, caller user.User, contactID int64) (ContactOutput, error) {
	uc.logger.Debug("get contact",
		zap.String("username", caller.Username),
		zap.Int64("contact_id", contactID))

	c, err := ownership.RequireContact(ctx, uc.repo, caller.Username, contactID)
	if err != nil {
		return ContactOutput{}, err
	}

	return toOutput(*c), nil
}
