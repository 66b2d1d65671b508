package address

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mohammadpnp/contact-book/internal/application/ownership"
	domain "github.com/mohammadpnp/contact-book/internal/domain/address"
	"github.com/mohammadpnp/contact-book/internal/domain/user"
)

type List interface {
	Execute(ctx context.Context, caller user.User, contactID int64) ([]AddressOutput, error)
}

type list struct {
	contacts ownership.ContactFinder
	repo     domain.Repository
	logger   *zap.Logger
}

func NewList(contacts ownership.ContactFinder, repo domain.Repository, logger *zap.Logger) List {
	return &list{contacts: contacts, repo: repo, logger: logger}
}

func (uc *list) Execute(ctx context.Context, caller user.User, contactID int64) ([]AddressOutput, error) {
	uc.logger.Debug("list addresses",
		zap.String("username", caller.Username),
		zap.Int64("contact_id", contactID))

	// Only the top-level contact is verified; the query below is already
	// scoped to it.
	if _, err := ownership.RequireContact(ctx, uc.contacts, caller.Username, contactID); err != nil {
		return nil, err
	}

	addresses, err := uc.repo.ListByContact(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}

	outputs := make([]AddressOutput, 0, len(addresses))
	for _, a := range addresses {
		outputs = append(outputs, toOutput(a))
	}

	return outputs, nil
}
