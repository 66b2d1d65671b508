package address

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mohammadpnp/contact-book/internal/application/ownership"
	domain "github.com/mohammadpnp/contact-book/internal/domain/address"
	"github.com/mohammadpnp/contact-book/internal/domain/user"
	"github.com/mohammadpnp/contact-book/internal/validation"
)

var deleteSchema = validation.Schema{
	Name: "delete address",
	Fields: map[string]validation.Rule{
		"contact_id": {Required: true, Kind: validation.Int},
		"address_id": {Required: true, Kind: validation.Int},
	},
}

type DeleteInput struct {
	ContactID int64
	AddressID int64
}

type Delete interface {
	Execute(ctx context.Context, caller user.User, in DeleteInput) (bool, error)
}

type deleteAddress struct {
	contacts ownership.ContactFinder
	repo     domain.Repository
	logger   *zap.Logger
}

func NewDelete(contacts ownership.ContactFinder, repo domain.Repository, logger *zap.Logger) Delete {
	return &deleteAddress{contacts: contacts, repo: repo, logger: logger}
}

func (uc *deleteAddress) Execute(ctx context.Context, caller user.User, in DeleteInput) (bool, error) {
	uc.logger.Debug("delete address",
		zap.String("username", caller.Username),
		zap.Int64("contact_id", in.ContactID),
		zap.Int64("address_id", in.AddressID))

	if _, err := deleteSchema.Apply(validation.Values{
		"contact_id": in.ContactID,
		"address_id": in.AddressID,
	}); err != nil {
		return false, err
	}

	c, err := ownership.RequireContact(ctx, uc.contacts, caller.Username, in.ContactID)
	if err != nil {
		return false, err
	}

	a, err := ownership.RequireAddress(ctx, uc.repo, c.ID, in.AddressID)
	if err != nil {
		return false, err
	}

	if err := uc.repo.Delete(ctx, a.ID, a.ContactID); err != nil {
		return false, fmt.Errorf("delete address: %w", err)
	}

	return true, nil
}
