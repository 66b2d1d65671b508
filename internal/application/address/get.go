package address

import (
	"context"

	"go.uber.org/zap"

	"github.com/mohammadpnp/contact-book/internal/application/ownership"
	domain "github.com/mohammadpnp/contact-book/internal/domain/address"
	"github.com/mohammadpnp/contact-book/internal/domain/user"
	"github.com/mohammadpnp/contact-book/internal/validation"
)

var getSchema = validation.Schema{
	Name: "get address",
	Fields: map[string]validation.Rule{
		"contact_id": {Required: true, Kind: validation.Int},
		"address_id": {Required: true, Kind: validation.Int},
	},
}

type GetInput struct {
	ContactID int64
	AddressID int64
}

type Get interface {
	Execute(ctx context.Context, caller user.User, in GetInput) (AddressOutput, error)
}

type get struct {
	contacts ownership.ContactFinder
	repo     domain.Repository
	logger   *zap.Logger
}

func NewGet(contacts ownership.ContactFinder, repo domain.Repository, logger *zap.Logger) Get {
	return &get{contacts: contacts, repo: repo, logger: logger}
}

func (uc *get) Execute(ctx context.Context, caller user.User, in GetInput) (AddressOutput, error) {
	uc.logger.Debug("get address",
		zap.String("username", caller.Username),
		zap.Int64("contact_id", in.ContactID),
		zap.Int64("address_id", in.AddressID))

	if _, err := getSchema.Apply(validation.Values{
		"contact_id": in.ContactID,
		"address_id": in.AddressID,
	}); err != nil {
		return AddressOutput{}, err
	}

	c, err := ownership.RequireContact(ctx, uc.contacts, caller.Username, in.ContactID)
	if err != nil {
		return AddressOutput{}, err
	}

	a, err := ownership.RequireAddress(ctx, uc.repo, c.ID, in.AddressID)
	if err != nil {
		return AddressOutput{}, err
	}

	return toOutput(*a), nil
}
