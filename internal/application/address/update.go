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

var updateSchema = validation.Schema{
	Name: "update address",
	Fields: map[string]validation.Rule{
		"id":          {Required: true, Kind: validation.Int},
		"contact_id":  {Required: true, Kind: validation.Int},
		"street":      {Max: 255},
		"city":        {Max: 100},
		"province":    {Max: 100},
		"country":     {Required: true, Max: 100},
		"postal_code": {Required: true, Max: 10},
	},
}

type UpdateInput struct {
	ID         int64
	ContactID  int64
	Street     *string
	City       *string
	Province   *string
	Country    string
	PostalCode string
}

type Update interface {
	Execute(ctx context.Context, caller user.User, in UpdateInput) (AddressOutput, error)
}

type update struct {
	contacts ownership.ContactFinder
	repo     domain.Repository
	logger   *zap.Logger
}

func NewUpdate(contacts ownership.ContactFinder, repo domain.Repository, logger *zap.Logger) Update {
	return &update{contacts: contacts, repo: repo, logger: logger}
}

func (uc *update) Execute(ctx context.Context, caller user.User, in UpdateInput) (AddressOutput, error) {
	uc.logger.Debug("update address",
		zap.String("username", caller.Username),
		zap.Int64("contact_id", in.ContactID),
		zap.Int64("address_id", in.ID))

	vals := validation.Values{
		"id":          in.ID,
		"contact_id":  in.ContactID,
		"country":     in.Country,
		"postal_code": in.PostalCode,
	}
	vals.SetOptional("street", in.Street)
	vals.SetOptional("city", in.City)
	vals.SetOptional("province", in.Province)
	if _, err := updateSchema.Apply(vals); err != nil {
		return AddressOutput{}, err
	}

	c, err := ownership.RequireContact(ctx, uc.contacts, caller.Username, in.ContactID)
	if err != nil {
		return AddressOutput{}, err
	}

	a, err := ownership.RequireAddress(ctx, uc.repo, c.ID, in.ID)
	if err != nil {
		return AddressOutput{}, err
	}

	if in.Street != nil {
		a.Street = in.Street
	}
	if in.City != nil {
		a.City = in.City
	}
	if in.Province != nil {
		a.Province = in.Province
	}
	a.Country = in.Country
	a.PostalCode = in.PostalCode

	if err := uc.repo.Update(ctx, *a); err != nil {
		return AddressOutput{}, fmt.Errorf("update address: %w", err)
	}

	return toOutput(*a), nil
}
