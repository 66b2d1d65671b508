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

var createSchema = validation.Schema{
	Name: "create address",
	Fields: map[string]validation.Rule{
		"contact_id":  {Required: true, Kind: validation.Int},
		"street":      {Max: 255},
		"city":        {Max: 100},
		"province":    {Max: 100},
		"country":     {Required: true, Max: 100},
		"postal_code": {Required: true, Max: 10},
	},
}

type CreateInput struct {
	ContactID  int64
	Street     *string
	City       *string
	Province   *string
	Country    string
	PostalCode string
}

type Create interface {
	Execute(ctx context.Context, caller user.User, in CreateInput) (AddressOutput, error)
}

type create struct {
	contacts ownership.ContactFinder
	repo     domain.Repository
	logger   *zap.Logger
}

func NewCreate(contacts ownership.ContactFinder, repo domain.Repository, logger *zap.Logger) Create {
	return &create{contacts: contacts, repo: repo, logger: logger}
}

func (uc *create) Execute(ctx context.Context, caller user.User, in CreateInput) (AddressOutput, error) {
	uc.logger.Debug("create address",
		zap.String("username", caller.Username),
		zap.Int64("contact_id", in.ContactID))

	vals := validation.Values{
		"contact_id":  in.ContactID,
		"country":     in.Country,
		"postal_code": in.PostalCode,
	}
	vals.SetOptional("street", in.Street)
	vals.SetOptional("city", in.City)
	vals.SetOptional("province", in.Province)
	if _, err := createSchema.Apply(vals); err != nil {
		return AddressOutput{}, err
	}

	if _, err := ownership.RequireContact(ctx, uc.contacts, caller.Username, in.ContactID); err != nil {
		return AddressOutput{}, err
	}

	a := domain.Address{
		ContactID:  in.ContactID,
		Street:     in.Street,
		City:       in.City,
		Province:   in.Province,
		Country:    in.Country,
		PostalCode: in.PostalCode,
	}
	if err := uc.repo.Create(ctx, &a); err != nil {
		return AddressOutput{}, fmt.Errorf("create address: %w", err)
	}

	return toOutput(a), nil
}
