package contact

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mohammadpnp/contact-book/internal/application/ownership"
	domain "github.com/mohammadpnp/contact-book/internal/domain/contact"
	"github.com/mohammadpnp/contact-book/internal/domain/user"
	"github.com/mohammadpnp/contact-book/internal/validation"
)

var updateSchema = validation.Schema{
	Name: "update contact",
	Fields: map[string]validation.Rule{
		"id":         {Required: true, Kind: validation.Int},
		"first_name": {Max: 100},
		"last_name":  {Max: 100},
		"email":      {Max: 100},
		"phone":      {Max: 20},
	},
}

type UpdateInput struct {
	ID        int64
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
}

type Update interface {
	Execute(ctx context.Context, caller user.User, in UpdateInput) (ContactOutput, error)
}

type update struct {
	repo   domain.Repository
	logger *zap.Logger
}

func NewUpdate(repo domain.Repository, logger *zap.Logger) Update {
	return &update{repo: repo, logger: logger}
}

func (uc *update) Execute(ctx context.Context, caller user.User, in UpdateInput) (ContactOutput, error) {
	uc.logger.Debug("update contact",
		zap.String("username", caller.Username),
		zap.Int64("contact_id", in.ID))

	vals := validation.Values{"id": in.ID}
	vals.SetOptional("first_name", in.FirstName)
	vals.SetOptional("last_name", in.LastName)
	vals.SetOptional("email", in.Email)
	vals.SetOptional("phone", in.Phone)
	if _, err := updateSchema.Apply(vals); err != nil {
		return ContactOutput{}, err
	}

	c, err := ownership.RequireContact(ctx, uc.repo, caller.Username, in.ID)
	if err != nil {
		return ContactOutput{}, err
	}

	if in.FirstName != nil {
		c.FirstName = in.FirstName
	}
	if in.LastName != nil {
		c.LastName = in.LastName
	}
	if in.Email != nil {
		c.Email = in.Email
	}
	if in.Phone != nil {
		c.Phone = in.Phone
	}

	if err := uc.repo.Update(ctx, *c); err != nil {
		return ContactOutput{}, fmt.Errorf("update contact: %w", err)
	}

	return toOutput(*c), nil
}
