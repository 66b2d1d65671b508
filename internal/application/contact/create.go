package contact

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	domain "github.com/mohammadpnp/contact-book/internal/domain/contact"
	"github.com/mohammadpnp/contact-book/internal/domain/user"
	"github.com/mohammadpnp/contact-book/internal/validation"
)

var createSchema = validation.Schema{
	Name: "create contact",
	Fields: map[string]validation.Rule{
		"first_name": {Max: 100},
		"last_name":  {Max: 100},
		"email":      {Max: 100},
		"phone":      {Max: 20},
	},
}

type CreateInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
}

type Create interface {
	Execute(ctx context.Context, caller user.User, in CreateInput) (ContactOutput, error)
}

type create struct {
	repo   domain.Repository
	logger *zap.Logger
}

func NewCreate(repo domain.Repository, logger *zap.Logger) Create {
	return &create{repo: repo, logger: logger}
}

func (uc *create) Execute(ctx context.Context, caller user.User, in CreateInput) (ContactOutput, error) {
	uc.logger.Debug("create contact", zap.String("username", caller.Username))

	vals := validation.Values{}
	vals.SetOptional("first_name", in.FirstName)
	vals.SetOptional("last_name", in.LastName)
	vals.SetOptional("email", in.Email)
	vals.SetOptional("phone", in.Phone)
	if _, err := createSchema.Apply(vals); err != nil {
		return ContactOutput{}, err
	}

	c := domain.Contact{
		Username:  caller.Username,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
	}
	if err := uc.repo.Create(ctx, &c); err != nil {
		return ContactOutput{}, fmt.Errorf("create contact: %w", err)
	}

	return toOutput(c), nil
}
