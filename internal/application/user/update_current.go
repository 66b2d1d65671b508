package user

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	domain "github.com/mohammadpnp/contact-book/internal/domain/user"
	"github.com/mohammadpnp/contact-book/internal/validation"
)

var updateSchema = validation.Schema{
	Name: "update user",
	Fields: map[string]validation.Rule{
		"name":     {Max: 100},
		"password": {Max: 100},
	},
}

// UpdateCurrentInput fields are pointers so an absent field leaves the
// stored value untouched.
type UpdateCurrentInput struct {
	Name     *string
	Password *string
}

type UpdateCurrent interface {
	Execute(ctx context.Context, caller domain.User, in UpdateCurrentInput) (UserOutput, error)
}

type updateCurrent struct {
	repo       domain.Repository
	bcryptCost int
	logger     *zap.Logger
}

func NewUpdateCurrent(repo domain.Repository, bcryptCost int, logger *zap.Logger) UpdateCurrent {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &updateCurrent{repo: repo, bcryptCost: bcryptCost, logger: logger}
}

func (uc *updateCurrent) Execute(ctx context.Context, caller domain.User, in UpdateCurrentInput) (UserOutput, error) {
	uc.logger.Debug("update current user", zap.String("username", caller.Username))

	vals := validation.Values{}
	vals.SetOptional("name", in.Name)
	vals.SetOptional("password", in.Password)
	if _, err := updateSchema.Apply(vals); err != nil {
		return UserOutput{}, err
	}

	if in.Name != nil {
		caller.Name = *in.Name
	}
	if in.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), uc.bcryptCost)
		if err != nil {
			return UserOutput{}, fmt.Errorf("hash password: %w", err)
		}
		caller.Password = string(hashed)
	}

	if err := uc.repo.Update(ctx, caller); err != nil {
		return UserOutput{}, fmt.Errorf("update user: %w", err)
	}

	return UserOutput{Username: caller.Username, Name: caller.Name}, nil
}
