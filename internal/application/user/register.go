package user

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	domain "github.com/mohammadpnp/contact-book/internal/domain/user"
	"github.com/mohammadpnp/contact-book/internal/domain/failure"
	"github.com/mohammadpnp/contact-book/internal/validation"
)

var registerSchema = validation.Schema{
	Name: "register user",
	Fields: map[string]validation.Rule{
		"username": {Required: true, Max: 100},
		"password": {Required: true, Max: 100},
		"name":     {Required: true, Max: 100},
	},
}

type RegisterInput struct {
	Username string
	Password string
	Name     string
}

type Register interface {
	Execute(ctx context.Context, in RegisterInput) (UserOutput, error)
}

type register struct {
	repo       domain.Repository
	bcryptCost int
	logger     *zap.Logger
}

func NewRegister(repo domain.Repository, bcryptCost int, logger *zap.Logger) Register {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &register{repo: repo, bcryptCost: bcryptCost, logger: logger}
}

func (uc *register) Execute(ctx context.Context, in RegisterInput) (UserOutput, error) {
	uc.logger.Debug("register user", zap.String("username", in.Username))

	if _, err := registerSchema.Apply(validation.Values{
		"username": in.Username,
		"password": in.Password,
		"name":     in.Name,
	}); err != nil {
		return UserOutput{}, err
	}

	total, err := uc.repo.CountByUsername(ctx, in.Username)
	if err != nil {
		return UserOutput{}, fmt.Errorf("count username: %w", err)
	}
	if total != 0 {
		return UserOutput{}, failure.New(failure.Conflict, "Username already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.bcryptCost)
	if err != nil {
		return UserOutput{}, fmt.Errorf("hash password: %w", err)
	}

	u := domain.User{
		Username: in.Username,
		Password: string(hashed),
		Name:     in.Name,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		// Two concurrent registrations can both pass the count check; the
		// unique key decides the winner.
		if errors.Is(err, domain.ErrUsernameTaken) {
			return UserOutput{}, failure.New(failure.Conflict, "Username already registered")
		}
		return UserOutput{}, fmt.Errorf("create user: %w", err)
	}

	return UserOutput{Username: u.Username, Name: u.Name}, nil
}
