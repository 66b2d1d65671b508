package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	domain "github.com/mohammadpnp/contact-book/internal/domain/user"
	"github.com/mohammadpnp/contact-book/internal/domain/failure"
	"github.com/mohammadpnp/contact-book/internal/validation"
)

var loginSchema = validation.Schema{
	Name: "login user",
	Fields: map[string]validation.Rule{
		"username": {Required: true, Max: 100},
		"password": {Required: true, Max: 100},
	},
}

type LoginInput struct {
	Username string
	Password string
}

type Login interface {
	Execute(ctx context.Context, in LoginInput) (UserOutput, error)
}

type login struct {
	repo   domain.Repository
	logger *zap.Logger
}

func NewLogin(repo domain.Repository, logger *zap.Logger) Login {
	return &login{repo: repo, logger: logger}
}

func (uc *login) Execute(ctx context.Context, in LoginInput) (UserOutput, error) {
	uc.logger.Debug("login user", zap.String("username", in.Username))

	if _, err := loginSchema.Apply(validation.Values{
		"username": in.Username,
		"password": in.Password,
	}); err != nil {
		return UserOutput{}, err
	}

	u, err := uc.repo.FindByUsername(ctx, in.Username)
	if err != nil {
		// Unknown username and wrong password must be indistinguishable.
		if errors.Is(err, domain.ErrUserNotFound) {
			return UserOutput{}, failure.New(failure.Unauthorized, "Username or password is invalid")
		}
		return UserOutput{}, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(in.Password)); err != nil {
		return UserOutput{}, failure.New(failure.Unauthorized, "Username or password is invalid")
	}

	// A fresh token replaces any previous one, so at most one session is
	// active per account.
	token := uuid.NewString()
	if err := uc.repo.UpdateToken(ctx, u.Username, &token); err != nil {
		return UserOutput{}, fmt.Errorf("store token: %w", err)
	}

	return UserOutput{Username: u.Username, Name: u.Name, Token: token}, nil
}
