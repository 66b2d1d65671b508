package user

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/mohammadpnp/contact-book/internal/domain/user"
)

type Current interface {
	Execute(ctx context.Context, caller domain.User) (UserOutput, error)
}

type current struct {
	logger *zap.Logger
}

func NewCurrent(logger *zap.Logger) Current {
	return &current{logger: logger}
}

func (uc *current) Execute(ctx context.Context, caller domain.User) (UserOutput, error) {
	uc.logger.Debug("get current user", zap.String("username", caller.Username))

	return UserOutput{Username: caller.Username, Name: caller.Name}, nil
}
