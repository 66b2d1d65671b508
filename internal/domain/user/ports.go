package user

import "context"

type Repository interface {
	Create(ctx context.Context, u User) error
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByToken(ctx context.Context, token string) (*User, error)
	CountByUsername(ctx context.Context, username string) (int64, error)
	Update(ctx context.Context, u User) error
	UpdateToken(ctx context.Context, username string, token *string) error
}
