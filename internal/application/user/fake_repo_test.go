package user_test

import (
	"context"

	domain "github.com/mohammadpnp/contact-book/internal/domain/user"
)

// fakeUserRepo is an in-memory user.Repository shared by the use-case tests.
type fakeUserRepo struct {
	users map[string]domain.User

	createErr error
	countErr  error
	findErr   error
	updateErr error
	tokenErr  error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]domain.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.users[u.Username]; ok {
		return domain.ErrUsernameTaken
	}
	f.users[u.Username] = u
	return nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	u, ok := f.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) FindByToken(ctx context.Context, token string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Token != nil && *u.Token == token {
			matched := u
			return &matched, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) CountByUsername(ctx context.Context, username string) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	if _, ok := f.users[username]; ok {
		return 1, nil
	}
	return 0, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u domain.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	stored := f.users[u.Username]
	stored.Username = u.Username
	stored.Name = u.Name
	stored.Password = u.Password
	f.users[u.Username] = stored
	return nil
}

func (f *fakeUserRepo) UpdateToken(ctx context.Context, username string, token *string) error {
	if f.tokenErr != nil {
		return f.tokenErr
	}
	stored := f.users[username]
	stored.Token = token
	f.users[username] = stored
	return nil
}
