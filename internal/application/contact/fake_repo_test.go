package contact_test

import (
	"context"

	domain "github.com/mohammadpnp/contact-book/internal/domain/contact"
)

// fakeContactRepo is an in-memory contact.Repository keyed by contact ID.
type fakeContactRepo struct {
	contacts map[int64]domain.Contact
	nextID   int64
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: map[int64]domain.Contact{}, nextID: 1}
}

func (f *fakeContactRepo) Create(ctx context.Context, c *domain.Contact) error {
	c.ID = f.nextID
	f.nextID++
	f.contacts[c.ID] = *c
	return nil
}

func (f *fakeContactRepo) FindByIDAndOwner(ctx context.Context, id int64, username string) (*domain.Contact, error) {
	c, ok := f.contacts[id]
	if !ok || c.Username != username {
		return nil, domain.ErrContactNotFound
	}
	return &c, nil
}

func (f *fakeContactRepo) Update(ctx context.Context, c domain.Contact) error {
	f.contacts[c.ID] = c
	return nil
}

func (f *fakeContactRepo) Delete(ctx context.Context, id int64, username string) error {
	delete(f.contacts, id)
	return nil
}

// fakeSearchRepo serves a fixed result set and records the query it received.
type fakeSearchRepo struct {
	contacts []domain.Contact
	total    int64

	gotUsername string
	gotFilter   domain.SearchFilter
	gotLimit    int
	gotOffset   int
}

func (f *fakeSearchRepo) Search(ctx context.Context, username string, filter domain.SearchFilter, limit, offset int) ([]domain.Contact, error) {
	f.gotUsername = username
	f.gotFilter = filter
	f.gotLimit = limit
	f.gotOffset = offset

	if offset >= len(f.contacts) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.contacts) {
		end = len(f.contacts)
	}
	return f.contacts[offset:end], nil
}

func (f *fakeSearchRepo) Count(ctx context.Context, username string, filter domain.SearchFilter) (int64, error) {
	return f.total, nil
}
