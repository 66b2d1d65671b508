package address_test

import (
	"context"

	domain "github.com/mohammadpnp/contact-book/internal/domain/address"
	contactdomain "github.com/mohammadpnp/contact-book/internal/domain/contact"
)

// fakeContactFinder knows which contacts exist and who owns them.
type fakeContactFinder struct {
	owners map[int64]string
}

func (f *fakeContactFinder) FindByIDAndOwner(ctx context.Context, id int64, username string) (*contactdomain.Contact, error) {
	owner, ok := f.owners[id]
	if !ok || owner != username {
		return nil, contactdomain.ErrContactNotFound
	}
	return &contactdomain.Contact{ID: id, Username: owner}, nil
}

// fakeAddressRepo is an in-memory address.Repository keyed by address ID.
type fakeAddressRepo struct {
	addresses map[int64]domain.Address
	nextID    int64
}

func newFakeAddressRepo() *fakeAddressRepo {
	return &fakeAddressRepo{addresses: map[int64]domain.Address{}, nextID: 1}
}

func (f *fakeAddressRepo) Create(ctx context.Context, a *domain.Address) error {
	a.ID = f.nextID
	f.nextID++
	f.addresses[a.ID] = *a
	return nil
}

func (f *fakeAddressRepo) FindByIDAndContact(ctx context.Context, id, contactID int64) (*domain.Address, error) {
	a, ok := f.addresses[id]
	if !ok || a.ContactID != contactID {
		return nil, domain.ErrAddressNotFound
	}
	return &a, nil
}

func (f *fakeAddressRepo) ListByContact(ctx context.Context, contactID int64) ([]domain.Address, error) {
	var out []domain.Address
	for id := int64(1); id < f.nextID; id++ {
		if a, ok := f.addresses[id]; ok && a.ContactID == contactID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAddressRepo) Update(ctx context.Context, a domain.Address) error {
	f.addresses[a.ID] = a
	return nil
}

func (f *fakeAddressRepo) Delete(ctx context.Context, id, contactID int64) error {
	delete(f.addresses, id)
	return nil
}
