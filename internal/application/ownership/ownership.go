package ownership

import (
	"context"
	"errors"
	"fmt"

	"github.com/mohammadpnp/contact-book/internal/domain/address"
	"github.com/mohammadpnp/contact-book/internal/domain/contact"
	"github.com/mohammadpnp/contact-book/internal/domain/failure"
)

type ContactFinder interface {
	FindByIDAndOwner(ctx context.Context, id int64, username string) (*contact.Contact, error)
}

type AddressFinder interface {
	FindByIDAndContact(ctx context.Context, id, contactID int64) (*address.Address, error)
}

// RequireContact returns the contact only if it exists AND belongs to
// username. A missing contact and someone else's contact fail identically,
// so callers cannot probe another tenant's ids.
func RequireContact(ctx context.Context, finder ContactFinder, username string, contactID int64) (*contact.Contact, error) {
	c, err := finder.FindByIDAndOwner(ctx, contactID, username)
	if err != nil {
		if errors.Is(err, contact.ErrContactNotFound) {
			return nil, failure.New(failure.NotFound, "Contact is not found")
		}
		return nil, fmt.Errorf("find contact: %w", err)
	}
	return c, nil
}

// RequireAddress returns the address only if it exists under contactID. It
// matches the two keys exactly as supplied and never re-derives the stored
// parent, so it must run after RequireContact has already bound contactID to
// the caller; address ownership is then transitive.
func RequireAddress(ctx context.Context, finder AddressFinder, contactID, addressID int64) (*address.Address, error) {
	a, err := finder.FindByIDAndContact(ctx, addressID, contactID)
	if err != nil {
		if errors.Is(err, address.ErrAddressNotFound) {
			return nil, failure.New(failure.NotFound, "Address is not found")
		}
		return nil, fmt.Errorf("find address: %w", err)
	}
	return a, nil
}
