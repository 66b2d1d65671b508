package address

import "context"

type Repository interface {
	Create(ctx context.Context, a *Address) error
	FindByIDAndContact(ctx context.Context, id, contactID int64) (*Address, error)
	ListByContact(ctx context.Context, contactID int64) ([]Address, error)
	Update(ctx context.Context, a Address) error
	Delete(ctx context.Context, id, contactID int64) error
}
