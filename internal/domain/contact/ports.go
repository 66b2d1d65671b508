package contact

import "context"

type Repository interface {
	Create(ctx context.Context, c *Contact) error
	FindByIDAndOwner(ctx context.Context, id int64, username string) (*Contact, error)
	Update(ctx context.Context, c Contact) error
	Delete(ctx context.Context, id int64, username string) error
}

// SearchRepository serves the filtered, paginated listing. Results are
// always restricted to the owning username inside the query itself.
type SearchRepository interface {
	Search(ctx context.Context, username string, filter SearchFilter, limit, offset int) ([]Contact, error)
	Count(ctx context.Context, username string, filter SearchFilter) (int64, error)
}
