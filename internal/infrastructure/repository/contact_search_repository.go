package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/mohammadpnp/contact-book/internal/domain/contact"
)

// ContactSearchRepository runs the compound filter queries directly over pgx
// rather than through the ORM; the filter set is dynamic and the query is
// the hot path.
type ContactSearchRepository struct {
	pool *pgxpool.Pool
}

func NewContactSearchRepository(pool *pgxpool.Pool) *ContactSearchRepository {
	return &ContactSearchRepository{pool: pool}
}

func (r *ContactSearchRepository) Search(ctx context.Context, username string, filter domain.SearchFilter, limit, offset int) ([]domain.Contact, error) {
	where, args := buildFilter(username, filter)

	query := fmt.Sprintf(
		"SELECT id, username, first_name, last_name, email, phone FROM contacts WHERE %s ORDER BY id LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search contacts: %w", err)
	}
	defer rows.Close()

	var contacts []domain.Contact
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.ID, &c.Username, &c.FirstName, &c.LastName, &c.Email, &c.Phone); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search contacts: %w", err)
	}

	return contacts, nil
}

func (r *ContactSearchRepository) Count(ctx context.Context, username string, filter domain.SearchFilter) (int64, error) {
	where, args := buildFilter(username, filter)

	var total int64
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM contacts WHERE "+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}

	return total, nil
}

// buildFilter conjoins the owning username with every present search term.
// Each term is a case-insensitive substring match; name matches either name
// column.
func buildFilter(username string, filter domain.SearchFilter) (string, []any) {
	clauses := []string{"username = $1"}
	args := []any{username}

	if filter.Name != nil {
		args = append(args, "%"+*filter.Name+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d)", n, n))
	}
	if filter.Email != nil {
		args = append(args, "%"+*filter.Email+"%")
		clauses = append(clauses, fmt.Sprintf("email ILIKE $%d", len(args)))
	}
	if filter.Phone != nil {
		args = append(args, "%"+*filter.Phone+"%")
		clauses = append(clauses, fmt.Sprintf("phone ILIKE $%d", len(args)))
	}

	return strings.Join(clauses, " AND "), args
}
