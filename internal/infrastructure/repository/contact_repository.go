package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/mohammadpnp/contact-book/internal/domain/contact"
	"github.com/mohammadpnp/contact-book/internal/infrastructure/db/models"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, c *domain.Contact) error {
	row := models.Contact{
		Username:  c.Username,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("create contact: %w", err)
	}

	c.ID = row.ID
	return nil
}

// FindByIDAndOwner matches both keys in one predicate, so nonexistence and
// foreign ownership are indistinguishable to the caller.
func (r *ContactRepository) FindByIDAndOwner(ctx context.Context, id int64, username string) (*domain.Contact, error) {
	var row models.Contact

	err := r.db.WithContext(ctx).First(&row, "id = ? AND username = ?", id, username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrContactNotFound
		}
		return nil, fmt.Errorf("find contact: %w", err)
	}

	return toDomainContact(row), nil
}

func (r *ContactRepository) Update(ctx context.Context, c domain.Contact) error {
	err := r.db.WithContext(ctx).
		Model(&models.Contact{}).
		Where("id = ? AND username = ?", c.ID, c.Username).
		Updates(map[string]any{
			"first_name": c.FirstName,
			"last_name":  c.LastName,
			"email":      c.Email,
			"phone":      c.Phone,
		}).Error
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}

	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id int64, username string) error {
	err := r.db.WithContext(ctx).
		Where("id = ? AND username = ?", id, username).
		Delete(&models.Contact{}).Error
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}

	return nil
}

func toDomainContact(row models.Contact) *domain.Contact {
	return &domain.Contact{
		ID:        row.ID,
		Username:  row.Username,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Email:     row.Email,
		Phone:     row.Phone,
	}
}
