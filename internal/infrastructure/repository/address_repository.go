package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/mohammadpnp/contact-book/internal/domain/address"
	"github.com/mohammadpnp/contact-book/internal/infrastructure/db/models"
)

type AddressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{db: db}
}

func (r *AddressRepository) Create(ctx context.Context, a *domain.Address) error {
	row := models.Address{
		ContactID:  a.ContactID,
		Street:     a.Street,
		City:       a.City,
		Province:   a.Province,
		Country:    a.Country,
		PostalCode: a.PostalCode,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("create address: %w", err)
	}

	a.ID = row.ID
	return nil
}

func (r *AddressRepository) FindByIDAndContact(ctx context.Context, id, contactID int64) (*domain.Address, error) {
	var row models.Address

	err := r.db.WithContext(ctx).First(&row, "id = ? AND contact_id = ?", id, contactID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAddressNotFound
		}
		return nil, fmt.Errorf("find address: %w", err)
	}

	return toDomainAddress(row), nil
}

func (r *AddressRepository) ListByContact(ctx context.Context, contactID int64) ([]domain.Address, error) {
	var rows []models.Address

	err := r.db.WithContext(ctx).
		Where("contact_id = ?", contactID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}

	addresses := make([]domain.Address, 0, len(rows))
	for _, row := range rows {
		addresses = append(addresses, *toDomainAddress(row))
	}

	return addresses, nil
}

func (r *AddressRepository) Update(ctx context.Context, a domain.Address) error {
	err := r.db.WithContext(ctx).
		Model(&models.Address{}).
		Where("id = ? AND contact_id = ?", a.ID, a.ContactID).
		Updates(map[string]any{
			"street":      a.Street,
			"city":        a.City,
			"province":    a.Province,
			"country":     a.Country,
			"postal_code": a.PostalCode,
		}).Error
	if err != nil {
		return fmt.Errorf("update address: %w", err)
	}

	return nil
}

func (r *AddressRepository) Delete(ctx context.Context, id, contactID int64) error {
	err := r.db.WithContext(ctx).
		Where("id = ? AND contact_id = ?", id, contactID).
		Delete(&models.Address{}).Error
	if err != nil {
		return fmt.Errorf("delete address: %w", err)
	}

	return nil
}

func toDomainAddress(row models.Address) *domain.Address {
	return &domain.Address{
		ID:         row.ID,
		ContactID:  row.ContactID,
		Street:     row.Street,
		City:       row.City,
		Province:   row.Province,
		Country:    row.Country,
		PostalCode: row.PostalCode,
	}
}
