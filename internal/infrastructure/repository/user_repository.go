package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/mohammadpnp/contact-book/internal/domain/user"
	"github.com/mohammadpnp/contact-book/internal/infrastructure/db/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u domain.User) error {
	row := models.User{
		Username: u.Username,
		Password: u.Password,
		Name:     u.Name,
		Token:    u.Token,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var row models.User

	err := r.db.WithContext(ctx).First(&row, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}

	return toDomainUser(row), nil
}

func (r *UserRepository) FindByToken(ctx context.Context, token string) (*domain.User, error) {
	var row models.User

	err := r.db.WithContext(ctx).First(&row, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by token: %w", err)
	}

	return toDomainUser(row), nil
}

func (r *UserRepository) CountByUsername(ctx context.Context, username string) (int64, error) {
	var total int64

	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("username = ?", username).
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("count users by username: %w", err)
	}

	return total, nil
}

func (r *UserRepository) Update(ctx context.Context, u domain.User) error {
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("username = ?", u.Username).
		Updates(map[string]any{
			"name":     u.Name,
			"password": u.Password,
		}).Error
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	return nil
}

// UpdateToken writes the whole token column in one statement; a nil token
// clears the session.
func (r *UserRepository) UpdateToken(ctx context.Context, username string, token *string) error {
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("username = ?", username).
		Update("token", token).Error
	if err != nil {
		return fmt.Errorf("update user token: %w", err)
	}

	return nil
}

func toDomainUser(row models.User) *domain.User {
	return &domain.User{
		Username: row.Username,
		Password: row.Password,
		Name:     row.Name,
		Token:    row.Token,
	}
}
