package store

import (
	"context"
	"errors"
	"fmt"

	"food-order-api/apperr"
	"food-order-api/models"
)

// CreateUser validates, hashes and inserts a new user. Validation failures
// wrap apperr.ErrValidation, an existing email wraps apperr.ErrDuplicate.
func (s *Store) CreateUser(ctx context.Context, name, email, password string, role models.Role) (*models.User, error) {
	email = models.NormalizeEmail(email)

	_, err := s.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("email %s: %w", email, apperr.ErrDuplicate)
	case !errors.Is(err, apperr.ErrNotFound):
		return nil, err
	}

	user := &models.User{Name: name, Email: email, Password: password, Role: role}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if !errors.Is(err, apperr.ErrValidation) && isDuplicate(err) {
			return nil, fmt.Errorf("email %s: %w", email, apperr.ErrDuplicate)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	email = models.NormalizeEmail(email)
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFound(err, "user", email)
	}
	return &user, nil
}

func (s *Store) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, notFound(err, "user", id)
	}
	return &user, nil
}

// EnsureAdmin creates an Admin account for email unless one already exists.
// An existing non-admin account with that email is left untouched.
func (s *Store) EnsureAdmin(ctx context.Context, email, password string) (*models.User, bool, error) {
	existing, err := s.FindUserByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, false, err
	}
	user, err := s.CreateUser(ctx, "admin", email, password, models.RoleAdmin)
	if err != nil {
		return nil, false, err
	}
	return user, true, nil
}
