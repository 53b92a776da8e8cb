package store

import (
	"context"
	"fmt"

	"food-order-api/apperr"
	"food-order-api/models"
)

// MenuPatch carries the fields of an edit; nil fields are left unchanged.
type MenuPatch struct {
	Restaurant *string
	Food       *string
	Drink      *string
}

func (s *Store) CreateMenu(ctx context.Context, restaurant, food, drink string) (*models.Menu, error) {
	menu := &models.Menu{Restaurant: restaurant, Food: food, Drink: drink}
	if err := s.db.WithContext(ctx).Create(menu).Error; err != nil {
		return nil, fmt.Errorf("create menu: %w", err)
	}
	return menu, nil
}

func (s *Store) ListMenus(ctx context.Context) ([]models.Menu, error) {
	menus := []models.Menu{}
	if err := s.db.WithContext(ctx).Order("created_at asc").Find(&menus).Error; err != nil {
		return nil, fmt.Errorf("list menus: %w", err)
	}
	return menus, nil
}

func (s *Store) UpdateMenu(ctx context.Context, id string, patch MenuPatch) (*models.Menu, error) {
	var menu models.Menu
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&menu).Error; err != nil {
		return nil, notFound(err, "menu", id)
	}
	setIfPresent(&menu.Restaurant, patch.Restaurant)
	setIfPresent(&menu.Food, patch.Food)
	setIfPresent(&menu.Drink, patch.Drink)

	res := s.db.WithContext(ctx).Model(&menu).
		Select("restaurant", "food", "drink", "updated_at").
		Updates(&menu)
	if res.Error != nil {
		return nil, fmt.Errorf("update menu %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("menu %s: %w", id, apperr.ErrNotFound)
	}
	return &menu, nil
}

func (s *Store) DeleteMenu(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Menu{})
	if res.Error != nil {
		return fmt.Errorf("delete menu %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("menu %s: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func setIfPresent(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
