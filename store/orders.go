package store

import (
	"context"
	"fmt"

	"food-order-api/apperr"
	"food-order-api/models"
)

// OrderPatch carries the fields of an edit; nil fields are left unchanged.
// The owner and the placing user are never edited.
type OrderPatch struct {
	Restaurant *string
	Food       *string
	Drink      *string
}

func (s *Store) CreateOrder(ctx context.Context, order *models.Order) error {
	if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

// ListOrdersByUser returns the orders placed by userID, newest first.
func (s *Store) ListOrdersByUser(ctx context.Context, userID string) ([]models.Order, error) {
	orders := []models.Order{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("list orders for %s: %w", userID, err)
	}
	return orders, nil
}

// ListOrders returns every order, newest first.
func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *Store) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, notFound(err, "order", id)
	}
	return &order, nil
}

func (s *Store) UpdateOrder(ctx context.Context, id string, patch OrderPatch) (*models.Order, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	setIfPresent(&order.Restaurant, patch.Restaurant)
	setIfPresent(&order.Food, patch.Food)
	setIfPresent(&order.Drink, patch.Drink)

	res := s.db.WithContext(ctx).Model(order).
		Select("restaurant", "food", "drink", "updated_at").
		Updates(order)
	if res.Error != nil {
		return nil, fmt.Errorf("update order %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("order %s: %w", id, apperr.ErrNotFound)
	}
	return order, nil
}

func (s *Store) DeleteOrder(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Order{})
	if res.Error != nil {
		return fmt.Errorf("delete order %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order %s: %w", id, apperr.ErrNotFound)
	}
	return nil
}
