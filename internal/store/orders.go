package store

import (
	"context"

	"ychet/internal/models"

	"gorm.io/gorm"
)

func (s *Store) joinedOrders(ctx context.Context) *gorm.DB {
	return s.conn(ctx).
		Table("orders AS o").
		Select("o.*, c.last_name, c.first_name, c.middle_name").
		Joins("LEFT JOIN clients AS c ON c.id = o.client_id")
}

func (s *Store) ListOrders(ctx context.Context) ([]models.OrderRow, error) {
	var rows []models.OrderRow
	err := s.joinedOrders(ctx).
		Order("o.created_at DESC").
		Order("o.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, wrap("list orders", err)
	}
	return rows, nil
}

func (s *Store) GetOrder(ctx context.Context, id uint) (*models.OrderRow, error) {
	var rows []models.OrderRow
	if err := s.joinedOrders(ctx).Where("o.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, wrap("get order", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

func (s *Store) CreateOrder(ctx context.Context, order *models.Order) error {
	if order.Status == "" {
		order.Status = models.StatusNew
	}
	err := s.conn(ctx).Create(order).Error
	if err != nil && isDuplicate(err) {
		return ErrDuplicateOrderNumber
	}
	return wrap("create order", err)
}

// UpdateOrder перезаписывает заказ по id. Существование нового client_id не проверяется.
func (s *Store) UpdateOrder(ctx context.Context, order *models.Order) error {
	if order.Status == "" {
		order.Status = models.StatusNew
	}
	res := s.conn(ctx).
		Model(&models.Order{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"client_id":    order.ClientID,
			"order_date":   order.OrderDate,
			"order_number": order.OrderNumber,
			"description":  order.Description,
			"total_amount": order.TotalAmount,
			"status":       order.Status,
		})
	if res.Error != nil {
		if isDuplicate(res.Error) {
			return ErrDuplicateOrderNumber
		}
		return wrap("update order", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteOrder(ctx context.Context, id uint) error {
	res := s.conn(ctx).Delete(&models.Order{}, id)
	if res.Error != nil {
		return wrap("delete order", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
