package store

import (
	"context"
	"strings"

	"ychet/internal/models"

	"gorm.io/gorm"
)

// ListClients возвращает клиентов, новые первыми. Непустой search ищет подстроку
// в фамилии, имени или email без учёта регистра (sqlite сворачивает только латиницу).
func (s *Store) ListClients(ctx context.Context, search string) ([]models.Client, error) {
	q := s.conn(ctx).Model(&models.Client{})

	if search = strings.TrimSpace(search); search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"LOWER(last_name) LIKE LOWER(?) OR LOWER(first_name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.Order("created_at DESC").Order("id DESC").Find(&clients).Error; err != nil {
		return nil, wrap("list clients", err)
	}
	return clients, nil
}

// ListClientOptions отдаёт клиентов для выпадающего списка в форме заказа.
func (s *Store) ListClientOptions(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	err := s.conn(ctx).
		Select("id", "last_name", "first_name", "middle_name").
		Order("last_name ASC").
		Order("first_name ASC").
		Find(&clients).Error
	if err != nil {
		return nil, wrap("list client options", err)
	}
	return clients, nil
}

func (s *Store) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	if err := s.conn(ctx).First(&client, id).Error; err != nil {
		return nil, wrap("get client", err)
	}
	return &client, nil
}

// CreateClient заполняет ID и CreatedAt переданной записи.
func (s *Store) CreateClient(ctx context.Context, client *models.Client) error {
	return wrap("create client", s.conn(ctx).Create(client).Error)
}

// UpdateClient перезаписывает все изменяемые поля по id.
func (s *Store) UpdateClient(ctx context.Context, client *models.Client) error {
	res := s.conn(ctx).
		Model(&models.Client{}).
		Where("id = ?", client.ID).
		Updates(map[string]interface{}{
			"last_name":         client.LastName,
			"first_name":        client.FirstName,
			"middle_name":       client.MiddleName,
			"email":             client.Email,
			"phone":             client.Phone,
			"registration_date": client.RegistrationDate,
			"address":           client.Address,
			"notes":             client.Notes,
		})
	if res.Error != nil {
		return wrap("update client", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteClient удаляет заказы клиента и самого клиента в одной транзакции.
func (s *Store) DeleteClient(ctx context.Context, id uint) error {
	return s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", id).Delete(&models.Order{}).Error; err != nil {
			return wrap("delete client orders", err)
		}

		res := tx.Delete(&models.Client{}, id)
		if res.Error != nil {
			return wrap("delete client", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
