package database

import (
	"fmt"
	"time"

	"ychet/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Seed заполняет пустую базу демо-данными. Если в clients есть хоть одна строка,
// ничего не делает.
func Seed(db *gorm.DB, log *logrus.Logger) error {
	var count int64
	if err := db.Model(&models.Client{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count clients: %w", err)
	}
	if count > 0 {
		log.WithField("clients", count).Debug("database already seeded")
		return nil
	}

	today := models.Today()
	clients := []models.Client{
		{LastName: "Иванов", FirstName: "Иван", MiddleName: "Иванович", Email: "ivanov@test.ru", Phone: "+79991234567", Address: "Москва", Notes: "Постоянный клиент"},
		{LastName: "Петрова", FirstName: "Мария", MiddleName: "Сергеевна", Email: "petrova@test.ru", Phone: "+79992345678", Address: "СПб", Notes: "Новый клиент"},
		{LastName: "Сидоров", FirstName: "Алексей", MiddleName: "Петрович", Email: "sidorov@test.ru", Phone: "+79993456789", Address: "Екатеринбург", Notes: "VIP клиент"},
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for i := range clients {
			clients[i].RegistrationDate = today
			if err := tx.Create(&clients[i]).Error; err != nil {
				return fmt.Errorf("seed client %s: %w", clients[i].LastName, err)
			}
		}

		// заказы у первых двух клиентов
		orders := []models.Order{
			{ClientID: clients[0].ID, OrderDate: date(2024, time.January, 15), OrderNumber: "ORD-001", Description: "Разработка сайта", TotalAmount: 50000, Status: models.StatusDone},
			{ClientID: clients[0].ID, OrderDate: date(2024, time.February, 20), OrderNumber: "ORD-002", Description: "Техническая поддержка", TotalAmount: 15000, Status: models.StatusInProgress},
			{ClientID: clients[1].ID, OrderDate: date(2024, time.March, 1), OrderNumber: "ORD-003", Description: "Дизайн логотипа", TotalAmount: 25000, Status: models.StatusDone},
		}
		for i := range orders {
			if err := tx.Create(&orders[i]).Error; err != nil {
				return fmt.Errorf("seed order %s: %w", orders[i].OrderNumber, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"clients": 3, "orders": 3}).Info("seeded sample data")
	return nil
}
