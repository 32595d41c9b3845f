package models

import "time"

type OrderStatus = string

const (
	StatusNew        OrderStatus = "Новый"
	StatusInProgress OrderStatus = "В работе"
	StatusDone       OrderStatus = "Завершен"
	StatusCancelled  OrderStatus = "Отменен"
)

// OrderStatuses: варианты для выпадающего списка в форме заказа.
var OrderStatuses = []OrderStatus{StatusNew, StatusInProgress, StatusDone, StatusCancelled}

// Order ссылается на клиента только по client_id: внешний ключ в БД не создаётся,
// каскадное удаление делает store.DeleteClient.
type Order struct {
	ID          uint        `gorm:"primaryKey"`
	ClientID    uint        `gorm:"index"`
	OrderDate   time.Time   `gorm:"type:date;not null"`
	OrderNumber string      `gorm:"size:50;not null;uniqueIndex"`
	Description string      `gorm:"type:text"`
	TotalAmount float64     `gorm:"not null;default:0"`
	Status      OrderStatus `gorm:"size:50;not null;default:'Новый'"`
	CreatedAt   time.Time   `gorm:"autoCreateTime"`
}

func (Order) TableName() string { return "orders" }

// OrderRow: заказ вместе с ФИО клиента (LEFT JOIN, поля пустые, если клиента нет).
type OrderRow struct {
	Order
	LastName   *string
	FirstName  *string
	MiddleName *string
}

func (r OrderRow) HasClient() bool { return r.LastName != nil || r.FirstName != nil }

func (r OrderRow) ClientName() string {
	return joinName(deref(r.LastName), deref(r.FirstName), deref(r.MiddleName))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
