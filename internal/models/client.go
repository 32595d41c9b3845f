package models

import (
	"strings"
	"time"
)

type Client struct {
	ID               uint      `gorm:"primaryKey"`
	LastName         string    `gorm:"size:100;not null"` // Фамилия
	FirstName        string    `gorm:"size:100;not null"` // Имя
	MiddleName       string    `gorm:"size:100"`          // Отчество
	Email            string    `gorm:"size:255"`
	Phone            string    `gorm:"size:50"`
	RegistrationDate time.Time `gorm:"type:date;not null"`
	Address          string    `gorm:"type:text"`
	Notes            string    `gorm:"type:text"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}

func (Client) TableName() string { return "clients" }

// FullName собирает "Фамилия Имя Отчество" без лишних пробелов.
func (c Client) FullName() string {
	return joinName(c.LastName, c.FirstName, c.MiddleName)
}

func joinName(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
