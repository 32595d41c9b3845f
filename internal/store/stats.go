package store

import (
	"context"
	"time"

	"ychet/internal/models"
)

func (s *Store) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats
	err := s.conn(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM clients) AS total_clients,
			(SELECT COUNT(*) FROM orders) AS total_orders,
			(SELECT COALESCE(SUM(total_amount), 0) FROM orders) AS total_revenue
	`).Scan(&stats).Error
	if err != nil {
		return models.DashboardStats{}, wrap("dashboard stats", err)
	}
	return stats, nil
}

// Report считает клиентов, число разных месяцев регистрации и итоги по статусам заказов.
func (s *Store) Report(ctx context.Context) (models.Report, error) {
	var report models.Report
	db := s.conn(ctx)

	if err := db.Model(&models.Client{}).Count(&report.TotalClients).Error; err != nil {
		return models.Report{}, wrap("count clients", err)
	}

	// strftime/to_char у sqlite и postgres разные, поэтому месяцы считаем здесь
	var dates []time.Time
	if err := db.Model(&models.Client{}).Distinct("registration_date").Pluck("registration_date", &dates).Error; err != nil {
		return models.Report{}, wrap("registration dates", err)
	}
	months := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		months[d.Format("2006-01")] = struct{}{}
	}
	report.ActiveMonths = len(months)

	err := db.Model(&models.Order{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS total").
		Group("status").
		Order("status").
		Scan(&report.ByStatus).Error
	if err != nil {
		return models.Report{}, wrap("orders by status", err)
	}

	return report, nil
}
