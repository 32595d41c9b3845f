package models

type DashboardStats struct {
	TotalClients int64
	TotalOrders  int64
	TotalRevenue float64
}

type StatusTotal struct {
	Status string
	Count  int64
	Total  float64
}

type Report struct {
	TotalClients int64
	ActiveMonths int
	ByStatus     []StatusTotal
}
