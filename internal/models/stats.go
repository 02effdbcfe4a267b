package models

import "time"

type DailySales struct {
	Date   string `json:"date"`
	Amount int    `json:"amount"`
}

type SalesStats struct {
	Daily []DailySales `json:"daily"`
}

type OrderStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

type RevenueStats struct {
	Current  int `json:"current"`
	Previous int `json:"previous"`
}

type CustomerStats struct {
	Total     int `json:"total"`
	New       int `json:"new"`
	Returning int `json:"returning"`
}

type Appointment struct {
	Customer string    `json:"customer"`
	Service  string    `json:"service"`
	At       time.Time `json:"at"`
}

type AppointmentStats struct {
	Upcoming  []Appointment `json:"upcoming"`
	Completed int           `json:"completed"`
}

// DashboardSummary son las métricas calculadas a partir de las estadísticas
type DashboardSummary struct {
	TotalSales    float64 `json:"total_sales"`
	MeanDaily     float64 `json:"mean_daily"`
	MedianDaily   float64 `json:"median_daily"`
	BestDay       string  `json:"best_day"`
	RevenueGrowth float64 `json:"revenue_growth"`
}

type Dashboard struct {
	Sales        SalesStats       `json:"sales"`
	Orders       OrderStats       `json:"orders"`
	Revenue      RevenueStats     `json:"revenue"`
	Customers    CustomerStats    `json:"customers"`
	Appointments AppointmentStats `json:"appointments"`
	Summary      DashboardSummary `json:"summary"`
}
