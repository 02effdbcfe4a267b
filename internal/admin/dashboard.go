package admin

import (
	"context"

	"github.com/montanaflynn/stats"

	"eyewear-store/internal/kvstore"
	"eyewear-store/internal/models"
)

// Dashboard lee las cinco estadísticas simuladas, sembrándolas si faltan
type Dashboard struct {
	store *kvstore.Store
}

func NewDashboard(store *kvstore.Store) *Dashboard {
	return &Dashboard{store: store}
}

func (d *Dashboard) Load(ctx context.Context) models.Dashboard {
	dash := models.Dashboard{
		Sales:        loadOrSeed(ctx, d.store, KeyStatsSales, seedSales),
		Orders:       loadOrSeed(ctx, d.store, KeyStatsOrders, seedOrders),
		Revenue:      loadOrSeed(ctx, d.store, KeyStatsRevenue, seedRevenue),
		Customers:    loadOrSeed(ctx, d.store, KeyStatsCustomers, seedCustomerStats),
		Appointments: loadOrSeed(ctx, d.store, KeyStatsAppointments, seedAppointments),
	}
	dash.Summary = Summarize(dash.Sales, dash.Revenue)
	return dash
}

// Summarize calcula total, media y mediana diaria y crecimiento de ingresos
func Summarize(sales models.SalesStats, revenue models.RevenueStats) models.DashboardSummary {
	var summary models.DashboardSummary

	amounts := make(stats.Float64Data, 0, len(sales.Daily))
	best := -1
	for _, day := range sales.Daily {
		amounts = append(amounts, float64(day.Amount))
		if day.Amount > best {
			best = day.Amount
			summary.BestDay = day.Date
		}
	}

	if total, err := amounts.Sum(); err == nil {
		summary.TotalSales = total
	}
	if mean, err := amounts.Mean(); err == nil {
		summary.MeanDaily, _ = stats.Round(mean, 2)
	}
	if median, err := amounts.Median(); err == nil {
		summary.MedianDaily = median
	}
	if revenue.Previous > 0 {
		growth := float64(revenue.Current-revenue.Previous) * 100 / float64(revenue.Previous)
		summary.RevenueGrowth, _ = stats.Round(growth, 1)
	}
	return summary
}

func loadOrSeed[T any](ctx context.Context, store *kvstore.Store, key string, seed func() T) T {
	value, ok := kvstore.Lookup[T](ctx, store, key)
	if !ok {
		value = seed()
		store.Set(ctx, key, value)
	}
	return value
}
