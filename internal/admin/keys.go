package admin

const (
	KeyCustomers  = "customers"
	KeyReviews    = "reviews"
	KeyCategories = "categories"
	KeyMedia      = "media"
	KeySettings   = "settings"

	// Estadísticas simuladas del dashboard
	KeyStatsSales        = "stats:sales"
	KeyStatsOrders       = "stats:orders"
	KeyStatsRevenue      = "stats:revenue"
	KeyStatsCustomers    = "stats:customers"
	KeyStatsAppointments = "stats:appointments"
)
