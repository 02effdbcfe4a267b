package admin

import (
	"time"

	"eyewear-store/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedCustomers() []models.Customer {
	return []models.Customer{
		{ID: "c1", Name: "Rahul Sharma", Email: "rahul.sharma@example.com", Phone: "+91 98100 11223", City: "Delhi", Orders: 4, TotalSpent: 5196, JoinedAt: day(2025, time.January, 12)},
		{ID: "c2", Name: "Priya Patel", Email: "priya.patel@example.com", Phone: "+91 98200 44556", City: "Ahmedabad", Orders: 2, TotalSpent: 2398, JoinedAt: day(2025, time.March, 3)},
		{ID: "c3", Name: "Arjun Mehta", Email: "arjun.mehta@example.com", Phone: "+91 99300 77889", City: "Mumbai", Orders: 1, TotalSpent: 1499, JoinedAt: day(2025, time.June, 21)},
		{ID: "c4", Name: "Sneha Reddy", Email: "sneha.reddy@example.com", Phone: "+91 90000 12345", City: "Hyderabad", Orders: 3, TotalSpent: 3597, JoinedAt: day(2025, time.August, 9)},
	}
}

func seedReviews() []models.Review {
	return []models.Review{
		{ID: "r1", Product: "Classic Aviator", Customer: "Rahul Sharma", Rating: 5, Comment: "Great fit and the polarized lenses are excellent.", Date: day(2025, time.February, 2), Approved: true},
		{ID: "r2", Product: "Cat Eye Glam", Customer: "Priya Patel", Rating: 4, Comment: "Stylish, slightly tight at first.", Date: day(2025, time.March, 18), Approved: true},
		{ID: "r3", Product: "Blue Shield Rectangle", Customer: "Arjun Mehta", Rating: 5, Comment: "Screen strain is gone after a week.", Date: day(2025, time.July, 1), Approved: false},
		{ID: "r4", Product: "Junior Flex", Customer: "Sneha Reddy", Rating: 3, Comment: "Sturdy but the color faded.", Date: day(2025, time.September, 14), Approved: false},
	}
}

func seedCategories() []models.Category {
	return []models.Category{
		{ID: "cat-men", Name: "Men", Slug: "men", Description: "Frames and sunglasses for men", ProductCount: 5},
		{ID: "cat-women", Name: "Women", Slug: "women", Description: "Frames and sunglasses for women", ProductCount: 4},
		{ID: "cat-kids", Name: "Kids", Slug: "kids", Description: "Durable eyewear for kids", ProductCount: 3},
		{ID: "cat-sun", Name: "Sunglasses", Slug: "sunglasses", Description: "UV-protected sunglasses", ProductCount: 7},
	}
}

func seedMedia() []models.MediaItem {
	return []models.MediaItem{
		{ID: "m1", Name: ".folder", Folder: "banners", UploadedAt: day(2025, time.January, 5), IsFolder: true},
		{ID: "m2", Name: "hero-banner.jpg", URL: "/images/banners/hero.jpg", Folder: "banners", Size: 184320, UploadedAt: day(2025, time.January, 5)},
		{ID: "m3", Name: "aviator-1.jpg", URL: "/images/products/aviator-1.jpg", Folder: "products", Size: 92160, UploadedAt: day(2025, time.January, 7)},
	}
}

func seedSales() models.SalesStats {
	return models.SalesStats{Daily: []models.DailySales{
		{Date: "2025-09-01", Amount: 4200},
		{Date: "2025-09-02", Amount: 3100},
		{Date: "2025-09-03", Amount: 5600},
		{Date: "2025-09-04", Amount: 2800},
		{Date: "2025-09-05", Amount: 6100},
		{Date: "2025-09-06", Amount: 7400},
		{Date: "2025-09-07", Amount: 3900},
	}}
}

func seedOrders() models.OrderStats {
	return models.OrderStats{Total: 86, Pending: 7, Completed: 74, Cancelled: 5}
}

func seedRevenue() models.RevenueStats {
	return models.RevenueStats{Current: 33100, Previous: 28700}
}

func seedCustomerStats() models.CustomerStats {
	return models.CustomerStats{Total: 64, New: 12, Returning: 52}
}

func seedAppointments() models.AppointmentStats {
	return models.AppointmentStats{
		Upcoming: []models.Appointment{
			{Customer: "Priya Patel", Service: "Eye test", At: time.Date(2025, time.September, 10, 11, 0, 0, 0, time.UTC)},
			{Customer: "Arjun Mehta", Service: "Frame fitting", At: time.Date(2025, time.September, 11, 16, 30, 0, 0, time.UTC)},
		},
		Completed: 38,
	}
}
