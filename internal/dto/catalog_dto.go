package dto

import "time"

type TourResponse struct {
	Id          string  `json:"id"`
	Name        string  `json:"name"`
	Destination string  `json:"destination"`
	Country     string  `json:"country"`
	Price       string  `json:"price"` // converted + formatted in the session currency
	Duration    string  `json:"duration"`
	Rating      float64 `json:"rating"`
	Category    string  `json:"category"`
}

type BookingResponse struct {
	Id         string    `json:"id"`
	TourId     string    `json:"tour_id"`
	TourName   string    `json:"tour_name"`
	Date       time.Time `json:"date"`
	Travelers  int       `json:"travelers"`
	TotalPrice string    `json:"total_price"` // converted + formatted
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type AdminDashboardStats struct {
	TotalRevenue  string `json:"total_revenue"` // formatted in the selected currency
	Currency      string `json:"currency"`
	TotalBookings int    `json:"total_bookings"`
	ActiveTours   int    `json:"active_tours"`
	Countries     int    `json:"countries"`
	TotalUsers    int    `json:"total_users"`
}

type UserDashboardResponse struct {
	Email      string            `json:"email"`
	Bookings   []BookingResponse `json:"bookings"`
	TotalSpent string            `json:"total_spent"` // formatted in the selected currency
}
