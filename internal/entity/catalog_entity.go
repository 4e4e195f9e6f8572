package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type TourCategory string
type BookingStatus string

const (
	TourCategoryAdventure TourCategory = "adventure"
	TourCategoryBeach     TourCategory = "beach"
	TourCategoryCultural  TourCategory = "cultural"
	TourCategoryLuxury    TourCategory = "luxury"
	TourCategorySafari    TourCategory = "safari"

	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Tour prices are stored in USD; conversion to the session currency happens
// at projection time, never in the fixture.
type Tour struct {
	Id          string
	Name        string
	Destination string
	Country     string
	Price       decimal.Decimal
	Duration    string
	Rating      float64
	Category    TourCategory
}

type Booking struct {
	Id         string
	TourId     string
	TourName   string
	UserEmail  string
	Date       time.Time
	Travelers  int
	TotalPrice decimal.Decimal
	Status     BookingStatus
	CreatedAt  time.Time
}
