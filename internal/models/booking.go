package models

import "time"

// Booking represents a rental booking against a vehicle. VehicleID is a
// plain reference, not an ownership link: a booking may outlive the vehicle
// it points at, and joins are expected to drop such dangling rows.
type Booking struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	VehicleID  string    `json:"vehicleId" gorm:"index;type:varchar(36)" validate:"required"`
	UserEmail  string    `json:"userEmail" gorm:"index;type:varchar(255)"`
	StartDate  string    `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate    string    `json:"endDate" validate:"required,datetime=2006-01-02"`
	TotalPrice float64   `json:"totalPrice" validate:"gte=0"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BookingWithVehicle is a booking joined to its vehicle for the
// my-bookings view.
type BookingWithVehicle struct {
	Booking
	Vehicle Vehicle `json:"vehicle"`
}

// TopVehicleStat is one row of the top-booked-vehicles aggregation:
// vehicle display fields flattened alongside the booking aggregates.
type TopVehicleStat struct {
	VehicleID     string    `json:"vehicleId"`
	VehicleName   string    `json:"vehicleName"`
	Owner         string    `json:"owner"`
	Category      string    `json:"category"`
	PricePerDay   float64   `json:"pricePerDay"`
	Location      string    `json:"location"`
	CoverImage    string    `json:"coverImage"`
	TotalBookings int64     `json:"totalBookings"`
	LastBookingAt time.Time `json:"lastBookingAt"`
}
