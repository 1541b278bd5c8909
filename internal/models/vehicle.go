package models

import "time"

// DefaultAvailability is stamped onto a new vehicle when the owner does not
// supply an availability value.
const DefaultAvailability = "Available"

// Vehicle represents a rental listing in the marketplace.
// UserEmail is the owning identity. It is always taken from the verified
// token at creation time and is never updated afterwards, so ownership
// checks can trust it.
type Vehicle struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	VehicleName  string    `json:"vehicleName" validate:"required,min=2,max=100"`
	Owner        string    `json:"owner" validate:"omitempty,max=100"`
	Category     string    `json:"category" validate:"required,max=50"`
	PricePerDay  float64   `json:"pricePerDay" validate:"gte=0"`
	Location     string    `json:"location" validate:"omitempty,max=100"`
	Availability string    `json:"availability" validate:"omitempty,max=50"`
	Description  string    `json:"description" validate:"omitempty,max=1000"`
	CoverImage   string    `json:"coverImage" validate:"omitempty,url"`
	UserEmail    string    `json:"userEmail" gorm:"index;type:varchar(255)"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// VehiclePatch carries the mutable fields of a PATCH request. Nil means
// "leave the field alone". Identity and timestamps are deliberately absent:
// userEmail is immutable and the store maintains updatedAt itself.
type VehiclePatch struct {
	VehicleName  *string  `json:"vehicleName" validate:"omitempty,min=2,max=100"`
	Owner        *string  `json:"owner" validate:"omitempty,max=100"`
	Category     *string  `json:"category" validate:"omitempty,max=50"`
	PricePerDay  *float64 `json:"pricePerDay" validate:"omitempty,gte=0"`
	Location     *string  `json:"location" validate:"omitempty,max=100"`
	Availability *string  `json:"availability" validate:"omitempty,max=50"`
	Description  *string  `json:"description" validate:"omitempty,max=1000"`
	CoverImage   *string  `json:"coverImage" validate:"omitempty,url"`
}

// Fields flattens the patch into column/value pairs for the store update.
func (p VehiclePatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.VehicleName != nil {
		fields["vehicle_name"] = *p.VehicleName
	}
	if p.Owner != nil {
		fields["owner"] = *p.Owner
	}
	if p.Category != nil {
		fields["category"] = *p.Category
	}
	if p.PricePerDay != nil {
		fields["price_per_day"] = *p.PricePerDay
	}
	if p.Location != nil {
		fields["location"] = *p.Location
	}
	if p.Availability != nil {
		fields["availability"] = *p.Availability
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.CoverImage != nil {
		fields["cover_image"] = *p.CoverImage
	}
	return fields
}
