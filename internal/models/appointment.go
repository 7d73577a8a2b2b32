package models

import "time"

// Appointment references a person and a location by id only. The
// references are checked when the appointment is created and never again.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Description string    `gorm:"size:1024;not null" json:"description"`
	Date        time.Time `gorm:"index" json:"date"`

	PersonID   *uint `json:"person_id"`
	LocationID *uint `json:"location_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
