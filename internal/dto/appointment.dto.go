package dto

import "time"

// AppointmentRequestDTO is the user submitted appointment form. Date is
// yyyy-MM-dd and Time is 24h HH:mm; they are validated separately and
// combined by the mapper.
type AppointmentRequestDTO struct {
	Description string `json:"description" form:"description"`
	Date        string `json:"date" form:"date"`
	Time        string `json:"time" form:"time"`
	PersonID    *uint  `json:"person_id" form:"person_id"`
	LocationID  *uint  `json:"location_id" form:"location_id"`
}

type AppointmentResponseDTO struct {
	ID          uint         `json:"id"`
	Description string       `json:"description"`
	Date        time.Time    `json:"date"`
	Person      *PersonDTO   `json:"person,omitempty"`
	Location    *LocationDTO `json:"location,omitempty"`
}
