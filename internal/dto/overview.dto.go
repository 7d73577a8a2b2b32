package dto

// OverviewDTO is everything the appointments page needs in one read:
// the three ordered lists.
type OverviewDTO struct {
	Appointments []AppointmentResponseDTO `json:"appointments"`
	People       []PersonDTO              `json:"people"`
	Locations    []LocationDTO            `json:"locations"`
}
