package dto

type LocationDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}
