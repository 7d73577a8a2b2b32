package dto

type PersonDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name" form:"name"`
	Affiliation string `json:"affiliation" form:"affiliation"`
}
