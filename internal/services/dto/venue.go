package dto

type CreateVenueRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Genre       string  `json:"genre" validate:"required,max=100"`
	Address     string  `json:"address" validate:"required,max=300"`
	Latitude    float64 `json:"latitude" validate:"required,latitude"`
	Longitude   float64 `json:"longitude" validate:"required,longitude"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Website     *string `json:"website" validate:"omitempty,url"`
	Phone       *string `json:"phone" validate:"omitempty,max=40"`
	Capacity    *int    `json:"capacity" validate:"omitempty,min=1"`
}

type UpdateVenueRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Genre       *string  `json:"genre" validate:"omitempty,min=1,max=100"`
	Address     *string  `json:"address" validate:"omitempty,min=1,max=300"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,longitude"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Website     *string  `json:"website" validate:"omitempty,url"`
	Phone       *string  `json:"phone" validate:"omitempty,max=40"`
	Capacity    *int     `json:"capacity" validate:"omitempty,min=1"`
}
