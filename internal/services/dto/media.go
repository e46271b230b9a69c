package dto

type AddMediaRequest struct {
	Type    string  `json:"type" validate:"required,oneof=image video audio"`
	URL     string  `json:"url" validate:"required,url"`
	Caption *string `json:"caption" validate:"omitempty,max=500"`
}
