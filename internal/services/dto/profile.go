package dto

// UpdateProfileRequest carries only the fields the owner may edit. Nil
// pointers mean "leave unchanged".
type UpdateProfileRequest struct {
	DisplayName *string           `json:"display_name" validate:"omitempty,min=1,max=120"`
	Bio         *string           `json:"bio" validate:"omitempty,max=2000"`
	Website     *string           `json:"website" validate:"omitempty,url"`
	Phone       *string           `json:"phone" validate:"omitempty,max=40"`
	PictureURL  *string           `json:"picture_url" validate:"omitempty,url"`
	Location    *string           `json:"location" validate:"omitempty,max=200"`
	Role        *string           `json:"role" validate:"omitempty,max=100"`
	SocialLinks map[string]string `json:"social_links" validate:"omitempty,dive,keys,max=50,endkeys,url"`
}
