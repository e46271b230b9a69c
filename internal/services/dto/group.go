package dto

type CreateGroupRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Genre       *string `json:"genre" validate:"omitempty,max=100"`
	CreatorRole string  `json:"creator_role" validate:"omitempty,max=100"`
}

type UpdateGroupRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Genre       *string `json:"genre" validate:"omitempty,max=100"`
}

type AddGroupMemberRequest struct {
	ProfileID string `json:"profile_id" validate:"required,uuid4"`
	Role      string `json:"role" validate:"required,max=100"`
}
