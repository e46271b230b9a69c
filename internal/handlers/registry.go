package handlers

import (
	"giglink_backend/internal/services"
	"giglink_backend/internal/validator"
)

// AppHandlers is the full handler set, one per route family.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	ProfileHandler     *ProfileHandler
	MediaHandler       *MediaHandler
	VenueHandler       *VenueHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
	GroupHandler       *GroupHandler
	MessageHandler     *MessageHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:        NewAuthHandler(base, sc.Auth),
		ProfileHandler:     NewProfileHandler(base, sc.Profiles),
		MediaHandler:       NewMediaHandler(base, sc.Media),
		VenueHandler:       NewVenueHandler(base, sc.Venues),
		JobHandler:         NewJobHandler(base, sc.Jobs),
		ApplicationHandler: NewApplicationHandler(base, sc.Applications),
		GroupHandler:       NewGroupHandler(base, sc.Groups, sc.Applications),
		MessageHandler:     NewMessageHandler(base, sc.Messages),
	}
}
