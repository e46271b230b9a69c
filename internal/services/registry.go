package services

import (
	"giglink_backend/internal/authz"
	"giglink_backend/internal/email"
	"giglink_backend/internal/repositories"

	"gorm.io/gorm"
)

// ServiceContainer wires repositories, the policy gate and the mail sender
// into the full service set.
type ServiceContainer struct {
	Auth         *AuthService
	Profiles     *ProfileService
	Media        *MediaService
	Venues       *VenueService
	Jobs         *JobService
	Applications *ApplicationService
	Groups       *GroupService
	Messages     *MessageService
}

func NewServiceContainer(db *gorm.DB, mail email.Sender) *ServiceContainer {
	gate := authz.NewGate()

	users := repositories.NewUserRepository(db)
	tokens := repositories.NewRefreshTokenRepository(db)
	profiles := repositories.NewProfileRepository(db)
	media := repositories.NewMediaRepository(db)
	venues := repositories.NewVenueRepository(db)
	jobs := repositories.NewJobRepository(db)
	apps := repositories.NewApplicationRepository(db)
	groups := repositories.NewGroupRepository(db)
	messages := repositories.NewMessageRepository(db)

	return &ServiceContainer{
		Auth:         NewAuthService(db, users, profiles, tokens, mail),
		Profiles:     NewProfileService(profiles, gate),
		Media:        NewMediaService(media, profiles, gate),
		Venues:       NewVenueService(venues, profiles, gate),
		Jobs:         NewJobService(jobs, profiles, gate),
		Applications: NewApplicationService(apps, jobs, groups, profiles, mail, gate),
		Groups:       NewGroupService(groups, profiles, gate),
		Messages:     NewMessageService(messages, profiles, gate),
	}
}
