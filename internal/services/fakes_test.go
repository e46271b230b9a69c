package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"giglink_backend/internal/models"
	"giglink_backend/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes. They mirror the sentinel-error behavior of the
// real implementations so services can be exercised without a database.

type fakeTransactor struct{}

func (f *fakeTransactor) Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	return fc(nil)
}

// --- users ---

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, tx *gorm.DB, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

// --- refresh tokens ---

type fakeTokenRepo struct {
	tokens map[string]*models.RefreshToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*models.RefreshToken)}
}

func (f *fakeTokenRepo) Create(ctx context.Context, token *models.RefreshToken) error {
	if token.ID == "" {
		token.ID = uuid.NewString()
	}
	cp := *token
	f.tokens[token.Token] = &cp
	return nil
}

func (f *fakeTokenRepo) FindByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	t, ok := f.tokens[token]
	if !ok {
		return nil, repositories.ErrRefreshTokenNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTokenRepo) DeleteByToken(ctx context.Context, token string) error {
	if _, ok := f.tokens[token]; !ok {
		return repositories.ErrRefreshTokenNotFound
	}
	delete(f.tokens, token)
	return nil
}

func (f *fakeTokenRepo) DeleteExpired(ctx context.Context) error {
	for k, t := range f.tokens {
		if t.ExpiresAt.Before(time.Now()) {
			delete(f.tokens, k)
		}
	}
	return nil
}

// --- profiles ---

type fakeProfileRepo struct {
	profiles map[string]*models.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*models.Profile)}
}

func (f *fakeProfileRepo) Create(ctx context.Context, tx *gorm.DB, profile *models.Profile) error {
	cp := *profile
	f.profiles[profile.ID] = &cp
	return nil
}

func (f *fakeProfileRepo) FindByID(ctx context.Context, id string) (*models.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) FindByIDs(ctx context.Context, ids []string) ([]models.Profile, error) {
	var out []models.Profile
	for _, id := range ids {
		if p, ok := f.profiles[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, profile *models.Profile) error {
	if _, ok := f.profiles[profile.ID]; !ok {
		return repositories.ErrProfileNotFound
	}
	cp := *profile
	f.profiles[profile.ID] = &cp
	return nil
}

func (f *fakeProfileRepo) add(id string, pType models.ProfileType, name string) *models.Profile {
	p := &models.Profile{
		ID:          id,
		Email:       id + "@example.com",
		Type:        pType,
		DisplayName: name,
	}
	f.profiles[id] = p
	return p
}

// --- media ---

type fakeMediaRepo struct {
	items map[string]*models.MediaItem
	seq   int
}

func newFakeMediaRepo() *fakeMediaRepo {
	return &fakeMediaRepo{items: make(map[string]*models.MediaItem)}
}

func (f *fakeMediaRepo) Create(ctx context.Context, item *models.MediaItem) error {
	f.seq++
	if item.ID == "" {
		item.ID = fmt.Sprintf("media-%03d", f.seq)
	}
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeMediaRepo) FindByID(ctx context.Context, id string) (*models.MediaItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, repositories.ErrMediaNotFound
	}
	cp := *item
	return &cp, nil
}

func (f *fakeMediaRepo) ListByProfile(ctx context.Context, profileID string) ([]models.MediaItem, error) {
	var out []models.MediaItem
	for _, item := range f.items {
		if item.ProfileID == profileID {
			out = append(out, *item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeMediaRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return repositories.ErrMediaNotFound
	}
	delete(f.items, id)
	return nil
}

// --- venues ---

type fakeVenueRepo struct {
	venues map[string]*models.Venue
}

func newFakeVenueRepo() *fakeVenueRepo {
	return &fakeVenueRepo{venues: make(map[string]*models.Venue)}
}

func (f *fakeVenueRepo) Create(ctx context.Context, venue *models.Venue) error {
	if venue.ID == "" {
		venue.ID = uuid.NewString()
	}
	cp := *venue
	f.venues[venue.ID] = &cp
	return nil
}

func (f *fakeVenueRepo) FindByID(ctx context.Context, id string) (*models.Venue, error) {
	v, ok := f.venues[id]
	if !ok {
		return nil, repositories.ErrVenueNotFound
	}
	cp := *v
	return &cp, nil
}

func (f *fakeVenueRepo) List(ctx context.Context, criteria repositories.VenueSearchCriteria) ([]models.Venue, error) {
	var out []models.Venue
	for _, v := range f.venues {
		if criteria.Genre != "" && v.Genre != criteria.Genre {
			continue
		}
		if criteria.MinLat != nil && v.Latitude < *criteria.MinLat {
			continue
		}
		if criteria.MaxLat != nil && v.Latitude > *criteria.MaxLat {
			continue
		}
		if criteria.MinLng != nil && v.Longitude < *criteria.MinLng {
			continue
		}
		if criteria.MaxLng != nil && v.Longitude > *criteria.MaxLng {
			continue
		}
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeVenueRepo) Update(ctx context.Context, venue *models.Venue) error {
	if _, ok := f.venues[venue.ID]; !ok {
		return repositories.ErrVenueNotFound
	}
	cp := *venue
	f.venues[venue.ID] = &cp
	return nil
}

func (f *fakeVenueRepo) Claim(ctx context.Context, venueID, ownerID string) error {
	v, ok := f.venues[venueID]
	if !ok || v.OwnerID != nil {
		return repositories.ErrVenueAlreadyClaimed
	}
	owner := ownerID
	v.OwnerID = &owner
	return nil
}

func (f *fakeVenueRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.venues[id]; !ok {
		return repositories.ErrVenueNotFound
	}
	delete(f.venues, id)
	return nil
}

// --- jobs ---

type fakeJobRepo struct {
	jobs map[string]*models.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*models.Job)}
}

func (f *fakeJobRepo) Create(ctx context.Context, job *models.Job) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	cp := *job
	f.jobs[job.ID] = &cp
	return nil
}

func (f *fakeJobRepo) FindByID(ctx context.Context, id string) (*models.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	cp := *j
	return &cp, nil
}

func (f *fakeJobRepo) List(ctx context.Context, criteria repositories.JobSearchCriteria) ([]models.Job, error) {
	var out []models.Job
	for _, j := range f.jobs {
		if criteria.Genre != "" && j.Genre != criteria.Genre {
			continue
		}
		if criteria.Location != "" && j.Location != criteria.Location {
			continue
		}
		if criteria.Status != "" && string(j.Status) != criteria.Status {
			continue
		}
		if criteria.VenueID != "" && j.VenueID != criteria.VenueID {
			continue
		}
		out = append(out, *j)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EventDate.Before(out[j].EventDate) })
	return out, nil
}

func (f *fakeJobRepo) Update(ctx context.Context, job *models.Job) error {
	if _, ok := f.jobs[job.ID]; !ok {
		return repositories.ErrJobNotFound
	}
	cp := *job
	f.jobs[job.ID] = &cp
	return nil
}

func (f *fakeJobRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.jobs[id]; !ok {
		return repositories.ErrJobNotFound
	}
	delete(f.jobs, id)
	return nil
}

// --- applications ---

type fakeApplicationRepo struct {
	apps      map[string]*models.JobApplication
	groupApps map[string]*models.GroupJobApplication
	seq       int
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{
		apps:      make(map[string]*models.JobApplication),
		groupApps: make(map[string]*models.GroupJobApplication),
	}
}

func (f *fakeApplicationRepo) CreateJobApplication(ctx context.Context, app *models.JobApplication) error {
	for _, a := range f.apps {
		if a.JobID == app.JobID && a.ArtistID == app.ArtistID {
			return repositories.ErrDuplicateApplication
		}
	}
	f.seq++
	if app.ID == "" {
		app.ID = fmt.Sprintf("app-%03d", f.seq)
	}
	cp := *app
	f.apps[app.ID] = &cp
	return nil
}

func (f *fakeApplicationRepo) FindJobApplicationByID(ctx context.Context, id string) (*models.JobApplication, error) {
	a, ok := f.apps[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeApplicationRepo) ListJobApplicationsByJob(ctx context.Context, jobID string) ([]models.JobApplication, error) {
	var out []models.JobApplication
	for _, a := range f.apps {
		if a.JobID == jobID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeApplicationRepo) ListJobApplicationsByArtist(ctx context.Context, artistID string) ([]models.JobApplication, error) {
	var out []models.JobApplication
	for _, a := range f.apps {
		if a.ArtistID == artistID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeApplicationRepo) UpdateJobApplicationStatus(ctx context.Context, id string, status models.ApplicationStatus) error {
	a, ok := f.apps[id]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	a.Status = status
	return nil
}

func (f *fakeApplicationRepo) CreateGroupApplication(ctx context.Context, app *models.GroupJobApplication) error {
	for _, a := range f.groupApps {
		if a.JobID == app.JobID && a.GroupID == app.GroupID {
			return repositories.ErrDuplicateApplication
		}
	}
	f.seq++
	if app.ID == "" {
		app.ID = fmt.Sprintf("gapp-%03d", f.seq)
	}
	cp := *app
	f.groupApps[app.ID] = &cp
	return nil
}

func (f *fakeApplicationRepo) FindGroupApplicationByID(ctx context.Context, id string) (*models.GroupJobApplication, error) {
	a, ok := f.groupApps[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeApplicationRepo) ListGroupApplicationsByJob(ctx context.Context, jobID string) ([]models.GroupJobApplication, error) {
	var out []models.GroupJobApplication
	for _, a := range f.groupApps {
		if a.JobID == jobID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeApplicationRepo) ListGroupApplicationsByGroup(ctx context.Context, groupID string) ([]models.GroupJobApplication, error) {
	var out []models.GroupJobApplication
	for _, a := range f.groupApps {
		if a.GroupID == groupID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeApplicationRepo) UpdateGroupApplicationStatus(ctx context.Context, id string, status models.ApplicationStatus) error {
	a, ok := f.groupApps[id]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	a.Status = status
	return nil
}

// --- groups ---

type fakeGroupRepo struct {
	groups  map[string]*models.Group
	members []models.GroupMember
	seq     int
}

func newFakeGroupRepo() *fakeGroupRepo {
	return &fakeGroupRepo{groups: make(map[string]*models.Group)}
}

func (f *fakeGroupRepo) Create(ctx context.Context, group *models.Group, creatorRole string) error {
	if group.ID == "" {
		group.ID = uuid.NewString()
	}
	cp := *group
	f.groups[group.ID] = &cp
	f.seq++
	f.members = append(f.members, models.GroupMember{
		BaseModel: models.BaseModel{ID: fmt.Sprintf("member-%03d", f.seq)},
		GroupID:   group.ID,
		ProfileID: group.CreatedBy,
		Role:      creatorRole,
	})
	return nil
}

func (f *fakeGroupRepo) FindByID(ctx context.Context, id string) (*models.Group, error) {
	g, ok := f.groups[id]
	if !ok {
		return nil, repositories.ErrGroupNotFound
	}
	cp := *g
	return &cp, nil
}

func (f *fakeGroupRepo) List(ctx context.Context) ([]models.Group, error) {
	var out []models.Group
	for _, g := range f.groups {
		out = append(out, *g)
	}
	return out, nil
}

func (f *fakeGroupRepo) ListByMember(ctx context.Context, profileID string) ([]models.Group, error) {
	var out []models.Group
	for _, m := range f.members {
		if m.ProfileID == profileID {
			if g, ok := f.groups[m.GroupID]; ok {
				out = append(out, *g)
			}
		}
	}
	return out, nil
}

func (f *fakeGroupRepo) Update(ctx context.Context, group *models.Group) error {
	if _, ok := f.groups[group.ID]; !ok {
		return repositories.ErrGroupNotFound
	}
	cp := *group
	f.groups[group.ID] = &cp
	return nil
}

func (f *fakeGroupRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.groups[id]; !ok {
		return repositories.ErrGroupNotFound
	}
	delete(f.groups, id)
	var kept []models.GroupMember
	for _, m := range f.members {
		if m.GroupID != id {
			kept = append(kept, m)
		}
	}
	f.members = kept
	return nil
}

func (f *fakeGroupRepo) AddMember(ctx context.Context, member *models.GroupMember) error {
	for _, m := range f.members {
		if m.GroupID == member.GroupID && m.ProfileID == member.ProfileID {
			return repositories.ErrDuplicateMembership
		}
	}
	f.seq++
	if member.ID == "" {
		member.ID = fmt.Sprintf("member-%03d", f.seq)
	}
	f.members = append(f.members, *member)
	return nil
}

func (f *fakeGroupRepo) RemoveMember(ctx context.Context, groupID, profileID string) error {
	for i, m := range f.members {
		if m.GroupID == groupID && m.ProfileID == profileID {
			f.members = append(f.members[:i], f.members[i+1:]...)
			return nil
		}
	}
	return repositories.ErrGroupMemberNotFound
}

func (f *fakeGroupRepo) ListMembers(ctx context.Context, groupID string) ([]models.GroupMember, error) {
	var out []models.GroupMember
	for _, m := range f.members {
		if m.GroupID == groupID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeGroupRepo) IsMember(ctx context.Context, groupID, profileID string) (bool, error) {
	for _, m := range f.members {
		if m.GroupID == groupID && m.ProfileID == profileID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeGroupRepo) EnsureCreatorMembership(ctx context.Context, group *models.Group, role string) error {
	err := f.AddMember(ctx, &models.GroupMember{
		GroupID:   group.ID,
		ProfileID: group.CreatedBy,
		Role:      role,
	})
	if err == repositories.ErrDuplicateMembership {
		return nil
	}
	return err
}

// --- messages ---

type fakeMessageRepo struct {
	messages []models.Message
	seq      int
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{}
}

func (f *fakeMessageRepo) Create(ctx context.Context, message *models.Message) error {
	f.seq++
	if message.ID == "" {
		message.ID = fmt.Sprintf("msg-%03d", f.seq)
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	f.messages = append(f.messages, *message)
	return nil
}

func (f *fakeMessageRepo) between(userID, partnerID string) []models.Message {
	var out []models.Message
	for _, m := range f.messages {
		if (m.SenderID == userID && m.ReceiverID == partnerID) ||
			(m.SenderID == partnerID && m.ReceiverID == userID) {
			out = append(out, m)
		}
	}
	return out
}

func (f *fakeMessageRepo) Thread(ctx context.Context, userID, partnerID string) ([]models.Message, error) {
	out := f.between(userID, partnerID)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeMessageRepo) DistinctPartnerIDs(ctx context.Context, userID string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, m := range f.messages {
		var partner string
		switch userID {
		case m.SenderID:
			partner = m.ReceiverID
		case m.ReceiverID:
			partner = m.SenderID
		default:
			continue
		}
		if !seen[partner] {
			seen[partner] = true
			out = append(out, partner)
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) LastMessageBetween(ctx context.Context, userID, partnerID string) (*models.Message, error) {
	msgs := f.between(userID, partnerID)
	if len(msgs) == 0 {
		return nil, repositories.ErrMessageNotFound
	}
	sort.Slice(msgs, func(i, j int) bool {
		if !msgs[i].CreatedAt.Equal(msgs[j].CreatedAt) {
			return msgs[i].CreatedAt.After(msgs[j].CreatedAt)
		}
		return msgs[i].ID > msgs[j].ID
	})
	cp := msgs[0]
	return &cp, nil
}

func (f *fakeMessageRepo) UnreadCountsBySender(ctx context.Context, receiverID string) ([]repositories.UnreadCount, error) {
	counts := make(map[string]int64)
	for _, m := range f.messages {
		if m.ReceiverID == receiverID && !m.IsRead {
			counts[m.SenderID]++
		}
	}
	var out []repositories.UnreadCount
	for sender, count := range counts {
		out = append(out, repositories.UnreadCount{SenderID: sender, Count: count})
	}
	return out, nil
}

func (f *fakeMessageRepo) MarkRead(ctx context.Context, receiverID, senderID string) (int64, error) {
	var updated int64
	for i := range f.messages {
		m := &f.messages[i]
		if m.ReceiverID == receiverID && m.SenderID == senderID && !m.IsRead {
			m.IsRead = true
			updated++
		}
	}
	return updated, nil
}

// noopMailer satisfies email.Sender for tests.
type noopMailer struct{}

func (noopMailer) SendWelcome(to, displayName string) error                { return nil }
func (noopMailer) SendApplicationStatus(to, jobTitle, status string) error { return nil }
