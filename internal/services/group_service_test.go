package services

import (
	"context"
	"testing"

	"giglink_backend/internal/authz"
	"giglink_backend/internal/models"
	"giglink_backend/internal/services/dto"
	"giglink_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type groupFixture struct {
	svc      *GroupService
	groups   *fakeGroupRepo
	profiles *fakeProfileRepo
}

func newGroupFixture() *groupFixture {
	groups := newFakeGroupRepo()
	profiles := newFakeProfileRepo()

	profiles.add("artist-1", models.ProfileTypeArtist, "Artist One")
	profiles.add("artist-2", models.ProfileTypeArtist, "Artist Two")
	profiles.add("artist-3", models.ProfileTypeArtist, "Artist Three")
	profiles.add("venue-1", models.ProfileTypeVenue, "The Venue")

	return &groupFixture{
		svc:      NewGroupService(groups, profiles, authz.NewGate()),
		groups:   groups,
		profiles: profiles,
	}
}

func TestCreateGroupAddsCreatorMembership(t *testing.T) {
	f := newGroupFixture()

	group, err := f.svc.Create(context.Background(), "artist-1", dto.CreateGroupRequest{Name: "The Quartet"})
	require.NoError(t, err)

	isMember, err := f.groups.IsMember(context.Background(), group.ID, "artist-1")
	require.NoError(t, err)
	assert.True(t, isMember)
}

func TestCreateGroupArtistOnly(t *testing.T) {
	f := newGroupFixture()

	_, err := f.svc.Create(context.Background(), "venue-1", dto.CreateGroupRequest{Name: "Nope"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidProfileType)
}

func TestAddMemberCreatorOnly(t *testing.T) {
	f := newGroupFixture()

	group, err := f.svc.Create(context.Background(), "artist-1", dto.CreateGroupRequest{Name: "Band"})
	require.NoError(t, err)

	// A non-creator cannot invite.
	_, err = f.svc.AddMember(context.Background(), "artist-2", group.ID, dto.AddGroupMemberRequest{
		ProfileID: "artist-3",
		Role:      "bass",
	})
	assertNotFound(t, err)

	member, err := f.svc.AddMember(context.Background(), "artist-1", group.ID, dto.AddGroupMemberRequest{
		ProfileID: "artist-2",
		Role:      "drums",
	})
	require.NoError(t, err)
	assert.Equal(t, "drums", member.Role)

	// Membership is unique per profile.
	_, err = f.svc.AddMember(context.Background(), "artist-1", group.ID, dto.AddGroupMemberRequest{
		ProfileID: "artist-2",
		Role:      "percussion",
	})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyMember)
}

func TestAddMemberArtistOnly(t *testing.T) {
	f := newGroupFixture()

	group, err := f.svc.Create(context.Background(), "artist-1", dto.CreateGroupRequest{Name: "Band"})
	require.NoError(t, err)

	_, err = f.svc.AddMember(context.Background(), "artist-1", group.ID, dto.AddGroupMemberRequest{
		ProfileID: "venue-1",
		Role:      "keys",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidProfileType)
}

func TestRemoveMemberRules(t *testing.T) {
	f := newGroupFixture()

	group, err := f.svc.Create(context.Background(), "artist-1", dto.CreateGroupRequest{Name: "Band"})
	require.NoError(t, err)

	for _, id := range []string{"artist-2", "artist-3"} {
		_, err = f.svc.AddMember(context.Background(), "artist-1", group.ID, dto.AddGroupMemberRequest{
			ProfileID: id,
			Role:      "member",
		})
		require.NoError(t, err)
	}

	// A member cannot remove someone else.
	err = f.svc.RemoveMember(context.Background(), "artist-2", group.ID, "artist-3")
	assertNotFound(t, err)

	// A member leaves on their own.
	require.NoError(t, f.svc.RemoveMember(context.Background(), "artist-2", group.ID, "artist-2"))

	// The creator removes anyone.
	require.NoError(t, f.svc.RemoveMember(context.Background(), "artist-1", group.ID, "artist-3"))

	// The creator's own membership is permanent.
	err = f.svc.RemoveMember(context.Background(), "artist-1", group.ID, "artist-1")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeInvalidOperation, appErr.Code)
}

func TestGetRepairsCreatorMembership(t *testing.T) {
	f := newGroupFixture()

	group, err := f.svc.Create(context.Background(), "artist-1", dto.CreateGroupRequest{Name: "Band"})
	require.NoError(t, err)

	// Simulate an older row that lost its creator membership.
	require.NoError(t, f.groups.RemoveMember(context.Background(), group.ID, "artist-1"))

	_, err = f.svc.Get(context.Background(), group.ID)
	require.NoError(t, err)

	isMember, err := f.groups.IsMember(context.Background(), group.ID, "artist-1")
	require.NoError(t, err)
	assert.True(t, isMember)
}

func TestUpdateGroupCreatorOnly(t *testing.T) {
	f := newGroupFixture()

	group, err := f.svc.Create(context.Background(), "artist-1", dto.CreateGroupRequest{Name: "Band"})
	require.NoError(t, err)

	newName := "Renamed"
	_, err = f.svc.Update(context.Background(), "artist-2", group.ID, dto.UpdateGroupRequest{Name: &newName})
	assertNotFound(t, err)

	updated, err := f.svc.Update(context.Background(), "artist-1", group.ID, dto.UpdateGroupRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
}
