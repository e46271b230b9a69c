package services

import (
	"context"
	"encoding/json"
	"testing"

	"giglink_backend/internal/authz"
	"giglink_backend/internal/models"
	"giglink_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileFixture() (*ProfileService, *fakeProfileRepo) {
	profiles := newFakeProfileRepo()
	profiles.add("artist-1", models.ProfileTypeArtist, "Artist One")
	profiles.add("artist-2", models.ProfileTypeArtist, "Artist Two")
	return NewProfileService(profiles, authz.NewGate()), profiles
}

func TestGetProfilePublic(t *testing.T) {
	svc, _ := newProfileFixture()

	profile, err := svc.Get(context.Background(), "artist-1")
	require.NoError(t, err)
	assert.Equal(t, "Artist One", profile.DisplayName)

	_, err = svc.Get(context.Background(), "ghost")
	assertNotFound(t, err)
}

func TestUpdateProfileOwnerOnly(t *testing.T) {
	svc, _ := newProfileFixture()

	name := "Impostor"
	_, err := svc.Update(context.Background(), "artist-2", "artist-1", dto.UpdateProfileRequest{DisplayName: &name})
	assertNotFound(t, err)
}

func TestUpdateProfilePartial(t *testing.T) {
	svc, _ := newProfileFixture()

	bio := "Session guitarist"
	updated, err := svc.Update(context.Background(), "artist-1", "artist-1", dto.UpdateProfileRequest{Bio: &bio})
	require.NoError(t, err)

	require.NotNil(t, updated.Bio)
	assert.Equal(t, "Session guitarist", *updated.Bio)
	// Untouched fields survive.
	assert.Equal(t, "Artist One", updated.DisplayName)
}

func TestUpdateProfileSocialLinks(t *testing.T) {
	svc, _ := newProfileFixture()

	updated, err := svc.Update(context.Background(), "artist-1", "artist-1", dto.UpdateProfileRequest{
		SocialLinks: map[string]string{
			"instagram": "https://instagram.com/artistone",
			"bandcamp":  "https://artistone.bandcamp.com",
		},
	})
	require.NoError(t, err)

	var links map[string]string
	require.NoError(t, json.Unmarshal(updated.SocialLinks, &links))
	assert.Equal(t, "https://instagram.com/artistone", links["instagram"])
	assert.Len(t, links, 2)
}
